// Package builder generates deterministic road-network fixtures on top of
// core.Builder, for tests, benchmarks and examples.
//
// The package offers the following components:
//
//   - Orchestration:
//     – BuildNetwork(bopts, cons...): applies constructors in order and
//     returns the built *core.Graph.
//   - Topology constructors:
//     – Path(n), Cycle(n), Star(n), Wheel(n), Grid(rows, cols), Complete(n),
//     RandomSparse(n, p).
//   - Options (BuilderOption):
//     – WithSeed / WithRand:  RNG for RandomSparse and random weights.
//     – WithWeightFn:         per-road weight generator.
//     – WithNameScheme:       index -> node name (default "C0", "C1", ...).
//     – WithIDOffset:         index -> id shift for disjoint node ranges.
//   - Weight distributions (WeightFn):
//     – DefaultWeightFn:  {1,1,1}.
//     – ConstantWeightFn: fixed user-provided Weights.
//     – UniformWeightFn:  each criterion drawn independently from [min,max].
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs, including
//     node order, arc order and weights.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) and never panic.
//
// Example:
//
//	g, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 50))},
//		builder.RandomSparse(200, 0.05),
//	)
package builder
