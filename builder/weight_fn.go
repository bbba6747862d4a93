package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/triroute/core"
)

// DefaultEdgeWeight is the per-criterion weight of every road when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces the three road weights given an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) core.Weights

// DefaultWeightFn always returns DefaultEdgeWeight for distance, time and cost.
func DefaultWeightFn(_ *rand.Rand) core.Weights {
	return core.Weights{Distance: DefaultEdgeWeight, Time: DefaultEdgeWeight, Cost: DefaultEdgeWeight}
}

// ConstantWeightFn returns a WeightFn that always yields w.
// Panics if any component of w is negative.
func ConstantWeightFn(w core.Weights) WeightFn {
	if w.Distance < 0 || w.Time < 0 || w.Cost < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: weights must be ≥ 0, got %s", w))
	}

	return func(_ *rand.Rand) core.Weights {
		return w
	}
}

// UniformWeightFn returns a WeightFn drawing distance, time and cost
// independently and uniformly from [min, max] inclusive, in that order.
// Panics if min < 0 or max < min.
// A degenerate range (min == max) always yields {min, min, min}; otherwise a
// nil rng yields DefaultWeightFn's value.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	if min == max {
		return ConstantWeightFn(core.Weights{Distance: min, Time: min, Cost: min})
	}
	// [0, MaxInt64] has MaxInt64+1 values; the span does not fit in int64.
	fullRange := max-min == math.MaxInt64
	span := max - min + 1

	draw := func(rng *rand.Rand) int64 {
		if fullRange {
			return int64(rng.Uint64() >> 1)
		}
		return min + rng.Int63n(span)
	}

	return func(rng *rand.Rand) core.Weights {
		if rng == nil {
			return DefaultWeightFn(nil)
		}

		return core.Weights{
			Distance: draw(rng),
			Time:     draw(rng),
			Cost:     draw(rng),
		}
	}
}
