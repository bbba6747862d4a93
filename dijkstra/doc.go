// Package dijkstra provides the shortest-path engines of triroute: a
// single-criterion Dijkstra (PathFinder) and a multi-criterion engine
// (MultiPathFinder) that produces the Distance, Time and Cost optimal routes
// in one logical call.
//
// Overview:
//
//   - Both engines work on a built *core.Graph through its dense node
//     indices and never modify it.
//   - Every call allocates fresh state: distance slice, predecessor arcs,
//     settled flags and a container/heap min-queue with lazy deletion.
//   - The search stops as soon as the destination is settled.
//   - A route always carries all three totals, summed from the raw weights of
//     the arcs it uses.
//
// Interleaving:
//
//	MultiPathFinder keeps three independent searches in a [NumCriteria]
//	array and advances them round-robin, one settled node per active search
//	per round. The interleaving is a scheduling choice only: each search sees
//	exactly the pops and relaxations it would see alone, so
//
//	  multi.FindAll(a, b)[c]  ≡  single.FindPath(a, b, c)
//
//	for every criterion c (same node sequence, same totals).
//
// Edge cases:
//
//   - from == to: a one-node route with zero totals, without running the loop.
//   - unreachable destination: core.NoRoute() (not an error).
//   - node not in the graph: error wrapping core.ErrNodeNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per criterion.
//   - Space: O(V + E) per criterion (flat state plus heap duplicates).
//
// Thread safety:
//
//   - The graph is immutable, so a single PathFinder or MultiPathFinder can
//     serve concurrent calls; state is never shared across calls.
package dijkstra
