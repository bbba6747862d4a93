package core

// labelComponents assigns every node a connected-component label with an
// iterative breadth-first search over the arc lists. Labels are dense
// (0..k-1) and follow node registration order, so they are deterministic.
//
// Complexity: O(V + E) time, O(V) space.
func labelComponents(g *Graph) []int {
	const unlabeled = -1

	comp := make([]int, len(g.nodes))
	for i := range comp {
		comp[i] = unlabeled
	}

	queue := make([]int, 0, len(g.nodes))
	next := 0
	for root := range g.nodes {
		if comp[root] != unlabeled {
			continue
		}
		// Flood the component containing root.
		comp[root] = next
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, a := range g.arcs[u] {
				if comp[a.To] == unlabeled {
					comp[a.To] = next
					queue = append(queue, a.To)
				}
			}
		}
		next++
	}

	return comp
}
