// Package compromise reduces the three per-criterion optimal routes to one
// route by applying a caller-supplied lexicographic priority.
//
// Selection:
//
//  1. Deduplicate the routes by node sequence (core.Route.Equal), scanning in
//     the fixed order Distance, Time, Cost and keeping the first occurrence.
//     Routes with equal totals but different sequences stay distinct.
//  2. If one distinct route remains, return it.
//  3. Otherwise return the minimum by (primary, secondary, tertiary) totals,
//     smaller being better at every level.
//
// Tie-break: when two or more distinct routes tie on all three keys, the one
// discovered first in the scan order of step 1 is returned. The rule depends
// only on the input, so repeated calls agree.
//
// The no-path sentinel carries math.MaxInt64 totals and therefore never
// beats an existing route.
package compromise

import (
	"fmt"

	"github.com/katalvlaran/triroute/core"
)

// Select returns the compromise route for routes under priority p.
// Returns core.ErrInvalidPriority (wrapped) if p is not a permutation.
func Select(routes core.Routes, p core.Priority) (core.Route, error) {
	if err := p.Validate(); err != nil {
		return core.NoRoute(), fmt.Errorf("compromise: %w", err)
	}

	distinct := Distinct(routes)
	if len(distinct) == 1 {
		return distinct[0], nil
	}

	best := distinct[0]
	for _, r := range distinct[1:] {
		// Strictly less only: earlier discoveries win full ties.
		if Compare(r, best, p) < 0 {
			best = r
		}
	}

	return best, nil
}

// Distinct returns the routes with pairwise different node sequences, in
// first-discovery order over core.Criteria.
func Distinct(routes core.Routes) []core.Route {
	out := make([]core.Route, 0, core.NumCriteria)
	for _, c := range core.Criteria {
		r := routes[c]
		dup := false
		for _, seen := range out {
			if seen.Equal(r) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}

	return out
}

// Compare orders a and b lexicographically by their totals under p:
// -1 if a is better, +1 if b is better, 0 on a full tie.
func Compare(a, b core.Route, p core.Priority) int {
	for _, c := range p {
		va, vb := a.Value(c), b.Value(c)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
	}

	return 0
}
