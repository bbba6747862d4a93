package core

import (
	"fmt"
	"strings"
)

// Criterion names which edge weight is used as the traversal cost.
// The set is closed; ordinal positions are stable and index fixed-size arrays.
type Criterion uint8

const (
	// Distance optimizes the summed road length.
	Distance Criterion = iota
	// Time optimizes the summed travel time.
	Time
	// Cost optimizes the summed toll/fare.
	Cost
)

// NumCriteria is the size of the closed Criterion set.
const NumCriteria = 3

// Criteria lists every criterion in ordinal order. This is the fixed scan
// order used wherever results are enumerated.
var Criteria = [NumCriteria]Criterion{Distance, Time, Cost}

// criterionInfo holds the label and accepted single-letter codes per ordinal.
// The first code is canonical; the second is the Cyrillic code of the
// original input files (Д = length, В = time, С = cost).
var criterionInfo = [NumCriteria]struct {
	label string
	codes [2]string
}{
	Distance: {label: "DISTANCE", codes: [2]string{"D", "Д"}},
	Time:     {label: "TIME", codes: [2]string{"T", "В"}},
	Cost:     {label: "COST", codes: [2]string{"C", "С"}},
}

// Valid reports whether c is one of Distance, Time, Cost.
func (c Criterion) Valid() bool { return c < NumCriteria }

// mustValid panics on an out-of-range criterion; reaching it is a programmer error.
func (c Criterion) mustValid() {
	if !c.Valid() {
		panic(fmt.Sprintf("core: invalid criterion %d", uint8(c)))
	}
}

// String returns the upper-case label ("DISTANCE", "TIME", "COST").
func (c Criterion) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Criterion(%d)", uint8(c))
	}

	return criterionInfo[c].label
}

// Code returns the canonical single-letter code ("D", "T", "C").
func (c Criterion) Code() string {
	c.mustValid()

	return criterionInfo[c].codes[0]
}

// Weight selects the field of w named by c. Panics if c is invalid.
func (c Criterion) Weight(w Weights) int64 {
	switch c {
	case Distance:
		return w.Distance
	case Time:
		return w.Time
	case Cost:
		return w.Cost
	default:
		c.mustValid()
		return 0 // unreachable
	}
}

// ParseCriterion accepts a single-letter code (Latin D/T/C or Cyrillic Д/В/С,
// case-insensitive) or a full label ("DISTANCE", "TIME", "COST").
func ParseCriterion(s string) (Criterion, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range Criteria {
		info := criterionInfo[c]
		if key == info.label || key == info.codes[0] || key == info.codes[1] {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
}

// Priority is a descending-importance order over the three criteria:
// Priority[0] is primary, Priority[1] secondary, Priority[2] tertiary.
type Priority [NumCriteria]Criterion

// DefaultPriority is (Distance, Time, Cost).
var DefaultPriority = Priority{Distance, Time, Cost}

// Validate reports ErrInvalidPriority unless p is a permutation of Criteria.
func (p Priority) Validate() error {
	var seen [NumCriteria]bool
	for _, c := range p {
		if !c.Valid() || seen[c] {
			return fmt.Errorf("%w: %s", ErrInvalidPriority, p)
		}
		seen[c] = true
	}

	return nil
}

// String formats p as "(D,T,C)".
func (p Priority) String() string {
	parts := make([]string, 0, NumCriteria)
	for _, c := range p {
		if c.Valid() {
			parts = append(parts, c.Code())
		} else {
			parts = append(parts, c.String())
		}
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// ParsePriority reads exactly three criterion codes and validates them as a permutation.
func ParsePriority(codes ...string) (Priority, error) {
	var p Priority
	if len(codes) != NumCriteria {
		return p, fmt.Errorf("%w: want %d codes, got %d", ErrInvalidPriority, NumCriteria, len(codes))
	}
	for i, code := range codes {
		c, err := ParseCriterion(code)
		if err != nil {
			return p, err
		}
		p[i] = c
	}
	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}
