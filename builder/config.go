// SPDX-License-Identifier: MIT
// Package: triroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn    = decimalName        ("C0","C1","C2",...)
//   • idOffset  = 0                  (node ids equal indices)
//   • rng       = nil                (pure unless seeded)
//   • weightFn  = DefaultWeightFn    ({1,1,1} per road)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node name strategy: index -> display name.
	nameFn func(int) string
	// Added to every index to form the node id.
	idOffset int
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for roads.
	weightFn WeightFn
}

// defaultNamePrefix prefixes decimal node names.
const defaultNamePrefix = "C"

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:   decimalName,
		idOffset: 0,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a node id.
func (c builderConfig) id(i int) int { return c.idOffset + i }

// decimalName renders an index as "C<i>".
func decimalName(i int) string {
	return defaultNamePrefix + strconv.Itoa(i)
}
