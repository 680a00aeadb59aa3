// Package engine defines the rules collaborators used by the talent core:
// condition evaluation, draw rate bonuses and weighted selection.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/foolchen/lifeRestart/internal/engine Engine

import (
	"github.com/foolchen/lifeRestart/internal/entities"
)

// Engine provides the game rules the talent registry and orchestrators depend on
type Engine interface {
	// CheckCondition reports whether the condition holds for the property.
	// An empty condition always holds.
	CheckCondition(property entities.Property, condition string) (bool, error)

	// ExtractMaxTriggers returns how many times a talent with this condition
	// may fire
	ExtractMaxTriggers(condition string) int

	// GetRate returns per-grade rate multipliers for a bonus kind. Grades
	// missing from the result use a multiplier of 1.
	GetRate(kind RateKind, value int) map[entities.Grade]float64

	// WeightRandom picks one candidate id with probability proportional to its weight
	WeightRandom(candidates []WeightedCandidate) (int, error)
}
