package rules

import (
	"slices"

	"github.com/foolchen/lifeRestart/internal/entities"
)

// RateTier applies its multipliers once a bonus value reaches Min
type RateTier struct {
	Min   int                        `json:"min"`
	Rates map[entities.Grade]float64 `json:"rates"`
}

// RateTable is a list of tiers, the highest reached tier wins
type RateTable []RateTier

// Lookup returns the multipliers for value, or nil when no tier is reached
func (t RateTable) Lookup(value int) map[entities.Grade]float64 {
	var best *RateTier
	for i := range t {
		tier := &t[i]
		if value < tier.Min {
			continue
		}
		if best == nil || tier.Min > best.Min {
			best = tier
		}
	}
	if best == nil {
		return nil
	}

	out := make(map[entities.Grade]float64, len(best.Rates))
	for g, r := range best.Rates {
		out[g] = r
	}
	return out
}

func (t RateTable) sorted() RateTable {
	out := slices.Clone(t)
	slices.SortFunc(out, func(a, b RateTier) int { return a.Min - b.Min })
	return out
}

// DefaultTimesRates rewards players for the number of lives they have played
func DefaultTimesRates() RateTable {
	return RateTable{
		{Min: 10, Rates: map[entities.Grade]float64{entities.GradeEpic: 2}},
		{Min: 30, Rates: map[entities.Grade]float64{entities.GradeEpic: 3, entities.GradeLegendary: 2}},
		{Min: 50, Rates: map[entities.Grade]float64{entities.GradeEpic: 4, entities.GradeLegendary: 3}},
		{Min: 70, Rates: map[entities.Grade]float64{entities.GradeEpic: 5, entities.GradeLegendary: 4}},
		{Min: 100, Rates: map[entities.Grade]float64{entities.GradeEpic: 6, entities.GradeLegendary: 5}},
	}
}

// DefaultAchievementRates rewards players for unlocked achievements
func DefaultAchievementRates() RateTable {
	return RateTable{
		{Min: 10, Rates: map[entities.Grade]float64{entities.GradeEpic: 2, entities.GradeLegendary: 2}},
		{Min: 30, Rates: map[entities.Grade]float64{entities.GradeEpic: 3, entities.GradeLegendary: 3}},
		{Min: 50, Rates: map[entities.Grade]float64{entities.GradeEpic: 4, entities.GradeLegendary: 4}},
		{Min: 70, Rates: map[entities.Grade]float64{entities.GradeEpic: 5, entities.GradeLegendary: 5}},
	}
}
