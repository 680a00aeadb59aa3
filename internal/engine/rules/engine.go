// Package rules provides the reference implementation of engine.Engine.
// Conditions are Lua expressions, rate bonuses come from threshold tables and
// weighted picks use mroth/weightedrand.
package rules

import (
	"log/slog"
	"strings"

	"github.com/mroth/weightedrand/v2"

	"github.com/foolchen/lifeRestart/internal/engine"
	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
)

// Config contains configuration for the rules engine
type Config struct {
	// TimesRates defaults to DefaultTimesRates when nil
	TimesRates RateTable
	// AchievementRates defaults to DefaultAchievementRates when nil
	AchievementRates RateTable
}

// Validate checks the rate tables
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	for name, table := range map[string]RateTable{
		"TimesRates":       c.TimesRates,
		"AchievementRates": c.AchievementRates,
	} {
		for _, tier := range table {
			for g, r := range tier.Rates {
				if !g.Valid() {
					vb.Fieldf(name, "tier %d has unknown grade %d", tier.Min, g)
				}
				if r <= 0 {
					vb.Fieldf(name, "tier %d has non-positive rate for grade %d", tier.Min, g)
				}
			}
		}
	}
	return vb.Build()
}

// Engine implements engine.Engine
type Engine struct {
	rates map[engine.RateKind]RateTable
}

// New creates a rules engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	times := cfg.TimesRates
	if times == nil {
		times = DefaultTimesRates()
	}
	achievement := cfg.AchievementRates
	if achievement == nil {
		achievement = DefaultAchievementRates()
	}

	return &Engine{
		rates: map[engine.RateKind]RateTable{
			engine.RateKindTimes:       times.sorted(),
			engine.RateKindAchievement: achievement.sorted(),
		},
	}, nil
}

// CheckCondition implements engine.Engine
func (e *Engine) CheckCondition(property entities.Property, condition string) (bool, error) {
	if strings.TrimSpace(condition) == "" {
		return true, nil
	}

	ok, err := evaluate(property, condition)
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid talent condition").
			WithMeta("condition", condition)
	}
	return ok, nil
}

// ExtractMaxTriggers implements engine.Engine
func (e *Engine) ExtractMaxTriggers(condition string) int {
	return maxTriggers(condition)
}

// GetRate implements engine.Engine
func (e *Engine) GetRate(kind engine.RateKind, value int) map[entities.Grade]float64 {
	table, ok := e.rates[kind]
	if !ok {
		slog.Warn("Unknown rate kind", "kind", kind)
		return nil
	}
	return table.Lookup(value)
}

// WeightRandom implements engine.Engine
func (e *Engine) WeightRandom(candidates []engine.WeightedCandidate) (int, error) {
	if len(candidates) == 0 {
		return 0, errors.InvalidArgument("no candidates to choose from")
	}

	choices := make([]weightedrand.Choice[int, int], 0, len(candidates))
	for _, c := range candidates {
		if c.Weight <= 0 {
			continue
		}
		choices = append(choices, weightedrand.NewChoice(c.ID, c.Weight))
	}
	if len(choices) == 0 {
		return 0, errors.InvalidArgument("all candidates have non-positive weight")
	}

	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build weighted chooser")
	}
	return chooser.Pick(), nil
}
