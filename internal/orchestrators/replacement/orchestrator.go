// Package replacement resolves talent substitution chains for a held set of
// talents while respecting mutual exclusion
package replacement

//go:generate mockgen -destination=mock/mock_service.go -package=replacementmock github.com/foolchen/lifeRestart/internal/orchestrators/replacement Service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/foolchen/lifeRestart/internal/engine"
	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/services/talent"
)

// Service defines the interface for replacement resolution
type Service interface {
	ReplaceTalents(ctx context.Context, input *ReplaceTalentsInput) (*ReplaceTalentsOutput, error)
}

// Config holds the dependencies for the replacement orchestrator
type Config struct {
	Registry talent.Service
	Engine   engine.Engine
	EventBus events.EventBus
	// GradeScope defaults to GradeScopeHeld
	GradeScope GradeScope
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if _, err := ParseGradeScope(string(c.GradeScope)); err != nil {
		vb.Field("GradeScope", err.Error())
	}

	return vb.Build()
}

type orchestrator struct {
	registry talent.Service
	engine   engine.Engine
	bus      events.EventBus
	scope    GradeScope
}

// NewOrchestrator creates a new replacement orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	scope, _ := ParseGradeScope(string(cfg.GradeScope))
	return &orchestrator{
		registry: cfg.Registry,
		engine:   cfg.Engine,
		bus:      cfg.EventBus,
		scope:    scope,
	}, nil
}

// ReplaceTalents resolves every held talent in order. Only the final id of a
// chain joins the working set seen by later talents.
func (o *orchestrator) ReplaceTalents(ctx context.Context, input *ReplaceTalentsInput) (*ReplaceTalentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &ReplaceTalentsOutput{
		Replacements: entities.ReplacementMap{},
		Chains:       map[int][]int{},
	}
	if len(input.TalentIDs) == 0 {
		return out, nil
	}

	heldGrades := map[entities.Grade]bool{}
	for _, id := range input.TalentIDs {
		info, err := o.registry.Information(id)
		if err != nil {
			return nil, errors.Wrapf(err, "held talent %d is not registered", id)
		}
		heldGrades[info.Grade] = true
	}

	working := slices.Clone(input.TalentIDs)
	for _, id := range input.TalentIDs {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "replacement canceled")
		}

		chain, err := o.resolve(id, working, heldGrades)
		if err != nil {
			return nil, err
		}

		final := chain[len(chain)-1]
		if final == id {
			continue
		}

		out.Replacements[id] = final
		out.Chains[id] = chain
		working = append(working, final)
		o.publish(ctx, id, final, chain)
	}

	if len(out.Replacements) > 0 {
		slog.Info("Talents replaced",
			"held", input.TalentIDs,
			"replacements", out.Replacements)
	}
	return out, nil
}

// resolve follows the replacement chain starting at id. It returns the ids
// visited, the last one being final.
func (o *orchestrator) resolve(id int, working []int, heldGrades map[entities.Grade]bool) ([]int, error) {
	limit := max(o.registry.Count(), 1)
	set := slices.Clone(working)
	chain := []int{id}

	current := id
	for {
		def, err := o.registry.Get(current)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load talent %d", current)
		}
		if def.Replacement.Empty() {
			return chain, nil
		}

		candidates, err := o.candidates(def.Replacement, set, heldGrades)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list replacements of talent %d", current)
		}
		if len(candidates) == 0 {
			return chain, nil
		}

		if len(chain) > limit {
			return nil, errors.ResolutionDepthExceededf(
				"replacement chain from talent %d did not settle within %d steps", id, limit).
				WithMeta("talent_id", id).
				WithMeta("chain", chain)
		}

		pick, err := o.engine.WeightRandom(candidates)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to pick replacement of talent %d", current)
		}

		set = append(set, pick)
		chain = append(chain, pick)
		current = pick
	}
}

// candidates lists the weighted replacement options not excluded by set.
// Grade rules come first in ascending id order, then talent rules in
// ascending id order.
func (o *orchestrator) candidates(
	rule *entities.Replacement,
	set []int,
	heldGrades map[entities.Grade]bool,
) ([]engine.WeightedCandidate, error) {
	var out []engine.WeightedCandidate
	var firstErr error

	if len(rule.Grade) > 0 {
		o.registry.ForEach(func(def entities.Definition, id int) {
			if firstErr != nil {
				return
			}
			weight, ok := rule.Grade[int(def.Grade)]
			if !ok {
				return
			}
			if o.scope == GradeScopeHeld && !heldGrades[def.Grade] {
				return
			}
			_, excluded, err := o.registry.Exclusive(set, id)
			if err != nil {
				firstErr = err
				return
			}
			if !excluded {
				out = append(out, engine.WeightedCandidate{ID: id, Weight: weight})
			}
		})
	}
	if firstErr != nil {
		return nil, firstErr
	}

	for _, id := range rule.Talent.Keys() {
		_, excluded, err := o.registry.Exclusive(set, id)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}
		out = append(out, engine.WeightedCandidate{ID: id, Weight: rule.Talent[id]})
	}

	return out, nil
}

func (o *orchestrator) publish(ctx context.Context, original, final int, chain []int) {
	source, err := o.registry.Get(original)
	if err != nil {
		return
	}
	target, err := o.registry.Get(final)
	if err != nil {
		return
	}

	event := events.NewGameEvent(EventTalentReplaced, source.Summary(), target.Summary())
	event.Context().Set("chain", chain)
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish replacement event",
			"talent_id", original,
			"replacement_id", final,
			"error", err)
	}
}
