// Package draw implements the talent draw: grade sampling, pool assembly and
// variant bonus injection
package draw

//go:generate mockgen -destination=mock/mock_service.go -package=drawmock github.com/foolchen/lifeRestart/internal/orchestrators/draw Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/foolchen/lifeRestart/internal/engine"
	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/pkg/idgen"
	"github.com/foolchen/lifeRestart/internal/services/talent"
)

// Service defines the interface for talent draws
type Service interface {
	DrawTalents(ctx context.Context, input *DrawTalentsInput) (*DrawTalentsOutput, error)
}

// Config holds the dependencies for the draw orchestrator
type Config struct {
	Registry    talent.Service
	Engine      engine.Engine
	Roller      dice.Roller
	IDGenerator idgen.Generator
	EventBus    events.EventBus
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
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	registry talent.Service
	engine   engine.Engine
	roller   dice.Roller
	idGen    idgen.Generator
	bus      events.EventBus
}

// NewOrchestrator creates a new draw orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		registry: cfg.Registry,
		engine:   cfg.Engine,
		roller:   cfg.Roller,
		idGen:    cfg.IDGenerator,
		bus:      cfg.EventBus,
	}, nil
}

// pools holds the undrawn talents of each grade. Slices are owned by a
// single draw.
type pools map[entities.Grade][]entities.Summary

// take removes and returns a uniformly chosen talent of the grade
func (p pools) take(roller dice.Roller, grade entities.Grade) (entities.Summary, error) {
	pool := p[grade]
	roll, err := roller.Roll(len(pool))
	if err != nil {
		return entities.Summary{}, errors.Wrap(err, "failed to roll talent index")
	}

	idx := roll - 1
	picked := pool[idx]
	last := len(pool) - 1
	pool[idx] = pool[last]
	p[grade] = pool[:last]
	return picked, nil
}

// DrawTalents draws a hand of DrawSize talents
func (o *orchestrator) DrawTalents(ctx context.Context, input *DrawTalentsInput) (*DrawTalentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	table := newGradeTable(
		o.engine.GetRate(engine.RateKindTimes, input.Times),
		o.engine.GetRate(engine.RateKindAchievement, input.Achievement),
	)

	var include *entities.Summary
	if input.IncludeID != nil {
		def, err := o.registry.Get(*input.IncludeID)
		if err != nil {
			return nil, errors.Wrapf(err, "included talent %d is not registered", *input.IncludeID)
		}
		summary := def.Summary()
		include = &summary
	}

	available := pools{}
	o.registry.ForEach(func(def entities.Definition, id int) {
		if include != nil && id == include.ID {
			return
		}
		available[def.Grade] = append(available[def.Grade], def.Summary())
	})

	hand := make([]entities.Summary, 0, entities.DrawSize)
	for slot := 0; slot < entities.DrawSize; slot++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "draw canceled")
		}

		if slot == 0 && include != nil {
			hand = append(hand, *include)
			continue
		}

		grade, err := table.sample(o.roller)
		if err != nil {
			return nil, err
		}
		for len(available[grade]) == 0 {
			if grade == entities.GradeCommon {
				return nil, errors.ConfigurationHazardf("no talents left to fill slot %d", slot).
					WithMeta("slot", slot)
			}
			grade--
		}

		picked, err := available.take(o.roller, grade)
		if err != nil {
			return nil, err
		}
		hand = append(hand, picked)
	}

	hand, injected, err := o.injectBonus(hand, available[entities.GradeLegendary], input.Variant)
	if err != nil {
		return nil, err
	}

	draw := &entities.Draw{
		ID:       o.idGen.Generate(),
		Talents:  hand,
		Variant:  input.Variant,
		Included: input.IncludeID,
	}

	slog.Info("Talents drawn",
		"draw_id", draw.ID,
		"talent_ids", draw.IDs(),
		"variant", input.Variant.String(),
		"injected", injected)

	event := events.NewGameEvent(EventTalentDrawn, draw, nil)
	event.Context().Set("talent_ids", draw.IDs())
	event.Context().Set("variant", input.Variant.String())
	event.Context().Set("injected", injected)
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish draw event", "draw_id", draw.ID, "error", err)
	}

	return &DrawTalentsOutput{
		Draw:     draw,
		Injected: injected,
	}, nil
}
