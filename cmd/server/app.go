package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/foolchen/lifeRestart/internal/config"
	"github.com/foolchen/lifeRestart/internal/engine/rules"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/orchestrators/draw"
	"github.com/foolchen/lifeRestart/internal/orchestrators/replacement"
	"github.com/foolchen/lifeRestart/internal/pkg/clock"
	"github.com/foolchen/lifeRestart/internal/pkg/idgen"
	redisclient "github.com/foolchen/lifeRestart/internal/redis"
	"github.com/foolchen/lifeRestart/internal/repositories/catalog"
	"github.com/foolchen/lifeRestart/internal/services/talent"
)

const redisPingTimeout = 5 * time.Second

// app wires the registry and orchestrators shared by every command
type app struct {
	registry    *talent.Registry
	draw        draw.Service
	replacement replacement.Service
	bus         events.EventBus
	close       func()
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	repo, closeRepo, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	engine, err := rules.New(nil)
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create rules engine")
	}

	registry, err := talent.NewRegistry(&talent.Config{Engine: engine})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create talent registry")
	}

	loader, err := talent.NewLoader(&talent.LoaderConfig{
		Repository: repo,
		Registry:   registry,
		Clock:      clock.New(),
	})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create catalog loader")
	}
	if _, err := loader.Load(ctx); err != nil {
		closeRepo()
		return nil, err
	}

	bus := events.NewBus()
	subscribeLogging(bus)

	drawService, err := draw.NewOrchestrator(&draw.Config{
		Registry:    registry,
		Engine:      engine,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("draw"),
		EventBus:    bus,
	})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create draw orchestrator")
	}

	scope, _ := replacement.ParseGradeScope(cfg.GradeScope)
	replacementService, err := replacement.NewOrchestrator(&replacement.Config{
		Registry:   registry,
		Engine:     engine,
		EventBus:   bus,
		GradeScope: scope,
	})
	if err != nil {
		closeRepo()
		return nil, errors.Wrap(err, "failed to create replacement orchestrator")
	}

	return &app{
		registry:    registry,
		draw:        drawService,
		replacement: replacementService,
		bus:         bus,
		close: func() {
			bus.ClearAll()
			closeRepo()
		},
	}, nil
}

// newRepository opens the catalog store named by the config. The returned
// func releases any connection it holds.
func newRepository(ctx context.Context, cfg *config.Config) (catalog.Repository, func(), error) {
	switch cfg.CatalogSource {
	case config.SourceRedis:
		return newRedisRepository(ctx, cfg)
	default:
		repo, err := newFileRepository(cfg.CatalogFile)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func newRedisRepository(ctx context.Context, cfg *config.Config) (catalog.Repository, func(), error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		closeClient()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable")
	}

	repo, err := catalog.NewRedisRepository(&catalog.RedisConfig{
		Client: client,
		Clock:  clock.New(),
		Key:    cfg.RedisKey(),
	})
	if err != nil {
		closeClient()
		return nil, nil, errors.Wrap(err, "failed to create redis catalog repository")
	}
	return repo, closeClient, nil
}

// subscribeLogging reports every talent event through slog
func subscribeLogging(bus events.EventBus) {
	for _, eventType := range []string{draw.EventTalentDrawn, replacement.EventTalentReplaced} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, event events.Event) error {
			attrs := []any{"event", eventType}
			if source := event.Source(); source != nil {
				attrs = append(attrs, "source", source.GetID())
			}
			if target := event.Target(); target != nil {
				attrs = append(attrs, "target", target.GetID())
			}
			slog.Debug("Talent event", attrs...)
			return nil
		})
	}
}
