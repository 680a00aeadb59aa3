package talent

import (
	"context"
	"log/slog"
	"time"

	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/pkg/clock"
	"github.com/foolchen/lifeRestart/internal/repositories/catalog"
)

// LoaderConfig holds the dependencies of the catalog loader
type LoaderConfig struct {
	Repository catalog.Repository
	Registry   Service
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *LoaderConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// LoadOutput describes a completed catalog load
type LoadOutput struct {
	Count    int
	Source   string
	LoadedAt time.Time
}

// Loader populates a registry from a catalog repository
type Loader struct {
	repository catalog.Repository
	registry   Service
	clock      clock.Clock
}

// NewLoader creates a catalog loader
func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Loader{
		repository: cfg.Repository,
		registry:   cfg.Registry,
		clock:      cfg.Clock,
	}, nil
}

// Load reads the catalog and initializes the registry with it
func (l *Loader) Load(ctx context.Context) (*LoadOutput, error) {
	out, err := l.repository.Get(ctx, catalog.GetInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read talent catalog")
	}

	if err := l.registry.Initial(out.Catalog); err != nil {
		return nil, errors.Wrapf(err, "failed to initialize registry from %s", out.Source)
	}

	loaded := &LoadOutput{
		Count:    l.registry.Count(),
		Source:   out.Source,
		LoadedAt: l.clock.Now(),
	}
	slog.Info("Talent catalog loaded",
		"source", loaded.Source,
		"count", loaded.Count,
		"loaded_at", loaded.LoadedAt)

	return loaded, nil
}
