package talent

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/foolchen/lifeRestart/internal/engine"
	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
)

// Config holds the dependencies of the registry
type Config struct {
	Engine engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// snapshot is an immutable view of a loaded catalog
type snapshot struct {
	byID  map[int]*entities.Definition
	order []int
}

// Registry implements Service
type Registry struct {
	engine engine.Engine

	mu   sync.RWMutex
	data *snapshot
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Registry{
		engine: cfg.Engine,
		data:   &snapshot{byID: map[int]*entities.Definition{}},
	}, nil
}

var _ Service = (*Registry)(nil)

// Initial implements Service. The previous contents are replaced only when the
// whole catalog normalizes without error.
func (r *Registry) Initial(raw entities.RawCatalog) error {
	next := &snapshot{
		byID:  make(map[int]*entities.Definition, len(raw)),
		order: make([]int, 0, len(raw)),
	}

	for key, talent := range raw {
		id, err := entities.ParseTalentID(key)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid talent id").
				WithMeta("talent_id", key)
		}
		if _, dup := next.byID[id]; dup {
			return errors.InvalidArgumentf("talent id %d is defined more than once", id).
				WithMeta("talent_id", key)
		}

		def, fallbacks := talent.Definition(id)
		for _, fb := range fallbacks {
			slog.Warn("Replacement entry fell back to default",
				"talent_id", id,
				"section", fb.Section,
				"entry", fb.Entry,
				"reason", fb.Reason)
		}
		if talent.Grade.Valid && entities.Grade(talent.Grade.Value) != def.Grade {
			slog.Warn("Talent grade out of range, clamped",
				"talent_id", id,
				"grade", talent.Grade.Value,
				"normalized", def.Grade)
		}

		def.MaxTriggers = r.engine.ExtractMaxTriggers(def.Condition)
		next.byID[id] = def
		next.order = append(next.order, id)
	}
	slices.Sort(next.order)

	r.mu.Lock()
	r.data = next
	r.mu.Unlock()

	slog.Info("Talent registry initialized", "count", len(next.order))
	return nil
}

func (r *Registry) current() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data
}

func (r *Registry) lookup(id int) (*entities.Definition, error) {
	def, ok := r.current().byID[id]
	if !ok {
		return nil, errors.NotFoundf("talent %d not found", id).WithMeta("talent_id", id)
	}
	return def, nil
}

// Count implements Service
func (r *Registry) Count() int {
	return len(r.current().order)
}

// Get implements Service
func (r *Registry) Get(id int) (*entities.Definition, error) {
	def, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return def.Clone(), nil
}

// Information implements Service
func (r *Registry) Information(id int) (*entities.Information, error) {
	def, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return &entities.Information{
		Grade:       def.Grade,
		Name:        def.Name,
		Description: def.Description,
	}, nil
}

// ForEach implements Service. A nil visitor is a no-op.
func (r *Registry) ForEach(visitor func(def entities.Definition, id int)) {
	if visitor == nil {
		return
	}

	snap := r.current()
	for _, id := range snap.order {
		visitor(*snap.byID[id].Clone(), id)
	}
}

// Check implements Service
func (r *Registry) Check(id int, property entities.Property) (bool, error) {
	def, err := r.lookup(id)
	if err != nil {
		return false, err
	}

	ok, err := r.engine.CheckCondition(property, def.Condition)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check condition of talent %d", id)
	}
	return ok, nil
}

// Do implements Service
func (r *Registry) Do(id int, property entities.Property) (*entities.Outcome, error) {
	def, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	if def.Condition != "" {
		ok, err := r.engine.CheckCondition(property, def.Condition)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check condition of talent %d", id)
		}
		if !ok {
			return nil, nil
		}
	}

	return &entities.Outcome{
		Effect:      slices.Clone(def.Effect),
		Grade:       def.Grade,
		Name:        def.Name,
		Description: def.Description,
	}, nil
}

// AllocationAddition implements Service
func (r *Registry) AllocationAddition(ids ...int) (int, error) {
	total := 0
	for _, id := range ids {
		def, err := r.lookup(id)
		if err != nil {
			return 0, err
		}
		total += def.Status
	}
	return total, nil
}

// Exclusive implements Service. The check is one-sided: only the candidate's
// exclusion list is consulted.
func (r *Registry) Exclusive(held []int, candidateID int) (int, bool, error) {
	def, err := r.lookup(candidateID)
	if err != nil {
		return 0, false, err
	}
	if len(def.Exclusive) == 0 {
		return 0, false, nil
	}

	for _, h := range held {
		if slices.Contains(def.Exclusive, h) {
			return h, true, nil
		}
	}
	return 0, false, nil
}
