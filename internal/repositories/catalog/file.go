package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
	"github.com/foolchen/lifeRestart/internal/pkg/clock"
)

// FileConfig holds the configuration for the JSON file repository
type FileConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate ensures all required fields are provided
func (c *FileConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Path == "" {
		vb.RequiredField("Path")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type fileRepository struct {
	path  string
	clock clock.Clock
}

// NewFileRepository creates a repository backed by a JSON file
func NewFileRepository(cfg *FileConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &fileRepository{
		path:  cfg.Path,
		clock: cfg.Clock,
	}, nil
}

var _ Repository = (*fileRepository)(nil)

// Get reads and decodes the catalog file
func (r *fileRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "catalog read canceled")
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", r.path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog file %s", r.path)
	}

	var raw entities.RawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog file is not valid JSON").
			WithMeta("path", r.path)
	}

	return &GetOutput{
		Catalog: raw,
		Source:  "file:" + r.path,
	}, nil
}

// Put writes the catalog through a temporary file and renames it into place
func (r *fileRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Catalog == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "catalog write canceled")
	}

	data, err := json.MarshalIndent(input.Catalog, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal catalog")
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".catalog-*.json")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temporary catalog file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrap(err, "failed to write catalog file")
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close catalog file")
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return nil, errors.Wrap(err, "failed to replace catalog file")
	}

	return &PutOutput{
		Count:    len(input.Catalog),
		StoredAt: r.clock.Now(),
	}, nil
}
