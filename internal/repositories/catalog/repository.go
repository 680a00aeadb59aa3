// Package catalog provides storage for the authored talent catalog
package catalog

import (
	"context"
	"time"

	"github.com/foolchen/lifeRestart/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/foolchen/lifeRestart/internal/repositories/catalog Repository

// GetInput contains parameters for reading the catalog
type GetInput struct{}

// GetOutput contains the stored catalog
type GetOutput struct {
	Catalog entities.RawCatalog
	// Source describes where the catalog was read from, for logging
	Source string
}

// PutInput contains the catalog to store
type PutInput struct {
	Catalog entities.RawCatalog
}

// PutOutput contains the result of storing a catalog
type PutOutput struct {
	Count    int
	StoredAt time.Time
}

// Repository defines the interface for catalog storage operations
type Repository interface {
	// Get reads the whole catalog. Returns NotFound when nothing is stored.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put replaces the stored catalog
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}
