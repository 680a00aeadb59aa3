// Package idgen names draws and other generated records
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a fresh id on every call
type Generator interface {
	Generate() string
}

// UUIDGenerator issues time-ordered UUIDv7 ids, so draw ids sort by creation
type UUIDGenerator struct {
	prefix string
}

// NewUUID returns a generator whose ids read "<prefix>_<uuid>", or a bare
// uuid when prefix is empty
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate implements Generator
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return join(g.prefix, id.String())
}

// SequentialGenerator issues "<prefix>_1", "<prefix>_2", ... and is safe for
// concurrent use. Tests rely on it for stable draw ids.
type SequentialGenerator struct {
	prefix string
	last   atomic.Uint64
}

// NewSequential returns a generator starting at 1
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate implements Generator
func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.last.Add(1), 10))
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
