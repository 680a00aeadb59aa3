// Package talent provides the talent registry: the loaded catalog, condition
// checks and mutual-exclusion lookups.
package talent

import (
	"github.com/foolchen/lifeRestart/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=talentmock github.com/foolchen/lifeRestart/internal/services/talent Service

// Service defines the talent registry interface
type Service interface {
	// Initial replaces the registry contents with the normalized catalog
	Initial(raw entities.RawCatalog) error

	// Count returns the number of registered talents
	Count() int

	// Get returns a copy of the talent definition
	Get(id int) (*entities.Definition, error)

	// Information returns the descriptive fields of a talent
	Information(id int) (*entities.Information, error)

	// ForEach calls visitor with a copy of every talent in ascending id order
	ForEach(visitor func(def entities.Definition, id int))

	// Check evaluates the talent condition against the property
	Check(id int, property entities.Property) (bool, error)

	// Do returns the talent outcome when its condition holds, nil otherwise
	Do(id int, property entities.Property) (*entities.Outcome, error)

	// AllocationAddition sums the status bonus of the given talents
	AllocationAddition(ids ...int) (int, error)

	// Exclusive returns the first held id listed in the candidate's exclusion
	// list. The bool is false when there is no conflict.
	Exclusive(held []int, candidateID int) (int, bool, error)
}
