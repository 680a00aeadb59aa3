// Package entities provides the core data structures for the talent service.
package entities

import (
	"encoding/json"
	"slices"
	"strconv"
)

// Grade is the rarity tier of a talent, higher is rarer
type Grade int

// Talent grades
const (
	GradeCommon    Grade = 0
	GradeRare      Grade = 1
	GradeEpic      Grade = 2
	GradeLegendary Grade = 3
)

// Grades lists every grade from the most common to the rarest
var Grades = []Grade{GradeCommon, GradeRare, GradeEpic, GradeLegendary}

// NormalizeGrade clamps a raw grade into the supported range
func NormalizeGrade(g int) Grade {
	switch {
	case g < int(GradeCommon):
		return GradeCommon
	case g > int(GradeLegendary):
		return GradeLegendary
	default:
		return Grade(g)
	}
}

// Valid reports whether the grade is one of the known tiers
func (g Grade) Valid() bool {
	return g >= GradeCommon && g <= GradeLegendary
}

// EntityTypeTalent is the core.Entity type reported by talent summaries
const EntityTypeTalent = "talent"

// Property is the character state a talent condition is evaluated against
type Property map[string]any

// Candidates maps a key (grade or talent id) to a positive selection weight
type Candidates map[int]int

// Keys returns the candidate keys in ascending order
func (c Candidates) Keys() []int {
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns an independent copy
func (c Candidates) Clone() Candidates {
	if c == nil {
		return nil
	}
	out := make(Candidates, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Replacement holds the substitution rules of a talent
type Replacement struct {
	// Grade rules fire on any registered talent of the keyed grade
	Grade Candidates `json:"grade,omitempty"`
	// Talent rules name the substitute talent ids directly
	Talent Candidates `json:"talent,omitempty"`
}

// Empty reports whether no rule is defined
func (r *Replacement) Empty() bool {
	return r == nil || (len(r.Grade) == 0 && len(r.Talent) == 0)
}

// Clone returns an independent copy
func (r *Replacement) Clone() *Replacement {
	if r == nil {
		return nil
	}
	return &Replacement{
		Grade:  r.Grade.Clone(),
		Talent: r.Talent.Clone(),
	}
}

// Definition is a normalized talent as stored in the registry
type Definition struct {
	ID          int             `json:"id"`
	Grade       Grade           `json:"grade"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Condition   string          `json:"condition,omitempty"`
	MaxTriggers int             `json:"max_triggers"`
	Effect      json.RawMessage `json:"effect,omitempty"`
	Status      int             `json:"status,omitempty"`
	Exclusive   []int           `json:"exclusive,omitempty"`
	Replacement *Replacement    `json:"replacement,omitempty"`
}

// Clone returns a copy sharing no mutable state with d
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := *d
	out.Effect = slices.Clone(d.Effect)
	out.Exclusive = slices.Clone(d.Exclusive)
	out.Replacement = d.Replacement.Clone()
	return &out
}

// Summary returns the public projection of the definition
func (d *Definition) Summary() Summary {
	return Summary{
		ID:          d.ID,
		Grade:       d.Grade,
		Name:        d.Name,
		Description: d.Description,
	}
}

// Information is the descriptive subset of a talent
type Information struct {
	Grade       Grade  `json:"grade"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Outcome is returned when a talent applies to a character
type Outcome struct {
	Effect      json.RawMessage `json:"effect,omitempty"`
	Grade       Grade           `json:"grade"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

// Summary is the projection of a talent offered in a draw
type Summary struct {
	ID          int    `json:"id"`
	Grade       Grade  `json:"grade"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetID implements core.Entity
func (s Summary) GetID() string {
	return strconv.Itoa(s.ID)
}

// GetType implements core.Entity
func (s Summary) GetType() string {
	return EntityTypeTalent
}

// DrawSize is the number of talents offered by one draw
const DrawSize = 10

// EntityTypeDraw is the core.Entity type reported by draws
const EntityTypeDraw = "talent_draw"

// Draw is the result of a single talent draw
type Draw struct {
	ID       string    `json:"id"`
	Talents  []Summary `json:"talents"`
	Variant  Variant   `json:"variant"`
	Included *int      `json:"included,omitempty"`
}

// GetID implements core.Entity
func (d *Draw) GetID() string {
	return d.ID
}

// GetType implements core.Entity
func (d *Draw) GetType() string {
	return EntityTypeDraw
}

// IDs returns the talent ids in slot order
func (d *Draw) IDs() []int {
	ids := make([]int, len(d.Talents))
	for i, t := range d.Talents {
		ids[i] = t.ID
	}
	return ids
}

// ReplacementMap maps an original talent id to the id it resolved to.
// Only changed ids are present.
type ReplacementMap map[int]int
