package replacement

import (
	"fmt"
	"strings"

	"github.com/foolchen/lifeRestart/internal/entities"
)

// EventTalentReplaced is published once per talent whose chain changed it
const EventTalentReplaced = "talent.replaced"

// GradeScope selects which talents enable a grade-keyed replacement rule
type GradeScope string

const (
	// GradeScopeHeld fires a grade rule only when the held set contains a
	// talent of that grade
	GradeScopeHeld GradeScope = "held"
	// GradeScopeCatalog fires a grade rule whenever the catalog has talents
	// of that grade
	GradeScopeCatalog GradeScope = "catalog"
)

// ParseGradeScope parses a scope name, empty selects GradeScopeHeld
func ParseGradeScope(s string) (GradeScope, error) {
	switch GradeScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", GradeScopeHeld:
		return GradeScopeHeld, nil
	case GradeScopeCatalog:
		return GradeScopeCatalog, nil
	default:
		return "", fmt.Errorf("unknown grade scope %q", s)
	}
}

// ReplaceTalentsInput defines the request for resolving replacements
type ReplaceTalentsInput struct {
	TalentIDs []int
}

// ReplaceTalentsOutput defines the response for resolving replacements
type ReplaceTalentsOutput struct {
	// Replacements maps original ids to their final ids, changed ids only
	Replacements entities.ReplacementMap `json:"replacements"`
	// Chains holds the ids visited for each replaced talent, original first
	Chains map[int][]int `json:"chains"`
}
