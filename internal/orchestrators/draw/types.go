package draw

import (
	"github.com/foolchen/lifeRestart/internal/entities"
)

// Event types published on the event bus
const (
	EventTalentDrawn = "talent.drawn"
)

// DrawTalentsInput defines the request for drawing a hand of talents
type DrawTalentsInput struct {
	// IncludeID forces a talent into slot 0
	IncludeID *int
	// Times is the number of lives already played, fed to the "times" rate table
	Times int
	// Achievement is the achievement count, fed to the "achievement" rate table
	Achievement int
	Variant     entities.Variant
}

// DrawTalentsOutput defines the response for drawing talents
type DrawTalentsOutput struct {
	Draw *entities.Draw `json:"draw"`
	// Injected lists the bonus talent ids written into the hand
	Injected []int `json:"injected"`
}
