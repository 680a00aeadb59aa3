package engine

import "fmt"

// RateKind names a draw bonus table
type RateKind string

// Rate kinds
const (
	RateKindTimes       RateKind = "times"
	RateKindAchievement RateKind = "achievement"
)

// ParseRateKind validates a rate kind name
func ParseRateKind(s string) (RateKind, error) {
	switch k := RateKind(s); k {
	case RateKindTimes, RateKindAchievement:
		return k, nil
	default:
		return "", fmt.Errorf("unknown rate kind %q", s)
	}
}

// WeightedCandidate is one option for WeightRandom
type WeightedCandidate struct {
	ID     int
	Weight int
}
