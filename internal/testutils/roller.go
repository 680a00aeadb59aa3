package testutils

import (
	"fmt"
	"sync"
)

// CyclingRoller returns 1, 2, 3, ... wrapping at the die size, so Roll(1000)
// visits every face exactly once per thousand calls
type CyclingRoller struct {
	mu   sync.Mutex
	next int
}

// Roll implements dice.Roller
func (r *CyclingRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.next%size + 1
	r.next++
	return v, nil
}

// RollN implements dice.Roller
func (r *CyclingRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

// ScriptedRoller returns the scripted values in order, clamped to the die
// size. Once the script is exhausted every roll returns 1.
type ScriptedRoller struct {
	mu     sync.Mutex
	Values []int
	Sizes  []int
}

// NewScriptedRoller creates a roller returning values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{Values: values}
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sizes = append(r.Sizes, size)
	if len(r.Values) == 0 {
		return 1, nil
	}
	v := r.Values[0]
	r.Values = r.Values[1:]
	return min(max(v, 1), size), nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	return rollN(r, count, size)
}

func rollN(r interface{ Roll(int) (int, error) }, count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
