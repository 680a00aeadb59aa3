package draw

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
)

// gradeScale is the range a grade roll is drawn from
const gradeScale = 1000

// baseWeights are per-mille odds before bonuses
var baseWeights = map[entities.Grade]float64{
	entities.GradeLegendary: 100,
	entities.GradeEpic:      10,
	entities.GradeRare:      1,
}

// gradeTable holds the boosted weights of grades 1..3; grade 0 takes the rest
type gradeTable map[entities.Grade]float64

// newGradeTable applies the bonus multipliers to the base weights. Each table
// adds (multiplier - 1) to a grade's factor; grades outside 1..3 are ignored.
func newGradeTable(bonuses ...map[entities.Grade]float64) gradeTable {
	addition := map[entities.Grade]float64{
		entities.GradeRare:      1,
		entities.GradeEpic:      1,
		entities.GradeLegendary: 1,
	}
	for _, bonus := range bonuses {
		for g, rate := range bonus {
			if _, ok := addition[g]; !ok {
				continue
			}
			addition[g] += rate - 1
		}
	}

	table := make(gradeTable, len(baseWeights))
	for g, w := range baseWeights {
		table[g] = w * addition[g]
	}
	return table
}

// sample rolls a grade, checking from the rarest down
func (t gradeTable) sample(roller dice.Roller) (entities.Grade, error) {
	roll, err := roller.Roll(gradeScale)
	if err != nil {
		return entities.GradeCommon, errors.Wrap(err, "failed to roll grade")
	}

	n := float64(roll - 1)
	for _, g := range []entities.Grade{entities.GradeLegendary, entities.GradeEpic, entities.GradeRare} {
		if n -= t[g]; n < 0 {
			return g, nil
		}
	}
	return entities.GradeCommon, nil
}
