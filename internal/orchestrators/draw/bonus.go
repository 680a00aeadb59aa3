package draw

import (
	"log/slog"
	"slices"

	"github.com/foolchen/lifeRestart/internal/entities"
	"github.com/foolchen/lifeRestart/internal/errors"
)

// bonusTalents resolves the talents a variant injects: its fixed specials
// followed by one random legendary from the undrawn pool
func (o *orchestrator) bonusTalents(variant entities.Variant, legendary []entities.Summary) ([]entities.Summary, error) {
	specialIDs := variant.SpecialIDs()
	if len(specialIDs) == 0 {
		return nil, nil
	}

	bonus := make([]entities.Summary, 0, len(specialIDs)+1)
	for _, id := range specialIDs {
		def, err := o.registry.Get(id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.Warn("Variant special talent is not registered, skipping",
					"variant", variant.String(),
					"talent_id", id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to resolve special talent %d", id)
		}
		bonus = append(bonus, def.Summary())
	}

	candidates := make([]entities.Summary, 0, len(legendary))
	for _, s := range legendary {
		if !slices.Contains(specialIDs, s.ID) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		slog.Warn("No legendary talent left for variant bonus", "variant", variant.String())
		return bonus, nil
	}

	roll, err := o.roller.Roll(len(candidates))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll bonus legendary")
	}
	return append(bonus, candidates[roll-1]), nil
}

// injectBonus writes the variant bonus talents into the hand. A bonus already
// in the hand is skipped; otherwise it replaces the first slot below epic
// grade that does not hold another bonus talent, or is dropped when no such
// slot exists.
func (o *orchestrator) injectBonus(
	hand []entities.Summary,
	legendary []entities.Summary,
	variant entities.Variant,
) ([]entities.Summary, []int, error) {
	bonus, err := o.bonusTalents(variant, legendary)
	if err != nil {
		return nil, nil, err
	}
	if len(bonus) == 0 {
		return hand, nil, nil
	}

	bonusIDs := make([]int, len(bonus))
	for i, b := range bonus {
		bonusIDs[i] = b.ID
	}

	out := slices.Clone(hand)
	var injected []int
	for _, b := range bonus {
		if slices.ContainsFunc(out, func(s entities.Summary) bool { return s.ID == b.ID }) {
			continue
		}

		idx := slices.IndexFunc(out, func(s entities.Summary) bool {
			return s.Grade < entities.GradeEpic && !slices.Contains(bonusIDs, s.ID)
		})
		if idx < 0 {
			continue
		}
		out[idx] = b
		injected = append(injected, b.ID)
	}
	return out, injected, nil
}
