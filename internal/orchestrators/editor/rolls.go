package editor

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

// Attack sources for CheckKindAttack
const (
	attackKeyWeapon = "weapon"
	attackKeySpell  = "spell"
)

// RollCheck rolls a d20 against a derived bonus of the sheet
func (o *Orchestrator) RollCheck(ctx context.Context, input *editorsvc.RollCheckInput) (*editorsvc.RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	s, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	label, bonus, err := checkBonus(s.Derived, input)
	if err != nil {
		return nil, err
	}

	return o.roll(ctx, s.Character, bonus, label)
}

// Roll rolls a free d20 for the character
func (o *Orchestrator) Roll(ctx context.Context, input *editorsvc.RollInput) (*editorsvc.RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", input.CharacterID)
	}

	return o.roll(ctx, got.Character, input.Bonus, input.Label)
}

// GetRollLog returns the character's recent rolls, newest first
func (o *Orchestrator) GetRollLog(ctx context.Context, input *editorsvc.GetRollLogInput) (*editorsvc.GetRollLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.diceService.GetRollLog(ctx, &dice.GetRollLogInput{
		EntityID: input.CharacterID,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roll log")
	}

	return &editorsvc.GetRollLogOutput{Rolls: out.Rolls}, nil
}

// ClearRollLog empties the character's roll log
func (o *Orchestrator) ClearRollLog(ctx context.Context, input *editorsvc.ClearRollLogInput) (*editorsvc.ClearRollLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.diceService.ClearRollLog(ctx, &dice.ClearRollLogInput{EntityID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear roll log")
	}

	return &editorsvc.ClearRollLogOutput{RollsDeleted: out.RollsDeleted}, nil
}

func (o *Orchestrator) roll(ctx context.Context, c *sheet.Character, bonus int, label string) (*editorsvc.RollOutput, error) {
	out, err := o.diceService.Roll(ctx, &dice.RollInput{
		Owner: c,
		Bonus: bonus,
		Label: label,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll").
			WithMeta("character_id", c.ID)
	}

	return &editorsvc.RollOutput{
		Roll:    out.Roll,
		Summary: dice.Describe(out.Roll),
	}, nil
}

// checkBonus picks the label and bonus for a check from the derived view
func checkBonus(view *engine.DerivedView, input *editorsvc.RollCheckInput) (string, int, error) {
	switch input.Kind {
	case editorsvc.CheckKindSave:
		ability, ok := sheet.ParseAbility(input.Key)
		if !ok {
			return "", 0, errors.InvalidArgumentf("unknown ability %q", input.Key)
		}
		return ability.Abbrev() + " Save", view.Saves[ability], nil

	case editorsvc.CheckKindSkill:
		skill, ok := view.Skills[input.Key]
		if !ok {
			return "", 0, errors.InvalidArgumentf("unknown skill %q", input.Key)
		}
		return skill.PrettyName, skill.Bonus, nil

	case editorsvc.CheckKindAttack:
		var entries []*engine.EntryView
		switch input.Key {
		case attackKeyWeapon:
			entries = view.Weapons
		case attackKeySpell:
			entries = view.Spells
		default:
			return "", 0, errors.InvalidArgumentf("attack key must be %q or %q", attackKeyWeapon, attackKeySpell)
		}
		for _, e := range entries {
			if e.Index != input.Index {
				continue
			}
			if e.AttackBonus == nil {
				return "", 0, errors.FailedPrecondition(e.Name + " has no attack roll")
			}
			return e.Name + " Attack", *e.AttackBonus, nil
		}
		return "", 0, indexError(input.Index, len(entries))
	}

	return "", 0, errors.InvalidArgumentf("unknown check kind %q", input.Kind)
}
