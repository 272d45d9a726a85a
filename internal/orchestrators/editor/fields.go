package editor

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

const maxSpellLevel = 9

// UpdateStat sets one ability score
func (o *Orchestrator) UpdateStat(ctx context.Context, input *editorsvc.UpdateStatInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("ability", string(input.Ability), sheet.AbilityStrings(), vb)
	if input.Score < 0 {
		vb.Field("score", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.Stats[input.Ability] = input.Score
		return nil
	})
}

// UpdateSkill sets a skill's proficiency level
func (o *Orchestrator) UpdateSkill(ctx context.Context, input *editorsvc.UpdateSkillInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if _, ok := o.rules.Skill(input.Skill); !ok {
		vb.Fieldf("skill", "unknown skill %q", input.Skill)
	}
	errors.ValidateRange("level", int(input.Level),
		int(sheet.ProficiencyNone), int(sheet.ProficiencyExpert), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.Skills[input.Skill] = input.Level
		return nil
	})
}

// SetNumber sets one integer field
func (o *Orchestrator) SetNumber(ctx context.Context, input *editorsvc.SetNumberInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("field", string(input.Field), editorsvc.NumberFields(), vb)
	switch input.Field {
	case editorsvc.NumberFieldLevel:
		if input.Value < 1 {
			vb.Field("value", "level must be at least 1")
		}
	case editorsvc.NumberFieldHPMax, editorsvc.NumberFieldArmorClass, editorsvc.NumberFieldSpeed:
		if input.Value < 0 {
			vb.Field("value", "cannot be negative")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		switch input.Field {
		case editorsvc.NumberFieldLevel:
			c.Level = input.Value
		case editorsvc.NumberFieldMagicBonus:
			c.MagicBonus = input.Value
		case editorsvc.NumberFieldHPCurrent:
			c.HPCurrent = input.Value
		case editorsvc.NumberFieldHPMax:
			c.HPMax = input.Value
		case editorsvc.NumberFieldArmorClass:
			c.ArmorClass = input.Value
		case editorsvc.NumberFieldInitiative:
			c.Initiative = input.Value
		case editorsvc.NumberFieldSpeed:
			c.Speed = input.Value
		}
		return nil
	})
}

// SetText sets one string field
func (o *Orchestrator) SetText(ctx context.Context, input *editorsvc.SetTextInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("field", string(input.Field), editorsvc.TextFields(), vb)

	var spellAbility sheet.Ability
	if input.Field == editorsvc.TextFieldSpellcastingAttribute && input.Value != "" {
		ability, ok := sheet.ParseAbility(input.Value)
		if !ok {
			vb.Fieldf("value", "unknown ability %q", input.Value)
		}
		spellAbility = ability
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		switch input.Field {
		case editorsvc.TextFieldName:
			c.Name = input.Value
		case editorsvc.TextFieldClass:
			c.Class = input.Value
		case editorsvc.TextFieldSubclass:
			c.Subclass = input.Value
		case editorsvc.TextFieldSpecies:
			c.Species = input.Value
		case editorsvc.TextFieldSize:
			c.Size = input.Value
		case editorsvc.TextFieldHitDice:
			c.HitDice = input.Value
		case editorsvc.TextFieldHitDiceType:
			c.HitDiceType = input.Value
		case editorsvc.TextFieldEquipment:
			c.Equipment = input.Value
		case editorsvc.TextFieldSpellcastingAttribute:
			c.SpellcastingAttribute = spellAbility
		}
		return nil
	})
}

// UpdateIdentity sets name, class, subclass and species together
func (o *Orchestrator) UpdateIdentity(ctx context.Context, input *editorsvc.UpdateIdentityInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.Name = input.Name
		c.Class = input.Class
		c.Subclass = input.Subclass
		c.Species = input.Species
		return nil
	})
}

// UpdateCoin sets one coin denomination
func (o *Orchestrator) UpdateCoin(ctx context.Context, input *editorsvc.UpdateCoinInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("coin_type", input.CoinType, sheet.CoinTypes(), vb)
	if input.Amount < 0 {
		vb.Field("amount", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.Coins.Set(input.CoinType, input.Amount)
		return nil
	})
}

// UpdateAttunement sets the label of one attunement slot
func (o *Orchestrator) UpdateAttunement(ctx context.Context, input *editorsvc.UpdateAttunementInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("slot", input.Slot, 0, sheet.AttunementSlots-1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.Attunement[input.Slot] = input.Value
		return nil
	})
}

// UpdateDeathSaves sets both death save tracks
func (o *Orchestrator) UpdateDeathSaves(ctx context.Context, input *editorsvc.UpdateDeathSavesInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("successes", input.Successes, 0, sheet.MaxDeathSaves, vb)
	errors.ValidateRange("failures", input.Failures, 0, sheet.MaxDeathSaves, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.DeathSaves.Success = input.Successes
		c.DeathSaves.Failure = input.Failures
		return nil
	})
}

// ToggleSpellSlot applies a click on one slot bubble
func (o *Orchestrator) ToggleSpellSlot(ctx context.Context, input *editorsvc.ToggleSpellSlotInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		return c.SpellInfo.Slots.Toggle(input.Level, input.Index)
	})
}

// ConfigureSpellSlots replaces the slot table, keeping used counts in range
func (o *Orchestrator) ConfigureSpellSlots(ctx context.Context, input *editorsvc.ConfigureSpellSlotsInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	for level, total := range input.Totals {
		n, err := strconv.Atoi(strings.TrimSpace(level))
		if err != nil || n < 1 || n > maxSpellLevel || strconv.Itoa(n) != level {
			vb.Fieldf("totals."+level, "spell level must be 1 to %d", maxSpellLevel)
		}
		if total < 0 {
			vb.Field("totals."+level, "cannot be negative")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.SpellInfo.Slots = c.SpellInfo.Slots.Reconfigure(input.Totals)
		return nil
	})
}
