package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

// ListCharactersInput is the list_characters tool input
type ListCharactersInput struct{}

// CharacterResult is one stored character
type CharacterResult struct {
	ID    string `json:"id" jsonschema:"character identifier"`
	Name  string `json:"name" jsonschema:"character name"`
	Class string `json:"class" jsonschema:"character class"`
	Level int    `json:"level" jsonschema:"character level"`
}

// ListCharactersResult is the list_characters tool output
type ListCharactersResult struct {
	Characters []CharacterResult `json:"characters" jsonschema:"stored characters"`
}

// ListCharactersTool defines the list_characters tool
func ListCharactersTool() *sdk.Tool {
	return &sdk.Tool{
		Name:        "list_characters",
		Description: "Lists stored character sheets",
	}
}

// ListCharactersHandler lists stored characters
func ListCharactersHandler(svc editorsvc.Service) sdk.ToolHandlerFor[ListCharactersInput, ListCharactersResult] {
	return func(ctx context.Context, _ *sdk.CallToolRequest, _ ListCharactersInput) (*sdk.CallToolResult, ListCharactersResult, error) {
		out, err := svc.ListCharacters(ctx, &editorsvc.ListCharactersInput{})
		if err != nil {
			return nil, ListCharactersResult{}, fmt.Errorf("list characters failed: %w", err)
		}

		result := ListCharactersResult{Characters: make([]CharacterResult, 0, len(out.Characters))}
		for _, c := range out.Characters {
			result.Characters = append(result.Characters, CharacterResult{
				ID:    c.ID,
				Name:  c.Name,
				Class: c.Class,
				Level: c.Level,
			})
		}
		return nil, result, nil
	}
}

// GetSheetInput is the get_sheet tool input
type GetSheetInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// SlotResult is one spell level's slots
type SlotResult struct {
	Level     string `json:"level" jsonschema:"spell level"`
	Total     int    `json:"total" jsonschema:"slots at this level"`
	Used      int    `json:"used" jsonschema:"slots spent"`
	Available int    `json:"available" jsonschema:"slots left"`
}

// EntryResult is one weapon or spell with its derived numbers
type EntryResult struct {
	Index       int    `json:"index" jsonschema:"position in the stored list"`
	Name        string `json:"name" jsonschema:"entry name"`
	AttackBonus *int   `json:"attack_bonus,omitempty" jsonschema:"attack roll bonus"`
	SaveDC      *int   `json:"save_dc,omitempty" jsonschema:"saving throw DC"`
	SaveStat    string `json:"save_stat,omitempty" jsonschema:"ability the target saves with"`
}

// GetSheetResult is the get_sheet tool output
type GetSheetResult struct {
	ID               string         `json:"id" jsonschema:"character identifier"`
	Name             string         `json:"name" jsonschema:"character name"`
	Class            string         `json:"class" jsonschema:"character class"`
	Level            int            `json:"level" jsonschema:"character level"`
	ProficiencyBonus int            `json:"proficiency_bonus" jsonschema:"proficiency bonus"`
	HPCurrent        int            `json:"hp_current" jsonschema:"current hit points"`
	HPMax            int            `json:"hp_max" jsonschema:"maximum hit points"`
	ArmorClass       int            `json:"armor_class" jsonschema:"armor class"`
	Modifiers        map[string]int `json:"modifiers" jsonschema:"ability modifiers by ability key"`
	Saves            map[string]int `json:"saves" jsonschema:"saving throw bonuses by ability key"`
	Skills           map[string]int `json:"skills" jsonschema:"skill bonuses by skill key"`
	SpellSaveDC      int            `json:"spell_save_dc" jsonschema:"sheet-wide spell save DC"`
	SpellAttack      int            `json:"spell_attack" jsonschema:"sheet-wide spell attack bonus"`
	Weapons          []EntryResult  `json:"weapons" jsonschema:"weapons with attack bonuses"`
	Spells           []EntryResult  `json:"spells" jsonschema:"spells with attack bonuses or DCs"`
	SpellSlots       []SlotResult   `json:"spell_slots" jsonschema:"spell slots by level"`
}

// GetSheetTool defines the get_sheet tool
func GetSheetTool() *sdk.Tool {
	return &sdk.Tool{
		Name:        "get_sheet",
		Description: "Returns a character sheet with its derived bonuses",
	}
}

// GetSheetHandler loads and derives a sheet
func GetSheetHandler(svc editorsvc.Service) sdk.ToolHandlerFor[GetSheetInput, GetSheetResult] {
	return func(ctx context.Context, _ *sdk.CallToolRequest, input GetSheetInput) (*sdk.CallToolResult, GetSheetResult, error) {
		out, err := svc.GetSheet(ctx, &editorsvc.GetSheetInput{CharacterID: input.CharacterID})
		if err != nil {
			return nil, GetSheetResult{}, fmt.Errorf("get sheet failed: %w", err)
		}
		return nil, sheetResult(out.Sheet), nil
	}
}

// RollCheckInput is the roll_check tool input
type RollCheckInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Kind        string `json:"kind" jsonschema:"save, skill or attack"`
	Key         string `json:"key" jsonschema:"ability key for saves, skill key for skills, weapon or spell for attacks"`
	Index       int    `json:"index,omitempty" jsonschema:"weapon or spell index for attacks"`
}

// RollResult is the roll_check tool output
type RollResult struct {
	Label   string `json:"label" jsonschema:"what was rolled"`
	D20     int    `json:"d20" jsonschema:"natural d20"`
	Bonus   int    `json:"bonus" jsonschema:"bonus added"`
	Total   int    `json:"total" jsonschema:"d20 plus bonus"`
	Crit    bool   `json:"crit" jsonschema:"natural 20"`
	Fail    bool   `json:"fail" jsonschema:"natural 1"`
	Summary string `json:"summary" jsonschema:"roll log line"`
}

// RollCheckTool defines the roll_check tool
func RollCheckTool() *sdk.Tool {
	return &sdk.Tool{
		Name:        "roll_check",
		Description: "Rolls a d20 save, skill check or attack using the sheet's bonus",
	}
}

// RollCheckHandler rolls a check
func RollCheckHandler(svc editorsvc.Service) sdk.ToolHandlerFor[RollCheckInput, RollResult] {
	return func(ctx context.Context, _ *sdk.CallToolRequest, input RollCheckInput) (*sdk.CallToolResult, RollResult, error) {
		out, err := svc.RollCheck(ctx, &editorsvc.RollCheckInput{
			CharacterID: input.CharacterID,
			Kind:        editorsvc.CheckKind(input.Kind),
			Key:         input.Key,
			Index:       input.Index,
		})
		if err != nil {
			return nil, RollResult{}, fmt.Errorf("roll check failed: %w", err)
		}
		if out.Roll == nil {
			return nil, RollResult{}, fmt.Errorf("roll check response is missing")
		}

		return nil, RollResult{
			Label:   out.Roll.Label,
			D20:     out.Roll.D20,
			Bonus:   out.Roll.Bonus,
			Total:   out.Roll.Total,
			Crit:    out.Roll.Crit,
			Fail:    out.Roll.Fail,
			Summary: dice.Describe(out.Roll),
		}, nil
	}
}

// ToggleSpellSlotInput is the toggle_spell_slot tool input
type ToggleSpellSlotInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Level       string `json:"level" jsonschema:"spell level, 1 to 9"`
	Index       int    `json:"index" jsonschema:"zero-based slot position"`
}

// SpellSlotsResult is the toggle_spell_slot tool output
type SpellSlotsResult struct {
	SpellSlots []SlotResult `json:"spell_slots" jsonschema:"spell slots by level"`
}

// ToggleSpellSlotTool defines the toggle_spell_slot tool
func ToggleSpellSlotTool() *sdk.Tool {
	return &sdk.Tool{
		Name:        "toggle_spell_slot",
		Description: "Marks spell slots used up to a position, or frees the top used slot",
	}
}

// ToggleSpellSlotHandler toggles a slot and returns the updated slots
func ToggleSpellSlotHandler(svc editorsvc.Service) sdk.ToolHandlerFor[ToggleSpellSlotInput, SpellSlotsResult] {
	return func(ctx context.Context, _ *sdk.CallToolRequest, input ToggleSpellSlotInput) (*sdk.CallToolResult, SpellSlotsResult, error) {
		out, err := svc.ToggleSpellSlot(ctx, &editorsvc.ToggleSpellSlotInput{
			CharacterID: input.CharacterID,
			Level:       input.Level,
			Index:       input.Index,
		})
		if err != nil {
			return nil, SpellSlotsResult{}, fmt.Errorf("toggle spell slot failed: %w", err)
		}
		if out.Sheet == nil || out.Sheet.Derived == nil {
			return nil, SpellSlotsResult{}, fmt.Errorf("toggle spell slot response is missing")
		}
		return nil, SpellSlotsResult{SpellSlots: slotResults(out.Sheet.Derived.SpellSlots)}, nil
	}
}

func sheetResult(s *editorsvc.Sheet) GetSheetResult {
	if s == nil || s.Character == nil || s.Derived == nil {
		return GetSheetResult{}
	}
	c, view := s.Character, s.Derived

	result := GetSheetResult{
		ID:               c.ID,
		Name:             c.Name,
		Class:            c.Class,
		Level:            c.Level,
		ProficiencyBonus: view.ProficiencyBonus,
		HPCurrent:        c.HPCurrent,
		HPMax:            c.HPMax,
		ArmorClass:       c.ArmorClass,
		Modifiers:        make(map[string]int, len(view.Modifiers)),
		Saves:            make(map[string]int, len(view.Saves)),
		Skills:           make(map[string]int, len(view.Skills)),
		Weapons:          entryResults(view.Weapons),
		Spells:           entryResults(view.Spells),
		SpellSlots:       slotResults(view.SpellSlots),
	}
	for ability, mod := range view.Modifiers {
		result.Modifiers[string(ability)] = mod
	}
	for ability, bonus := range view.Saves {
		result.Saves[string(ability)] = bonus
	}
	for key, skill := range view.Skills {
		result.Skills[key] = skill.Bonus
	}
	if view.Spellcasting != nil {
		result.SpellSaveDC = view.Spellcasting.SaveDC
		result.SpellAttack = view.Spellcasting.AttackBonus
	}
	return result
}

func entryResults(views []*engine.EntryView) []EntryResult {
	out := make([]EntryResult, 0, len(views))
	for _, v := range views {
		out = append(out, EntryResult{
			Index:       v.Index,
			Name:        v.Name,
			AttackBonus: v.AttackBonus,
			SaveDC:      v.SaveDC,
			SaveStat:    string(v.SaveStat),
		})
	}
	return out
}

func slotResults(views []*engine.SlotView) []SlotResult {
	out := make([]SlotResult, 0, len(views))
	for _, v := range views {
		out = append(out, SlotResult{
			Level:     v.Level,
			Total:     v.Total,
			Used:      v.Used,
			Available: v.Available,
		})
	}
	return out
}
