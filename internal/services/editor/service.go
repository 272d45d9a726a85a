// Package editor defines the interface for editing a character sheet. Every
// mutation saves the whole document, reloads it and derives a fresh view.
package editor

//go:generate mockgen -destination=mock/mock_service.go -package=editormock github.com/KirkDiggler/rpg-sheet/internal/services/editor Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

// Service defines the interface for sheet editing operations
type Service interface {
	// Launcher
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*SheetOutput, error)
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*SheetOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Whole document
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SheetOutput, error)

	// Field edits
	UpdateStat(ctx context.Context, input *UpdateStatInput) (*SheetOutput, error)
	UpdateSkill(ctx context.Context, input *UpdateSkillInput) (*SheetOutput, error)
	SetNumber(ctx context.Context, input *SetNumberInput) (*SheetOutput, error)
	SetText(ctx context.Context, input *SetTextInput) (*SheetOutput, error)
	UpdateIdentity(ctx context.Context, input *UpdateIdentityInput) (*SheetOutput, error)
	UpdateCoin(ctx context.Context, input *UpdateCoinInput) (*SheetOutput, error)
	UpdateAttunement(ctx context.Context, input *UpdateAttunementInput) (*SheetOutput, error)
	UpdateDeathSaves(ctx context.Context, input *UpdateDeathSavesInput) (*SheetOutput, error)

	// Spell slots
	ToggleSpellSlot(ctx context.Context, input *ToggleSpellSlotInput) (*SheetOutput, error)
	ConfigureSpellSlots(ctx context.Context, input *ConfigureSpellSlotsInput) (*SheetOutput, error)

	// Lists
	UpsertEntry(ctx context.Context, input *UpsertEntryInput) (*SheetOutput, error)
	DeleteEntry(ctx context.Context, input *DeleteEntryInput) (*SheetOutput, error)
	AddLanguage(ctx context.Context, input *AddLanguageInput) (*SheetOutput, error)

	// Rolls
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollOutput, error)
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)

	// Reference data
	ResolveLinks(ctx context.Context, input *ResolveLinksInput) (*ResolveLinksOutput, error)
	LookupSpell(ctx context.Context, input *LookupSpellInput) (*LookupSpellOutput, error)
	LookupWeapon(ctx context.Context, input *LookupWeaponInput) (*LookupWeaponOutput, error)
}

// Sheet is a stored document with everything derived from it
type Sheet struct {
	Character *sheet.Character
	Derived   *engine.DerivedView
	// Issues lists adjustments made while normalizing the stored document,
	// keyed by field path. Empty for a clean document.
	Issues map[string][]string
}

// SheetOutput is returned by every operation that changes the document
type SheetOutput struct {
	Sheet *Sheet
}

// Launcher types

// CreateCharacterInput defines the request for creating a character from the default template
type CreateCharacterInput struct {
	// Name defaults to "New Hero"
	Name string
}

// ImportCharacterInput defines the request for importing an existing document
type ImportCharacterInput struct {
	// Character keeps its ID when set; an ID is generated otherwise
	Character *sheet.Character
}

// ListCharactersInput defines the request for listing stored characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing stored characters
type ListCharactersOutput struct {
	Characters []*characterrepo.Summary
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// Whole document types

// SpellQuery selects and orders the spell list
type SpellQuery struct {
	Search string
	Filter engine.SpellFilter
	Sort   engine.SpellSort
}

// GetSheetInput defines the request for loading a sheet
type GetSheetInput struct {
	CharacterID string
	// Spells is optional; when nil every spell is visible in level order
	Spells *SpellQuery
}

// GetSheetOutput defines the response for loading a sheet
type GetSheetOutput struct {
	Sheet *Sheet
	// VisibleSpells holds stored spell indices in display order
	VisibleSpells []int
}

// SaveCharacterInput defines the request for replacing a whole document
type SaveCharacterInput struct {
	Character *sheet.Character
}

// Field edit types

// UpdateStatInput defines the request for setting an ability score
type UpdateStatInput struct {
	CharacterID string
	Ability     sheet.Ability
	Score       int
}

// UpdateSkillInput defines the request for setting a skill proficiency
type UpdateSkillInput struct {
	CharacterID string
	Skill       string
	Level       sheet.ProficiencyLevel
}

// NumberField names an integer field of the sheet
type NumberField string

// Integer fields editable with SetNumber
const (
	NumberFieldLevel      NumberField = "level"
	NumberFieldMagicBonus NumberField = "magic_bonus"
	NumberFieldHPCurrent  NumberField = "hp_current"
	NumberFieldHPMax      NumberField = "hp_max"
	NumberFieldArmorClass NumberField = "armor_class"
	NumberFieldInitiative NumberField = "initiative"
	NumberFieldSpeed      NumberField = "speed"
)

// NumberFields lists every NumberField
func NumberFields() []string {
	return []string{
		string(NumberFieldLevel), string(NumberFieldMagicBonus), string(NumberFieldHPCurrent),
		string(NumberFieldHPMax), string(NumberFieldArmorClass), string(NumberFieldInitiative),
		string(NumberFieldSpeed),
	}
}

// SetNumberInput defines the request for setting an integer field
type SetNumberInput struct {
	CharacterID string
	Field       NumberField
	Value       int
}

// TextField names a string field of the sheet
type TextField string

// String fields editable with SetText
const (
	TextFieldName                  TextField = "name"
	TextFieldClass                 TextField = "class"
	TextFieldSubclass              TextField = "subclass"
	TextFieldSpecies               TextField = "species"
	TextFieldSize                  TextField = "size"
	TextFieldHitDice               TextField = "hit_dice"
	TextFieldHitDiceType           TextField = "hit_dice_type"
	TextFieldEquipment             TextField = "equipment"
	TextFieldSpellcastingAttribute TextField = "spellcasting_attribute"
)

// TextFields lists every TextField
func TextFields() []string {
	return []string{
		string(TextFieldName), string(TextFieldClass), string(TextFieldSubclass),
		string(TextFieldSpecies), string(TextFieldSize), string(TextFieldHitDice),
		string(TextFieldHitDiceType), string(TextFieldEquipment), string(TextFieldSpellcastingAttribute),
	}
}

// SetTextInput defines the request for setting a string field
type SetTextInput struct {
	CharacterID string
	Field       TextField
	Value       string
}

// UpdateIdentityInput defines the request for the identity block
type UpdateIdentityInput struct {
	CharacterID string
	Name        string
	Class       string
	Subclass    string
	Species     string
}

// UpdateCoinInput defines the request for setting one coin denomination
type UpdateCoinInput struct {
	CharacterID string
	CoinType    string
	Amount      int
}

// UpdateAttunementInput defines the request for setting one attunement slot
type UpdateAttunementInput struct {
	CharacterID string
	Slot        int
	Value       string
}

// UpdateDeathSavesInput defines the request for setting both death save tracks
type UpdateDeathSavesInput struct {
	CharacterID string
	Successes   int
	Failures    int
}

// Spell slot types

// ToggleSpellSlotInput defines the request for clicking a slot bubble
type ToggleSpellSlotInput struct {
	CharacterID string
	Level       string
	Index       int
}

// ConfigureSpellSlotsInput defines the request for replacing the slot table
type ConfigureSpellSlotsInput struct {
	CharacterID string
	// Totals maps spell level to slot count; levels left out are dropped
	Totals map[string]int
}

// List types

// UpsertEntryInput defines the request for adding or replacing a list entry
type UpsertEntryInput struct {
	CharacterID string
	Entry       sheet.Entry
	// Index replaces the entry at that position; nil appends
	Index *int
}

// DeleteEntryInput defines the request for removing a list entry
type DeleteEntryInput struct {
	CharacterID string
	Category    sheet.Category
	Index       int
}

// AddLanguageInput defines the request for adding a language
type AddLanguageInput struct {
	CharacterID string
	Language    string
}

// Roll types

// CheckKind selects what RollCheck rolls
type CheckKind string

// Check kinds
const (
	// CheckKindSave rolls a saving throw; Key is the ability
	CheckKindSave CheckKind = "save"
	// CheckKindSkill rolls a skill check; Key is the skill key
	CheckKindSkill CheckKind = "skill"
	// CheckKindAttack rolls an attack; Key is "weapon" or "spell", Index the entry
	CheckKindAttack CheckKind = "attack"
)

// RollCheckInput defines the request for rolling a derived bonus
type RollCheckInput struct {
	CharacterID string
	Kind        CheckKind
	Key         string
	Index       int
}

// RollInput defines the request for a free d20 roll
type RollInput struct {
	CharacterID string
	Bonus       int
	Label       string
}

// RollOutput defines the response for a roll
type RollOutput struct {
	Roll *rolllog.Entry
	// Summary is the log line, e.g. "Stealth: 17 (d20:12+5)"
	Summary string
}

// GetRollLogInput defines the request for reading the roll log
type GetRollLogInput struct {
	CharacterID string
	Limit       int
}

// GetRollLogOutput defines the response for reading the roll log
type GetRollLogOutput struct {
	Rolls []*rolllog.Entry
}

// ClearRollLogInput defines the request for clearing the roll log
type ClearRollLogInput struct {
	CharacterID string
}

// ClearRollLogOutput defines the response for clearing the roll log
type ClearRollLogOutput struct {
	RollsDeleted int
}

// Reference data types

// ResolveLinksInput defines the request for decorating entries with wiki links
type ResolveLinksInput struct {
	CharacterID string
}

// Link is a wiki page that exists for an entry
type Link struct {
	Category sheet.Category
	Index    int
	Name     string
	URL      string
}

// ResolveLinksOutput defines the response for link decoration. Entries whose
// page is missing or could not be checked are left out.
type ResolveLinksOutput struct {
	Links []*Link
}

// LookupSpellInput defines the request for an SRD spell prefill
type LookupSpellInput struct {
	Name string
}

// LookupSpellOutput defines the response for an SRD spell prefill
type LookupSpellOutput struct {
	Spell *sheet.Spell
}

// LookupWeaponInput defines the request for an SRD weapon prefill
type LookupWeaponInput struct {
	Name string
}

// LookupWeaponOutput defines the response for an SRD weapon prefill
type LookupWeaponOutput struct {
	Weapon *sheet.Weapon
}
