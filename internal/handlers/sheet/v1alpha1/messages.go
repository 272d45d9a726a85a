package v1alpha1

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

// Sheet is a stored document with its derived view
type Sheet struct {
	Character *sheet.Character   `json:"character"`
	Derived   *engine.DerivedView `json:"derived"`
	Issues    map[string][]string `json:"issues,omitempty"`
}

// SheetResponse is returned by every RPC that changes the document
type SheetResponse struct {
	Sheet *Sheet `json:"sheet"`
}

// CharacterSummary is one launcher row
type CharacterSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Level     int    `json:"level"`
	UpdatedAt int64  `json:"updated_at"`
}

// CreateCharacterRequest starts a character from the template; an empty name uses the default
type CreateCharacterRequest struct {
	Name string `json:"name,omitempty"`
}

// ImportCharacterRequest stores an uploaded document under a new ID
type ImportCharacterRequest struct {
	Character *sheet.Character `json:"character"`
}

// ListCharactersRequest has no fields; every stored character is listed
type ListCharactersRequest struct{}

// ListCharactersResponse holds launcher rows ordered by name
type ListCharactersResponse struct {
	Characters []*CharacterSummary `json:"characters"`
}

// DeleteCharacterRequest names the character to remove along with its roll log
type DeleteCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// DeleteCharacterResponse is empty on success
type DeleteCharacterResponse struct{}

// GetSheetRequest loads a sheet with optional spell list search, filter and sort
type GetSheetRequest struct {
	CharacterID string             `json:"character_id"`
	SpellSearch string             `json:"spell_search,omitempty"`
	SpellFilter engine.SpellFilter `json:"spell_filter,omitempty"`
	SpellSort   engine.SpellSort   `json:"spell_sort,omitempty"`
}

// GetSheetResponse is the sheet plus the visible spell order
type GetSheetResponse struct {
	Sheet *Sheet `json:"sheet"`
	// VisibleSpells holds stored spell indices in display order
	VisibleSpells []int `json:"visible_spells"`
}

// SaveCharacterRequest replaces a stored document wholesale
type SaveCharacterRequest struct {
	Character *sheet.Character `json:"character"`
}

// UpdateStatRequest sets one ability score
type UpdateStatRequest struct {
	CharacterID string        `json:"character_id"`
	Ability     sheet.Ability `json:"ability"`
	Score       int           `json:"score"`
}

// UpdateSkillRequest sets a skill's proficiency level
type UpdateSkillRequest struct {
	CharacterID string                 `json:"character_id"`
	Skill       string                 `json:"skill"`
	Level       sheet.ProficiencyLevel `json:"level"`
}

// SetNumberRequest sets a whitelisted numeric field
type SetNumberRequest struct {
	CharacterID string `json:"character_id"`
	Field       string `json:"field"`
	Value       int    `json:"value"`
}

// SetTextRequest sets a whitelisted text field
type SetTextRequest struct {
	CharacterID string `json:"character_id"`
	Field       string `json:"field"`
	Value       string `json:"value"`
}

// UpdateIdentityRequest replaces the name, class, subclass and species together
type UpdateIdentityRequest struct {
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Class       string `json:"class"`
	Subclass    string `json:"subclass"`
	Species     string `json:"species"`
}

// UpdateCoinRequest sets the amount of one coin type
type UpdateCoinRequest struct {
	CharacterID string `json:"character_id"`
	CoinType    string `json:"coin_type"`
	Amount      int    `json:"amount"`
}

// UpdateAttunementRequest writes one attunement slot
type UpdateAttunementRequest struct {
	CharacterID string `json:"character_id"`
	Slot        int    `json:"slot"`
	Value       string `json:"value"`
}

// UpdateDeathSavesRequest sets both death save counters
type UpdateDeathSavesRequest struct {
	CharacterID string `json:"character_id"`
	Successes   int    `json:"successes"`
	Failures    int    `json:"failures"`
}

// ToggleSpellSlotRequest flips one pip of a slot level
type ToggleSpellSlotRequest struct {
	CharacterID string `json:"character_id"`
	Level       string `json:"level"`
	Index       int    `json:"index"`
}

// ConfigureSpellSlotsRequest sets slot totals per level
type ConfigureSpellSlotsRequest struct {
	CharacterID string         `json:"character_id"`
	Totals      map[string]int `json:"totals"`
}

// UpsertEntryRequest carries exactly one entry, in the field matching Category
type UpsertEntryRequest struct {
	CharacterID string         `json:"character_id"`
	Category    sheet.Category `json:"category"`
	// Index replaces the entry at that position; absent appends
	Index *int `json:"index,omitempty"`

	Item       *sheet.Item       `json:"item,omitempty"`
	Weapon     *sheet.Weapon     `json:"weapon,omitempty"`
	Spell      *sheet.Spell      `json:"spell,omitempty"`
	Feat       *sheet.Feat       `json:"feat,omitempty"`
	Invocation *sheet.Invocation `json:"invocation,omitempty"`
}

// DeleteEntryRequest removes an entry by list and index
type DeleteEntryRequest struct {
	CharacterID string         `json:"character_id"`
	Category    sheet.Category `json:"category"`
	Index       int            `json:"index"`
}

// AddLanguageRequest appends a language
type AddLanguageRequest struct {
	CharacterID string `json:"character_id"`
	Language    string `json:"language"`
}

// RollCheckRequest rolls a d20 against a derived bonus
type RollCheckRequest struct {
	CharacterID string `json:"character_id"`
	// Kind is save, skill or attack
	Kind  string `json:"kind"`
	Key   string `json:"key"`
	Index int    `json:"index,omitempty"`
}

// RollRequest rolls a d20 with a caller supplied bonus
type RollRequest struct {
	CharacterID string `json:"character_id"`
	Bonus       int    `json:"bonus"`
	Label       string `json:"label,omitempty"`
}

// RollResponse is the logged roll and its display line
type RollResponse struct {
	Roll    *rolllog.Entry `json:"roll"`
	Summary string         `json:"summary"`
}

// GetRollLogRequest reads the most recent rolls, newest first
type GetRollLogRequest struct {
	CharacterID string `json:"character_id"`
	Limit       int    `json:"limit,omitempty"`
}

// GetRollLogResponse holds the requested rolls
type GetRollLogResponse struct {
	Rolls []*rolllog.Entry `json:"rolls"`
}

// ClearRollLogRequest empties a character's roll log
type ClearRollLogRequest struct {
	CharacterID string `json:"character_id"`
}

// ClearRollLogResponse reports how many rolls were removed
type ClearRollLogResponse struct {
	RollsDeleted int `json:"rolls_deleted"`
}

// ResolveLinksRequest asks which entries have wiki pages
type ResolveLinksRequest struct {
	CharacterID string `json:"character_id"`
}

// Link is a wiki page that exists for an entry
type Link struct {
	Category sheet.Category `json:"category"`
	Index    int            `json:"index"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
}

// ResolveLinksResponse lists the entries with pages
type ResolveLinksResponse struct {
	Links []*Link `json:"links"`
}

// LookupSpellRequest fetches an SRD spell by name
type LookupSpellRequest struct {
	Name string `json:"name"`
}

// LookupSpellResponse is a pre-filled spell entry
type LookupSpellResponse struct {
	Spell *sheet.Spell `json:"spell"`
}

// LookupWeaponRequest fetches an SRD weapon by name
type LookupWeaponRequest struct {
	Name string `json:"name"`
}

// LookupWeaponResponse is a pre-filled weapon entry
type LookupWeaponResponse struct {
	Weapon *sheet.Weapon `json:"weapon"`
}
