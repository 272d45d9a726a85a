package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// DeriveSheetInput contains the character to derive from
type DeriveSheetInput struct {
	Character *sheet.Character
}

// DeriveSheetOutput contains the derived view
type DeriveSheetOutput struct {
	View *DerivedView
}

// DerivedView is everything the sheet shows that is not stored
type DerivedView struct {
	ProficiencyBonus int                   `json:"proficiency_bonus"`
	Modifiers        map[sheet.Ability]int `json:"modifiers"`
	Saves            map[sheet.Ability]int `json:"saves"`
	Skills           map[string]*SkillView `json:"skills"`
	Spellcasting     *SpellcastingView     `json:"spellcasting"`

	Inventory []*EntryView `json:"inventory"`
	Weapons   []*EntryView `json:"weapons"`
	Spells    []*EntryView `json:"spells"`
	Feats     []*EntryView `json:"feats"`

	SpellSlots []*SlotView     `json:"spell_slots"`
	Attunement *AttunementView `json:"attunement"`
	HitPoints  *HitPointsView  `json:"hit_points"`
	HitDice    string          `json:"hit_dice"`
}

// SkillView is one derived skill bonus
type SkillView struct {
	Key        string                 `json:"key"`
	Stat       sheet.Ability          `json:"stat"`
	PrettyName string                 `json:"pretty_name"`
	ProfLevel  sheet.ProficiencyLevel `json:"prof_level"`
	Bonus      int                    `json:"bonus"`
}

// SpellcastingView is the sheet-wide spellcasting dashboard
type SpellcastingView struct {
	Ability         sheet.Ability `json:"ability"`
	AbilityModifier int           `json:"ability_modifier"`
	SaveDC          int           `json:"save_dc"`
	AttackBonus     int           `json:"attack_bonus"`
}

// EntryView is the derived state of one list entry. Index is the position in
// the stored list, which stays stable under filtering.
type EntryView struct {
	Index         int             `json:"index"`
	Category      sheet.Category  `json:"category"`
	Name          string          `json:"name"`
	EffectiveType sheet.EntryType `json:"effective_type,omitempty"`
	AttackBonus   *int            `json:"attack_bonus,omitempty"`
	SaveDC        *int            `json:"save_dc,omitempty"`
	SaveStat      sheet.Ability   `json:"save_stat,omitempty"`

	// Via names the inventory item granting this entry when it resolves.
	Via string `json:"via,omitempty"`
	// SourceMissing is set when source names no inventory item.
	SourceMissing bool `json:"source_missing,omitempty"`

	LevelBadge  string `json:"level_badge,omitempty"`
	Range       string `json:"range,omitempty"`
	Duration    string `json:"duration,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`
}

// SlotView is one spell level's slot accounting
type SlotView struct {
	Level     string `json:"level"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
}

// AttunementView counts filled attunement slots
type AttunementView struct {
	Slots []string `json:"slots"`
	Used  int      `json:"used"`
	Max   int      `json:"max"`
	Full  bool     `json:"full"`
}

// HitPointsView carries current and max hit points with the bloodied flag
type HitPointsView struct {
	Current  int  `json:"current"`
	Max      int  `json:"max"`
	Bloodied bool `json:"bloodied"`
}

// SpellFilter selects spells by level
type SpellFilter string

// Spell filters
const (
	SpellFilterAll     SpellFilter = "all"
	SpellFilterCantrip SpellFilter = "cantrip"
	SpellFilterLeveled SpellFilter = "leveled"
)

// SpellSort orders the spell list
type SpellSort string

// Spell sort orders
const (
	SpellSortName      SpellSort = "name"
	SpellSortLevelAsc  SpellSort = "level_asc"
	SpellSortLevelDesc SpellSort = "level_desc"
)

// FilterSpellsInput selects and orders spells for display
type FilterSpellsInput struct {
	Spells []*sheet.Spell
	// Search is a case-insensitive substring of the spell name.
	Search string
	// Filter defaults to SpellFilterAll.
	Filter SpellFilter
	// Sort defaults to SpellSortLevelAsc.
	Sort SpellSort
}

// FilterSpellsOutput contains the matching spells with their stored indices
type FilterSpellsOutput struct {
	Spells []*IndexedSpell
}

// IndexedSpell pairs a spell with its position in the stored list
type IndexedSpell struct {
	Index int
	Spell *sheet.Spell
}
