package sheet

// Category discriminates the entry lists on a sheet
type Category string

// Entry categories
const (
	CategoryItem       Category = "item"
	CategoryWeapon     Category = "weapon"
	CategorySpell      Category = "spell"
	CategoryFeat       Category = "feat"
	CategoryInvocation Category = "invocation"
	CategoryLanguage   Category = "language"
)

// IsValid reports whether c names a known list
func (c Category) IsValid() bool {
	switch c {
	case CategoryItem, CategoryWeapon, CategorySpell, CategoryFeat,
		CategoryInvocation, CategoryLanguage:
		return true
	}
	return false
}

// EntryType is the stored action tag on an entry
type EntryType string

// Entry types
const (
	EntryTypeWeaponMelee EntryType = "weapon_melee"
	EntryTypeWeaponRange EntryType = "weapon_range"
	EntryTypeSpellAttack EntryType = "spell_attack"
	EntryTypeSpellSave   EntryType = "spell_save"
	EntryTypeUtility     EntryType = "utility"
	EntryTypeItem        EntryType = "item"
)

// CantripLevel is the spell level string used for cantrips
const CantripLevel = "0"

// Entry is implemented by every list variant that can be named and sourced
type Entry interface {
	Category() Category
	EntryName() string
	// SourceName is the inventory item this entry is granted by, or "".
	SourceName() string
}

// Action holds the fields weapons and spells share
type Action struct {
	Name   string    `json:"name"`
	Source string    `json:"source,omitempty"`
	Notes  string    `json:"notes,omitempty"`
	Type   EntryType `json:"type,omitempty"`
	Stat   Ability   `json:"stat,omitempty"`
	Range  string    `json:"range,omitempty"`
	Damage string    `json:"damage,omitempty"`
	// Action is the action-economy label, e.g. "Bonus Action".
	Action string `json:"action,omitempty"`
	// Proficient is nil when absent; only an explicit false drops proficiency.
	Proficient *bool `json:"proficient,omitempty"`
}

// IsProficient applies the absent-means-true rule
func (a *Action) IsProficient() bool {
	return a.Proficient == nil || *a.Proficient
}

// Item is an inventory entry
type Item struct {
	ID     string    `json:"id,omitempty"`
	Name   string    `json:"name"`
	Type   EntryType `json:"type,omitempty"`
	Source string    `json:"source,omitempty"`
	Notes  string    `json:"notes,omitempty"`
}

// Category implements Entry
func (i *Item) Category() Category { return CategoryItem }

// EntryName implements Entry
func (i *Item) EntryName() string { return i.Name }

// SourceName implements Entry
func (i *Item) SourceName() string { return i.Source }

// Weapon is an attack entry
type Weapon struct {
	Action
	// SaveStat is the ability a target saves with against the weapon's rider,
	// e.g. a poisoned blade. The weapon still rolls to hit.
	SaveStat Ability `json:"save_stat,omitempty"`
}

// Category implements Entry
func (w *Weapon) Category() Category { return CategoryWeapon }

// EntryName implements Entry
func (w *Weapon) EntryName() string { return w.Name }

// SourceName implements Entry
func (w *Weapon) SourceName() string { return w.Source }

// Spell is a spell entry
type Spell struct {
	Action
	Level    string `json:"level,omitempty"`
	Duration string `json:"duration,omitempty"`
	// SaveStat is the ability the target saves with. When set the spell is a
	// save spell whatever Type says.
	SaveStat Ability `json:"save_stat,omitempty"`
}

// Category implements Entry
func (s *Spell) Category() Category { return CategorySpell }

// EntryName implements Entry
func (s *Spell) EntryName() string { return s.Name }

// SourceName implements Entry
func (s *Spell) SourceName() string { return s.Source }

// EffectiveType is the type used for rolling and display
func (s *Spell) EffectiveType() EntryType {
	if s.SaveStat != "" {
		return EntryTypeSpellSave
	}
	return s.Type
}

// IsCantrip reports whether the spell is level 0
func (s *Spell) IsCantrip() bool {
	return s.Level == CantripLevel
}

// Feat is a feature or feat entry
type Feat struct {
	Name   string `json:"name"`
	Source string `json:"source,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Category implements Entry
func (f *Feat) Category() Category { return CategoryFeat }

// EntryName implements Entry
func (f *Feat) EntryName() string { return f.Name }

// SourceName implements Entry
func (f *Feat) SourceName() string { return f.Source }

// Invocation is a short named ability with a description
type Invocation struct {
	Name string `json:"name"`
	Desc string `json:"desc,omitempty"`
}

// Category implements Entry
func (i *Invocation) Category() Category { return CategoryInvocation }

// EntryName implements Entry
func (i *Invocation) EntryName() string { return i.Name }

// SourceName implements Entry
func (i *Invocation) SourceName() string { return "" }
