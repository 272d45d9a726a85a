package sheet

// EntityType is the core.Entity type for a character sheet
const EntityType = "character"

// AttunementSlots is the fixed number of attunement slots on a sheet
const AttunementSlots = 3

// MaxDeathSaves is the number of marks in each death save track
const MaxDeathSaves = 3

// Character is the sheet document. It is saved and loaded as a whole.
type Character struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Class    string `json:"class"`
	Subclass string `json:"subclass,omitempty"`
	Species  string `json:"species,omitempty"`
	Level    int    `json:"level"`

	Stats  map[Ability]int             `json:"stats"`
	Skills map[string]ProficiencyLevel `json:"skills"`

	MagicBonus            int       `json:"magic_bonus"`
	SpellcastingAttribute Ability   `json:"spellcasting_attribute,omitempty"`
	SpellInfo             SpellInfo `json:"spell_info"`

	HPCurrent   int    `json:"hp_current"`
	HPMax       int    `json:"hp_max"`
	ArmorClass  int    `json:"armor_class"`
	Initiative  int    `json:"initiative"`
	Speed       int    `json:"speed"`
	Size        string `json:"size,omitempty"`
	HitDice     string `json:"hit_dice,omitempty"`
	HitDiceType string `json:"hit_dice_type,omitempty"`
	Equipment   string `json:"equipment,omitempty"`

	Inventory   []*Item       `json:"inventory"`
	Weapons     []*Weapon     `json:"weapons"`
	Spells      []*Spell      `json:"spells"`
	Feats       []*Feat       `json:"feats"`
	Invocations []*Invocation `json:"invocations"`
	Languages   []string      `json:"languages"`

	Coins      Coins      `json:"coins"`
	Attunement []string   `json:"attunement"`
	DeathSaves DeathSaves `json:"death_saves"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// SpellInfo is the spellcasting block of the sheet
type SpellInfo struct {
	Ability Ability    `json:"ability,omitempty"`
	Slots   SpellSlots `json:"slots"`
}

// Coins is the coin purse
type Coins struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// CoinTypes lists the purse denominations from lowest to highest
func CoinTypes() []string {
	return []string{"cp", "sp", "ep", "gp", "pp"}
}

// Set updates one denomination. Unknown types return false.
func (c *Coins) Set(coinType string, value int) bool {
	switch coinType {
	case "cp":
		c.CP = value
	case "sp":
		c.SP = value
	case "ep":
		c.EP = value
	case "gp":
		c.GP = value
	case "pp":
		c.PP = value
	default:
		return false
	}
	return true
}

// DeathSaves tracks death saving throw marks
type DeathSaves struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// GetID implements core.Entity
func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Character) GetType() string { return EntityType }

// HasInventoryItem reports whether an inventory entry is named name
func (c *Character) HasInventoryItem(name string) bool {
	for _, item := range c.Inventory {
		if item != nil && item.Name == name {
			return true
		}
	}
	return false
}

// Entries returns the named entries of a category, in list order. Languages
// are not entries and return nil.
func (c *Character) Entries(category Category) []Entry {
	var out []Entry
	switch category {
	case CategoryItem:
		for _, e := range c.Inventory {
			out = append(out, e)
		}
	case CategoryWeapon:
		for _, e := range c.Weapons {
			out = append(out, e)
		}
	case CategorySpell:
		for _, e := range c.Spells {
			out = append(out, e)
		}
	case CategoryFeat:
		for _, e := range c.Feats {
			out = append(out, e)
		}
	case CategoryInvocation:
		for _, e := range c.Invocations {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy of the document
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c

	if c.Stats != nil {
		out.Stats = make(map[Ability]int, len(c.Stats))
		for k, v := range c.Stats {
			out.Stats[k] = v
		}
	}
	if c.Skills != nil {
		out.Skills = make(map[string]ProficiencyLevel, len(c.Skills))
		for k, v := range c.Skills {
			out.Skills[k] = v
		}
	}
	out.SpellInfo.Slots = c.SpellInfo.Slots.Clone()

	out.Inventory = cloneList(c.Inventory)
	out.Weapons = cloneWeapons(c.Weapons)
	out.Spells = cloneSpells(c.Spells)
	out.Feats = cloneList(c.Feats)
	out.Invocations = cloneList(c.Invocations)
	if c.Languages != nil {
		out.Languages = append([]string{}, c.Languages...)
	}
	if c.Attunement != nil {
		out.Attunement = append([]string{}, c.Attunement...)
	}

	return &out
}

func cloneList[T any](in []*T) []*T {
	if in == nil {
		return nil
	}
	out := make([]*T, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		cp := *v
		out[i] = &cp
	}
	return out
}

func cloneAction(a Action) Action {
	if a.Proficient != nil {
		p := *a.Proficient
		a.Proficient = &p
	}
	return a
}

func cloneWeapons(in []*Weapon) []*Weapon {
	out := cloneList(in)
	for _, w := range out {
		if w != nil {
			w.Action = cloneAction(w.Action)
		}
	}
	return out
}

func cloneSpells(in []*Spell) []*Spell {
	out := cloneList(in)
	for _, s := range out {
		if s != nil {
			s.Action = cloneAction(s.Action)
		}
	}
	return out
}
