package sheet

// Default values for a freshly created sheet
const (
	DefaultName  = "New Hero"
	DefaultClass = "Warlock"
	DefaultHP    = 10
)

// NewCharacter returns a level 1 sheet with neutral stats. An empty name uses
// DefaultName.
func NewCharacter(name string) *Character {
	if name == "" {
		name = DefaultName
	}

	stats := make(map[Ability]int, len(Abilities()))
	for _, a := range Abilities() {
		stats[a] = DefaultAbilityScore
	}

	return &Character{
		Name:        name,
		Class:       DefaultClass,
		Level:       1,
		Stats:       stats,
		Skills:      make(map[string]ProficiencyLevel),
		SpellInfo:   SpellInfo{Slots: make(SpellSlots)},
		HPCurrent:   DefaultHP,
		HPMax:       DefaultHP,
		Inventory:   []*Item{},
		Weapons:     []*Weapon{},
		Spells:      []*Spell{},
		Feats:       []*Feat{},
		Invocations: []*Invocation{},
		Languages:   []string{},
		Attunement:  make([]string, AttunementSlots),
	}
}
