package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (s *NormalizeTestSuite) TestFillsDefaults() {
	out, issues := sheet.Normalize(&sheet.Character{Name: "Bare"})

	s.Equal(1, out.Level)
	s.Len(out.Stats, 6)
	for _, a := range sheet.Abilities() {
		s.Equal(sheet.DefaultAbilityScore, out.Stats[a])
	}
	s.NotNil(out.Skills)
	s.NotNil(out.SpellInfo.Slots)
	s.NotNil(out.Inventory)
	s.NotNil(out.Weapons)
	s.NotNil(out.Spells)
	s.NotNil(out.Feats)
	s.NotNil(out.Invocations)
	s.NotNil(out.Languages)
	s.Equal([]string{"", "", ""}, out.Attunement)

	s.True(issues.HasErrors())
	s.Contains(issues.Fields, "level")
	s.Contains(issues.Fields, "stats.str")
}

func (s *NormalizeTestSuite) TestCleanDocumentHasNoIssues() {
	_, issues := sheet.Normalize(sheet.NewCharacter("Clean"))
	s.False(issues.HasErrors(), issues.Error())
}

func (s *NormalizeTestSuite) TestClampsValues() {
	in := sheet.NewCharacter("Messy")
	in.Level = -3
	in.Skills["stealth"] = 7
	in.Skills["arcana"] = -1
	in.SpellInfo.Slots = sheet.SpellSlots{
		"1": {Total: 2, Used: 5},
		"2": {Total: -1, Used: 1},
	}
	in.Attunement = []string{"Ring", "Cloak", "Boots", "Amulet"}
	in.DeathSaves = sheet.DeathSaves{Success: 9, Failure: -2}
	in.SpellcastingAttribute = "luck"

	out, issues := sheet.Normalize(in)

	s.Equal(1, out.Level)
	s.Equal(sheet.ProficiencyExpert, out.Skills["stealth"])
	s.Equal(sheet.ProficiencyNone, out.Skills["arcana"])
	s.Equal(sheet.SpellSlot{Total: 2, Used: 2}, out.SpellInfo.Slots["1"])
	s.Equal(sheet.SpellSlot{Total: 0, Used: 0}, out.SpellInfo.Slots["2"])
	s.Equal([]string{"Ring", "Cloak", "Boots"}, out.Attunement)
	s.Equal(sheet.DeathSaves{Success: 3, Failure: 0}, out.DeathSaves)
	s.Empty(out.SpellcastingAttribute)
	s.True(issues.HasErrors())
}

func (s *NormalizeTestSuite) TestCoercesSaveStatSpells() {
	in := sheet.NewCharacter("Caster")
	in.Spells = []*sheet.Spell{
		{Action: sheet.Action{Name: "Sacred Flame", Type: sheet.EntryTypeSpellAttack}, SaveStat: sheet.AbilityDexterity},
		{Action: sheet.Action{Name: "Eldritch Blast", Type: sheet.EntryTypeSpellAttack}},
	}

	out, _ := sheet.Normalize(in)

	s.Equal(sheet.EntryTypeSpellSave, out.Spells[0].Type)
	s.Equal(sheet.EntryTypeSpellAttack, out.Spells[1].Type)
}

func (s *NormalizeTestSuite) TestClearsUnknownWeaponSaveStat() {
	in := sheet.NewCharacter("Rogue")
	in.Weapons = []*sheet.Weapon{
		{Action: sheet.Action{Name: "Venom Blade"}, SaveStat: sheet.AbilityConstitution},
		{Action: sheet.Action{Name: "Odd Blade"}, SaveStat: "luck"},
	}

	out, issues := sheet.Normalize(in)

	s.Equal(sheet.AbilityConstitution, out.Weapons[0].SaveStat)
	s.Empty(out.Weapons[1].SaveStat)
	s.Contains(issues.Fields, "weapons.1.save_stat")
}

func (s *NormalizeTestSuite) TestDoesNotMutateInput() {
	proficient := false
	in := &sheet.Character{
		Level:  0,
		Stats:  map[sheet.Ability]int{sheet.AbilityStrength: 16},
		Skills: map[string]sheet.ProficiencyLevel{"athletics": 5},
		Weapons: []*sheet.Weapon{
			{Action: sheet.Action{Name: "Club", Stat: "luck", Proficient: &proficient}},
		},
		Spells: []*sheet.Spell{
			{Action: sheet.Action{Name: "Hex", Type: sheet.EntryTypeSpellAttack}, SaveStat: sheet.AbilityWisdom},
		},
		SpellInfo:  sheet.SpellInfo{Slots: sheet.SpellSlots{"1": {Total: 1, Used: 3}}},
		Attunement: []string{"Ring"},
	}

	out, _ := sheet.Normalize(in)

	s.Equal(0, in.Level)
	s.Len(in.Stats, 1)
	s.Equal(sheet.ProficiencyLevel(5), in.Skills["athletics"])
	s.Equal(sheet.Ability("luck"), in.Weapons[0].Stat)
	s.Equal(sheet.EntryTypeSpellAttack, in.Spells[0].Type)
	s.Equal(3, in.SpellInfo.Slots["1"].Used)
	s.Equal([]string{"Ring"}, in.Attunement)

	*out.Weapons[0].Proficient = true
	s.False(*in.Weapons[0].Proficient)
}

func (s *NormalizeTestSuite) TestDropsNilEntries() {
	in := sheet.NewCharacter("Holes")
	in.Inventory = []*sheet.Item{nil, {Name: "Rope"}}

	out, issues := sheet.Normalize(in)

	s.Len(out.Inventory, 1)
	s.Equal("Rope", out.Inventory[0].Name)
	s.Contains(issues.Fields, "inventory.0")
}

func (s *NormalizeTestSuite) TestNilDocument() {
	out, issues := sheet.Normalize(nil)

	s.Require().NotNil(out)
	s.Equal(1, out.Level)
	s.Contains(issues.Fields, "character")
}

func (s *NormalizeTestSuite) TestNewCharacterTemplate() {
	c := sheet.NewCharacter("")

	s.Equal(sheet.DefaultName, c.Name)
	s.Equal("Warlock", c.Class)
	s.Equal(1, c.Level)
	s.Equal(10, c.HPCurrent)
	s.Equal(10, c.HPMax)
	s.Equal(sheet.EntityType, c.GetType())
}

func (s *NormalizeTestSuite) TestEntryVariants() {
	proficient := false
	w := &sheet.Weapon{Action: sheet.Action{Name: "Dagger", Source: "Belt", Proficient: &proficient}}
	sp := &sheet.Spell{Action: sheet.Action{Name: "Guidance"}, Level: sheet.CantripLevel}

	var entries []sheet.Entry = []sheet.Entry{w, sp, &sheet.Feat{Name: "Alert"}}

	s.Equal(sheet.CategoryWeapon, entries[0].Category())
	s.Equal("Belt", entries[0].SourceName())
	s.False(w.IsProficient())
	s.True(sp.IsProficient())
	s.True(sp.IsCantrip())
	s.Equal(sheet.CategoryFeat, entries[2].Category())
}
