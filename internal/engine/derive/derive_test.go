package derive_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/derive"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	rulesmock "github.com/KirkDiggler/rpg-sheet/internal/rules/mock"
)

type DeriveTestSuite struct {
	suite.Suite
	engine *derive.Engine
}

func TestDeriveSuite(t *testing.T) {
	suite.Run(t, new(DeriveTestSuite))
}

func (s *DeriveTestSuite) SetupTest() {
	var err error
	s.engine, err = derive.New(&derive.Config{Rules: rules.Default()})
	s.Require().NoError(err)
}

func (s *DeriveTestSuite) derive(c *sheet.Character) *engine.DerivedView {
	normalized, _ := sheet.Normalize(c)
	out, err := s.engine.DeriveSheet(&engine.DeriveSheetInput{Character: normalized})
	s.Require().NoError(err)
	return out.View
}

func (s *DeriveTestSuite) TestNewRequiresRules() {
	_, err := derive.New(&derive.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = derive.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DeriveTestSuite) TestCalculateAbilityModifier() {
	testCases := []struct {
		score    int
		expected int
	}{
		{score: 1, expected: -5},
		{score: 7, expected: -2},
		{score: 8, expected: -1},
		{score: 9, expected: -1},
		{score: 10, expected: 0},
		{score: 11, expected: 0},
		{score: 12, expected: 1},
		{score: 18, expected: 4},
		{score: 20, expected: 5},
		{score: 30, expected: 10},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, s.engine.CalculateAbilityModifier(tc.score), "score %d", tc.score)
	}
}

func (s *DeriveTestSuite) TestAbilityModifierIsFloor() {
	for score := -20; score <= 40; score++ {
		diff := score - 10
		expected := diff / 2
		if diff < 0 && diff%2 != 0 {
			expected--
		}
		s.Equal(expected, s.engine.CalculateAbilityModifier(score), "score %d", score)
		s.LessOrEqual(2*s.engine.CalculateAbilityModifier(score), diff)
	}
}

func (s *DeriveTestSuite) TestCalculateProficiencyBonus() {
	tiers := map[int][2]int{
		2: {1, 4},
		3: {5, 8},
		4: {9, 12},
		5: {13, 16},
		6: {17, 20},
	}
	for bonus, span := range tiers {
		for level := span[0]; level <= span[1]; level++ {
			s.Equal(bonus, s.engine.CalculateProficiencyBonus(level), "level %d", level)
		}
	}
	s.Equal(2, s.engine.CalculateProficiencyBonus(0))
	s.Equal(2, s.engine.CalculateProficiencyBonus(-4))
}

func (s *DeriveTestSuite) TestSkillBonusMonotonic() {
	for level := 1; level <= 20; level++ {
		for score := 1; score <= 30; score++ {
			c := sheet.NewCharacter("Mono")
			c.Level = level
			c.Stats[sheet.AbilityDexterity] = score

			var previous *int
			for _, prof := range []sheet.ProficiencyLevel{
				sheet.ProficiencyNone, sheet.ProficiencyHalf, sheet.ProficiencyProficient, sheet.ProficiencyExpert,
			} {
				c.Skills["stealth"] = prof
				bonus := s.derive(c).Skills["stealth"].Bonus
				if previous != nil {
					s.GreaterOrEqual(bonus, *previous)
				}
				previous = &bonus
			}
		}
	}
}

func (s *DeriveTestSuite) TestSkillBonuses() {
	c := sheet.NewCharacter("Rogue")
	c.Level = 5 // pb 3
	c.Stats[sheet.AbilityDexterity] = 16
	c.Stats[sheet.AbilityWisdom] = 8
	c.Skills["stealth"] = sheet.ProficiencyExpert
	c.Skills["acrobatics"] = sheet.ProficiencyHalf
	c.Skills["perception"] = sheet.ProficiencyProficient

	view := s.derive(c)

	s.Len(view.Skills, 18)
	s.Equal(3+6, view.Skills["stealth"].Bonus)
	s.Equal(3+1, view.Skills["acrobatics"].Bonus)
	s.Equal(3, view.Skills["sleight_of_hand"].Bonus)
	s.Equal(-1+3, view.Skills["perception"].Bonus)
	s.Equal("Sleight Of Hand", view.Skills["sleight_of_hand"].PrettyName)
	s.Equal(sheet.AbilityWisdom, view.Skills["perception"].Stat)
	s.Equal(sheet.ProficiencyExpert, view.Skills["stealth"].ProfLevel)
}

func (s *DeriveTestSuite) TestSkillsFollowRulesTable() {
	ctrl := gomock.NewController(s.T())
	table := rulesmock.NewMockTable(ctrl)
	table.EXPECT().Skills().Return([]rules.Skill{
		{Key: "sailing", Stat: sheet.AbilityWisdom, PrettyName: "Sailing"},
	})

	eng, err := derive.New(&derive.Config{Rules: table})
	s.Require().NoError(err)

	c := sheet.NewCharacter("Sailor")
	c.Stats[sheet.AbilityWisdom] = 14
	c.Skills["sailing"] = sheet.ProficiencyExpert
	normalized, _ := sheet.Normalize(c)

	out, err := eng.DeriveSheet(&engine.DeriveSheetInput{Character: normalized})
	s.Require().NoError(err)

	s.Require().Len(out.View.Skills, 1)
	s.Equal(2+2*2, out.View.Skills["sailing"].Bonus)
	s.Equal("Sailing", out.View.Skills["sailing"].PrettyName)
}

func (s *DeriveTestSuite) TestSpellcastingDashboard() {
	c := sheet.NewCharacter("Warlock")
	c.Level = 5
	c.Stats[sheet.AbilityCharisma] = 18
	c.MagicBonus = 1
	c.SpellInfo.Ability = sheet.AbilityCharisma

	view := s.derive(c)

	s.Equal(3, view.ProficiencyBonus)
	s.Equal(sheet.AbilityCharisma, view.Spellcasting.Ability)
	s.Equal(4, view.Spellcasting.AbilityModifier)
	s.Equal(16, view.Spellcasting.SaveDC)
	s.Equal(8, view.Spellcasting.AttackBonus)
}

func (s *DeriveTestSuite) TestSpellcastingAbilityPrecedence() {
	c := sheet.NewCharacter("Cleric")
	c.Stats[sheet.AbilityWisdom] = 16
	c.Stats[sheet.AbilityIntelligence] = 14

	s.Equal(sheet.AbilityCharisma, s.derive(c).Spellcasting.Ability)

	c.SpellInfo.Ability = sheet.AbilityIntelligence
	s.Equal(sheet.AbilityIntelligence, s.derive(c).Spellcasting.Ability)

	c.SpellcastingAttribute = sheet.AbilityWisdom
	view := s.derive(c)
	s.Equal(sheet.AbilityWisdom, view.Spellcasting.Ability)
	s.Equal(8+2+3, view.Spellcasting.SaveDC)
}

func (s *DeriveTestSuite) TestWeaponWithoutProficiency() {
	proficient := false
	c := sheet.NewCharacter("Fighter")
	c.Level = 5
	c.Stats[sheet.AbilityStrength] = 16
	c.MagicBonus = 2
	c.Weapons = []*sheet.Weapon{
		{Action: sheet.Action{Name: "Greataxe", Stat: sheet.AbilityStrength, Proficient: &proficient}},
		{Action: sheet.Action{Name: "Longsword", Stat: sheet.AbilityStrength, Type: sheet.EntryTypeWeaponMelee}},
	}

	view := s.derive(c)

	s.Require().Len(view.Weapons, 2)
	s.Require().NotNil(view.Weapons[0].AttackBonus)
	s.Equal(3, *view.Weapons[0].AttackBonus, "no proficiency and no magic bonus on weapons")
	s.Equal(6, *view.Weapons[1].AttackBonus)
	s.Equal("Melee", view.Weapons[0].Range)
	s.Equal("Action", view.Weapons[0].ActionLabel)
}

func (s *DeriveTestSuite) TestWeaponWithSaveStat() {
	c := sheet.NewCharacter("Rogue")
	c.Level = 5 // pb 3
	c.Stats[sheet.AbilityDexterity] = 18
	c.MagicBonus = 1
	c.Weapons = []*sheet.Weapon{
		{Action: sheet.Action{Name: "Venom Blade", Stat: sheet.AbilityDexterity}, SaveStat: sheet.AbilityConstitution},
		{Action: sheet.Action{Name: "Net", Type: sheet.EntryTypeWeaponRange}, SaveStat: sheet.AbilityStrength},
		{Action: sheet.Action{Name: "Shortsword", Stat: sheet.AbilityDexterity}},
	}

	view := s.derive(c)
	s.Require().Len(view.Weapons, 3)

	blade := view.Weapons[0]
	s.Require().NotNil(blade.AttackBonus)
	s.Equal(4+3, *blade.AttackBonus, "still rolls to hit")
	s.Require().NotNil(blade.SaveDC)
	s.Equal(8+3+4+1, *blade.SaveDC)
	s.Equal(sheet.AbilityConstitution, blade.SaveStat)

	net := view.Weapons[1]
	s.Require().NotNil(net.SaveDC)
	s.Equal(8+3+0+1, *net.SaveDC, "defaults to charisma")
	s.Equal(sheet.EntryTypeWeaponRange, net.EffectiveType)

	s.Nil(view.Weapons[2].SaveDC)
	s.Empty(view.Weapons[2].SaveStat)
}

func (s *DeriveTestSuite) TestSpellAttackAndSave() {
	c := sheet.NewCharacter("Sorcerer")
	c.Level = 9 // pb 4
	c.Stats[sheet.AbilityCharisma] = 17
	c.Stats[sheet.AbilityIntelligence] = 12
	c.MagicBonus = 1
	c.Spells = []*sheet.Spell{
		{Action: sheet.Action{Name: "Fire Bolt", Type: sheet.EntryTypeSpellAttack, Stat: sheet.AbilityCharisma}, Level: "0"},
		{Action: sheet.Action{Name: "Fireball", Type: sheet.EntryTypeSpellSave, Stat: sheet.AbilityIntelligence}, Level: "3", SaveStat: sheet.AbilityDexterity},
		{Action: sheet.Action{Name: "Hold Person", Type: sheet.EntryTypeSpellSave}, Level: "2", SaveStat: sheet.AbilityWisdom},
		{Action: sheet.Action{Name: "Detect Magic", Type: sheet.EntryTypeUtility}, Level: "1", Duration: "10 min"},
	}

	view := s.derive(c)
	s.Require().Len(view.Spells, 4)

	bolt := view.Spells[0]
	s.Equal(sheet.EntryTypeSpellAttack, bolt.EffectiveType)
	s.Require().NotNil(bolt.AttackBonus)
	s.Equal(3+1+4, *bolt.AttackBonus)
	s.Nil(bolt.SaveDC)
	s.Equal("C", bolt.LevelBadge)

	fireball := view.Spells[1]
	s.Require().NotNil(fireball.SaveDC)
	s.Equal(8+4+1+1, *fireball.SaveDC, "uses the entry's own stat")
	s.Equal(sheet.AbilityDexterity, fireball.SaveStat)
	s.Equal("LVL 3", fireball.LevelBadge)

	hold := view.Spells[2]
	s.Require().NotNil(hold.SaveDC)
	s.Equal(8+4+3+1, *hold.SaveDC, "defaults to charisma")

	detect := view.Spells[3]
	s.Nil(detect.AttackBonus)
	s.Nil(detect.SaveDC)
	s.Equal("10 min", detect.Duration)
	s.Equal("60ft", detect.Range)
}

func (s *DeriveTestSuite) TestSaveStatCoercionWithoutNormalize() {
	c := sheet.NewCharacter("Raw")
	c.Spells = []*sheet.Spell{
		{Action: sheet.Action{Name: "Sacred Flame", Type: sheet.EntryTypeSpellAttack}, SaveStat: sheet.AbilityDexterity},
	}

	out, err := s.engine.DeriveSheet(&engine.DeriveSheetInput{Character: c})
	s.Require().NoError(err)

	flame := out.View.Spells[0]
	s.Equal(sheet.EntryTypeSpellSave, flame.EffectiveType)
	s.Nil(flame.AttackBonus)
	s.Require().NotNil(flame.SaveDC)
	s.Equal(10, *flame.SaveDC)
}

func (s *DeriveTestSuite) TestSourceReferences() {
	c := sheet.NewCharacter("Collector")
	c.Inventory = []*sheet.Item{{ID: "item_1", Name: "Staff of Fire"}}
	c.Spells = []*sheet.Spell{
		{Action: sheet.Action{Name: "Burning Hands", Source: "Staff of Fire"}, Level: "1"},
		{Action: sheet.Action{Name: "Wall of Fire", Source: "Lost Wand"}, Level: "4"},
	}
	c.Feats = []*sheet.Feat{{Name: "Pact Blade", Source: "Sword of Pacts"}}

	view := s.derive(c)

	s.Equal("Staff of Fire", view.Spells[0].Via)
	s.False(view.Spells[0].SourceMissing)
	s.True(view.Spells[1].SourceMissing)
	s.Empty(view.Spells[1].Via)
	s.True(view.Feats[0].SourceMissing)
	s.Equal(1, view.Spells[1].Index)
}

func (s *DeriveTestSuite) TestSlotsAttunementHitPoints() {
	c := sheet.NewCharacter("Paladin")
	c.Level = 6
	c.HitDiceType = "d10"
	c.HPMax = 11
	c.HPCurrent = 5
	c.Attunement = []string{"Ring", "  ", "Cloak"}
	c.SpellInfo.Slots = sheet.SpellSlots{
		"2": {Total: 2, Used: 1},
		"1": {Total: 4, Used: 4},
	}

	view := s.derive(c)

	s.Require().Len(view.SpellSlots, 2)
	s.Equal("1", view.SpellSlots[0].Level)
	s.Equal(0, view.SpellSlots[0].Available)
	s.Equal("2", view.SpellSlots[1].Level)
	s.Equal(1, view.SpellSlots[1].Available)

	s.Equal(2, view.Attunement.Used)
	s.Equal(3, view.Attunement.Max)
	s.False(view.Attunement.Full)

	s.True(view.HitPoints.Bloodied)
	c.HPCurrent = 6
	s.False(s.derive(c).HitPoints.Bloodied)

	c.HPMax, c.HPCurrent = 0, 0
	s.False(s.derive(c).HitPoints.Bloodied, "no max means nothing to be bloodied against")

	s.Equal("6d10", view.HitDice)
	c.HitDice = "5d10"
	s.Equal("5d10", s.derive(c).HitDice)
}

func (s *DeriveTestSuite) TestIdempotentAndPure() {
	proficient := false
	c := sheet.NewCharacter("Stable")
	c.Level = 7
	c.Stats[sheet.AbilityStrength] = 15
	c.Weapons = []*sheet.Weapon{{Action: sheet.Action{Name: "Mace", Stat: sheet.AbilityStrength, Proficient: &proficient}}}
	c.Spells = []*sheet.Spell{{Action: sheet.Action{Name: "Hex", Type: sheet.EntryTypeSpellAttack}, SaveStat: sheet.AbilityWisdom}}
	normalized, _ := sheet.Normalize(c)
	snapshot := normalized.Clone()

	first, err := s.engine.DeriveSheet(&engine.DeriveSheetInput{Character: normalized})
	s.Require().NoError(err)
	second, err := s.engine.DeriveSheet(&engine.DeriveSheetInput{Character: normalized})
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(snapshot, normalized)
}

func (s *DeriveTestSuite) TestDeriveRequiresCharacter() {
	_, err := s.engine.DeriveSheet(&engine.DeriveSheetInput{})
	s.True(errors.IsInvalidArgument(err))
}
