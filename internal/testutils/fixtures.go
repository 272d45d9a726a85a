package testutils

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Vesper Nightbloom"

// CreateTestWarlock returns a level 5 warlock with a pact weapon, a granted
// spell, and one dangling source reference.
//
// Derived values: pb 3, cha mod +4, global DC 16, global attack +8.
func CreateTestWarlock(id string) *sheet.Character {
	notProficient := false
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName(TestCharacterName).
		WithLevel(5).
		WithStat(sheet.AbilityStrength, 16).
		WithStat(sheet.AbilityCharisma, 18).
		WithStat(sheet.AbilityDexterity, 14).
		WithMagicBonus(1).
		WithSpellAbility(sheet.AbilityCharisma).
		WithSkill("arcana", sheet.ProficiencyProficient).
		WithSkill("deception", sheet.ProficiencyExpert).
		WithSlots("1", 2, 0).
		WithSlots("3", 2, 1).
		WithItem("item-rod", "Rod of the Pact Keeper").
		WithWeapon(&sheet.Weapon{Action: sheet.Action{
			Name: "Pact Greataxe", Type: sheet.EntryTypeWeaponMelee, Stat: sheet.AbilityStrength,
			Damage: "1d12", Proficient: &notProficient,
		}}).
		WithSpell(&sheet.Spell{Action: sheet.Action{
			Name: "Eldritch Blast", Type: sheet.EntryTypeSpellAttack, Stat: sheet.AbilityCharisma,
			Range: "120ft", Damage: "1d10", Source: "Rod of the Pact Keeper",
		}, Level: sheet.CantripLevel}).
		WithSpell(&sheet.Spell{Action: sheet.Action{
			Name: "Hunger of Hadar", Type: sheet.EntryTypeSpellSave, Stat: sheet.AbilityCharisma,
			Source: "Lost Tome",
		}, Level: "3", SaveStat: sheet.AbilityDexterity}).
		WithFeat(&sheet.Feat{Name: "War Caster"}).
		Build()
}
