// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *sheet.Character
}

// NewCharacterBuilder starts from the default level 1 sheet
func NewCharacterBuilder() *CharacterBuilder {
	c := sheet.NewCharacter("Test Hero")
	c.ID = "char-test-123"
	return &CharacterBuilder{character: c}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithStat sets one ability score
func (b *CharacterBuilder) WithStat(ability sheet.Ability, score int) *CharacterBuilder {
	b.character.Stats[ability] = score
	return b
}

// WithSkill sets a skill's proficiency level
func (b *CharacterBuilder) WithSkill(key string, level sheet.ProficiencyLevel) *CharacterBuilder {
	b.character.Skills[key] = level
	return b
}

// WithMagicBonus sets the magic bonus
func (b *CharacterBuilder) WithMagicBonus(bonus int) *CharacterBuilder {
	b.character.MagicBonus = bonus
	return b
}

// WithSpellAbility sets spell_info.ability
func (b *CharacterBuilder) WithSpellAbility(ability sheet.Ability) *CharacterBuilder {
	b.character.SpellInfo.Ability = ability
	return b
}

// WithSlots sets total and used for one spell level
func (b *CharacterBuilder) WithSlots(level string, total, used int) *CharacterBuilder {
	b.character.SpellInfo.Slots[level] = sheet.SpellSlot{Total: total, Used: used}
	return b
}

// WithItem appends an inventory item
func (b *CharacterBuilder) WithItem(id, name string) *CharacterBuilder {
	b.character.Inventory = append(b.character.Inventory, &sheet.Item{ID: id, Name: name, Type: sheet.EntryTypeItem})
	return b
}

// WithWeapon appends a weapon
func (b *CharacterBuilder) WithWeapon(w *sheet.Weapon) *CharacterBuilder {
	b.character.Weapons = append(b.character.Weapons, w)
	return b
}

// WithSpell appends a spell
func (b *CharacterBuilder) WithSpell(s *sheet.Spell) *CharacterBuilder {
	b.character.Spells = append(b.character.Spells, s)
	return b
}

// WithFeat appends a feat
func (b *CharacterBuilder) WithFeat(f *sheet.Feat) *CharacterBuilder {
	b.character.Feats = append(b.character.Feats, f)
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *sheet.Character {
	return b.character.Clone()
}
