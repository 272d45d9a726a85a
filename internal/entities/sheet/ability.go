// Package sheet holds the character sheet document and the rules that keep it
// consistent between edits.
package sheet

import (
	"strings"
)

// Ability is one of the six ability score keys
type Ability string

// Ability keys as stored in the document
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// DefaultAbilityScore is the score substituted for a missing ability. It
// yields a modifier of 0.
const DefaultAbilityScore = 10

// Abilities returns the ability keys in sheet order
func Abilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// IsValid reports whether a is one of the six ability keys
func (a Ability) IsValid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// Abbrev is the upper-case label used in roll labels, e.g. "STR"
func (a Ability) Abbrev() string {
	return strings.ToUpper(string(a))
}

// ParseAbility accepts a key in any case. Unknown values return false.
func ParseAbility(s string) (Ability, bool) {
	a := Ability(strings.ToLower(strings.TrimSpace(s)))
	return a, a.IsValid()
}

// AbilityStrings lists the ability keys as plain strings, for enum validation
func AbilityStrings() []string {
	abilities := Abilities()
	out := make([]string, len(abilities))
	for i, a := range abilities {
		out[i] = string(a)
	}
	return out
}
