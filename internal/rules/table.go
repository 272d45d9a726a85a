// Package rules provides the static skill table the derivation engine reads.
package rules

//go:generate mockgen -destination=mock/mock_table.go -package=rulesmock github.com/KirkDiggler/rpg-sheet/internal/rules Table

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// Skill maps a skill key to its governing ability and display label
type Skill struct {
	Key        string        `yaml:"key"`
	Stat       sheet.Ability `yaml:"stat"`
	PrettyName string        `yaml:"pretty_name"`
}

// Table is the swappable skill rules table
type Table interface {
	// Skills returns every skill in display order.
	Skills() []Skill
	// Skill looks up one skill by key.
	Skill(key string) (Skill, bool)
}

// StaticTable is an in-memory Table
type StaticTable struct {
	skills []Skill
	byKey  map[string]Skill
}

// NewStaticTable builds a table from skills. Missing pretty names are derived
// from the key.
func NewStaticTable(skills []Skill) *StaticTable {
	t := &StaticTable{
		skills: make([]Skill, 0, len(skills)),
		byKey:  make(map[string]Skill, len(skills)),
	}
	for _, sk := range skills {
		if sk.PrettyName == "" {
			sk.PrettyName = PrettyName(sk.Key)
		}
		if _, dup := t.byKey[sk.Key]; dup {
			continue
		}
		t.skills = append(t.skills, sk)
		t.byKey[sk.Key] = sk
	}
	return t
}

// Skills implements Table
func (t *StaticTable) Skills() []Skill {
	out := make([]Skill, len(t.skills))
	copy(out, t.skills)
	return out
}

// Skill implements Table
func (t *StaticTable) Skill(key string) (Skill, bool) {
	sk, ok := t.byKey[key]
	return sk, ok
}

// PrettyName turns a skill key like "sleight_of_hand" into "Sleight Of Hand"
func PrettyName(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// Default returns the standard eighteen-skill table, grouped by ability
func Default() *StaticTable {
	byStat := []struct {
		stat   sheet.Ability
		skills []string
	}{
		{sheet.AbilityStrength, []string{"athletics"}},
		{sheet.AbilityDexterity, []string{"acrobatics", "sleight_of_hand", "stealth"}},
		{sheet.AbilityIntelligence, []string{"arcana", "history", "investigation", "nature", "religion"}},
		{sheet.AbilityWisdom, []string{"animal_handling", "insight", "medicine", "perception", "survival"}},
		{sheet.AbilityCharisma, []string{"deception", "intimidation", "performance", "persuasion"}},
	}

	var skills []Skill
	for _, group := range byStat {
		for _, key := range group.skills {
			skills = append(skills, Skill{Key: key, Stat: group.stat})
		}
	}
	return NewStaticTable(skills)
}
