package derive_test

import (
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func spellList() []*sheet.Spell {
	return []*sheet.Spell{
		{Action: sheet.Action{Name: "Hex"}, Level: "1"},
		{Action: sheet.Action{Name: "Eldritch Blast"}, Level: "0"},
		{Action: sheet.Action{Name: "Hunger of Hadar"}, Level: "3"},
		{Action: sheet.Action{Name: "armor of Agathys"}, Level: "1"},
		{Action: sheet.Action{Name: "Minor Illusion"}, Level: "0"},
	}
}

func names(out *engine.FilterSpellsOutput) []string {
	result := make([]string, len(out.Spells))
	for i, s := range out.Spells {
		result[i] = s.Spell.Name
	}
	return result
}

func (s *DeriveTestSuite) TestFilterSpellsDefaultOrder() {
	out, err := s.engine.FilterSpells(&engine.FilterSpellsInput{Spells: spellList()})
	s.Require().NoError(err)

	s.Equal([]string{
		"Eldritch Blast", "Minor Illusion", "armor of Agathys", "Hex", "Hunger of Hadar",
	}, names(out))
	s.Equal(1, out.Spells[0].Index)
	s.Equal(2, out.Spells[4].Index)
}

func (s *DeriveTestSuite) TestFilterSpells() {
	testCases := []struct {
		name     string
		input    *engine.FilterSpellsInput
		expected []string
	}{
		{
			name:     "cantrips only",
			input:    &engine.FilterSpellsInput{Filter: engine.SpellFilterCantrip},
			expected: []string{"Eldritch Blast", "Minor Illusion"},
		},
		{
			name:     "leveled descending",
			input:    &engine.FilterSpellsInput{Filter: engine.SpellFilterLeveled, Sort: engine.SpellSortLevelDesc},
			expected: []string{"Hunger of Hadar", "armor of Agathys", "Hex"},
		},
		{
			name:     "by name",
			input:    &engine.FilterSpellsInput{Sort: engine.SpellSortName},
			expected: []string{"armor of Agathys", "Eldritch Blast", "Hex", "Hunger of Hadar", "Minor Illusion"},
		},
		{
			name:     "search is case insensitive",
			input:    &engine.FilterSpellsInput{Search: "OF"},
			expected: []string{"armor of Agathys", "Hunger of Hadar"},
		},
		{
			name:     "no match",
			input:    &engine.FilterSpellsInput{Search: "wish"},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.input.Spells = spellList()
			out, err := s.engine.FilterSpells(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, names(out))
		})
	}
}

func (s *DeriveTestSuite) TestFilterSpellsInvalid() {
	_, err := s.engine.FilterSpells(&engine.FilterSpellsInput{Sort: "random"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.FilterSpells(nil)
	s.True(errors.IsInvalidArgument(err))
}
