package derive

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// FilterSpells narrows and orders a spell list, keeping each spell's stored
// index so edits made from the filtered view hit the right entry.
func (e *Engine) FilterSpells(input *engine.FilterSpellsInput) (*engine.FilterSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	filter := input.Filter
	if filter == "" {
		filter = engine.SpellFilterAll
	}
	order := input.Sort
	if order == "" {
		order = engine.SpellSortLevelAsc
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("filter", string(filter), []string{
		string(engine.SpellFilterAll), string(engine.SpellFilterCantrip), string(engine.SpellFilterLeveled),
	}, vb)
	errors.ValidateEnum("sort", string(order), []string{
		string(engine.SpellSortName), string(engine.SpellSortLevelAsc), string(engine.SpellSortLevelDesc),
	}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	search := strings.ToLower(input.Search)
	out := make([]*engine.IndexedSpell, 0, len(input.Spells))
	for i, s := range input.Spells {
		if s == nil {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(s.Name), search) {
			continue
		}
		if filter == engine.SpellFilterCantrip && !s.IsCantrip() {
			continue
		}
		if filter == engine.SpellFilterLeveled && s.IsCantrip() {
			continue
		}
		out = append(out, &engine.IndexedSpell{Index: i, Spell: s})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Spell, out[j].Spell
		if order != engine.SpellSortName {
			la, lb := spellLevel(a), spellLevel(b)
			if la != lb {
				if order == engine.SpellSortLevelDesc {
					return la > lb
				}
				return la < lb
			}
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	return &engine.FilterSpellsOutput{Spells: out}, nil
}

// spellLevel treats an unparsable level as 0
func spellLevel(s *sheet.Spell) int {
	n, err := strconv.Atoi(s.Level)
	if err != nil {
		return 0
	}
	return n
}
