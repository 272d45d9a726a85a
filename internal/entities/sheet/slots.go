package sheet

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// SpellSlot tracks used out of total for one spell level
type SpellSlot struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// Available is the number of unused slots
func (s SpellSlot) Available() int {
	return s.Total - s.Used
}

// SpellSlots maps spell level ("1".."9") to its slots
type SpellSlots map[string]SpellSlot

// Levels returns the configured levels in numeric order. Non-numeric keys
// sort after numeric ones, by string.
func (s SpellSlots) Levels() []string {
	levels := make([]string, 0, len(s))
	for level := range s {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		a, aErr := strconv.Atoi(levels[i])
		b, bErr := strconv.Atoi(levels[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		}
		return levels[i] < levels[j]
	})
	return levels
}

// Toggle applies a click on slot index at level: it fills up to and
// including index, or empties index when it is already the top filled slot.
func (s SpellSlots) Toggle(level string, index int) error {
	slot, ok := s[level]
	if !ok {
		return errors.InvalidArgumentf("no spell slots configured for level %s", level).
			WithMeta("level", level)
	}
	if index < 0 || index >= slot.Total {
		return errors.InvalidArgumentf("slot index %d out of range for level %s", index, level).
			WithMeta("level", level).
			WithMeta("index", index)
	}

	if slot.Used == index+1 {
		slot.Used = index
	} else {
		slot.Used = index + 1
	}
	s[level] = slot
	return nil
}

// Reconfigure returns slots holding exactly the levels in totals. Used counts
// carry over, clamped to the new total. Negative totals become 0.
func (s SpellSlots) Reconfigure(totals map[string]int) SpellSlots {
	result := make(SpellSlots, len(totals))
	for level, total := range totals {
		if total < 0 {
			total = 0
		}
		used := s[level].Used
		if used > total {
			used = total
		}
		if used < 0 {
			used = 0
		}
		result[level] = SpellSlot{Total: total, Used: used}
	}
	return result
}

// Clone returns a copy of the slots
func (s SpellSlots) Clone() SpellSlots {
	if s == nil {
		return nil
	}
	out := make(SpellSlots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
