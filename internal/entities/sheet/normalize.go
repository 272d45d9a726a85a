package sheet

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Normalize returns a copy of c with every default filled and every value
// forced into range, so derivation can assume a fully populated document.
// Each adjustment is recorded in the returned ValidationError; the input is
// never modified.
func Normalize(c *Character) (*Character, *errors.ValidationError) {
	issues := errors.NewValidationError()

	out := c.Clone()
	if out == nil {
		out = &Character{}
		issues.AddFieldError("character", "missing document, using empty sheet")
	}

	if out.Level < 1 {
		issues.AddFieldErrorf("level", "%d is below 1, using 1", out.Level)
		out.Level = 1
	}

	normalizeStats(out, issues)
	normalizeSkills(out, issues)
	normalizeSpellcasting(out, issues)
	normalizeLists(out, issues)
	normalizeAttunement(out, issues)
	normalizeDeathSaves(out, issues)

	return out, issues
}

func normalizeStats(c *Character, issues *errors.ValidationError) {
	if c.Stats == nil {
		c.Stats = make(map[Ability]int, len(Abilities()))
	}
	for key := range c.Stats {
		if !key.IsValid() {
			issues.AddFieldError("stats."+string(key), "unknown ability dropped")
			delete(c.Stats, key)
		}
	}
	for _, a := range Abilities() {
		if _, ok := c.Stats[a]; !ok {
			issues.AddFieldErrorf("stats."+string(a), "missing, using %d", DefaultAbilityScore)
			c.Stats[a] = DefaultAbilityScore
		}
	}
}

func normalizeSkills(c *Character, issues *errors.ValidationError) {
	if c.Skills == nil {
		c.Skills = make(map[string]ProficiencyLevel)
	}
	for key, level := range c.Skills {
		if !level.IsValid() {
			clamped := level.Clamp()
			issues.AddFieldErrorf("skills."+key, "proficiency %d out of range, using %d", level, clamped)
			c.Skills[key] = clamped
		}
	}
}

func normalizeSpellcasting(c *Character, issues *errors.ValidationError) {
	if c.SpellcastingAttribute != "" && !c.SpellcastingAttribute.IsValid() {
		issues.AddFieldErrorf("spellcasting_attribute", "unknown ability %q cleared", c.SpellcastingAttribute)
		c.SpellcastingAttribute = ""
	}
	if c.SpellInfo.Ability != "" && !c.SpellInfo.Ability.IsValid() {
		issues.AddFieldErrorf("spell_info.ability", "unknown ability %q cleared", c.SpellInfo.Ability)
		c.SpellInfo.Ability = ""
	}

	if c.SpellInfo.Slots == nil {
		c.SpellInfo.Slots = make(SpellSlots)
	}
	for level, slot := range c.SpellInfo.Slots {
		field := "spell_info.slots." + level
		if slot.Total < 0 {
			issues.AddFieldErrorf(field, "total %d below 0, using 0", slot.Total)
			slot.Total = 0
		}
		if slot.Used < 0 {
			issues.AddFieldErrorf(field, "used %d below 0, using 0", slot.Used)
			slot.Used = 0
		}
		if slot.Used > slot.Total {
			issues.AddFieldErrorf(field, "used %d exceeds total %d", slot.Used, slot.Total)
			slot.Used = slot.Total
		}
		c.SpellInfo.Slots[level] = slot
	}
}

func normalizeLists(c *Character, issues *errors.ValidationError) {
	c.Inventory = dropNil(c.Inventory, "inventory", issues)
	c.Weapons = dropNil(c.Weapons, "weapons", issues)
	c.Spells = dropNil(c.Spells, "spells", issues)
	c.Feats = dropNil(c.Feats, "feats", issues)
	c.Invocations = dropNil(c.Invocations, "invocations", issues)
	if c.Languages == nil {
		c.Languages = []string{}
	}

	for i, w := range c.Weapons {
		normalizeStat(&w.Action, fmt.Sprintf("weapons.%d.stat", i), issues)
		if w.SaveStat != "" && !w.SaveStat.IsValid() {
			issues.AddFieldErrorf(fmt.Sprintf("weapons.%d.save_stat", i), "unknown ability %q cleared", w.SaveStat)
			w.SaveStat = ""
		}
	}
	for i, s := range c.Spells {
		normalizeStat(&s.Action, fmt.Sprintf("spells.%d.stat", i), issues)
		if s.SaveStat != "" && s.Type == EntryTypeSpellAttack {
			issues.AddFieldErrorf(fmt.Sprintf("spells.%d.type", i), "save_stat set, using %s", EntryTypeSpellSave)
			s.Type = EntryTypeSpellSave
		}
	}
}

func normalizeStat(a *Action, field string, issues *errors.ValidationError) {
	if a.Stat != "" && !a.Stat.IsValid() {
		issues.AddFieldErrorf(field, "unknown ability %q cleared", a.Stat)
		a.Stat = ""
	}
}

func dropNil[T any](in []*T, field string, issues *errors.ValidationError) []*T {
	out := make([]*T, 0, len(in))
	for i, v := range in {
		if v == nil {
			issues.AddFieldError(fmt.Sprintf("%s.%d", field, i), "empty entry dropped")
			continue
		}
		out = append(out, v)
	}
	return out
}

func normalizeAttunement(c *Character, issues *errors.ValidationError) {
	if len(c.Attunement) == AttunementSlots {
		return
	}
	if c.Attunement != nil {
		issues.AddFieldErrorf("attunement", "%d slots, using %d", len(c.Attunement), AttunementSlots)
	}
	slots := make([]string, AttunementSlots)
	copy(slots, c.Attunement)
	c.Attunement = slots
}

func normalizeDeathSaves(c *Character, issues *errors.ValidationError) {
	c.DeathSaves.Success = clampCount(c.DeathSaves.Success, "death_saves.success", issues)
	c.DeathSaves.Failure = clampCount(c.DeathSaves.Failure, "death_saves.failure", issues)
}

func clampCount(v int, field string, issues *errors.ValidationError) int {
	switch {
	case v < 0:
		issues.AddFieldErrorf(field, "%d below 0, using 0", v)
		return 0
	case v > MaxDeathSaves:
		issues.AddFieldErrorf(field, "%d above %d, using %d", v, MaxDeathSaves, MaxDeathSaves)
		return MaxDeathSaves
	}
	return v
}
