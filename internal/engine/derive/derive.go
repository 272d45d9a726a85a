// Package derive implements engine.Engine over a skill rules table.
package derive

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const (
	baseSaveDC = 8

	defaultSpellRange  = "60ft"
	defaultWeaponRange = "Melee"
	defaultDuration    = "Inst."
	defaultActionLabel = "Action"
	cantripBadge       = "C"
)

var _ engine.Engine = (*Engine)(nil)

// Engine derives sheet statistics
type Engine struct {
	rules rules.Table
}

// Config contains configuration for creating a new Engine
type Config struct {
	Rules rules.Table
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	return vb.Build()
}

// New creates a derivation engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Engine{rules: cfg.Rules}, nil
}

// CalculateAbilityModifier returns floor((score-10)/2), rounding toward
// negative infinity for odd scores below 10.
func (e *Engine) CalculateAbilityModifier(score int) int {
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}

// CalculateProficiencyBonus returns 2 + floor((level-1)/4). Levels below 1
// are treated as level 1.
func (e *Engine) CalculateProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// DeriveSheet computes the derived view of a normalized character
func (e *Engine) DeriveSheet(input *engine.DeriveSheetInput) (*engine.DeriveSheetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c := input.Character
	pb := e.CalculateProficiencyBonus(c.Level)
	mods := e.modifiers(c)

	view := &engine.DerivedView{
		ProficiencyBonus: pb,
		Modifiers:        mods,
		Saves:            e.saves(mods),
		Skills:           e.skills(c, mods, pb),
		Spellcasting:     e.spellcasting(c, mods, pb),
		SpellSlots:       slotViews(c.SpellInfo.Slots),
		Attunement:       attunementView(c.Attunement),
		HitPoints:        hitPointsView(c),
		HitDice:          hitDiceLabel(c),
	}

	sources := make(map[string]bool, len(c.Inventory))
	for _, item := range c.Inventory {
		sources[item.Name] = true
	}

	view.Inventory = make([]*engine.EntryView, 0, len(c.Inventory))
	for i, item := range c.Inventory {
		view.Inventory = append(view.Inventory, baseView(i, item, sources))
	}

	view.Weapons = make([]*engine.EntryView, 0, len(c.Weapons))
	for i, w := range c.Weapons {
		view.Weapons = append(view.Weapons, e.weaponView(i, w, c.MagicBonus, mods, pb, sources))
	}

	view.Spells = make([]*engine.EntryView, 0, len(c.Spells))
	for i, s := range c.Spells {
		view.Spells = append(view.Spells, e.spellView(i, s, c.MagicBonus, mods, pb, sources))
	}

	view.Feats = make([]*engine.EntryView, 0, len(c.Feats))
	for i, f := range c.Feats {
		view.Feats = append(view.Feats, baseView(i, f, sources))
	}

	return &engine.DeriveSheetOutput{View: view}, nil
}

func (e *Engine) modifiers(c *sheet.Character) map[sheet.Ability]int {
	mods := make(map[sheet.Ability]int, len(c.Stats))
	for ability, score := range c.Stats {
		mods[ability] = e.CalculateAbilityModifier(score)
	}
	return mods
}

// saves are the plain ability modifiers; the sheet stores no save proficiency.
func (e *Engine) saves(mods map[sheet.Ability]int) map[sheet.Ability]int {
	saves := make(map[sheet.Ability]int, len(mods))
	for ability, mod := range mods {
		saves[ability] = mod
	}
	return saves
}

func (e *Engine) skills(c *sheet.Character, mods map[sheet.Ability]int, pb int) map[string]*engine.SkillView {
	table := e.rules.Skills()
	out := make(map[string]*engine.SkillView, len(table))
	for _, sk := range table {
		level := c.Skills[sk.Key]
		out[sk.Key] = &engine.SkillView{
			Key:        sk.Key,
			Stat:       sk.Stat,
			PrettyName: sk.PrettyName,
			ProfLevel:  level,
			Bonus:      mods[sk.Stat] + level.Bonus(pb),
		}
	}
	return out
}

// SpellcastingAbility resolves the dashboard ability: the explicit attribute,
// then spell_info.ability, then charisma.
func SpellcastingAbility(c *sheet.Character) sheet.Ability {
	switch {
	case c.SpellcastingAttribute != "":
		return c.SpellcastingAttribute
	case c.SpellInfo.Ability != "":
		return c.SpellInfo.Ability
	}
	return sheet.AbilityCharisma
}

func (e *Engine) spellcasting(c *sheet.Character, mods map[sheet.Ability]int, pb int) *engine.SpellcastingView {
	ability := SpellcastingAbility(c)
	mod := mods[ability]
	return &engine.SpellcastingView{
		Ability:         ability,
		AbilityModifier: mod,
		SaveDC:          baseSaveDC + pb + mod + c.MagicBonus,
		AttackBonus:     pb + mod + c.MagicBonus,
	}
}

func baseView(index int, entry sheet.Entry, sources map[string]bool) *engine.EntryView {
	view := &engine.EntryView{
		Index:    index,
		Category: entry.Category(),
		Name:     entry.EntryName(),
	}
	if src := entry.SourceName(); src != "" {
		if sources[src] {
			view.Via = src
		} else {
			view.SourceMissing = true
		}
	}
	return view
}

// attackBonus is mod[stat] + magic + pb, with pb dropped only on an explicit
// proficient=false.
func attackBonus(a *sheet.Action, magic int, mods map[sheet.Ability]int, pb int) int {
	bonus := mods[a.Stat] + magic
	if a.IsProficient() {
		bonus += pb
	}
	return bonus
}

// saveDC is 8 + pb + mod[stat] + magic, with stat defaulting to charisma.
func saveDC(a *sheet.Action, magic int, mods map[sheet.Ability]int, pb int) int {
	stat := a.Stat
	if stat == "" {
		stat = sheet.AbilityCharisma
	}
	return baseSaveDC + pb + mods[stat] + magic
}

func (e *Engine) weaponView(
	index int, w *sheet.Weapon, magic int, mods map[sheet.Ability]int, pb int, sources map[string]bool,
) *engine.EntryView {
	view := baseView(index, w, sources)
	view.EffectiveType = w.Type
	bonus := attackBonus(&w.Action, 0, mods, pb)
	view.AttackBonus = &bonus
	view.Range = orDefault(w.Range, defaultWeaponRange)
	view.ActionLabel = orDefault(w.Action.Action, defaultActionLabel)
	if w.SaveStat != "" {
		dc := saveDC(&w.Action, magic, mods, pb)
		view.SaveDC = &dc
		view.SaveStat = w.SaveStat
	}
	return view
}

func (e *Engine) spellView(
	index int, s *sheet.Spell, magic int, mods map[sheet.Ability]int, pb int, sources map[string]bool,
) *engine.EntryView {
	view := baseView(index, s, sources)
	view.EffectiveType = s.EffectiveType()
	view.LevelBadge = levelBadge(s.Level)
	view.Range = orDefault(s.Range, defaultSpellRange)
	view.Duration = orDefault(s.Duration, defaultDuration)
	view.ActionLabel = orDefault(s.Action.Action, defaultActionLabel)

	switch view.EffectiveType {
	case sheet.EntryTypeSpellAttack:
		bonus := attackBonus(&s.Action, magic, mods, pb)
		view.AttackBonus = &bonus
	case sheet.EntryTypeSpellSave:
		dc := saveDC(&s.Action, magic, mods, pb)
		view.SaveDC = &dc
		view.SaveStat = s.SaveStat
	}
	return view
}

func levelBadge(level string) string {
	switch level {
	case "":
		return ""
	case sheet.CantripLevel:
		return cantripBadge
	}
	return fmt.Sprintf("LVL %s", level)
}

func slotViews(slots sheet.SpellSlots) []*engine.SlotView {
	levels := slots.Levels()
	out := make([]*engine.SlotView, 0, len(levels))
	for _, level := range levels {
		slot := slots[level]
		out = append(out, &engine.SlotView{
			Level:     level,
			Total:     slot.Total,
			Used:      slot.Used,
			Available: slot.Available(),
		})
	}
	return out
}

func attunementView(slots []string) *engine.AttunementView {
	view := &engine.AttunementView{
		Slots: append([]string{}, slots...),
		Max:   sheet.AttunementSlots,
	}
	for _, s := range slots {
		if strings.TrimSpace(s) != "" {
			view.Used++
		}
	}
	view.Full = view.Used >= view.Max
	return view
}

func hitPointsView(c *sheet.Character) *engine.HitPointsView {
	return &engine.HitPointsView{
		Current: c.HPCurrent,
		Max:     c.HPMax,
		// hp_max/2 is real division: 5 of 11 is bloodied, 6 is not.
		Bloodied: c.HPMax > 0 && c.HPCurrent*2 <= c.HPMax,
	}
}

func hitDiceLabel(c *sheet.Character) string {
	if c.HitDice != "" {
		return c.HitDice
	}
	return fmt.Sprintf("%d%s", c.Level, c.HitDiceType)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
