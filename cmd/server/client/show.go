package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	spellSearch string
	spellFilter string
	spellSort   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a character sheet with derived values",
	RunE:  runShow,
}

func init() {
	requireCharacterID(showCmd)
	showCmd.Flags().StringVar(&spellSearch, "spell-search", "", "Only show spells whose name contains this text")
	showCmd.Flags().StringVar(&spellFilter, "spell-filter", string(engine.SpellFilterAll), "Spell filter: all, cantrip or leveled")
	showCmd.Flags().StringVar(&spellSort, "spell-sort", "", "Spell sort: level or name")
}

func runShow(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSheet(ctx, &v1alpha1.GetSheetRequest{
		CharacterID: characterID,
		SpellSearch: spellSearch,
		SpellFilter: engine.SpellFilter(spellFilter),
		SpellSort:   engine.SpellSort(spellSort),
	})
	if err != nil {
		return fmt.Errorf("failed to get sheet: %w", err)
	}

	c := resp.Sheet.Character
	view := resp.Sheet.Derived

	fmt.Printf("%s\n", c.Name)
	fmt.Printf("Level %d %s", c.Level, c.Class)
	if c.Subclass != "" {
		fmt.Printf(" (%s)", c.Subclass)
	}
	fmt.Printf("\nProficiency Bonus: +%d\n", view.ProficiencyBonus)
	if hp := view.HitPoints; hp != nil {
		fmt.Printf("HP: %d/%d", hp.Current, hp.Max)
		if hp.Bloodied {
			fmt.Printf(" (bloodied)")
		}
		fmt.Println()
	}

	fmt.Printf("\nAbilities:\n")
	for _, a := range sheet.Abilities() {
		fmt.Printf("  %s %2d  mod %+d  save %+d\n", a.Abbrev(), c.Stats[a], view.Modifiers[a], view.Saves[a])
	}

	keys := make([]string, 0, len(view.Skills))
	for k := range view.Skills {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("\nSkills:\n")
	for _, k := range keys {
		s := view.Skills[k]
		fmt.Printf("  %-16s %+d\n", s.PrettyName, s.Bonus)
	}

	if sc := view.Spellcasting; sc != nil {
		fmt.Printf("\nSpellcasting (%s): save DC %d, attack %+d\n", sc.Ability.Abbrev(), sc.SaveDC, sc.AttackBonus)
	}

	if len(view.SpellSlots) > 0 {
		fmt.Printf("\nSpell Slots:\n")
		for _, slot := range view.SpellSlots {
			fmt.Printf("  Level %s: %d/%d available\n", slot.Level, slot.Available, slot.Total)
		}
	}

	if len(resp.VisibleSpells) > 0 {
		fmt.Printf("\nSpells:\n")
		for _, i := range resp.VisibleSpells {
			if i < 0 || i >= len(view.Spells) {
				continue
			}
			printEntry(view.Spells[i])
		}
	}

	if len(view.Weapons) > 0 {
		fmt.Printf("\nWeapons:\n")
		for _, w := range view.Weapons {
			printEntry(w)
		}
	}

	return nil
}

func printEntry(e *engine.EntryView) {
	fmt.Printf("  [%d] %s", e.Index, e.Name)
	if e.LevelBadge != "" {
		fmt.Printf(" (%s)", e.LevelBadge)
	}
	if e.AttackBonus != nil {
		fmt.Printf("  attack %+d", *e.AttackBonus)
	}
	if e.SaveDC != nil {
		fmt.Printf("  DC %d %s", *e.SaveDC, e.SaveStat.Abbrev())
	}
	if e.Via != "" {
		fmt.Printf("  via %s", e.Via)
	}
	if e.SourceMissing {
		fmt.Printf("  (source missing)")
	}
	fmt.Println()
}
