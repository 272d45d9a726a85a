package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	slotLevel string
	slotIndex int
)

var toggleSlotCmd = &cobra.Command{
	Use:   "toggle-slot",
	Short: "Spend or recover a spell slot",
	Long:  `Toggle the spell slot pip at --index for --level. Pips below the used count recover; others spend.`,
	RunE:  runToggleSlot,
}

func init() {
	requireCharacterID(toggleSlotCmd)
	toggleSlotCmd.Flags().StringVar(&slotLevel, "level", "", "Spell level 1-9 (required)")
	toggleSlotCmd.Flags().IntVar(&slotIndex, "index", 0, "Pip index")
	_ = toggleSlotCmd.MarkFlagRequired("level") // nolint:errcheck // safe to ignore in init
}

func runToggleSlot(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ToggleSpellSlot(ctx, &v1alpha1.ToggleSpellSlotRequest{
		CharacterID: characterID,
		Level:       slotLevel,
		Index:       slotIndex,
	})
	if err != nil {
		return fmt.Errorf("failed to toggle spell slot: %w", err)
	}

	for _, slot := range resp.Sheet.Derived.SpellSlots {
		if slot.Level == slotLevel {
			fmt.Printf("Level %s slots: %d used, %d/%d available\n", slot.Level, slot.Used, slot.Available, slot.Total)
		}
	}
	return nil
}
