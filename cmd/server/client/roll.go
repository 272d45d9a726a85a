package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	rollBonus int
	rollLabel string
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a d20 with a free bonus",
	RunE:  runRoll,
}

func init() {
	requireCharacterID(rollCmd)
	rollCmd.Flags().IntVar(&rollBonus, "bonus", 0, "Modifier added to the d20")
	rollCmd.Flags().StringVar(&rollLabel, "label", "", "Label shown in the roll log")
}

func runRoll(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Roll(ctx, &v1alpha1.RollRequest{
		CharacterID: characterID,
		Bonus:       rollBonus,
		Label:       rollLabel,
	})
	if err != nil {
		return fmt.Errorf("failed to roll: %w", err)
	}

	printRoll(resp)
	return nil
}
