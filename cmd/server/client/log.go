package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	logLimit int
	logClear bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show or clear the character's roll log",
	RunE:  runLog,
}

func init() {
	requireCharacterID(logCmd)
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Maximum rolls to show (0 shows all)")
	logCmd.Flags().BoolVar(&logClear, "clear", false, "Clear the log instead of showing it")
}

func runLog(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if logClear {
		resp, err := client.ClearRollLog(ctx, &v1alpha1.ClearRollLogRequest{CharacterID: characterID})
		if err != nil {
			return fmt.Errorf("failed to clear roll log: %w", err)
		}
		fmt.Printf("Cleared %d rolls\n", resp.RollsDeleted)
		return nil
	}

	resp, err := client.GetRollLog(ctx, &v1alpha1.GetRollLogRequest{
		CharacterID: characterID,
		Limit:       logLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to get roll log: %w", err)
	}

	if len(resp.Rolls) == 0 {
		fmt.Println("No rolls yet")
		return nil
	}
	for _, roll := range resp.Rolls {
		fmt.Printf("%s  %-24s %2d %+d = %d\n",
			roll.RolledAt.Format(time.Kitchen), roll.Label, roll.D20, roll.Bonus, roll.Total)
	}
	return nil
}
