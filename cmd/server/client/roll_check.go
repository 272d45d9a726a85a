package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

var (
	checkKind  string
	checkKey   string
	checkIndex int
)

var rollCheckCmd = &cobra.Command{
	Use:   "roll-check",
	Short: "Roll a save, skill check or attack",
	Long: `Roll a d20 with the character's derived bonus.

Examples:
  roll-check --character-id c1 --kind save --key dex
  roll-check --character-id c1 --kind skill --key stealth
  roll-check --character-id c1 --kind attack --key weapon --index 0`,
	RunE: runRollCheck,
}

func init() {
	requireCharacterID(rollCheckCmd)
	rollCheckCmd.Flags().StringVar(&checkKind, "kind", "", "save, skill or attack (required)")
	rollCheckCmd.Flags().StringVar(&checkKey, "key", "", "Ability, skill key, or weapon/spell for attacks (required)")
	rollCheckCmd.Flags().IntVar(&checkIndex, "index", 0, "Entry index for attacks")
	_ = rollCheckCmd.MarkFlagRequired("kind") // nolint:errcheck // safe to ignore in init
	_ = rollCheckCmd.MarkFlagRequired("key")  // nolint:errcheck // safe to ignore in init
}

func runRollCheck(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollCheck(ctx, &v1alpha1.RollCheckRequest{
		CharacterID: characterID,
		Kind:        checkKind,
		Key:         checkKey,
		Index:       checkIndex,
	})
	if err != nil {
		return fmt.Errorf("failed to roll check: %w", err)
	}

	printRoll(resp)
	return nil
}

func printRoll(resp *v1alpha1.RollResponse) {
	fmt.Println(resp.Summary)
	printRollFlags(resp.Roll)
}

func printRollFlags(roll *rolllog.Entry) {
	if roll == nil {
		return
	}
	switch {
	case roll.Crit:
		fmt.Println("  Natural 20!")
	case roll.Fail:
		fmt.Println("  Natural 1")
	}
}
