package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	Long:  `List every stored character, most recently updated first.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCharacters(ctx, &v1alpha1.ListCharactersRequest{})
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	if len(resp.Characters) == 0 {
		fmt.Println("No characters yet")
		return nil
	}

	fmt.Printf("Found %d characters:\n\n", len(resp.Characters))
	for _, c := range resp.Characters {
		fmt.Printf("%s\n", c.Name)
		fmt.Printf("  ID: %s\n", c.ID)
		fmt.Printf("  Class: %s (level %d)\n", c.Class, c.Level)
		if c.UpdatedAt > 0 {
			fmt.Printf("  Updated: %s\n", time.Unix(c.UpdatedAt, 0).Format(time.RFC3339))
		}
		fmt.Println()
	}

	return nil
}
