package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var createName string

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new level 1 character",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Character name (defaults to the server's default)")
}

func runCreate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateCharacter(ctx, &v1alpha1.CreateCharacterRequest{Name: createName})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	fmt.Printf("Created %s (%s)\n", resp.Sheet.Character.Name, resp.Sheet.Character.ID)
	return nil
}
