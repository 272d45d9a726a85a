package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a character and its roll log",
	RunE:  runDelete,
}

func init() {
	requireCharacterID(deleteCmd)
}

func runDelete(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteCharacter(ctx, &v1alpha1.DeleteCharacterRequest{CharacterID: characterID}); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	fmt.Printf("Deleted %s\n", characterID)
	return nil
}
