package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a character document from a JSON file",
	Long:  `Import a character document. Missing fields are filled with defaults; an ID already in use is rejected.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var character sheet.Character
	if err := json.Unmarshal(data, &character); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportCharacter(ctx, &v1alpha1.ImportCharacterRequest{Character: &character})
	if err != nil {
		return fmt.Errorf("failed to import character: %w", err)
	}

	fmt.Printf("Imported %s (%s)\n", resp.Sheet.Character.Name, resp.Sheet.Character.ID)
	for field, problems := range resp.Sheet.Issues {
		for _, p := range problems {
			fmt.Printf("  warning: %s: %s\n", field, p)
		}
	}
	return nil
}
