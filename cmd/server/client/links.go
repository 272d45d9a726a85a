package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Find wiki pages for the character's spells and feats",
	RunE:  runLinks,
}

func init() {
	requireCharacterID(linksCmd)
}

func runLinks(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveLinks(ctx, &v1alpha1.ResolveLinksRequest{CharacterID: characterID})
	if err != nil {
		return fmt.Errorf("failed to resolve links: %w", err)
	}

	if len(resp.Links) == 0 {
		fmt.Println("No wiki pages found")
		return nil
	}
	for _, link := range resp.Links {
		fmt.Printf("  %s (%s #%d): %s\n", link.Name, link.Category, link.Index, link.URL)
	}
	return nil
}
