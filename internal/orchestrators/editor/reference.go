package editor

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/wiki"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

// ResolveLinks checks the wiki for every spell and feat on the sheet and
// returns the links whose page exists, in sheet order
func (o *Orchestrator) ResolveLinks(ctx context.Context, input *editorsvc.ResolveLinksInput) (*editorsvc.ResolveLinksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", input.CharacterID)
	}
	c := o.normalize(ctx, got.Character)

	var candidates []*editorsvc.Link
	for _, category := range []sheet.Category{sheet.CategorySpell, sheet.CategoryFeat} {
		for i, entry := range c.Entries(category) {
			kind, ok := wiki.KindFor(entry)
			if !ok || strings.TrimSpace(entry.EntryName()) == "" {
				continue
			}
			candidates = append(candidates, &editorsvc.Link{
				Category: category,
				Index:    i,
				Name:     entry.EntryName(),
				URL:      wiki.URL(o.wikiBaseURL, kind, entry.EntryName()),
			})
		}
	}

	exists := make([]bool, len(candidates))
	var wg sync.WaitGroup
	for i, link := range candidates {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()
			exists[idx] = o.wikiChecker.Exists(ctx, url)
		}(i, link.URL)
	}
	wg.Wait()

	links := make([]*editorsvc.Link, 0, len(candidates))
	for i, link := range candidates {
		if exists[i] {
			links = append(links, link)
		}
	}

	return &editorsvc.ResolveLinksOutput{Links: links}, nil
}

// LookupSpell fetches an SRD spell to prefill the spell editor
func (o *Orchestrator) LookupSpell(ctx context.Context, input *editorsvc.LookupSpellInput) (*editorsvc.LookupSpellOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}

	spell, err := o.externalClient.LookupSpell(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up spell").
			WithMeta("name", input.Name)
	}

	return &editorsvc.LookupSpellOutput{Spell: spell}, nil
}

// LookupWeapon fetches an SRD weapon to prefill the weapon editor
func (o *Orchestrator) LookupWeapon(ctx context.Context, input *editorsvc.LookupWeaponInput) (*editorsvc.LookupWeaponOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("weapon name is required")
	}

	weapon, err := o.externalClient.LookupWeapon(ctx, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up weapon").
			WithMeta("name", input.Name)
	}

	return &editorsvc.LookupWeaponOutput{Weapon: weapon}, nil
}
