// Package editor implements the sheet editor orchestrator
package editor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/wiki"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

// Config holds the dependencies for the editor orchestrator
type Config struct {
	CharacterRepo  characterrepo.Repository
	Engine         engine.Engine
	Rules          rules.Table
	DiceService    dice.Service
	WikiChecker    wiki.Checker
	ExternalClient external.Client
	// CharacterIDs generates IDs for new characters
	CharacterIDs idgen.Generator
	// ItemIDs generates IDs for new inventory items
	ItemIDs idgen.Generator
	// WikiBaseURL defaults to wiki.DefaultBaseURL
	WikiBaseURL string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.WikiChecker == nil {
		vb.RequiredField("WikiChecker")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.CharacterIDs == nil {
		vb.RequiredField("CharacterIDs")
	}
	if c.ItemIDs == nil {
		vb.RequiredField("ItemIDs")
	}

	return vb.Build()
}

// Orchestrator implements the editorsvc.Service interface
type Orchestrator struct {
	characterRepo  characterrepo.Repository
	engine         engine.Engine
	rules          rules.Table
	diceService    dice.Service
	wikiChecker    wiki.Checker
	externalClient external.Client
	characterIDs   idgen.Generator
	itemIDs        idgen.Generator
	wikiBaseURL    string
}

// New creates a new editor orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseURL := cfg.WikiBaseURL
	if baseURL == "" {
		baseURL = wiki.DefaultBaseURL
	}

	return &Orchestrator{
		characterRepo:  cfg.CharacterRepo,
		engine:         cfg.Engine,
		rules:          cfg.Rules,
		diceService:    cfg.DiceService,
		wikiChecker:    cfg.WikiChecker,
		externalClient: cfg.ExternalClient,
		characterIDs:   cfg.CharacterIDs,
		itemIDs:        cfg.ItemIDs,
		wikiBaseURL:    baseURL,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ editorsvc.Service = (*Orchestrator)(nil)

// Launcher methods

// CreateCharacter stores a new sheet built from the default template
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *editorsvc.CreateCharacterInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c := sheet.NewCharacter(input.Name)
	c.ID = o.characterIDs.Generate()

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c}); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.InfoContext(ctx, "Character created",
		"character_id", c.ID,
		"name", c.Name,
	)

	return o.sheetOutput(ctx, c.ID)
}

// ImportCharacter stores an existing document after normalizing it
func (o *Orchestrator) ImportCharacter(ctx context.Context, input *editorsvc.ImportCharacterInput) (*editorsvc.SheetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c := o.normalize(ctx, input.Character)
	if c.ID == "" {
		c.ID = o.characterIDs.Generate()
	}
	if c.Name == "" {
		c.Name = sheet.DefaultName
	}
	o.assignItemIDs(c)

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c}); err != nil {
		return nil, errors.Wrapf(err, "failed to import character").
			WithMeta("character_id", c.ID)
	}

	slog.InfoContext(ctx, "Character imported",
		"character_id", c.ID,
		"name", c.Name,
	)

	return o.sheetOutput(ctx, c.ID)
}

// ListCharacters returns the launcher index
func (o *Orchestrator) ListCharacters(ctx context.Context, input *editorsvc.ListCharactersInput) (*editorsvc.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &editorsvc.ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter removes a stored sheet and its roll log
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *editorsvc.DeleteCharacterInput) (*editorsvc.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character").
			WithMeta("character_id", input.CharacterID)
	}

	if _, err := o.diceService.ClearRollLog(ctx, &dice.ClearRollLogInput{EntityID: input.CharacterID}); err != nil {
		slog.WarnContext(ctx, "failed to clear roll log for deleted character",
			"character_id", input.CharacterID,
			"error", err.Error())
	}

	slog.InfoContext(ctx, "Character deleted", "character_id", input.CharacterID)

	return &editorsvc.DeleteCharacterOutput{}, nil
}

// Whole document methods

// GetSheet loads, normalizes and derives a sheet
func (o *Orchestrator) GetSheet(ctx context.Context, input *editorsvc.GetSheetInput) (*editorsvc.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	s, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	query := input.Spells
	if query == nil {
		query = &editorsvc.SpellQuery{}
	}
	filtered, err := o.engine.FilterSpells(&engine.FilterSpellsInput{
		Spells: s.Character.Spells,
		Search: query.Search,
		Filter: query.Filter,
		Sort:   query.Sort,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to filter spells")
	}

	visible := make([]int, len(filtered.Spells))
	for i, spell := range filtered.Spells {
		visible[i] = spell.Index
	}

	return &editorsvc.GetSheetOutput{Sheet: s, VisibleSpells: visible}, nil
}

// SaveCharacter replaces the whole stored document
func (o *Orchestrator) SaveCharacter(ctx context.Context, input *editorsvc.SaveCharacterInput) (*editorsvc.SheetOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	c := o.normalize(ctx, input.Character)
	o.assignItemIDs(c)

	return o.save(ctx, c)
}

// load reads the stored document and derives its view
func (o *Orchestrator) load(ctx context.Context, id string) (*editorsvc.Sheet, error) {
	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", id)
	}

	c, issues := sheet.Normalize(got.Character)
	if issues.HasErrors() {
		slog.WarnContext(ctx, "stored character needed normalization",
			"character_id", id,
			"issues", issues.Error())
	}

	derived, err := o.engine.DeriveSheet(&engine.DeriveSheetInput{Character: c})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive sheet").
			WithMeta("character_id", id)
	}

	return &editorsvc.Sheet{
		Character: c,
		Derived:   derived.View,
		Issues:    issues.Fields,
	}, nil
}

func (o *Orchestrator) sheetOutput(ctx context.Context, id string) (*editorsvc.SheetOutput, error) {
	s, err := o.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &editorsvc.SheetOutput{Sheet: s}, nil
}

// save writes the whole document, then reloads it so the view is always
// derived from what the store holds
func (o *Orchestrator) save(ctx context.Context, c *sheet.Character) (*editorsvc.SheetOutput, error) {
	if _, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: c}); err != nil {
		return nil, errors.Wrapf(err, "failed to save character").
			WithMeta("character_id", c.ID)
	}
	return o.sheetOutput(ctx, c.ID)
}

// mutate applies fn to the normalized stored document and saves the result.
// fn returning an error leaves the store untouched.
func (o *Orchestrator) mutate(ctx context.Context, id string, fn func(c *sheet.Character) error) (*editorsvc.SheetOutput, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", id)
	}

	c := o.normalize(ctx, got.Character)
	if err := fn(c); err != nil {
		return nil, err
	}

	return o.save(ctx, c)
}

// normalize returns a normalized copy, logging any adjustments
func (o *Orchestrator) normalize(ctx context.Context, c *sheet.Character) *sheet.Character {
	out, issues := sheet.Normalize(c)
	if issues.HasErrors() {
		slog.WarnContext(ctx, "character normalized",
			"character_id", out.ID,
			"issues", issues.Error())
	}
	return out
}

// assignItemIDs gives every inventory item without an ID a fresh one
func (o *Orchestrator) assignItemIDs(c *sheet.Character) {
	for _, item := range c.Inventory {
		if item.ID == "" {
			item.ID = o.itemIDs.Generate()
		}
	}
}
