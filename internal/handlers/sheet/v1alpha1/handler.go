// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

const errCharacterIDRequired = "character_id is required"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	EditorService editorsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EditorService == nil {
		return errors.InvalidArgument("editor service is required")
	}
	return nil
}

// Handler implements the sheet gRPC service
type Handler struct {
	editorService editorsvc.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		editorService: cfg.EditorService,
	}, nil
}

// Ensure Handler implements SheetServiceServer
var _ SheetServiceServer = (*Handler)(nil)

// CreateCharacter creates a sheet from the default template
func (h *Handler) CreateCharacter(ctx context.Context, req *CreateCharacterRequest) (*SheetResponse, error) {
	out, err := h.editorService.CreateCharacter(ctx, &editorsvc.CreateCharacterInput{Name: req.Name})
	return sheetResponse(out, err)
}

// ImportCharacter stores an existing document
func (h *Handler) ImportCharacter(ctx context.Context, req *ImportCharacterRequest) (*SheetResponse, error) {
	if req.Character == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	out, err := h.editorService.ImportCharacter(ctx, &editorsvc.ImportCharacterInput{Character: req.Character})
	return sheetResponse(out, err)
}

// ListCharacters returns the launcher index
func (h *Handler) ListCharacters(ctx context.Context, _ *ListCharactersRequest) (*ListCharactersResponse, error) {
	out, err := h.editorService.ListCharacters(ctx, &editorsvc.ListCharactersInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	characters := make([]*CharacterSummary, 0, len(out.Characters))
	for _, c := range out.Characters {
		characters = append(characters, &CharacterSummary{
			ID:        c.ID,
			Name:      c.Name,
			Class:     c.Class,
			Level:     c.Level,
			UpdatedAt: c.UpdatedAt,
		})
	}

	return &ListCharactersResponse{Characters: characters}, nil
}

// DeleteCharacter removes a sheet
func (h *Handler) DeleteCharacter(ctx context.Context, req *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(errCharacterIDRequired))
	}

	if _, err := h.editorService.DeleteCharacter(ctx, &editorsvc.DeleteCharacterInput{CharacterID: req.CharacterID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteCharacterResponse{}, nil
}

// GetSheet loads a sheet with its derived view
func (h *Handler) GetSheet(ctx context.Context, req *GetSheetRequest) (*GetSheetResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(errCharacterIDRequired))
	}

	out, err := h.editorService.GetSheet(ctx, &editorsvc.GetSheetInput{
		CharacterID: req.CharacterID,
		Spells: &editorsvc.SpellQuery{
			Search: req.SpellSearch,
			Filter: req.SpellFilter,
			Sort:   req.SpellSort,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSheetResponse{
		Sheet:         convertSheet(out.Sheet),
		VisibleSpells: out.VisibleSpells,
	}, nil
}

// SaveCharacter replaces a whole document
func (h *Handler) SaveCharacter(ctx context.Context, req *SaveCharacterRequest) (*SheetResponse, error) {
	if req.Character == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	out, err := h.editorService.SaveCharacter(ctx, &editorsvc.SaveCharacterInput{Character: req.Character})
	return sheetResponse(out, err)
}

// UpdateStat sets one ability score
func (h *Handler) UpdateStat(ctx context.Context, req *UpdateStatRequest) (*SheetResponse, error) {
	out, err := h.editorService.UpdateStat(ctx, &editorsvc.UpdateStatInput{
		CharacterID: req.CharacterID,
		Ability:     req.Ability,
		Score:       req.Score,
	})
	return sheetResponse(out, err)
}

// UpdateSkill sets a skill's proficiency level
func (h *Handler) UpdateSkill(ctx context.Context, req *UpdateSkillRequest) (*SheetResponse, error) {
	out, err := h.editorService.UpdateSkill(ctx, &editorsvc.UpdateSkillInput{
		CharacterID: req.CharacterID,
		Skill:       req.Skill,
		Level:       req.Level,
	})
	return sheetResponse(out, err)
}

// SetNumber sets one integer field
func (h *Handler) SetNumber(ctx context.Context, req *SetNumberRequest) (*SheetResponse, error) {
	out, err := h.editorService.SetNumber(ctx, &editorsvc.SetNumberInput{
		CharacterID: req.CharacterID,
		Field:       editorsvc.NumberField(req.Field),
		Value:       req.Value,
	})
	return sheetResponse(out, err)
}

// SetText sets one string field
func (h *Handler) SetText(ctx context.Context, req *SetTextRequest) (*SheetResponse, error) {
	out, err := h.editorService.SetText(ctx, &editorsvc.SetTextInput{
		CharacterID: req.CharacterID,
		Field:       editorsvc.TextField(req.Field),
		Value:       req.Value,
	})
	return sheetResponse(out, err)
}

// UpdateIdentity sets the identity header fields
func (h *Handler) UpdateIdentity(ctx context.Context, req *UpdateIdentityRequest) (*SheetResponse, error) {
	out, err := h.editorService.UpdateIdentity(ctx, &editorsvc.UpdateIdentityInput{
		CharacterID: req.CharacterID,
		Name:        req.Name,
		Class:       req.Class,
		Subclass:    req.Subclass,
		Species:     req.Species,
	})
	return sheetResponse(out, err)
}

// UpdateCoin sets one coin denomination
func (h *Handler) UpdateCoin(ctx context.Context, req *UpdateCoinRequest) (*SheetResponse, error) {
	out, err := h.editorService.UpdateCoin(ctx, &editorsvc.UpdateCoinInput{
		CharacterID: req.CharacterID,
		CoinType:    req.CoinType,
		Amount:      req.Amount,
	})
	return sheetResponse(out, err)
}

// UpdateAttunement sets one attunement slot
func (h *Handler) UpdateAttunement(ctx context.Context, req *UpdateAttunementRequest) (*SheetResponse, error) {
	out, err := h.editorService.UpdateAttunement(ctx, &editorsvc.UpdateAttunementInput{
		CharacterID: req.CharacterID,
		Slot:        req.Slot,
		Value:       req.Value,
	})
	return sheetResponse(out, err)
}

// UpdateDeathSaves sets both death save tracks
func (h *Handler) UpdateDeathSaves(ctx context.Context, req *UpdateDeathSavesRequest) (*SheetResponse, error) {
	out, err := h.editorService.UpdateDeathSaves(ctx, &editorsvc.UpdateDeathSavesInput{
		CharacterID: req.CharacterID,
		Successes:   req.Successes,
		Failures:    req.Failures,
	})
	return sheetResponse(out, err)
}

// ToggleSpellSlot applies a click on one slot bubble
func (h *Handler) ToggleSpellSlot(ctx context.Context, req *ToggleSpellSlotRequest) (*SheetResponse, error) {
	out, err := h.editorService.ToggleSpellSlot(ctx, &editorsvc.ToggleSpellSlotInput{
		CharacterID: req.CharacterID,
		Level:       req.Level,
		Index:       req.Index,
	})
	return sheetResponse(out, err)
}

// ConfigureSpellSlots replaces the slot table
func (h *Handler) ConfigureSpellSlots(ctx context.Context, req *ConfigureSpellSlotsRequest) (*SheetResponse, error) {
	out, err := h.editorService.ConfigureSpellSlots(ctx, &editorsvc.ConfigureSpellSlotsInput{
		CharacterID: req.CharacterID,
		Totals:      req.Totals,
	})
	return sheetResponse(out, err)
}

// UpsertEntry adds or replaces a list entry
func (h *Handler) UpsertEntry(ctx context.Context, req *UpsertEntryRequest) (*SheetResponse, error) {
	entry, err := entryFromRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.editorService.UpsertEntry(ctx, &editorsvc.UpsertEntryInput{
		CharacterID: req.CharacterID,
		Entry:       entry,
		Index:       req.Index,
	})
	return sheetResponse(out, err)
}

// DeleteEntry removes a list entry
func (h *Handler) DeleteEntry(ctx context.Context, req *DeleteEntryRequest) (*SheetResponse, error) {
	out, err := h.editorService.DeleteEntry(ctx, &editorsvc.DeleteEntryInput{
		CharacterID: req.CharacterID,
		Category:    req.Category,
		Index:       req.Index,
	})
	return sheetResponse(out, err)
}

// AddLanguage appends a language
func (h *Handler) AddLanguage(ctx context.Context, req *AddLanguageRequest) (*SheetResponse, error) {
	out, err := h.editorService.AddLanguage(ctx, &editorsvc.AddLanguageInput{
		CharacterID: req.CharacterID,
		Language:    req.Language,
	})
	return sheetResponse(out, err)
}

// RollCheck rolls a save, skill or attack
func (h *Handler) RollCheck(ctx context.Context, req *RollCheckRequest) (*RollResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(errCharacterIDRequired))
	}

	out, err := h.editorService.RollCheck(ctx, &editorsvc.RollCheckInput{
		CharacterID: req.CharacterID,
		Kind:        editorsvc.CheckKind(req.Kind),
		Key:         req.Key,
		Index:       req.Index,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollResponse{Roll: out.Roll, Summary: out.Summary}, nil
}

// Roll rolls a free d20
func (h *Handler) Roll(ctx context.Context, req *RollRequest) (*RollResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(errCharacterIDRequired))
	}

	out, err := h.editorService.Roll(ctx, &editorsvc.RollInput{
		CharacterID: req.CharacterID,
		Bonus:       req.Bonus,
		Label:       req.Label,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollResponse{Roll: out.Roll, Summary: out.Summary}, nil
}

// GetRollLog returns recent rolls, newest first
func (h *Handler) GetRollLog(ctx context.Context, req *GetRollLogRequest) (*GetRollLogResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(errCharacterIDRequired))
	}

	out, err := h.editorService.GetRollLog(ctx, &editorsvc.GetRollLogInput{
		CharacterID: req.CharacterID,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRollLogResponse{Rolls: out.Rolls}, nil
}

// ClearRollLog empties the roll log
func (h *Handler) ClearRollLog(ctx context.Context, req *ClearRollLogRequest) (*ClearRollLogResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(errCharacterIDRequired))
	}

	out, err := h.editorService.ClearRollLog(ctx, &editorsvc.ClearRollLogInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearRollLogResponse{RollsDeleted: out.RollsDeleted}, nil
}

// ResolveLinks returns wiki links for spells and feats whose page exists
func (h *Handler) ResolveLinks(ctx context.Context, req *ResolveLinksRequest) (*ResolveLinksResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument(errCharacterIDRequired))
	}

	out, err := h.editorService.ResolveLinks(ctx, &editorsvc.ResolveLinksInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	links := make([]*Link, 0, len(out.Links))
	for _, l := range out.Links {
		links = append(links, &Link{
			Category: l.Category,
			Index:    l.Index,
			Name:     l.Name,
			URL:      l.URL,
		})
	}

	return &ResolveLinksResponse{Links: links}, nil
}

// LookupSpell fetches an SRD spell for prefill
func (h *Handler) LookupSpell(ctx context.Context, req *LookupSpellRequest) (*LookupSpellResponse, error) {
	out, err := h.editorService.LookupSpell(ctx, &editorsvc.LookupSpellInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &LookupSpellResponse{Spell: out.Spell}, nil
}

// LookupWeapon fetches an SRD weapon for prefill
func (h *Handler) LookupWeapon(ctx context.Context, req *LookupWeaponRequest) (*LookupWeaponResponse, error) {
	out, err := h.editorService.LookupWeapon(ctx, &editorsvc.LookupWeaponInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &LookupWeaponResponse{Weapon: out.Weapon}, nil
}

func sheetResponse(out *editorsvc.SheetOutput, err error) (*SheetResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &SheetResponse{Sheet: convertSheet(out.Sheet)}, nil
}

func convertSheet(s *editorsvc.Sheet) *Sheet {
	if s == nil {
		return nil
	}
	return &Sheet{
		Character: s.Character,
		Derived:   s.Derived,
		Issues:    s.Issues,
	}
}

// entryFromRequest picks the entry matching the request's category
func entryFromRequest(req *UpsertEntryRequest) (sheet.Entry, error) {
	var entry sheet.Entry
	switch req.Category {
	case sheet.CategoryItem:
		if req.Item != nil {
			entry = req.Item
		}
	case sheet.CategoryWeapon:
		if req.Weapon != nil {
			entry = req.Weapon
		}
	case sheet.CategorySpell:
		if req.Spell != nil {
			entry = req.Spell
		}
	case sheet.CategoryFeat:
		if req.Feat != nil {
			entry = req.Feat
		}
	case sheet.CategoryInvocation:
		if req.Invocation != nil {
			entry = req.Invocation
		}
	default:
		return nil, errors.InvalidArgumentf("category %q does not hold entries", req.Category)
	}

	if entry == nil {
		return nil, errors.InvalidArgumentf("%s is required for category %s", req.Category, req.Category)
	}
	return entry, nil
}
