package editor

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

// UpsertEntry appends an entry to its category's list, or replaces the entry
// at Index when one is given
func (o *Orchestrator) UpsertEntry(ctx context.Context, input *editorsvc.UpsertEntryInput) (*editorsvc.SheetOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.InvalidArgument("entry is required")
	}
	if strings.TrimSpace(input.Entry.EntryName()) == "" {
		return nil, errors.InvalidArgument("entry name is required")
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		var err error
		switch e := input.Entry.(type) {
		case *sheet.Item:
			item := *e
			if input.Index != nil && item.ID == "" && inRange(*input.Index, len(c.Inventory)) {
				item.ID = c.Inventory[*input.Index].ID
			}
			if item.ID == "" {
				item.ID = o.itemIDs.Generate()
			}
			if item.Type == "" {
				item.Type = sheet.EntryTypeItem
			}
			c.Inventory, err = upsert(c.Inventory, &item, input.Index)
		case *sheet.Weapon:
			w := *e
			c.Weapons, err = upsert(c.Weapons, &w, input.Index)
		case *sheet.Spell:
			s := *e
			c.Spells, err = upsert(c.Spells, &s, input.Index)
		case *sheet.Feat:
			f := *e
			c.Feats, err = upsert(c.Feats, &f, input.Index)
		case *sheet.Invocation:
			inv := *e
			c.Invocations, err = upsert(c.Invocations, &inv, input.Index)
		default:
			return errors.InvalidArgumentf("unsupported entry category %q", input.Entry.Category())
		}
		if err != nil {
			return errors.Wrap(err, "failed to store entry").
				WithMeta("category", string(input.Entry.Category()))
		}
		return nil
	})
}

// DeleteEntry removes the entry at Index from a category's list
func (o *Orchestrator) DeleteEntry(ctx context.Context, input *editorsvc.DeleteEntryInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Category.IsValid() {
		return nil, errors.InvalidArgumentf("unknown category %q", input.Category)
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		var err error
		switch input.Category {
		case sheet.CategoryItem:
			c.Inventory, err = remove(c.Inventory, input.Index)
		case sheet.CategoryWeapon:
			c.Weapons, err = remove(c.Weapons, input.Index)
		case sheet.CategorySpell:
			c.Spells, err = remove(c.Spells, input.Index)
		case sheet.CategoryFeat:
			c.Feats, err = remove(c.Feats, input.Index)
		case sheet.CategoryInvocation:
			c.Invocations, err = remove(c.Invocations, input.Index)
		case sheet.CategoryLanguage:
			if !inRange(input.Index, len(c.Languages)) {
				err = indexError(input.Index, len(c.Languages))
				break
			}
			c.Languages = append(c.Languages[:input.Index:input.Index], c.Languages[input.Index+1:]...)
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete entry").
				WithMeta("category", string(input.Category))
		}
		return nil
	})
}

// AddLanguage appends a language
func (o *Orchestrator) AddLanguage(ctx context.Context, input *editorsvc.AddLanguageInput) (*editorsvc.SheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	language := strings.TrimSpace(input.Language)
	if language == "" {
		return nil, errors.InvalidArgument("language is required")
	}

	return o.mutate(ctx, input.CharacterID, func(c *sheet.Character) error {
		c.Languages = append(c.Languages, language)
		return nil
	})
}

func upsert[T any](list []*T, v *T, index *int) ([]*T, error) {
	if index == nil {
		return append(list, v), nil
	}
	if !inRange(*index, len(list)) {
		return nil, indexError(*index, len(list))
	}
	list[*index] = v
	return list, nil
}

func remove[T any](list []*T, index int) ([]*T, error) {
	if !inRange(index, len(list)) {
		return nil, indexError(index, len(list))
	}
	return append(list[:index:index], list[index+1:]...), nil
}

func inRange(index, length int) bool {
	return index >= 0 && index < length
}

func indexError(index, length int) error {
	return errors.InvalidArgumentf("index %d out of range for %d entries", index, length).
		WithMeta("index", index)
}
