// Package external is the location for the dnd5e-api client used to
// prefill new sheet entries from the SRD
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-sheet/internal/clients/external Client

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	// DefaultBaseURL is the public D&D 5e SRD API
	DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

	weaponRangeRanged = "Ranged"
	propertyFinesse   = "Finesse"
)

var (
	// keyPattern matches characters that are not allowed in API keys
	keyPattern = regexp.MustCompile(`[^a-z0-9-]+`)
	dashRun    = regexp.MustCompile(`-+`)
)

// Client looks up SRD records and maps them into sheet entries
type Client interface {
	// LookupSpell returns a prefilled spell entry for the named SRD spell
	LookupSpell(ctx context.Context, name string) (*sheet.Spell, error)

	// LookupWeapon returns a prefilled weapon entry for the named SRD weapon
	LookupWeapon(ctx context.Context, name string) (*sheet.Weapon, error)
}

// API is the subset of the dnd5e-api client this package calls
type API interface {
	GetSpell(key string) (*entities.Spell, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// API overrides the dnd5e-api client; used by tests
	API API
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts cannot be negative")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type client struct {
	api API
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.API != nil {
		return &client{api: cfg.API}, nil
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Wrap with caching; SRD records never change
	return &client{api: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)}, nil
}

// APIKey converts a display name to an SRD index, e.g. "Tasha's Hideous Laughter"
// becomes "tashas-hideous-laughter".
func APIKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("'", "", "’", "").Replace(key)
	key = keyPattern.ReplaceAllString(key, "-")
	key = dashRun.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}

func (c *client) LookupSpell(ctx context.Context, name string) (*sheet.Spell, error) {
	key := APIKey(name)
	if key == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "lookup cancelled")
	}

	spell, err := c.api.GetSpell(key)
	if err != nil {
		slog.WarnContext(ctx, "SRD spell lookup failed", "spell", name, "key", key, "error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to look up spell").
			WithMeta("key", key)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %q not found", name)
	}

	return convertSpell(spell), nil
}

func (c *client) LookupWeapon(ctx context.Context, name string) (*sheet.Weapon, error) {
	key := APIKey(name)
	if key == "" {
		return nil, errors.InvalidArgument("weapon name is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "lookup cancelled")
	}

	equipment, err := c.api.GetEquipment(key)
	if err != nil {
		slog.WarnContext(ctx, "SRD equipment lookup failed", "weapon", name, "key", key, "error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to look up weapon").
			WithMeta("key", key)
	}
	if equipment == nil {
		return nil, errors.NotFoundf("weapon %q not found", name)
	}

	weapon, ok := equipment.(*entities.Weapon)
	if !ok {
		return nil, errors.InvalidArgumentf("%q is %s, not a weapon", name, equipment.GetType())
	}

	return convertWeapon(weapon), nil
}

// convertSpell maps an SRD spell onto a sheet spell. A spell with a saving
// throw becomes spell_save, one that deals damage without a save becomes
// spell_attack, anything else is utility.
func convertSpell(spell *entities.Spell) *sheet.Spell {
	out := &sheet.Spell{
		Action: sheet.Action{
			Name:   spell.Name,
			Source: "SRD",
			Range:  spell.Range,
			Action: spell.CastingTime,
			Type:   sheet.EntryTypeUtility,
		},
		Level:    strconv.Itoa(spell.SpellLevel),
		Duration: spell.Duration,
	}

	var notes []string
	if spell.Concentration {
		notes = append(notes, "Concentration")
	}
	if spell.Ritual {
		notes = append(notes, "Ritual")
	}

	if spell.SpellDamage != nil {
		out.Type = sheet.EntryTypeSpellAttack
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			out.Damage = baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel)
		}
		if spell.SpellDamage.SpellDamageType != nil {
			notes = append(notes, spell.SpellDamage.SpellDamageType.Name)
		}
	}

	if spell.DC != nil && spell.DC.DCType != nil {
		ability, ok := sheet.ParseAbility(spell.DC.DCType.Key)
		if !ok {
			ability, ok = sheet.ParseAbility(spell.DC.DCType.Name)
		}
		if ok {
			out.Type = sheet.EntryTypeSpellSave
			out.SaveStat = ability
		}
	}

	out.Notes = strings.Join(notes, ", ")
	return out
}

// baseDamage returns the damage at the spell's own level
func baseDamage(level int, d *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return d.FirstLevel
	case 2:
		return d.SecondLevel
	case 3:
		return d.ThirdLevel
	case 4:
		return d.FourthLevel
	case 5:
		return d.FifthLevel
	case 6:
		return d.SixthLevel
	case 7:
		return d.SeventhLevel
	case 8:
		return d.EighthLevel
	case 9:
		return d.NinthLevel
	default:
		return ""
	}
}

// convertWeapon maps an SRD weapon onto a sheet weapon. Ranged and finesse
// weapons attack with dexterity.
func convertWeapon(w *entities.Weapon) *sheet.Weapon {
	out := &sheet.Weapon{Action: sheet.Action{
		Name:   w.Name,
		Source: "SRD",
		Type:   sheet.EntryTypeWeaponMelee,
		Stat:   sheet.AbilityStrength,
		Action: "Action",
	}}

	var props []string
	for _, p := range w.Properties {
		if p == nil {
			continue
		}
		props = append(props, p.Name)
		if p.Name == propertyFinesse {
			out.Stat = sheet.AbilityDexterity
		}
	}

	if w.WeaponRange == weaponRangeRanged {
		out.Type = sheet.EntryTypeWeaponRange
		out.Stat = sheet.AbilityDexterity
	} else {
		out.Range = "Melee"
	}

	if w.Damage != nil {
		out.Damage = w.Damage.DamageDice
		if w.Damage.DamageType != nil {
			out.Damage = strings.TrimSpace(out.Damage + " " + w.Damage.DamageType.Name)
		}
	}

	notes := w.WeaponCategory
	if len(props) > 0 {
		notes = strings.TrimSpace(notes + " (" + strings.Join(props, ", ") + ")")
	}
	out.Notes = notes
	return out
}
