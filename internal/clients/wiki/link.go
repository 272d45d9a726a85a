package wiki

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

// DefaultBaseURL is the rules wiki entries link to
const DefaultBaseURL = "http://dnd2024.wikidot.com"

// Kind is the wiki namespace a page lives in
type Kind string

const (
	KindSpell Kind = "spell"
	KindFeat  Kind = "feat"
)

var (
	apostrophes = regexp.MustCompile(`['’â€™]`)
	whitespace  = regexp.MustCompile(`\s+`)
	disallowed  = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slug converts an entry name to a wiki page name. Apostrophes and runs of
// whitespace become dashes, anything else outside [a-z0-9-] is dropped.
func Slug(name string) string {
	slug := strings.ToLower(name)
	slug = apostrophes.ReplaceAllString(slug, "-")
	slug = whitespace.ReplaceAllString(slug, "-")
	return disallowed.ReplaceAllString(slug, "")
}

// URL builds the page URL for a name in the given namespace
func URL(baseURL string, kind Kind, name string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + string(kind) + ":" + Slug(name)
}

// KindFor returns the namespace for an entry. Only spells and feats link to
// the wiki; cantrips live in the spell namespace too.
func KindFor(entry sheet.Entry) (Kind, bool) {
	switch entry.Category() {
	case sheet.CategorySpell:
		return KindSpell, true
	case sheet.CategoryFeat:
		return KindFeat, true
	default:
		return "", false
	}
}
