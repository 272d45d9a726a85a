package wiki_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/wiki"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Eldritch Blast":           "eldritch-blast",
		"Tasha's Hideous Laughter": "tasha-s-hideous-laughter",
		"Mordenkainen’s Sword":     "mordenkainen-s-sword",
		"Hunger  of\tHadar":        "hunger-of-hadar",
		"Fire Bolt (2024)":         "fire-bolt-2024",
		"War Caster":               "war-caster",
	}
	for in, want := range cases {
		assert.Equal(t, want, wiki.Slug(in), in)
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t, "http://dnd2024.wikidot.com/spell:eldritch-blast",
		wiki.URL("", wiki.KindSpell, "Eldritch Blast"))
	assert.Equal(t, "http://example.test/feat:war-caster",
		wiki.URL("http://example.test/", wiki.KindFeat, "War Caster"))
}

func TestKindFor(t *testing.T) {
	kind, ok := wiki.KindFor(&sheet.Spell{Action: sheet.Action{Name: "Guidance"}, Level: sheet.CantripLevel})
	assert.True(t, ok)
	assert.Equal(t, wiki.KindSpell, kind)

	kind, ok = wiki.KindFor(&sheet.Feat{Name: "Alert"})
	assert.True(t, ok)
	assert.Equal(t, wiki.KindFeat, kind)

	_, ok = wiki.KindFor(&sheet.Weapon{Action: sheet.Action{Name: "Dagger"}})
	assert.False(t, ok)

	_, ok = wiki.KindFor(&sheet.Item{Name: "Rope"})
	assert.False(t, ok)
}
