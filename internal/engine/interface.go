// Package engine defines the derived-statistics calculations for a sheet
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

// Engine derives every computed value the sheet displays. Implementations are
// pure: no I/O, no state kept between calls.
type Engine interface {
	// DeriveSheet expects a normalized character.
	DeriveSheet(input *DeriveSheetInput) (*DeriveSheetOutput, error)
	FilterSpells(input *FilterSpellsInput) (*FilterSpellsOutput, error)

	// Utility methods
	CalculateAbilityModifier(score int) int
	CalculateProficiencyBonus(level int) int
}
