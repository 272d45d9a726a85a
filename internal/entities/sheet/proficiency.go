package sheet

// ProficiencyLevel is the training a character has in a skill. Stored as an
// ordinal in the document.
type ProficiencyLevel int

// Proficiency levels
const (
	ProficiencyNone       ProficiencyLevel = 0
	ProficiencyHalf       ProficiencyLevel = 1
	ProficiencyProficient ProficiencyLevel = 2
	ProficiencyExpert     ProficiencyLevel = 3
)

// IsValid reports whether p is a known level
func (p ProficiencyLevel) IsValid() bool {
	return p >= ProficiencyNone && p <= ProficiencyExpert
}

// Clamp forces p into the known range
func (p ProficiencyLevel) Clamp() ProficiencyLevel {
	switch {
	case p < ProficiencyNone:
		return ProficiencyNone
	case p > ProficiencyExpert:
		return ProficiencyExpert
	}
	return p
}

// Bonus returns the share of the proficiency bonus this level adds.
// Half proficiency rounds down.
func (p ProficiencyLevel) Bonus(proficiencyBonus int) int {
	switch p {
	case ProficiencyHalf:
		return proficiencyBonus / 2
	case ProficiencyProficient:
		return proficiencyBonus
	case ProficiencyExpert:
		return proficiencyBonus * 2
	default:
		return 0
	}
}

// String returns the display name of the level
func (p ProficiencyLevel) String() string {
	switch p {
	case ProficiencyNone:
		return "none"
	case ProficiencyHalf:
		return "half"
	case ProficiencyProficient:
		return "proficient"
	case ProficiencyExpert:
		return "expert"
	default:
		return "unknown"
	}
}
