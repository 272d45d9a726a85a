package dice

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

// RollInput defines the request for a d20 check
type RollInput struct {
	// Owner is the entity the roll is logged against
	Owner core.Entity
	Bonus int
	// Label defaults to "Roll" when empty
	Label string
}

// RollOutput defines the response for a d20 check
type RollOutput struct {
	Roll *rolllog.Entry
}

// GetRollLogInput defines the request for reading an entity's roll log
type GetRollLogInput struct {
	EntityID string
	Limit    int
}

// GetRollLogOutput defines the response for reading an entity's roll log
type GetRollLogOutput struct {
	Rolls []*rolllog.Entry
}

// ClearRollLogInput defines the request for clearing an entity's roll log
type ClearRollLogInput struct {
	EntityID string
}

// ClearRollLogOutput defines the response for clearing an entity's roll log
type ClearRollLogOutput struct {
	RollsDeleted int
}
