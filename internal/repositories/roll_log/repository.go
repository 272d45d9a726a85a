// Package rolllog provides repository interface and types for per-character roll history
package rolllog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log Repository

// Entry is one d20 roll as shown in the roll log
type Entry struct {
	// Unique identifier for this roll
	ID string `json:"id"`

	// What was rolled, e.g. "Stealth" or "Eldritch Blast Attack"
	Label string `json:"label"`

	// Natural d20 result
	D20 int `json:"d20"`

	// Modifier added to the d20
	Bonus int `json:"bonus"`

	// d20 + bonus
	Total int `json:"total"`

	// Natural 20
	Crit bool `json:"crit"`

	// Natural 1
	Fail bool `json:"fail"`

	RolledAt time.Time `json:"rolled_at"`
}

// AppendInput contains parameters for recording a roll
type AppendInput struct {
	EntityID string
	Entry    *Entry
}

// AppendOutput contains the result of recording a roll
type AppendOutput struct {
	Entry *Entry
}

// ListInput contains parameters for reading the log
type ListInput struct {
	EntityID string
	// Limit caps the number of entries returned; 0 returns everything kept.
	Limit int
}

// ListOutput contains log entries, newest first
type ListOutput struct {
	Entries []*Entry
}

// ClearInput contains parameters for clearing the log
type ClearInput struct {
	EntityID string
}

// ClearOutput contains the result of clearing the log
type ClearOutput struct {
	RollsDeleted int
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Append records a roll, trimming the log to its maximum length
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns recorded rolls, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear removes every roll for the entity
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
