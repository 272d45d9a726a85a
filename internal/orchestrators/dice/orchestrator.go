// Package dice implements the roll service backing sheet checks and the roll log
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
)

const (
	// DefaultLabel is used when a roll has no label
	DefaultLabel = "Roll"

	d20 = 20
)

// Service defines the interface for dice operations
type Service interface {
	// Roll rolls a d20, adds the bonus and records the result in the roll log
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	RollLogRepo rolllog.Repository
	IDGenerator idgen.Generator
	// Roller is optional; dice.DefaultRoller is used when nil
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	rollLogRepo rolllog.Repository
	idGen       idgen.Generator
	roller      dice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		rollLogRepo: cfg.RollLogRepo,
		idGen:       cfg.IDGenerator,
		roller:      roller,
	}, nil
}

// Roll rolls a d20 with the toolkit roller. A failure to record the roll is
// logged and does not discard the result.
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Owner == nil || input.Owner.GetID() == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	natural, err := o.roller.Roll(d20)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to roll d20")
	}
	if natural < 1 || natural > d20 {
		return nil, errors.Internalf("roller returned %d for a d20", natural)
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		label = DefaultLabel
	}

	entry := &rolllog.Entry{
		ID:    o.idGen.Generate(),
		Label: label,
		D20:   natural,
		Bonus: input.Bonus,
		Total: natural + input.Bonus,
		Crit:  natural == d20,
		Fail:  natural == 1,
	}

	out, err := o.rollLogRepo.Append(ctx, rolllog.AppendInput{
		EntityID: input.Owner.GetID(),
		Entry:    entry,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record roll",
			"entity_id", input.Owner.GetID(),
			"entity_type", input.Owner.GetType(),
			"label", label,
			"error", err.Error(),
		)
	} else {
		entry = out.Entry
	}

	slog.DebugContext(ctx, "d20 rolled",
		"entity_id", input.Owner.GetID(),
		"label", label,
		"summary", Describe(entry),
	)

	return &RollOutput{Roll: entry}, nil
}

// GetRollLog returns the entity's recorded rolls, newest first
func (o *orchestrator) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	out, err := o.rollLogRepo.List(ctx, rolllog.ListInput{
		EntityID: input.EntityID,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read roll log")
	}

	return &GetRollLogOutput{Rolls: out.Entries}, nil
}

// ClearRollLog removes every recorded roll for the entity
func (o *orchestrator) ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	out, err := o.rollLogRepo.Clear(ctx, rolllog.ClearInput{EntityID: input.EntityID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear roll log")
	}

	slog.InfoContext(ctx, "Roll log cleared",
		"entity_id", input.EntityID,
		"rolls_deleted", out.RollsDeleted,
	)

	return &ClearRollLogOutput{RollsDeleted: out.RollsDeleted}, nil
}

// Describe formats a roll the way the log pane shows it, e.g. "Stealth: 17 (d20:12+5)"
func Describe(e *rolllog.Entry) string {
	if e == nil {
		return ""
	}
	sign := "+"
	bonus := e.Bonus
	if bonus < 0 {
		sign = "-"
		bonus = -bonus
	}
	return fmt.Sprintf("%s: %d (d20:%d%s%d)", e.Label, e.Total, e.D20, sign, bonus)
}
