package dice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	rolllogmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log/mock"
)

// fixedRoller always returns the same face
type fixedRoller struct {
	face int
	err  error
}

func (r *fixedRoller) Roll(_ int) (int, error) { return r.face, r.err }

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.face
	}
	return out, r.err
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *rolllogmock.MockRepository
	roller   *fixedRoller
	svc      dice.Service
	owner    *sheet.Character
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = rolllogmock.NewMockRepository(s.ctrl)
	s.roller = &fixedRoller{face: 12}
	s.ctx = context.Background()

	owner := sheet.NewCharacter("Vex")
	owner.ID = "char_1"
	s.owner = owner

	svc, err := dice.NewOrchestrator(&dice.Config{
		RollLogRepo: s.mockRepo,
		IDGenerator: idgen.NewSequential("roll"),
		Roller:      s.roller,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectAppend() {
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			s.Equal("char_1", input.EntityID)
			return &rolllog.AppendOutput{Entry: input.Entry}, nil
		})
}

func (s *OrchestratorTestSuite) TestRoll() {
	s.Run("adds bonus and labels", func() {
		s.expectAppend()

		out, err := s.svc.Roll(s.ctx, &dice.RollInput{Owner: s.owner, Bonus: 5, Label: "Stealth"})
		s.Require().NoError(err)

		s.Equal(12, out.Roll.D20)
		s.Equal(17, out.Roll.Total)
		s.Equal("Stealth", out.Roll.Label)
		s.Equal("roll_1", out.Roll.ID)
		s.False(out.Roll.Crit)
		s.False(out.Roll.Fail)
	})

	s.Run("default label", func() {
		s.expectAppend()

		out, err := s.svc.Roll(s.ctx, &dice.RollInput{Owner: s.owner})
		s.Require().NoError(err)
		s.Equal(dice.DefaultLabel, out.Roll.Label)
	})

	s.Run("natural 20 is a crit", func() {
		s.roller.face = 20
		s.expectAppend()

		out, err := s.svc.Roll(s.ctx, &dice.RollInput{Owner: s.owner, Bonus: -1})
		s.Require().NoError(err)
		s.True(out.Roll.Crit)
		s.False(out.Roll.Fail)
		s.Equal(19, out.Roll.Total)
	})

	s.Run("natural 1 is a fail", func() {
		s.roller.face = 1
		s.expectAppend()

		out, err := s.svc.Roll(s.ctx, &dice.RollInput{Owner: s.owner, Bonus: 3})
		s.Require().NoError(err)
		s.True(out.Roll.Fail)
		s.False(out.Roll.Crit)
	})
}

func (s *OrchestratorTestSuite) TestRollKeepsResultWhenLogFails() {
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	out, err := s.svc.Roll(s.ctx, &dice.RollInput{Owner: s.owner, Bonus: 2, Label: "Perception"})
	s.Require().NoError(err)
	s.Equal(14, out.Roll.Total)
}

func (s *OrchestratorTestSuite) TestRollErrors() {
	s.Run("missing owner", func() {
		_, err := s.svc.Roll(s.ctx, &dice.RollInput{Bonus: 1})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("roller failure leaves the log alone", func() {
		s.roller.err = errors.Internal("entropy exhausted")
		_, err := s.svc.Roll(s.ctx, &dice.RollInput{Owner: s.owner})
		s.True(errors.IsUnavailable(err))
	})

	s.Run("out of range face", func() {
		s.roller.err = nil
		s.roller.face = 21
		_, err := s.svc.Roll(s.ctx, &dice.RollInput{Owner: s.owner})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestGetRollLog() {
	entries := []*rolllog.Entry{{ID: "r2", Label: "Stealth"}, {ID: "r1", Label: "Roll"}}
	s.mockRepo.EXPECT().
		List(s.ctx, rolllog.ListInput{EntityID: "char_1", Limit: 10}).
		Return(&rolllog.ListOutput{Entries: entries}, nil)

	out, err := s.svc.GetRollLog(s.ctx, &dice.GetRollLogInput{EntityID: "char_1", Limit: 10})
	s.Require().NoError(err)
	s.Equal(entries, out.Rolls)

	_, err = s.svc.GetRollLog(s.ctx, &dice.GetRollLogInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestClearRollLog() {
	s.mockRepo.EXPECT().
		Clear(s.ctx, rolllog.ClearInput{EntityID: "char_1"}).
		Return(&rolllog.ClearOutput{RollsDeleted: 4}, nil)

	out, err := s.svc.ClearRollLog(s.ctx, &dice.ClearRollLogInput{EntityID: "char_1"})
	s.Require().NoError(err)
	s.Equal(4, out.RollsDeleted)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = dice.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestDescribe(t *testing.T) {
	cases := map[string]*rolllog.Entry{
		"Stealth: 17 (d20:12+5)": {Label: "Stealth", D20: 12, Bonus: 5, Total: 17},
		"STR Save: 3 (d20:4-1)":  {Label: "STR Save", D20: 4, Bonus: -1, Total: 3},
		"Roll: 9 (d20:9+0)":      {Label: "Roll", D20: 9, Total: 9},
	}
	for want, entry := range cases {
		if got := dice.Describe(entry); got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	}
}
