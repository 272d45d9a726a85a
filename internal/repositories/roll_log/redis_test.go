package rolllog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type RollLogRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	repo    rolllog.Repository
	cleanup func()
	ctx     context.Context
}

func TestRollLogRepositorySuite(t *testing.T) {
	suite.Run(t, new(RollLogRepositoryTestSuite))
}

func (s *RollLogRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client:     client,
		Clock:      clock.New(),
		TTL:        time.Hour,
		MaxEntries: 3,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RollLogRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RollLogRepositoryTestSuite) appendRoll(label string, d20 int) {
	_, err := s.repo.Append(s.ctx, rolllog.AppendInput{
		EntityID: "char_1",
		Entry:    &rolllog.Entry{ID: label, Label: label, D20: d20, Bonus: 2, Total: d20 + 2},
	})
	s.Require().NoError(err)
}

func (s *RollLogRepositoryTestSuite) TestAppendAndListNewestFirst() {
	s.appendRoll("first", 4)
	s.appendRoll("second", 20)

	out, err := s.repo.List(s.ctx, rolllog.ListInput{EntityID: "char_1"})
	s.Require().NoError(err)

	s.Require().Len(out.Entries, 2)
	s.Equal("second", out.Entries[0].Label)
	s.Equal(22, out.Entries[0].Total)
	s.False(out.Entries[0].RolledAt.IsZero())
	s.Equal("first", out.Entries[1].Label)
}

func (s *RollLogRepositoryTestSuite) TestTrimsToMaxEntries() {
	for i := 1; i <= 5; i++ {
		s.appendRoll(fmt.Sprintf("roll-%d", i), i)
	}

	out, err := s.repo.List(s.ctx, rolllog.ListInput{EntityID: "char_1"})
	s.Require().NoError(err)

	s.Require().Len(out.Entries, 3)
	s.Equal("roll-5", out.Entries[0].Label)
	s.Equal("roll-3", out.Entries[2].Label)
}

func (s *RollLogRepositoryTestSuite) TestListLimit() {
	s.appendRoll("a", 1)
	s.appendRoll("b", 2)

	out, err := s.repo.List(s.ctx, rolllog.ListInput{EntityID: "char_1", Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal("b", out.Entries[0].Label)
}

func (s *RollLogRepositoryTestSuite) TestExpires() {
	s.appendRoll("old", 10)

	s.mr.FastForward(2 * time.Hour)

	out, err := s.repo.List(s.ctx, rolllog.ListInput{EntityID: "char_1"})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RollLogRepositoryTestSuite) TestClear() {
	s.appendRoll("a", 1)
	s.appendRoll("b", 2)

	out, err := s.repo.Clear(s.ctx, rolllog.ClearInput{EntityID: "char_1"})
	s.Require().NoError(err)
	s.Equal(2, out.RollsDeleted)

	list, err := s.repo.List(s.ctx, rolllog.ListInput{EntityID: "char_1"})
	s.Require().NoError(err)
	s.Empty(list.Entries)
}

func (s *RollLogRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, rolllog.AppendInput{Entry: &rolllog.Entry{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, rolllog.AppendInput{EntityID: "char_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, rolllog.ListInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Clear(s.ctx, rolllog.ClearInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = rolllog.NewRedisRepository(&rolllog.Config{})
	s.True(errors.IsInvalidArgument(err))
}
