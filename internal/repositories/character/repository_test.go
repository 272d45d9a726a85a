package character_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

// RepositoryTestSuite runs the same contract against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T, clk *clock.Fixed) (character.Repository, func())

	repo    character.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, clk *clock.Fixed) (character.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := character.NewRedis(&character.RedisConfig{Client: client, Clock: clk})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, clk *clock.Fixed) (character.Repository, func()) {
			repo, err := character.NewSQLite(&character.SQLiteConfig{
				Path:  filepath.Join(t.TempDir(), "characters.db"),
				Clock: clk,
			})
			if err != nil {
				t.Fatal(err)
			}
			return repo, func() { _ = repo.Close() }
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Unix(1_700_000_000, 0).UTC())
	s.repo, s.cleanup = s.newRepo(s.T(), s.clock)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) newCharacter(id, name string) *sheet.Character {
	c := sheet.NewCharacter(name)
	c.ID = id
	return c
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	c := s.newCharacter("char_1", "Vex")
	c.Spells = []*sheet.Spell{
		{Action: sheet.Action{Name: "Hex", Type: sheet.EntryTypeSpellAttack}, Level: "1", SaveStat: sheet.AbilityWisdom},
	}
	c.SpellInfo.Slots["1"] = sheet.SpellSlot{Total: 2, Used: 1}

	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)
	s.Equal(int64(1_700_000_000), created.Character.CreatedAt)
	s.Zero(c.CreatedAt, "input untouched")

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(created.Character, got.Character)
	s.Equal(sheet.AbilityWisdom, got.Character.Spells[0].SaveStat)
	s.Equal(sheet.SpellSlot{Total: 2, Used: 1}, got.Character.SpellInfo.Slots["1"])
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	s.Run("nil character", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: sheet.NewCharacter("x")})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("duplicate", func() {
		c := s.newCharacter("char_dup", "Dup")
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)

		_, err = s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestUpdateReplacesDocument() {
	c := s.newCharacter("char_2", "Orin")
	c.Languages = []string{"Common", "Elvish"}
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	replacement := s.newCharacter("char_2", "Orin the Bold")
	replacement.Level = 4

	updated, err := s.repo.Update(s.ctx, character.UpdateInput{Character: replacement})
	s.Require().NoError(err)
	s.Equal(int64(1_700_000_000), updated.Character.CreatedAt)
	s.Equal(int64(1_700_000_060), updated.Character.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_2"})
	s.Require().NoError(err)
	s.Equal("Orin the Bold", got.Character.Name)
	s.Equal(4, got.Character.Level)
	s.Empty(got.Character.Languages, "whole document replaced")
}

func (s *RepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.newCharacter("nope", "Nope")})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("char_3", "Gone")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_3"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_3"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_3"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestList() {
	for _, c := range []*sheet.Character{
		s.newCharacter("char_b", "Brom"),
		s.newCharacter("char_a", "Aela"),
		s.newCharacter("char_c", "Cyrus"),
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_c"})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Characters, 2)
	s.Equal("Aela", out.Characters[0].Name)
	s.Equal("char_b", out.Characters[1].ID)
	s.Equal("Warlock", out.Characters[1].Class)
	s.Equal(1, out.Characters[1].Level)
}

func (s *RepositoryTestSuite) TestIDMatchingIndexNameKeepsStoreUsable() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("index", "Index")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter("abc", "Abc")})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "index"})
	s.Require().NoError(err)
	s.Equal("Index", got.Character.Name)

	list, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Characters, 2)
}

func (s *RepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}
