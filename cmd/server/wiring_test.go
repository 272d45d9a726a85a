package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
)

type WiringTestSuite struct {
	suite.Suite
	mr  *miniredis.Miniredis
	ctx context.Context
}

func TestWiringSuite(t *testing.T) {
	suite.Run(t, new(WiringTestSuite))
}

func (s *WiringTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.ctx = context.Background()
}

func (s *WiringTestSuite) load(environ map[string]string) *config.Config {
	environ["RPG_SHEET_REDIS_URL"] = "redis://" + s.mr.Addr() + "/0"
	cfg, err := config.LoadFrom(environ)
	s.Require().NoError(err)
	return cfg
}

func (s *WiringTestSuite) createAndRoll(svc editorsvc.Service) {
	created, err := svc.CreateCharacter(s.ctx, &editorsvc.CreateCharacterInput{Name: "Wired"})
	s.Require().NoError(err)
	id := created.Sheet.Character.ID
	s.NotEmpty(id)

	got, err := svc.GetSheet(s.ctx, &editorsvc.GetSheetInput{CharacterID: id})
	s.Require().NoError(err)
	s.Equal("Wired", got.Sheet.Character.Name)
	s.Equal(2, got.Sheet.Derived.ProficiencyBonus)

	rolled, err := svc.Roll(s.ctx, &editorsvc.RollInput{CharacterID: id, Bonus: 3})
	s.Require().NoError(err)
	s.Equal(rolled.Roll.D20+3, rolled.Roll.Total)

	log, err := svc.GetRollLog(s.ctx, &editorsvc.GetRollLogInput{CharacterID: id})
	s.Require().NoError(err)
	s.Len(log.Rolls, 1)
}

func (s *WiringTestSuite) TestBuildEditorWithRedisStore() {
	cfg := s.load(map[string]string{})

	svc, cleanup, err := buildEditor(s.ctx, cfg)
	s.Require().NoError(err)
	defer cleanup()

	s.createAndRoll(svc)
}

func (s *WiringTestSuite) TestBuildEditorWithSQLiteStore() {
	cfg := s.load(map[string]string{
		"RPG_SHEET_STORE":       config.StoreSQLite,
		"RPG_SHEET_SQLITE_PATH": filepath.Join(s.T().TempDir(), "sheets.db"),
	})

	svc, cleanup, err := buildEditor(s.ctx, cfg)
	s.Require().NoError(err)
	defer cleanup()

	s.createAndRoll(svc)

	// characters live in sqlite, not redis
	s.False(s.mr.Exists("characters:index"))
}

func (s *WiringTestSuite) TestBuildEditorRedisDown() {
	cfg, err := config.LoadFrom(map[string]string{
		"RPG_SHEET_REDIS_URL": "redis://127.0.0.1:1/0",
	})
	s.Require().NoError(err)

	_, _, err = buildEditor(s.ctx, cfg)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *WiringTestSuite) TestBuildEditorBadRulesFile() {
	cfg := s.load(map[string]string{
		"RPG_SHEET_RULES_PATH": filepath.Join(s.T().TempDir(), "missing.yaml"),
	})

	_, _, err := buildEditor(s.ctx, cfg)
	s.Require().Error(err)
}
