package mcp_test

import (
	"context"
	"testing"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/mcp"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
	editormock "github.com/KirkDiggler/rpg-sheet/internal/services/editor/mock"
)

type ToolsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEditor *editormock.MockService
	ctx        context.Context
}

func TestToolsSuite(t *testing.T) {
	suite.Run(t, new(ToolsTestSuite))
}

func (s *ToolsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEditor = editormock.NewMockService(s.ctrl)
	s.ctx = context.Background()
}

func (s *ToolsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ToolsTestSuite) TestNewRequiresService() {
	_, err := mcp.New(&mcp.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ToolsTestSuite) TestServerListsTools() {
	server, err := mcp.New(&mcp.Config{EditorService: s.mockEditor})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	serverTransport, clientTransport := sdk.NewInMemoryTransports()
	served := make(chan error, 1)
	go func() {
		served <- server.Serve(ctx, serverTransport)
	}()

	client := sdk.NewClient(&sdk.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	s.Require().NoError(err)

	tools, err := session.ListTools(ctx, nil)
	s.Require().NoError(err)

	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	s.ElementsMatch([]string{"list_characters", "get_sheet", "roll_check", "toggle_spell_slot"}, names)

	cancel()

	select {
	case err := <-served:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.Fail("server did not stop after cancel")
	}
	_ = session.Close()
}

func (s *ToolsTestSuite) TestListCharacters() {
	s.mockEditor.EXPECT().
		ListCharacters(gomock.Any(), gomock.Any()).
		Return(&editorsvc.ListCharactersOutput{Characters: []*characterrepo.Summary{
			{ID: "char_1", Name: "Vesper", Class: "Warlock", Level: 5},
		}}, nil)

	_, out, err := mcp.ListCharactersHandler(s.mockEditor)(s.ctx, &sdk.CallToolRequest{}, mcp.ListCharactersInput{})
	s.Require().NoError(err)
	s.Equal([]mcp.CharacterResult{{ID: "char_1", Name: "Vesper", Class: "Warlock", Level: 5}}, out.Characters)
}

func (s *ToolsTestSuite) TestGetSheet() {
	attack := 8
	c := sheet.NewCharacter("Vesper")
	c.ID = "char_1"

	s.mockEditor.EXPECT().
		GetSheet(gomock.Any(), &editorsvc.GetSheetInput{CharacterID: "char_1"}).
		Return(&editorsvc.GetSheetOutput{Sheet: &editorsvc.Sheet{
			Character: c,
			Derived: &engine.DerivedView{
				ProficiencyBonus: 2,
				Modifiers:        map[sheet.Ability]int{sheet.AbilityCharisma: 4},
				Saves:            map[sheet.Ability]int{sheet.AbilityCharisma: 4},
				Skills: map[string]*engine.SkillView{
					"deception": {Key: "deception", Bonus: 6},
				},
				Spellcasting: &engine.SpellcastingView{SaveDC: 14, AttackBonus: 6},
				Spells: []*engine.EntryView{
					{Index: 0, Name: "Eldritch Blast", AttackBonus: &attack},
				},
				SpellSlots: []*engine.SlotView{{Level: "1", Total: 2, Used: 1, Available: 1}},
			},
		}}, nil)

	_, out, err := mcp.GetSheetHandler(s.mockEditor)(s.ctx, &sdk.CallToolRequest{}, mcp.GetSheetInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	s.Equal("Vesper", out.Name)
	s.Equal(4, out.Saves["cha"])
	s.Equal(6, out.Skills["deception"])
	s.Equal(14, out.SpellSaveDC)
	s.Require().Len(out.Spells, 1)
	s.Equal(&attack, out.Spells[0].AttackBonus)
	s.Equal([]mcp.SlotResult{{Level: "1", Total: 2, Used: 1, Available: 1}}, out.SpellSlots)
}

func (s *ToolsTestSuite) TestRollCheck() {
	s.mockEditor.EXPECT().
		RollCheck(gomock.Any(), &editorsvc.RollCheckInput{
			CharacterID: "char_1",
			Kind:        editorsvc.CheckKindSave,
			Key:         "wis",
		}).
		Return(&editorsvc.RollOutput{
			Roll: &rolllog.Entry{Label: "WIS Save", D20: 20, Bonus: 1, Total: 21, Crit: true},
		}, nil)

	_, out, err := mcp.RollCheckHandler(s.mockEditor)(s.ctx, &sdk.CallToolRequest{}, mcp.RollCheckInput{
		CharacterID: "char_1",
		Kind:        "save",
		Key:         "wis",
	})
	s.Require().NoError(err)
	s.True(out.Crit)
	s.Equal("WIS Save: 21 (d20:20+1)", out.Summary)
}

func (s *ToolsTestSuite) TestToggleSpellSlotError() {
	s.mockEditor.EXPECT().
		ToggleSpellSlot(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("no spell slots configured for level 4"))

	_, _, err := mcp.ToggleSpellSlotHandler(s.mockEditor)(s.ctx, &sdk.CallToolRequest{}, mcp.ToggleSpellSlotInput{
		CharacterID: "char_1",
		Level:       "4",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
