package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	editorsvc "github.com/KirkDiggler/rpg-sheet/internal/services/editor"
	editormock "github.com/KirkDiggler/rpg-sheet/internal/services/editor/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const bufSize = 1024 * 1024

type SheetHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockEditor *editormock.MockService
	server     *grpc.Server
	conn       *grpc.ClientConn
	client     *v1alpha1.SheetServiceClient
	ctx        context.Context
}

func TestSheetHandlerSuite(t *testing.T) {
	suite.Run(t, new(SheetHandlerTestSuite))
}

func (s *SheetHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEditor = editormock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{EditorService: s.mockEditor})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterSheetServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewSheetServiceClient(s.conn)
}

func (s *SheetHandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *SheetHandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SheetHandlerTestSuite) TestGetSheetRoundTrip() {
	c := testutils.CreateTestWarlock("char_1")
	s.mockEditor.EXPECT().
		GetSheet(gomock.Any(), &editorsvc.GetSheetInput{
			CharacterID: "char_1",
			Spells:      &editorsvc.SpellQuery{Search: "blast", Sort: engine.SpellSortName},
		}).
		Return(&editorsvc.GetSheetOutput{
			Sheet: &editorsvc.Sheet{
				Character: c,
				Derived: &engine.DerivedView{
					ProficiencyBonus: 3,
					Saves:            map[sheet.Ability]int{sheet.AbilityDexterity: 2},
				},
			},
			VisibleSpells: []int{0},
		}, nil)

	resp, err := s.client.GetSheet(s.ctx, &v1alpha1.GetSheetRequest{
		CharacterID: "char_1",
		SpellSearch: "blast",
		SpellSort:   engine.SpellSortName,
	})
	s.Require().NoError(err)

	s.Equal([]int{0}, resp.VisibleSpells)
	s.Equal(testutils.TestCharacterName, resp.Sheet.Character.Name)
	s.Equal(18, resp.Sheet.Character.Stats[sheet.AbilityCharisma])
	s.Require().Len(resp.Sheet.Character.Spells, 2)
	s.Equal("Eldritch Blast", resp.Sheet.Character.Spells[0].Name)
	s.Equal(sheet.CantripLevel, resp.Sheet.Character.Spells[0].Level)
	s.Equal(3, resp.Sheet.Derived.ProficiencyBonus)
	s.Equal(2, resp.Sheet.Derived.Saves[sheet.AbilityDexterity])
}

func (s *SheetHandlerTestSuite) TestGetSheetRequiresCharacterID() {
	_, err := s.client.GetSheet(s.ctx, &v1alpha1.GetSheetRequest{})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *SheetHandlerTestSuite) TestServiceErrorsBecomeStatus() {
	s.mockEditor.EXPECT().
		UpdateStat(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character with ID char_9 not found"))

	_, err := s.client.UpdateStat(s.ctx, &v1alpha1.UpdateStatRequest{
		CharacterID: "char_9",
		Ability:     sheet.AbilityStrength,
		Score:       12,
	})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}

func (s *SheetHandlerTestSuite) TestUpsertEntryPicksCategoryField() {
	index := 0
	s.mockEditor.EXPECT().
		UpsertEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *editorsvc.UpsertEntryInput) (*editorsvc.SheetOutput, error) {
			spell, ok := in.Entry.(*sheet.Spell)
			if s.True(ok) {
				s.Equal("Hex", spell.Name)
				s.Equal(sheet.AbilityCharisma, spell.Stat)
			}
			s.Equal(&index, in.Index)
			return &editorsvc.SheetOutput{Sheet: &editorsvc.Sheet{Character: sheet.NewCharacter("")}}, nil
		})

	resp, err := s.client.UpsertEntry(s.ctx, &v1alpha1.UpsertEntryRequest{
		CharacterID: "char_1",
		Category:    sheet.CategorySpell,
		Index:       &index,
		Spell: &sheet.Spell{Action: sheet.Action{
			Name: "Hex", Type: sheet.EntryTypeUtility, Stat: sheet.AbilityCharisma,
		}, Level: "1"},
	})
	s.Require().NoError(err)
	s.Equal(sheet.DefaultName, resp.Sheet.Character.Name)
}

func (s *SheetHandlerTestSuite) TestUpsertEntryRequiresMatchingField() {
	_, err := s.client.UpsertEntry(s.ctx, &v1alpha1.UpsertEntryRequest{
		CharacterID: "char_1",
		Category:    sheet.CategoryWeapon,
		Spell:       &sheet.Spell{Action: sheet.Action{Name: "Hex"}},
	})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.UpsertEntry(s.ctx, &v1alpha1.UpsertEntryRequest{
		CharacterID: "char_1",
		Category:    sheet.CategoryLanguage,
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *SheetHandlerTestSuite) TestRollCheck() {
	s.mockEditor.EXPECT().
		RollCheck(gomock.Any(), &editorsvc.RollCheckInput{
			CharacterID: "char_1",
			Kind:        editorsvc.CheckKindSkill,
			Key:         "stealth",
		}).
		Return(&editorsvc.RollOutput{
			Roll:    &rolllog.Entry{ID: "roll_1", Label: "Stealth", D20: 12, Bonus: 5, Total: 17},
			Summary: "Stealth: 17 (d20:12+5)",
		}, nil)

	resp, err := s.client.RollCheck(s.ctx, &v1alpha1.RollCheckRequest{
		CharacterID: "char_1",
		Kind:        "skill",
		Key:         "stealth",
	})
	s.Require().NoError(err)
	s.Equal(17, resp.Roll.Total)
	s.Equal("Stealth: 17 (d20:12+5)", resp.Summary)
}

func (s *SheetHandlerTestSuite) TestListCharacters() {
	s.mockEditor.EXPECT().
		ListCharacters(gomock.Any(), gomock.Any()).
		Return(&editorsvc.ListCharactersOutput{Characters: []*characterrepo.Summary{
			{ID: "char_1", Name: "Vesper", Class: "Warlock", Level: 5, UpdatedAt: 1_700_000_000},
		}}, nil)

	resp, err := s.client.ListCharacters(s.ctx, &v1alpha1.ListCharactersRequest{})
	s.Require().NoError(err)
	s.Require().Len(resp.Characters, 1)
	s.Equal(&v1alpha1.CharacterSummary{
		ID: "char_1", Name: "Vesper", Class: "Warlock", Level: 5, UpdatedAt: 1_700_000_000,
	}, resp.Characters[0])
}

func (s *SheetHandlerTestSuite) TestResolveLinks() {
	s.mockEditor.EXPECT().
		ResolveLinks(gomock.Any(), &editorsvc.ResolveLinksInput{CharacterID: "char_1"}).
		Return(&editorsvc.ResolveLinksOutput{Links: []*editorsvc.Link{
			{Category: sheet.CategoryFeat, Index: 0, Name: "War Caster", URL: "http://dnd2024.wikidot.com/feat:war-caster"},
		}}, nil)

	resp, err := s.client.ResolveLinks(s.ctx, &v1alpha1.ResolveLinksRequest{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(resp.Links, 1)
	s.Equal("http://dnd2024.wikidot.com/feat:war-caster", resp.Links[0].URL)
}
