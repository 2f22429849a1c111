package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/wildgrove/encounter-api/internal/errors"
	v1alpha1 "github.com/wildgrove/encounter-api/internal/handlers/api/v1alpha1"
	"github.com/wildgrove/encounter-api/internal/orchestrators/battle"
	battlemock "github.com/wildgrove/encounter-api/internal/orchestrators/battle/mock"
	"github.com/wildgrove/encounter-api/internal/orchestrators/encounter"
	encountermock "github.com/wildgrove/encounter-api/internal/orchestrators/encounter/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	encounters *encountermock.MockService
	battles    *battlemock.MockService
	server     *httptest.Server
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.encounters = encountermock.NewMockService(s.ctrl)
	s.battles = battlemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		EncounterService: s.encounters,
		BattleService:    s.battles,
	})
	s.Require().NoError(err)

	mux := http.NewServeMux()
	handler.Register(mux)
	s.server = httptest.NewServer(mux)
}

func (s *HandlerTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body any) (*http.Response, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	var decoded map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func (s *HandlerTestSuite) TestSearch() {
	s.encounters.EXPECT().
		Search(gomock.Any(), &encounter.SearchInput{
			PlayerID: "player_1",
			MapSlug:  "verdant-grove",
		}).
		Return(&encounter.SearchOutput{
			EncounterID: "enc_1",
			Creature: &encounter.WildCreature{
				SpeciesID: "species_flit",
				Name:      "Flit",
				Level:     5,
				HP:        28,
				MaxHP:     28,
			},
			Progress: &encounter.MapProgress{
				TotalSearches: 1,
				MapExp:        10,
				MapLevel:      1,
				ExpToNext:     240,
			},
		}, nil)

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/search",
		map[string]string{"map_slug": "verdant-grove"})
	s.Equal(http.StatusOK, resp.StatusCode)

	s.Equal("enc_1", body["encounter_id"])
	creature := body["creature"].(map[string]any)
	s.Equal("species_flit", creature["species_id"])
	s.Equal(float64(5), creature["level"])
	progress := body["progress"].(map[string]any)
	s.Equal(float64(1), progress["total_searches"])
}

func (s *HandlerTestSuite) TestSearch_LockedMap() {
	s.encounters.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, errors.MapLockedf("Ember Ridge unlocks after 5 searches on map_verdant"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/search",
		map[string]string{"map_slug": "ember-ridge"})
	s.Equal(http.StatusLocked, resp.StatusCode)
	s.Equal("MAP_LOCKED", body["code"])
	s.NotEmpty(body["message"])
}

func (s *HandlerTestSuite) TestSearch_UnknownMap() {
	s.encounters.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("map nowhere not found"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/search",
		map[string]string{"map_slug": "nowhere"})
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("NOT_FOUND", body["code"])
}

func (s *HandlerTestSuite) TestSearch_MalformedBody() {
	req, err := http.NewRequest(http.MethodPost,
		s.server.URL+"/v1alpha1/players/player_1/search", strings.NewReader("{not json"))
	s.Require().NoError(err)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestGetMapState() {
	s.encounters.EXPECT().
		GetMapState(gomock.Any(), &encounter.GetMapStateInput{
			PlayerID: "player_1",
			MapSlug:  "ember-ridge",
		}).
		Return(&encounter.GetMapStateOutput{
			MapID:  "map_ember",
			Name:   "Ember Ridge",
			Locked: true,
			Unlock: &encounter.UnlockStatus{
				RequiredSearches: 5,
				CurrentSearches:  2,
				SourceMapID:      "map_verdant",
				SourceMapName:    "Verdant Grove",
			},
			Progress: &encounter.MapProgress{},
		}, nil)

	resp, body := s.do(http.MethodGet, "/v1alpha1/players/player_1/maps/ember-ridge", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	s.Equal(true, body["locked"])
	unlock := body["unlock"].(map[string]any)
	s.Equal(float64(5), unlock["required_searches"])
	s.Equal(float64(2), unlock["current_searches"])
	s.Equal("map_verdant", unlock["source_map_id"])
}

func (s *HandlerTestSuite) TestAttack() {
	s.encounters.EXPECT().
		Attack(gomock.Any(), &encounter.AttackInput{
			PlayerID:    "player_1",
			EncounterID: "enc_1",
		}).
		Return(&encounter.AttackOutput{
			Damage:  18,
			HP:      14,
			MaxHP:   32,
			Message: "Flit took 18 damage!",
		}, nil)

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/encounters/enc_1/attack", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(18), body["damage"])
	s.Equal(float64(14), body["hp"])
	s.Equal(false, body["defeated"])
}

func (s *HandlerTestSuite) TestAttack_NoActiveEncounter() {
	s.encounters.EXPECT().
		Attack(gomock.Any(), gomock.Any()).
		Return(nil, errors.NoActiveEncounter("no active encounter"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/encounters/enc_ghost/attack", nil)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("NO_ACTIVE_ENCOUNTER", body["code"])
}

// A bare catch body routes to Catch; one naming a tool routes to
// UseCaptureTool
func (s *HandlerTestSuite) TestCatch_Dispatch() {
	s.encounters.EXPECT().
		Catch(gomock.Any(), &encounter.CatchInput{
			PlayerID:    "player_1",
			EncounterID: "enc_1",
		}).
		Return(&encounter.CatchOutput{
			Caught:  false,
			Chance:  0.26,
			Message: "Flit broke free!",
		}, nil)

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/encounters/enc_1/catch", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(false, body["caught"])
	s.InDelta(0.26, body["chance"].(float64), 1e-9)

	s.encounters.EXPECT().
		UseCaptureTool(gomock.Any(), &encounter.UseCaptureToolInput{
			PlayerID:    "player_1",
			EncounterID: "enc_1",
			ToolID:      "item_great_orb",
		}).
		Return(&encounter.CatchOutput{
			Caught:  true,
			Chance:  0.39,
			Message: "Gotcha! Flit was caught!",
		}, nil)

	resp, body = s.do(http.MethodPost, "/v1alpha1/players/player_1/encounters/enc_1/catch",
		map[string]string{"tool_id": "item_great_orb"})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(true, body["caught"])
}

func (s *HandlerTestSuite) TestCatch_InvalidTool() {
	s.encounters.EXPECT().
		UseCaptureTool(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidCaptureToolf("Berry is not a capture tool"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/encounters/enc_1/catch",
		map[string]string{"tool_id": "item_berry"})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_CAPTURE_TOOL", body["code"])
}

func (s *HandlerTestSuite) TestRun() {
	s.encounters.EXPECT().
		Run(gomock.Any(), &encounter.RunInput{
			PlayerID:    "player_1",
			EncounterID: "enc_1",
		}).
		Return(&encounter.RunOutput{Message: "Got away safely!"}, nil)

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/encounters/enc_1/run", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Got away safely!", body["message"])
}

func (s *HandlerTestSuite) TestStartBattle() {
	s.battles.EXPECT().
		StartBattle(gomock.Any(), &battle.StartBattleInput{
			PlayerID:  "player_1",
			TrainerID: "trainer_rowan",
		}).
		Return(&battle.StartBattleOutput{
			BattleID:    "btl_1",
			TrainerID:   "trainer_rowan",
			TrainerName: "Ranger Rowan",
			Team: []battle.BattleCreatureView{
				{SpeciesID: "species_flit", Name: "Flit", Level: 5, HP: 28, MaxHP: 28},
			},
			Opponent: &battle.BattleCreatureView{SpeciesID: "species_flit", Name: "Flit", Level: 5, HP: 28, MaxHP: 28},
		}, nil)

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/battles",
		map[string]string{"trainer_id": "trainer_rowan"})
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal("btl_1", body["battle_id"])
	s.Equal("Ranger Rowan", body["trainer_name"])
	s.Len(body["team"].([]any), 1)
}

func (s *HandlerTestSuite) TestBattleAttack() {
	s.battles.EXPECT().
		Attack(gomock.Any(), &battle.AttackInput{
			PlayerID: "player_1",
			BattleID: "btl_1",
			MoveID:   "move_ember_burst",
		}).
		Return(&battle.AttackOutput{
			Damage:   26,
			HP:       2,
			MaxHP:    28,
			Complete: false,
			Player:   &battle.PlayerState{CreatureID: "crt_1", MP: 34, MaxMP: 40},
			Message:  "Flit took 26 damage!",
		}, nil)

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/battles/btl_1/attack",
		map[string]string{"move_id": "move_ember_burst"})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(26), body["damage"])
	player := body["player"].(map[string]any)
	s.Equal(float64(34), player["mp"])
}

func (s *HandlerTestSuite) TestBattleAttack_AlreadyComplete() {
	s.battles.EXPECT().
		Attack(gomock.Any(), gomock.Any()).
		Return(nil, errors.BattleAlreadyComplete("the battle is over; resolve it to collect rewards"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/battles/btl_1/attack",
		map[string]string{"move_id": "move_strike"})
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("BATTLE_ALREADY_COMPLETE", body["code"])
}

func (s *HandlerTestSuite) TestResolveBattle() {
	s.battles.EXPECT().
		ResolveBattle(gomock.Any(), &battle.ResolveBattleInput{
			PlayerID:  "player_1",
			TrainerID: "trainer_rowan",
		}).
		Return(&battle.ResolveBattleOutput{
			Creature: &battle.CreatureResult{
				CreatureID:      "crt_1",
				ExpGained:       360,
				LevelsGained:    1,
				HappinessGained: 5,
			},
			Rewards: &battle.RewardsResult{
				Coins:      120,
				TrainerExp: 70,
				Prize: &battle.PrizeResult{
					SpeciesID:  "species_cinder",
					Name:       "Cinder",
					CreatureID: "crt_2",
				},
			},
			NextTrainerID: "trainer_sage",
		}, nil)

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/battles/resolve",
		map[string]string{"trainer_id": "trainer_rowan"})
	s.Equal(http.StatusOK, resp.StatusCode)

	rewards := body["rewards"].(map[string]any)
	s.Equal(float64(120), rewards["coins"])
	prize := rewards["prize"].(map[string]any)
	s.Equal("species_cinder", prize["species_id"])
	s.Equal(false, prize["already_claimed"])
	s.Equal("trainer_sage", body["next_trainer_id"])
	s.Equal(false, body["already_resolved"])
}

func (s *HandlerTestSuite) TestResolveBattle_NotComplete() {
	s.battles.EXPECT().
		ResolveBattle(gomock.Any(), gomock.Any()).
		Return(nil, errors.BattleNotComplete("the trainer still has creatures standing"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/battles/resolve",
		map[string]string{"trainer_id": "trainer_rowan"})
	s.Equal(http.StatusPreconditionFailed, resp.StatusCode)
	s.Equal("BATTLE_NOT_COMPLETE", body["code"])
}

func (s *HandlerTestSuite) TestValidationError() {
	s.encounters.EXPECT().
		Search(gomock.Any(), &encounter.SearchInput{PlayerID: "player_1"}).
		Return(nil, errors.InvalidArgument("MapSlug is required"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/search",
		map[string]string{})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_ARGUMENT", body["code"])
}

func (s *HandlerTestSuite) TestInternalErrorHidesDetail() {
	s.encounters.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("content backend unreachable"))

	resp, body := s.do(http.MethodPost, "/v1alpha1/players/player_1/search",
		map[string]string{"map_slug": "verdant-grove"})
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("INTERNAL", body["code"])
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
