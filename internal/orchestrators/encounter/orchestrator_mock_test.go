package encounter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	collectionmock "github.com/wildgrove/encounter-api/internal/clients/collection/mock"
	"github.com/wildgrove/encounter-api/internal/clients/inventory"
	contentmock "github.com/wildgrove/encounter-api/internal/content/mock"
	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/orchestrators/encounter"
	"github.com/wildgrove/encounter-api/internal/pkg/clock"
	"github.com/wildgrove/encounter-api/internal/pkg/idgen"
	"github.com/wildgrove/encounter-api/internal/pkg/rng"
	encountersession "github.com/wildgrove/encounter-api/internal/repositories/encounter_session"
	mapprogress "github.com/wildgrove/encounter-api/internal/repositories/map_progress"
	"github.com/wildgrove/encounter-api/internal/testutils"
)

// Failure-path tests with mocked collaborators: the backing stores stay
// real so session and counter state can be inspected after an error.
type OrchestratorFailureTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	store        *contentmock.MockStore
	collection   *collectionmock.MockClient
	sessionRepo  encountersession.Repository
	progressRepo mapprogress.Repository
	inventory    inventory.Client
	cleanup      func()
	ctx          context.Context
}

func (s *OrchestratorFailureTestSuite) SetupTest() {
	redisClient, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	s.ctrl = gomock.NewController(s.T())
	s.store = contentmock.NewMockStore(s.ctrl)
	s.collection = collectionmock.NewMockClient(s.ctrl)

	fixed := &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	sessionRepo, err := encountersession.NewRedisRepository(&encountersession.Config{
		Client: redisClient,
		Clock:  fixed,
	})
	s.Require().NoError(err)
	s.sessionRepo = sessionRepo

	progressRepo, err := mapprogress.NewRedisRepository(&mapprogress.Config{Client: redisClient})
	s.Require().NoError(err)
	s.progressRepo = progressRepo

	inventoryClient, err := inventory.NewRedisClient(&inventory.Config{Client: redisClient})
	s.Require().NoError(err)
	s.inventory = inventoryClient
}

func (s *OrchestratorFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *OrchestratorFailureTestSuite) build(floats []float64, ints []int64) encounter.Service {
	svc, err := encounter.NewOrchestrator(&encounter.Config{
		SessionRepo:  s.sessionRepo,
		ProgressRepo: s.progressRepo,
		Content:      s.store,
		Collection:   s.collection,
		Inventory:    s.inventory,
		IDGenerator:  idgen.NewSequential("enc"),
		Random:       &rng.Fixed{Floats: floats, Ints: ints},
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorFailureTestSuite) TestSearch_ContentFailureLeavesCounterUntouched() {
	s.store.EXPECT().
		GetMapBySlug(gomock.Any(), "verdant-grove").
		Return(nil, errors.Internal("content backend unreachable"))

	svc := s.build([]float64{0.99}, nil)

	_, err := svc.Search(s.ctx, &encounter.SearchInput{
		PlayerID: "player_1",
		MapSlug:  "verdant-grove",
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))

	progress, err := s.progressRepo.Get(s.ctx, mapprogress.GetInput{
		PlayerID: "player_1",
		MapID:    "map_verdant",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), progress.Progress.TotalSearches)
}

func (s *OrchestratorFailureTestSuite) TestCatch_GrantFailureKeepsSessionActive() {
	mapDef := &game.MapDefinition{
		ID:            "map_verdant",
		Slug:          "verdant-grove",
		Name:          "Verdant Grove",
		LevelMin:      4,
		LevelMax:      4,
		EncounterRate: 1,
		Species:       []game.WeightedEntry{{RefID: "species_flit", Weight: 1}},
	}
	s.store.EXPECT().
		GetMapBySlug(gomock.Any(), "verdant-grove").
		Return(mapDef, nil)
	s.store.EXPECT().
		GetSpecies(gomock.Any(), "species_flit").
		Return(&game.Species{
			ID:          "species_flit",
			Name:        "Flit",
			CaptureRate: 200,
			BaseHP:      18,
			BaseAttack:  9,
			BaseDefense: 7,
			BaseSpeed:   14,
		}, nil)

	// The capture trial passes but the grant fails
	s.collection.EXPECT().
		CreateCreature(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("collection store unreachable"))

	svc := s.build([]float64{0.0, 0.99, 0.0}, []int64{0})

	search, err := svc.Search(s.ctx, &encounter.SearchInput{
		PlayerID: "player_1",
		MapSlug:  "verdant-grove",
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(search.EncounterID)

	_, err = svc.Catch(s.ctx, &encounter.CatchInput{
		PlayerID:    "player_1",
		EncounterID: search.EncounterID,
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))

	// A failed grant must not resolve the session; the encounter is still
	// there to retry
	active, err := s.sessionRepo.GetActive(s.ctx, encountersession.GetInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal(search.EncounterID, active.Session.ID)
}

func (s *OrchestratorFailureTestSuite) TestAttack_CollectionFailureSurfaces() {
	mapDef := &game.MapDefinition{
		ID:            "map_verdant",
		Slug:          "verdant-grove",
		Name:          "Verdant Grove",
		LevelMin:      4,
		LevelMax:      4,
		EncounterRate: 1,
		Species:       []game.WeightedEntry{{RefID: "species_flit", Weight: 1}},
	}
	s.store.EXPECT().
		GetMapBySlug(gomock.Any(), "verdant-grove").
		Return(mapDef, nil)
	s.store.EXPECT().
		GetSpecies(gomock.Any(), "species_flit").
		Return(&game.Species{ID: "species_flit", Name: "Flit", CaptureRate: 200, BaseHP: 18}, nil)

	s.collection.EXPECT().
		GetActiveCreature(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPreconditionf("player player_1 has no active creature"))

	svc := s.build([]float64{0.0, 0.99}, []int64{0})

	search, err := svc.Search(s.ctx, &encounter.SearchInput{
		PlayerID: "player_1",
		MapSlug:  "verdant-grove",
	})
	s.Require().NoError(err)

	_, err = svc.Attack(s.ctx, &encounter.AttackInput{
		PlayerID:    "player_1",
		EncounterID: search.EncounterID,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func TestOrchestratorFailureTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorFailureTestSuite))
}
