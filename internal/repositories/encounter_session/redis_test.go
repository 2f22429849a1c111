package encountersession_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wildgrove/encounter-api/internal/entities/game"
	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/pkg/clock"
	encountersession "github.com/wildgrove/encounter-api/internal/repositories/encounter_session"
	"github.com/wildgrove/encounter-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    encountersession.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = &clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s.ctx = context.Background()

	repo, err := encountersession.NewRedisRepository(&encountersession.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newSession(id, playerID string) *encountersession.Session {
	return &encountersession.Session{
		ID:       id,
		PlayerID: playerID,
		MapID:    "map_verdant",
		Creature: game.CreatureSnapshot{
			SpeciesID:   "species_flit",
			Name:        "Flit",
			Level:       4,
			CurrentHP:   26,
			MaxHP:       26,
			CaptureRate: 200,
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	output, err := s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_1", "player_1"),
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Session)

	s.Equal(encountersession.StateActive, output.Session.State)
	s.Equal(encountersession.OutcomePending, output.Session.Outcome)
	s.Equal(s.clock.Now(), output.Session.CreatedAt)
	s.Equal(s.clock.Now().Add(30*time.Minute), output.Session.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestCreate_SecondActiveSessionRejected() {
	_, err := s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_1", "player_1"),
	})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_2", "player_1"),
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	// A different player is unaffected
	_, err = s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_3", "player_2"),
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreate_Validation() {
	_, err := s.repo.Create(s.ctx, encountersession.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: &encountersession.Session{ID: "enc_1"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetActive() {
	created, err := s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_1", "player_1"),
	})
	s.Require().NoError(err)

	output, err := s.repo.GetActive(s.ctx, encountersession.GetInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal(created.Session.ID, output.Session.ID)
	s.Equal("species_flit", output.Session.Creature.SpeciesID)
	s.Equal(int32(26), output.Session.Creature.CurrentHP)
}

func (s *RedisRepositoryTestSuite) TestGetActive_NotFound() {
	_, err := s.repo.GetActive(s.ctx, encountersession.GetInput{PlayerID: "player_1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetActive_ExpiredSessionIsGone() {
	_, err := s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_1", "player_1"),
		TTL:     10 * time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(11 * time.Minute)

	_, err = s.repo.GetActive(s.ctx, encountersession.GetInput{PlayerID: "player_1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	// The slot is free again after cleanup
	_, err = s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_2", "player_1"),
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	created, err := s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_1", "player_1"),
	})
	s.Require().NoError(err)

	session := created.Session
	session.Creature.CurrentHP = 13
	s.Require().NoError(s.repo.Update(s.ctx, session))

	output, err := s.repo.GetActive(s.ctx, encountersession.GetInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal(int32(13), output.Session.Creature.CurrentHP)
	// Expiry is unchanged by updates
	s.Equal(created.Session.ExpiresAt, output.Session.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestUpdate_ExpiredSessionRejected() {
	created, err := s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_1", "player_1"),
	})
	s.Require().NoError(err)

	s.clock.Advance(31 * time.Minute)

	err = s.repo.Update(s.ctx, created.Session)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestResolve() {
	created, err := s.repo.Create(s.ctx, encountersession.CreateInput{
		Session: s.newSession("enc_1", "player_1"),
	})
	s.Require().NoError(err)

	output, err := s.repo.Resolve(s.ctx, encountersession.ResolveInput{
		PlayerID: "player_1",
		Resolution: &encountersession.Resolution{
			SessionID:  created.Session.ID,
			Outcome:    encountersession.OutcomeCaught,
			Caught:     true,
			Chance:     0.42,
			CreatureID: "creature_1",
		},
	})
	s.Require().NoError(err)
	s.Equal("player_1", output.Resolution.PlayerID)
	s.Equal(s.clock.Now(), output.Resolution.ResolvedAt)

	// Active slot is cleared
	_, err = s.repo.GetActive(s.ctx, encountersession.GetInput{PlayerID: "player_1"})
	s.True(errors.IsNotFound(err))

	// Resolution record is retrievable for duplicate request replay
	got, err := s.repo.GetResolution(s.ctx, encountersession.GetResolutionInput{
		PlayerID:  "player_1",
		SessionID: "enc_1",
	})
	s.Require().NoError(err)
	s.Equal(encountersession.OutcomeCaught, got.Resolution.Outcome)
	s.True(got.Resolution.Caught)
	s.InDelta(0.42, got.Resolution.Chance, 1e-9)
	s.Equal("creature_1", got.Resolution.CreatureID)
}

func (s *RedisRepositoryTestSuite) TestGetResolution_NotFound() {
	_, err := s.repo.GetResolution(s.ctx, encountersession.GetResolutionInput{
		PlayerID:  "player_1",
		SessionID: "enc_missing",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
