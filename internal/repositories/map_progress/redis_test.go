package mapprogress_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wildgrove/encounter-api/internal/errors"
	mapprogress "github.com/wildgrove/encounter-api/internal/repositories/map_progress"
	"github.com/wildgrove/encounter-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    mapprogress.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := mapprogress.NewRedisRepository(&mapprogress.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) TestRecordSearch() {
	output, err := s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{
		PlayerID:  "player_1",
		MapID:     "map_verdant",
		ExpGained: 10,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), output.Progress.TotalSearches)
	s.Equal(int64(10), output.Progress.MapExp)

	output, err = s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{
		PlayerID: "player_1",
		MapID:    "map_verdant",
	})
	s.Require().NoError(err)
	s.Equal(int64(2), output.Progress.TotalSearches)
	s.Equal(int64(10), output.Progress.MapExp)
}

func (s *RedisRepositoryTestSuite) TestRecordSearch_CountersAreScoped() {
	_, err := s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{
		PlayerID: "player_1",
		MapID:    "map_verdant",
	})
	s.Require().NoError(err)

	other, err := s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{
		PlayerID: "player_1",
		MapID:    "map_ember",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), other.Progress.TotalSearches)

	otherPlayer, err := s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{
		PlayerID: "player_2",
		MapID:    "map_verdant",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), otherPlayer.Progress.TotalSearches)
}

func (s *RedisRepositoryTestSuite) TestRecordSearch_ConcurrentIncrements() {
	const workers = 20

	var wg sync.WaitGroup
	results := make([]int64, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			output, err := s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{
				PlayerID: "player_1",
				MapID:    "map_verdant",
			})
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = output.Progress.TotalSearches
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.Require().NoError(err)
	}

	// Every call observed a distinct value and none were lost
	seen := make(map[int64]bool, workers)
	for _, v := range results {
		s.False(seen[v], "duplicate counter value %d", v)
		seen[v] = true
	}

	final, err := s.repo.Get(s.ctx, mapprogress.GetInput{PlayerID: "player_1", MapID: "map_verdant"})
	s.Require().NoError(err)
	s.Equal(int64(workers), final.Progress.TotalSearches)
}

func (s *RedisRepositoryTestSuite) TestGet_MissingProgressIsZero() {
	output, err := s.repo.Get(s.ctx, mapprogress.GetInput{
		PlayerID: "player_1",
		MapID:    "map_never_visited",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), output.Progress.TotalSearches)
	s.Equal(int64(0), output.Progress.MapExp)
}

func (s *RedisRepositoryTestSuite) TestAddExp() {
	_, err := s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{
		PlayerID: "player_1",
		MapID:    "map_verdant",
	})
	s.Require().NoError(err)

	output, err := s.repo.AddExp(s.ctx, mapprogress.AddExpInput{
		PlayerID: "player_1",
		MapID:    "map_verdant",
		Exp:      25,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), output.Progress.TotalSearches)
	s.Equal(int64(25), output.Progress.MapExp)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.RecordSearch(s.ctx, mapprogress.RecordSearchInput{MapID: "map_verdant"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, mapprogress.GetInput{PlayerID: "player_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.AddExp(s.ctx, mapprogress.AddExpInput{
		PlayerID: "player_1",
		MapID:    "map_verdant",
		Exp:      -1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
