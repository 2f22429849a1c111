package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wildgrove/encounter-api/internal/clients/inventory"
	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/testutils"
)

type RedisClientTestSuite struct {
	suite.Suite
	client  inventory.Client
	cleanup func()
	ctx     context.Context
}

func (s *RedisClientTestSuite) SetupTest() {
	redisClient, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	client, err := inventory.NewRedisClient(&inventory.Config{Client: redisClient})
	s.Require().NoError(err)
	s.client = client
}

func (s *RedisClientTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisClientTestSuite) TestGrantAndConsume() {
	granted, err := s.client.GrantItem(s.ctx, &inventory.GrantItemInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
		Quantity: 3,
	})
	s.Require().NoError(err)
	s.Equal(int64(3), granted.Quantity)

	consumed, err := s.client.ConsumeItem(s.ctx, &inventory.ConsumeItemInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
	})
	s.Require().NoError(err)
	s.Equal(int64(2), consumed.Remaining)

	quantity, err := s.client.GetQuantity(s.ctx, &inventory.GetQuantityInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
	})
	s.Require().NoError(err)
	s.Equal(int64(2), quantity.Quantity)
}

func (s *RedisClientTestSuite) TestConsumeItem_NoneHeld() {
	_, err := s.client.ConsumeItem(s.ctx, &inventory.ConsumeItemInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// The failed consume does not leave a negative count behind
	quantity, err := s.client.GetQuantity(s.ctx, &inventory.GetQuantityInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), quantity.Quantity)
}

func (s *RedisClientTestSuite) TestConsumeItem_ConcurrentConsumersCannotOverdraw() {
	const held = 5
	const consumers = 12

	_, err := s.client.GrantItem(s.ctx, &inventory.GrantItemInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
		Quantity: held,
	})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	outcomes := make([]error, consumers)
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.client.ConsumeItem(s.ctx, &inventory.ConsumeItemInput{
				PlayerID: "player_1",
				ItemID:   "item_orb",
			})
			outcomes[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range outcomes {
		if err == nil {
			succeeded++
		} else {
			s.True(errors.IsFailedPrecondition(err))
		}
	}
	s.Equal(held, succeeded)

	quantity, err := s.client.GetQuantity(s.ctx, &inventory.GetQuantityInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), quantity.Quantity)
}

func (s *RedisClientTestSuite) TestGetQuantity_MissingItemIsZero() {
	quantity, err := s.client.GetQuantity(s.ctx, &inventory.GetQuantityInput{
		PlayerID: "player_1",
		ItemID:   "item_never_granted",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), quantity.Quantity)
}

func (s *RedisClientTestSuite) TestValidation() {
	_, err := s.client.GrantItem(s.ctx, &inventory.GrantItemInput{ItemID: "item_orb", Quantity: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.GrantItem(s.ctx, &inventory.GrantItemInput{
		PlayerID: "player_1",
		ItemID:   "item_orb",
		Quantity: 0,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.client.ConsumeItem(s.ctx, &inventory.ConsumeItemInput{PlayerID: "player_1"})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisClientTestSuite(t *testing.T) {
	suite.Run(t, new(RedisClientTestSuite))
}
