package encountersession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/wildgrove/encounter-api/internal/errors"
	"github.com/wildgrove/encounter-api/internal/pkg/clock"
	redisclient "github.com/wildgrove/encounter-api/internal/redis"
)

const (
	// Key patterns: encounter:active:{player_id} and
	// encounter:resolved:{player_id}:{session_id}
	activeKeyPrefix   = "encounter:active:"
	resolvedKeyPrefix = "encounter:resolved:"

	defaultTTL           = 30 * time.Minute
	defaultResolutionTTL = 5 * time.Minute

	// Error messages
	errSessionNil     = "session cannot be nil"
	errPlayerIDEmpty  = "player ID cannot be empty"
	errSessionIDEmpty = "session ID cannot be empty"
	errSessionExpired = "session has already expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for encounter sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new ACTIVE session with SETNX so that concurrent searches
// for the same player cannot both create one
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	session := *input.Session
	session.State = StateActive
	session.Outcome = OutcomePending
	session.CreatedAt = now
	session.ExpiresAt = now.Add(ttl)

	sessionJSON, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := activeKey(session.PlayerID)
	ok, err := r.client.SetNX(ctx, key, sessionJSON, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("player %s already has an active encounter", session.PlayerID)
	}

	return &CreateOutput{Session: &session}, nil
}

// GetActive retrieves the player's active session
func (r *redisRepository) GetActive(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := activeKey(input.PlayerID)
	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no active encounter session")
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// An expired session counts as fled; clean it up
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("encounter session has expired")
	}

	return &GetOutput{Session: &session}, nil
}

// Update replaces the player's active session, keeping its remaining TTL
func (r *redisRepository) Update(ctx context.Context, session *Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}

	now := r.clock.Now()
	if now.After(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}
	remainingTTL := session.ExpiresAt.Sub(now)

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	key := activeKey(session.PlayerID)
	if err := r.client.Set(ctx, key, sessionJSON, remainingTTL).Err(); err != nil {
		return errors.Wrapf(err, "failed to update session in Redis")
	}

	return nil
}

// Resolve deletes the active session and writes the resolution record in
// one transaction
func (r *redisRepository) Resolve(ctx context.Context, input ResolveInput) (*ResolveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Resolution == nil {
		return nil, errors.InvalidArgument("resolution cannot be nil")
	}
	if input.Resolution.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	resolution := *input.Resolution
	resolution.PlayerID = input.PlayerID
	resolution.ResolvedAt = r.clock.Now()

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultResolutionTTL
	}

	resolutionJSON, err := json.Marshal(&resolution)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal resolution")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, activeKey(input.PlayerID))
	pipe.Set(ctx, resolvedKey(input.PlayerID, resolution.SessionID), resolutionJSON, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to resolve session")
	}

	return &ResolveOutput{Resolution: &resolution}, nil
}

// GetResolution retrieves a resolution record by session ID
func (r *redisRepository) GetResolution(ctx context.Context, input GetResolutionInput) (*GetResolutionOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	resolutionJSON, err := r.client.Get(ctx, resolvedKey(input.PlayerID, input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no resolution record")
		}
		return nil, errors.Wrapf(err, "failed to get resolution from Redis")
	}

	var resolution Resolution
	if err := json.Unmarshal([]byte(resolutionJSON), &resolution); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal resolution")
	}

	return &GetResolutionOutput{Resolution: &resolution}, nil
}

func activeKey(playerID string) string {
	return activeKeyPrefix + playerID
}

func resolvedKey(playerID, sessionID string) string {
	return fmt.Sprintf("%s%s:%s", resolvedKeyPrefix, playerID, sessionID)
}
