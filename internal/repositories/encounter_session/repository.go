// Package encountersession provides repository interface and types for wild
// encounter sessions. A session is the ephemeral record of one wild creature
// bound to one player and one map visit.
package encountersession

import (
	"context"
	"time"

	"github.com/wildgrove/encounter-api/internal/entities/game"
)

// State is the lifecycle state of a session
type State string

// Session states
const (
	StateActive   State = "ACTIVE"
	StateResolved State = "RESOLVED"
)

// Outcome is the terminal resolution reason of a session
type Outcome string

// Session outcomes
const (
	OutcomePending  Outcome = "PENDING"
	OutcomeCaught   Outcome = "CAUGHT"
	OutcomeFled     Outcome = "FLED"
	OutcomeDefeated Outcome = "DEFEATED"
)

// Session is one player's active wild encounter. A player has at most one
// of these at a time; storage enforces it with an atomic create.
type Session struct {
	// Unique session identifier (e.g., "enc_<uuid>")
	ID string

	// Player this encounter belongs to
	PlayerID string

	// Map the creature appeared on
	MapID string

	// Frozen view of the wild creature for this encounter
	Creature game.CreatureSnapshot

	// Lifecycle state; stored sessions are always ACTIVE, resolution moves
	// the record to the resolution key
	State State

	// Outcome is PENDING while the session is ACTIVE
	Outcome Outcome

	// When this session was created
	CreatedAt time.Time

	// When this session expires; an expired session counts as FLED
	ExpiresAt time.Time
}

// Resolution is the short-lived record left behind when a session resolves.
// It lets a duplicate of the resolving request replay the original result
// instead of failing with NO_ACTIVE_ENCOUNTER.
type Resolution struct {
	SessionID  string
	PlayerID   string
	Outcome    Outcome
	Caught     bool
	Chance     float64
	CreatureID string

	// MaxHP is the creature's max HP at resolution time, so a replayed
	// defeat can report a full HP bar
	MaxHP      int32
	ResolvedAt time.Time
}

// CreateInput contains parameters for creating an active session
type CreateInput struct {
	Session *Session
	TTL     time.Duration
}

// CreateOutput contains the result of creating a session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a player's active session
type GetInput struct {
	PlayerID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *Session
}

// ResolveInput contains parameters for resolving the active session
type ResolveInput struct {
	PlayerID   string
	Resolution *Resolution
	// TTL bounds how long the resolution record is kept for duplicate
	// request replay
	TTL time.Duration
}

// ResolveOutput contains the result of resolving a session
type ResolveOutput struct {
	Resolution *Resolution
}

// GetResolutionInput contains parameters for retrieving a resolution record
type GetResolutionInput struct {
	PlayerID  string
	SessionID string
}

// GetResolutionOutput contains the result of retrieving a resolution record
type GetResolutionOutput struct {
	Resolution *Resolution
}

// Repository defines the storage interface for encounter sessions
type Repository interface {
	// Create stores a new ACTIVE session. It fails with AlreadyExists when
	// the player already has one; the create is atomic so two concurrent
	// searches cannot both win.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// GetActive retrieves the player's active session
	GetActive(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the player's active session (used for HP changes),
	// preserving its remaining TTL
	Update(ctx context.Context, session *Session) error

	// Resolve removes the active session and leaves a resolution record
	Resolve(ctx context.Context, input ResolveInput) (*ResolveOutput, error)

	// GetResolution retrieves a resolution record by session ID
	GetResolution(ctx context.Context, input GetResolutionInput) (*GetResolutionOutput, error)
}
