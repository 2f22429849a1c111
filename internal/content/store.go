// Package content provides read-only access to game content: maps, species,
// items, moves, and trainers. The engine treats all of it as immutable; the
// authoring side that produces these files is a separate system.
package content

import (
	"context"

	"github.com/wildgrove/encounter-api/internal/entities/game"
)

//go:generate mockgen -destination=mock/mock_store.go -package=contentmock github.com/wildgrove/encounter-api/internal/content Store

// Store is the read-only content interface the engine consumes
type Store interface {
	// GetMap retrieves a map definition by ID
	GetMap(ctx context.Context, id string) (*game.MapDefinition, error)

	// GetMapBySlug retrieves a map definition by its URL slug
	GetMapBySlug(ctx context.Context, slug string) (*game.MapDefinition, error)

	// ListMaps returns all map definitions
	ListMaps(ctx context.Context) ([]*game.MapDefinition, error)

	// GetSpecies retrieves a species by ID
	GetSpecies(ctx context.Context, id string) (*game.Species, error)

	// GetItem retrieves an item by ID
	GetItem(ctx context.Context, id string) (*game.Item, error)

	// GetMove retrieves a move by ID
	GetMove(ctx context.Context, id string) (*game.Move, error)

	// GetTrainer retrieves a trainer by ID
	GetTrainer(ctx context.Context, id string) (*game.Trainer, error)

	// TrainerOrder returns the configured trainer rotation roster
	TrainerOrder(ctx context.Context) ([]string, error)
}
