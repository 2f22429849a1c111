// Package inventory provides the client interface for the player inventory
// service: item grants and consumption.
package inventory

import "context"

// GrantItemInput contains parameters for granting items to a player
type GrantItemInput struct {
	PlayerID string
	ItemID   string
	Quantity int64
}

// GrantItemOutput reports the player's quantity after the grant
type GrantItemOutput struct {
	Quantity int64
}

// ConsumeItemInput contains parameters for consuming one item
type ConsumeItemInput struct {
	PlayerID string
	ItemID   string
}

// ConsumeItemOutput reports the player's quantity after consumption
type ConsumeItemOutput struct {
	Remaining int64
}

// GetQuantityInput contains parameters for reading an item quantity
type GetQuantityInput struct {
	PlayerID string
	ItemID   string
}

// GetQuantityOutput reports the player's quantity of one item
type GetQuantityOutput struct {
	Quantity int64
}

// Client defines the interface for the inventory service
type Client interface {
	// GrantItem adds items to the player's inventory
	GrantItem(ctx context.Context, input *GrantItemInput) (*GrantItemOutput, error)

	// ConsumeItem removes one item from the player's inventory. It fails
	// with FailedPrecondition when the player has none; concurrent
	// consumers cannot overdraw.
	ConsumeItem(ctx context.Context, input *ConsumeItemInput) (*ConsumeItemOutput, error)

	// GetQuantity reads the player's quantity of one item; never an error
	// for items the player lacks, just zero
	GetQuantity(ctx context.Context, input *GetQuantityInput) (*GetQuantityOutput, error)
}
