package game

// ItemKind classifies items by what the engine can do with them
type ItemKind string

// Item kinds
const (
	ItemKindCaptureTool ItemKind = "capture_tool"
	ItemKindConsumable  ItemKind = "consumable"
	ItemKindGeneral     ItemKind = "general"
)

// Item is immutable content describing an inventory item
type Item struct {
	ID   string
	Name string
	Kind ItemKind

	// CaptureMultiplier scales capture chance for capture tools. The basic
	// tool has multiplier 1; unset (0) is treated as 1 by the engine.
	CaptureMultiplier float64
}
