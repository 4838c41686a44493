package models

import "time"

// InventoryItem is a stocked supply item (linen, toiletries, kitchen stock).
type InventoryItem struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Category     string  `bson:"category" json:"category"`
	Unit         string  `bson:"unit" json:"unit"` // pcs, kg, l, ...
	Quantity     float64 `bson:"quantity" json:"quantity"`
	ReorderLevel float64 `bson:"reorder_level" json:"reorderLevel"`
	UnitCost     float64 `bson:"unit_cost" json:"unitCost"`
}

// StockMovement records a signed quantity change against an item.
type StockMovement struct {
	ID        string    `bson:"id" json:"id"`
	ItemID    string    `bson:"item_id" json:"itemId"`
	Delta     float64   `bson:"delta" json:"delta"` // positive = received, negative = consumed
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
