package inventoryRepo

import "stayflow/models"

// InventoryRepository defines persistence operations for inventory items
// and stock movements.
type InventoryRepository interface {
	CreateItem(i *models.InventoryItem) error
	UpdateItem(i *models.InventoryItem) error
	DeleteItem(id string) error
	GetItemByID(id string) (*models.InventoryItem, error)
	GetAllItems() ([]models.InventoryItem, error)
	// ApplyMovement records a movement and adjusts the item quantity.
	ApplyMovement(m *models.StockMovement) error
	GetMovementsByItem(itemID string, limit int64) ([]models.StockMovement, error)
	// GetLowStockItems returns items whose quantity is at or below the
	// reorder level.
	GetLowStockItems() ([]models.InventoryItem, error)
}
