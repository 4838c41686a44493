package inventory

import (
	inventoryRepo "stayflow/database/repository/inventory"
	"stayflow/models"
	"stayflow/services/notification"
)

// InventoryService manages stock items and movements.
type InventoryService interface {
	CreateItem(i *models.InventoryItem) (*models.InventoryItem, error)
	UpdateItem(i *models.InventoryItem) error
	DeleteItem(id string) error
	ListItems() ([]models.InventoryItem, error)

	// RecordMovement applies a signed quantity change. Dropping an item to
	// or below its reorder level triggers a low-stock push to inventory staff.
	RecordMovement(m *models.StockMovement) (*models.StockMovement, error)
	Movements(itemID string, limit int64) ([]models.StockMovement, error)
	LowStock() ([]models.InventoryItem, error)
}

// DefaultInventoryService is the production implementation.
type DefaultInventoryService struct {
	Repo     inventoryRepo.InventoryRepository
	Notifier notification.NotificationService
}
