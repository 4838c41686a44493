package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayflow/models"
	"stayflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrItemNotFound indicates the referenced inventory item does not exist.
	ErrItemNotFound = errors.New("inventory item not found")
	// ErrInsufficientStock indicates a consumption that would drive the
	// quantity negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

func (s *DefaultInventoryService) CreateItem(i *models.InventoryItem) (*models.InventoryItem, error) {
	if i.Name == "" {
		return nil, fmt.Errorf("inventory: item requires a name")
	}
	if i.Quantity < 0 || i.ReorderLevel < 0 {
		return nil, fmt.Errorf("inventory: quantity and reorder level cannot be negative")
	}
	i.ID = uuid.New().String()
	if err := s.Repo.CreateItem(i); err != nil {
		return nil, fmt.Errorf("inventory: failed to create item: %w", err)
	}
	return i, nil
}

func (s *DefaultInventoryService) UpdateItem(i *models.InventoryItem) error {
	existing, err := s.Repo.GetItemByID(i.ID)
	if err != nil {
		return fmt.Errorf("inventory: failed to fetch item %s: %w", i.ID, err)
	}
	if existing == nil {
		return ErrItemNotFound
	}
	if err := s.Repo.UpdateItem(i); err != nil {
		return fmt.Errorf("inventory: failed to update item %s: %w", i.ID, err)
	}
	return nil
}

func (s *DefaultInventoryService) DeleteItem(id string) error {
	existing, err := s.Repo.GetItemByID(id)
	if err != nil {
		return fmt.Errorf("inventory: failed to fetch item %s: %w", id, err)
	}
	if existing == nil {
		return ErrItemNotFound
	}
	if err := s.Repo.DeleteItem(id); err != nil {
		return fmt.Errorf("inventory: failed to delete item %s: %w", id, err)
	}
	return nil
}

func (s *DefaultInventoryService) ListItems() ([]models.InventoryItem, error) {
	return s.Repo.GetAllItems()
}

func (s *DefaultInventoryService) RecordMovement(m *models.StockMovement) (*models.StockMovement, error) {
	item, err := s.Repo.GetItemByID(m.ItemID)
	if err != nil {
		return nil, fmt.Errorf("inventory: failed to fetch item %s: %w", m.ItemID, err)
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.Quantity+m.Delta < 0 {
		return nil, ErrInsufficientStock
	}
	if m.Date == "" {
		m.Date = time.Now().Format(models.DateLayout)
	} else if _, err := models.ParseDate(m.Date); err != nil {
		return nil, fmt.Errorf("inventory: invalid movement date %q", m.Date)
	}

	m.ID = uuid.New().String()
	m.CreatedAt = time.Now()
	if err := s.Repo.ApplyMovement(m); err != nil {
		return nil, fmt.Errorf("inventory: failed to apply movement: %w", err)
	}

	// Alert on crossing the reorder line; push failure is logged only.
	if item.Quantity+m.Delta <= item.ReorderLevel && s.Notifier != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Notifier.SendRolePush(ctx, models.RoleInventory, "Low stock",
			fmt.Sprintf("%s is at %.1f %s (reorder at %.1f)", item.Name, item.Quantity+m.Delta, item.Unit, item.ReorderLevel),
			map[string]string{"itemId": item.ID})
		if err != nil {
			utils.GetLogger().Warn("inventory: failed to send low-stock alert",
				zap.String("itemId", item.ID), zap.Error(err))
		}
	}
	return m, nil
}

func (s *DefaultInventoryService) Movements(itemID string, limit int64) ([]models.StockMovement, error) {
	return s.Repo.GetMovementsByItem(itemID, limit)
}

func (s *DefaultInventoryService) LowStock() ([]models.InventoryItem, error) {
	return s.Repo.GetLowStockItems()
}
