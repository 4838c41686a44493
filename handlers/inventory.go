package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"stayflow/models"
	"stayflow/services/inventory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateItemHandler registers a stock item.
func CreateItemHandler(svc inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var item models.InventoryItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.CreateItem(&item)
		if err != nil {
			logger.Error("Failed to create inventory item", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// UpdateItemHandler replaces an item's metadata.
func UpdateItemHandler(svc inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var item models.InventoryItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		item.ID = c.Param("id")

		if err := svc.UpdateItem(&item); err != nil {
			if errors.Is(err, inventory.ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			logger.Error("Failed to update inventory item", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "updated"})
	}
}

// DeleteItemHandler removes a stock item.
func DeleteItemHandler(svc inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteItem(c.Param("id")); err != nil {
			if errors.Is(err, inventory.ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			getLogger(c).Error("Failed to delete inventory item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// ListItemsHandler returns all stock items.
func ListItemsHandler(svc inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListItems()
		if err != nil {
			getLogger(c).Error("Failed to list inventory items", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// RecordMovementHandler applies a signed stock movement.
func RecordMovementHandler(svc inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var m models.StockMovement
		if err := c.ShouldBindJSON(&m); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		m.ItemID = c.Param("id")

		created, err := svc.RecordMovement(&m)
		if err != nil {
			switch {
			case errors.Is(err, inventory.ErrItemNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			case errors.Is(err, inventory.ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": "Movement would drive stock negative"})
			default:
				logger.Error("Failed to record stock movement", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// ListMovementsHandler returns recent movements for an item.
func ListMovementsHandler(svc inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := int64(50)
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		movements, err := svc.Movements(c.Param("id"), limit)
		if err != nil {
			getLogger(c).Error("Failed to list stock movements", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
			return
		}
		c.JSON(http.StatusOK, movements)
	}
}

// LowStockHandler returns items at or below their reorder level.
func LowStockHandler(svc inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.LowStock()
		if err != nil {
			getLogger(c).Error("Failed to list low-stock items", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list low-stock items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
