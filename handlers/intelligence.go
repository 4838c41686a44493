package handlers

import (
	"errors"
	"net/http"

	"stayflow/models"
	"stayflow/services/crm"
	"stayflow/services/intelligence"
	"stayflow/services/inventory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractReceiptHandler runs OCR extraction over an uploaded receipt image
// and returns a transaction draft.
func ExtractReceiptHandler(ai intelligence.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			ImageURL string `json:"imageUrl" binding:"required,url"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		extraction, err := ai.ExtractReceipt(c.Request.Context(), c.GetString("staffID"), req.ImageURL)
		if err != nil {
			if errors.Is(err, intelligence.ErrMalformedResponse) {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Could not read the receipt, try a clearer image"})
				return
			}
			logger.Error("Receipt extraction failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Receipt extraction failed"})
			return
		}

		c.JSON(http.StatusOK, extraction)
	}
}

// ForecastInventoryHandler asks the model for a consumption forecast over
// the requested horizon.
func ForecastInventoryHandler(ai intelligence.AIService, inv inventory.InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			HorizonDays int `json:"horizonDays" binding:"required,min=1,max=90"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		items, err := inv.ListItems()
		if err != nil {
			logger.Error("Failed to load inventory for forecast", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inventory"})
			return
		}

		var movements []models.StockMovement
		for _, item := range items {
			recent, err := inv.Movements(item.ID, 30)
			if err != nil {
				logger.Error("Failed to load movements for forecast", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stock movements"})
				return
			}
			movements = append(movements, recent...)
		}

		forecast, err := ai.ForecastInventory(c.Request.Context(), c.GetString("staffID"), items, movements, req.HorizonDays)
		if err != nil {
			if errors.Is(err, intelligence.ErrMalformedResponse) {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Forecast unavailable, try again"})
				return
			}
			logger.Error("Inventory forecast failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Inventory forecast failed"})
			return
		}

		c.JSON(http.StatusOK, forecast)
	}
}

// GenerateOfferHandler drafts a retention offer for one loyal guest.
func GenerateOfferHandler(ai intelligence.AIService, crmSvc crm.CRMService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		profiles, err := crmSvc.GuestDirectory()
		if err != nil {
			logger.Error("Failed to load guest profiles", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guest profiles"})
			return
		}

		var profile *models.GuestProfile
		for i := range profiles {
			if profiles[i].Email == req.Email {
				profile = &profiles[i]
				break
			}
		}
		if profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No guest profile for that email"})
			return
		}

		offer, err := ai.GenerateOffer(c.Request.Context(), c.GetString("staffID"), *profile)
		if err != nil {
			if errors.Is(err, intelligence.ErrMalformedResponse) {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Offer generation unavailable, try again"})
				return
			}
			logger.Error("Offer generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Offer generation failed"})
			return
		}

		c.JSON(http.StatusOK, offer)
	}
}

// ClearAIContextHandler drops the caller's stored prompt history.
func ClearAIContextHandler(ai intelligence.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ai.ClearContext(c.Request.Context(), c.GetString("staffID")); err != nil {
			getLogger(c).Error("Failed to clear AI context", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}
