package handlers

import (
	"net/http"

	"stayflow/services/crm"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoyalGuestsHandler returns repeat guests ranked by lifetime spend.
func LoyalGuestsHandler(svc crm.CRMService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := svc.LoyalGuests()
		if err != nil {
			getLogger(c).Error("Failed to derive loyal guests", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive guest profiles"})
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}

// GuestDirectoryHandler returns every guest aggregate, including one-time
// visitors.
func GuestDirectoryHandler(svc crm.CRMService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := svc.GuestDirectory()
		if err != nil {
			getLogger(c).Error("Failed to build guest directory", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build guest directory"})
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}
