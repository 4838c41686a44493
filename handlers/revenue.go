package handlers

import (
	"net/http"

	"stayflow/models"
	"stayflow/services/revenue"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OccupancyHandler returns today's live occupancy percentage.
func OccupancyHandler(svc revenue.RevenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pct, err := svc.CurrentOccupancy()
		if err != nil {
			getLogger(c).Error("Failed to compute occupancy", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute occupancy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"occupancyPercent": pct})
	}
}

// RevenueSummaryHandler builds a summary for one calendar date on demand.
func RevenueSummaryHandler(svc revenue.RevenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		if _, err := models.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}

		summary, err := svc.SummaryForDate(date)
		if err != nil {
			getLogger(c).Error("Failed to build revenue summary", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build revenue summary"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// RevenueRangeHandler returns persisted nightly summaries in [from, to].
func RevenueRangeHandler(svc revenue.RevenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.Query("from")
		to := c.Query("to")
		if from == "" || to == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
			return
		}

		summaries, err := svc.Range(from, to)
		if err != nil {
			getLogger(c).Error("Failed to load revenue summaries", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load revenue summaries"})
			return
		}
		c.JSON(http.StatusOK, summaries)
	}
}
