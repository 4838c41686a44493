package handlers

import (
	"errors"
	"net/http"
	"time"

	"stayflow/models"
	"stayflow/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateRatePlanHandler creates a rate plan.
func CreateRatePlanHandler(svc pricing.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Name        string  `json:"name" binding:"required"`
			BasePrice   float64 `json:"basePrice" binding:"required"`
			Description string  `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		plan, err := svc.CreatePlan(req.Name, req.BasePrice, req.Description)
		if err != nil {
			logger.Error("Failed to create rate plan", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, plan)
	}
}

// ListRatePlansHandler returns all rate plans.
func ListRatePlansHandler(svc pricing.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := svc.ListPlans()
		if err != nil {
			getLogger(c).Error("Failed to list rate plans", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rate plans"})
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

// DeleteRatePlanHandler removes a plan and all of its rules.
func DeleteRatePlanHandler(svc pricing.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePlan(c.Param("id")); err != nil {
			if errors.Is(err, pricing.ErrPlanNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Rate plan not found"})
				return
			}
			getLogger(c).Error("Failed to delete rate plan", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate plan"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// AddPricingRuleHandler attaches a rule to a plan. Rules are evaluated in
// the order they were added.
func AddPricingRuleHandler(svc pricing.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var rule models.PricingRule
		if err := c.ShouldBindJSON(&rule); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		rule.RatePlanID = c.Param("id")

		created, err := svc.AddRule(&rule)
		if err != nil {
			switch {
			case errors.Is(err, pricing.ErrPlanNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Rate plan not found"})
			case errors.Is(err, pricing.ErrInvalidRule):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to add pricing rule", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add pricing rule"})
			}
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// ListPricingRulesHandler returns a plan's rules in evaluation order.
func ListPricingRulesHandler(svc pricing.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rules, err := svc.ListRules(c.Param("id"))
		if err != nil {
			if errors.Is(err, pricing.ErrPlanNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Rate plan not found"})
				return
			}
			getLogger(c).Error("Failed to list pricing rules", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pricing rules"})
			return
		}
		c.JSON(http.StatusOK, rules)
	}
}

// DeletePricingRuleHandler removes one rule.
func DeletePricingRuleHandler(svc pricing.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteRule(c.Param("ruleId")); err != nil {
			getLogger(c).Error("Failed to delete pricing rule", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pricing rule"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// SimulatePriceHandler evaluates a plan's rules under the supplied stay
// parameters. occupancyPercent is optional; when omitted the live figure
// is used.
func SimulatePriceHandler(svc pricing.PricingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			CheckIn          string   `json:"checkIn"`
			CheckOut         string   `json:"checkOut"`
			OccupancyPercent *float64 `json:"occupancyPercent"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		ctx := pricing.PriceContext{OccupancyPercent: -1, Now: time.Now()}
		if req.OccupancyPercent != nil {
			ctx.OccupancyPercent = *req.OccupancyPercent
		}
		if req.CheckIn != "" {
			t, err := models.ParseDate(req.CheckIn)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkIn date"})
				return
			}
			ctx.CheckIn = &t
		}
		if req.CheckOut != "" {
			t, err := models.ParseDate(req.CheckOut)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkOut date"})
				return
			}
			ctx.CheckOut = &t
		}

		quote, err := svc.Simulate(c.Param("id"), ctx)
		if err != nil {
			if errors.Is(err, pricing.ErrPlanNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Rate plan not found"})
				return
			}
			logger.Error("Failed to simulate price", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to simulate price"})
			return
		}

		c.JSON(http.StatusOK, quote)
	}
}
