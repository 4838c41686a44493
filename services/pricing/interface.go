package pricing

import (
	pricingRepo "stayflow/database/repository/pricing"
	"stayflow/models"
)

// OccupancyProvider supplies the live occupancy percentage used when a
// simulation request omits it.
type OccupancyProvider interface {
	CurrentOccupancy() (float64, error)
}

// PricingService manages rate plans and pricing rules and runs simulations.
type PricingService interface {
	CreatePlan(name string, basePrice float64, description string) (*models.RatePlan, error)
	UpdatePlan(p *models.RatePlan) error
	// DeletePlan removes the plan and all of its rules.
	DeletePlan(id string) error
	GetPlan(id string) (*models.RatePlan, error)
	ListPlans() ([]models.RatePlan, error)

	AddRule(r *models.PricingRule) (*models.PricingRule, error)
	DeleteRule(id string) error
	// ListRules returns a plan's rules in evaluation order.
	ListRules(planID string) ([]models.PricingRule, error)

	// Simulate evaluates the plan under the given context. When the caller
	// leaves OccupancyPercent negative, the live occupancy is used.
	Simulate(planID string, ctx PriceContext) (*models.PriceQuote, error)
}

// DefaultPricingService is the production implementation.
type DefaultPricingService struct {
	Repo      pricingRepo.PricingRepository
	Occupancy OccupancyProvider
}
