package pricingRepo

import "stayflow/models"

// PricingRepository defines persistence operations for rate plans and
// their pricing rules.
type PricingRepository interface {
	CreatePlan(p *models.RatePlan) error
	UpdatePlan(p *models.RatePlan) error
	DeletePlan(id string) error
	GetPlanByID(id string) (*models.RatePlan, error)
	GetAllPlans() ([]models.RatePlan, error)

	CreateRule(r *models.PricingRule) error
	DeleteRule(id string) error
	// GetRulesByPlan returns a plan's rules in evaluation order.
	GetRulesByPlan(planID string) ([]models.PricingRule, error)
	// DeleteRulesByPlan removes all rules of a plan (cascade on plan delete).
	DeleteRulesByPlan(planID string) error
	NextRulePosition(planID string) (int, error)
}
