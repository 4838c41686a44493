package pricing

import (
	"fmt"

	"stayflow/models"

	"github.com/google/uuid"
)

func (s *DefaultPricingService) CreatePlan(name string, basePrice float64, description string) (*models.RatePlan, error) {
	if name == "" || basePrice < 0 {
		return nil, fmt.Errorf("pricing: plan requires a name and a non-negative base price")
	}
	plan := &models.RatePlan{
		ID:          uuid.New().String(),
		Name:        name,
		BasePrice:   basePrice,
		Description: description,
	}
	if err := s.Repo.CreatePlan(plan); err != nil {
		return nil, fmt.Errorf("pricing: failed to create plan: %w", err)
	}
	return plan, nil
}

func (s *DefaultPricingService) UpdatePlan(p *models.RatePlan) error {
	if p.BasePrice < 0 {
		return fmt.Errorf("pricing: base price cannot be negative")
	}
	if err := s.Repo.UpdatePlan(p); err != nil {
		return fmt.Errorf("pricing: failed to update plan %s: %w", p.ID, err)
	}
	return nil
}

// DeletePlan removes the plan together with all of its rules so no orphaned
// rules linger against a dead plan ID.
func (s *DefaultPricingService) DeletePlan(id string) error {
	if _, err := s.GetPlan(id); err != nil {
		return err
	}
	if err := s.Repo.DeletePlan(id); err != nil {
		return fmt.Errorf("pricing: failed to delete plan %s: %w", id, err)
	}
	if err := s.Repo.DeleteRulesByPlan(id); err != nil {
		return fmt.Errorf("pricing: failed to delete rules for plan %s: %w", id, err)
	}
	return nil
}

func (s *DefaultPricingService) GetPlan(id string) (*models.RatePlan, error) {
	plan, err := s.Repo.GetPlanByID(id)
	if err != nil {
		return nil, fmt.Errorf("pricing: failed to fetch plan %s: %w", id, err)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *DefaultPricingService) ListPlans() ([]models.RatePlan, error) {
	return s.Repo.GetAllPlans()
}

// AddRule validates and appends a rule at the end of the plan's evaluation
// order.
func (s *DefaultPricingService) AddRule(r *models.PricingRule) (*models.PricingRule, error) {
	switch r.Type {
	case models.RuleOccupancy, models.RuleLengthOfStay, models.RuleBookingWindow:
	default:
		return nil, ErrInvalidRule
	}

	plan, err := s.Repo.GetPlanByID(r.RatePlanID)
	if err != nil {
		return nil, fmt.Errorf("pricing: failed to fetch plan %s: %w", r.RatePlanID, err)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	pos, err := s.Repo.NextRulePosition(r.RatePlanID)
	if err != nil {
		return nil, fmt.Errorf("pricing: failed to determine rule position: %w", err)
	}

	r.ID = uuid.New().String()
	r.Position = pos
	if err := s.Repo.CreateRule(r); err != nil {
		return nil, fmt.Errorf("pricing: failed to create rule: %w", err)
	}
	return r, nil
}

func (s *DefaultPricingService) DeleteRule(id string) error {
	if err := s.Repo.DeleteRule(id); err != nil {
		return fmt.Errorf("pricing: failed to delete rule %s: %w", id, err)
	}
	return nil
}

func (s *DefaultPricingService) ListRules(planID string) ([]models.PricingRule, error) {
	if _, err := s.GetPlan(planID); err != nil {
		return nil, err
	}
	return s.Repo.GetRulesByPlan(planID)
}

// Simulate loads the plan and its rules and runs the evaluator. A negative
// OccupancyPercent in the context means "use live occupancy".
func (s *DefaultPricingService) Simulate(planID string, ctx PriceContext) (*models.PriceQuote, error) {
	plan, err := s.GetPlan(planID)
	if err != nil {
		return nil, err
	}

	rules, err := s.Repo.GetRulesByPlan(planID)
	if err != nil {
		return nil, fmt.Errorf("pricing: failed to load rules for plan %s: %w", planID, err)
	}

	if ctx.OccupancyPercent < 0 && s.Occupancy != nil {
		occ, err := s.Occupancy.CurrentOccupancy()
		if err != nil {
			return nil, fmt.Errorf("pricing: failed to resolve live occupancy: %w", err)
		}
		ctx.OccupancyPercent = occ
	}

	quote := EvaluatePlan(*plan, rules, ctx)
	return &quote, nil
}
