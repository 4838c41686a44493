package pricing

import (
	"time"

	"stayflow/models"
)

// PriceContext carries the simulator inputs. CheckIn and CheckOut are
// optional; a pass whose inputs are absent is skipped.
type PriceContext struct {
	CheckIn          *time.Time
	CheckOut         *time.Time
	OccupancyPercent float64
	Now              time.Time
}

// EvaluatePlan computes the simulated price for a rate plan under the given
// context. Three passes run in fixed order (occupancy, length of stay,
// booking window), each multiplying the running price, so pass order
// changes the result. Within each pass only the first rule in stored order
// whose condition is met applies. No matching rule in a pass means no
// adjustment; no rules at all means the base price comes back unchanged.
func EvaluatePlan(plan models.RatePlan, rules []models.PricingRule, ctx PriceContext) models.PriceQuote {
	quote := models.PriceQuote{
		RatePlanID: plan.ID,
		BasePrice:  plan.BasePrice,
	}
	price := plan.BasePrice

	// Occupancy pass.
	for _, r := range rules {
		if r.RatePlanID != plan.ID || r.Type != models.RuleOccupancy {
			continue
		}
		if r.Threshold <= ctx.OccupancyPercent {
			price *= 1 + r.Adjustment/100
			quote.OccupancyRule = r.ID
			break
		}
	}

	// Length-of-stay pass. A negative stay length (checkIn after checkOut)
	// matches no rule with a non-negative minimum, so the pass falls
	// through without adjustment rather than erroring.
	if ctx.CheckIn != nil && ctx.CheckOut != nil {
		los := daysBetween(*ctx.CheckOut, *ctx.CheckIn)
		for _, r := range rules {
			if r.RatePlanID != plan.ID || r.Type != models.RuleLengthOfStay {
				continue
			}
			if r.MinDays <= los {
				price *= 1 + r.Adjustment/100
				quote.LOSRule = r.ID
				break
			}
		}
	}

	// Booking-window pass.
	if ctx.CheckIn != nil {
		window := daysBetween(*ctx.CheckIn, ctx.Now)
		for _, r := range rules {
			if r.RatePlanID != plan.ID || r.Type != models.RuleBookingWindow {
				continue
			}
			if r.MinDays <= window {
				price *= 1 + r.Adjustment/100
				quote.WindowRule = r.ID
				break
			}
		}
	}

	quote.FinalPrice = price
	return quote
}

// ComputeFinalPrice returns only the final simulated price.
func ComputeFinalPrice(plan models.RatePlan, rules []models.PricingRule, ctx PriceContext) float64 {
	return EvaluatePlan(plan, rules, ctx).FinalPrice
}

// daysBetween returns whole calendar days from b to a, ignoring time of day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
