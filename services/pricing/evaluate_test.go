package pricing

import (
	"math"
	"testing"
	"time"

	"stayflow/models"
)

func date(s string) *time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEvaluatePlanNoRules(t *testing.T) {
	plan := models.RatePlan{ID: "p1", BasePrice: 5000}
	ctx := PriceContext{OccupancyPercent: 95, Now: time.Now()}

	quote := EvaluatePlan(plan, nil, ctx)
	if !almostEqual(quote.FinalPrice, 5000) {
		t.Fatalf("FinalPrice = %v, want base price 5000", quote.FinalPrice)
	}
	if quote.OccupancyRule != "" || quote.LOSRule != "" || quote.WindowRule != "" {
		t.Fatalf("no rules should fire, got %+v", quote)
	}
}

func TestEvaluatePlanOccupancySurcharge(t *testing.T) {
	plan := models.RatePlan{ID: "p1", BasePrice: 10000}
	rules := []models.PricingRule{
		{ID: "r1", RatePlanID: "p1", Type: models.RuleOccupancy, Threshold: 80, Adjustment: 15},
	}

	t.Run("occupancy above threshold", func(t *testing.T) {
		ctx := PriceContext{OccupancyPercent: 85, Now: time.Now()}
		quote := EvaluatePlan(plan, rules, ctx)
		if !almostEqual(quote.FinalPrice, 11500) {
			t.Errorf("FinalPrice = %v, want 11500", quote.FinalPrice)
		}
		if quote.OccupancyRule != "r1" {
			t.Errorf("OccupancyRule = %q, want r1", quote.OccupancyRule)
		}
	})

	t.Run("occupancy below threshold", func(t *testing.T) {
		ctx := PriceContext{OccupancyPercent: 40, Now: time.Now()}
		quote := EvaluatePlan(plan, rules, ctx)
		if !almostEqual(quote.FinalPrice, 10000) {
			t.Errorf("FinalPrice = %v, want unchanged 10000", quote.FinalPrice)
		}
	})
}

func TestEvaluatePlanFirstMatchingRuleWins(t *testing.T) {
	plan := models.RatePlan{ID: "p1", BasePrice: 10000}
	// Both rules match at 90% occupancy; only the first in stored order
	// applies. Reversing the order changes the result.
	a := models.PricingRule{ID: "a", RatePlanID: "p1", Type: models.RuleOccupancy, Threshold: 50, Adjustment: 10}
	b := models.PricingRule{ID: "b", RatePlanID: "p1", Type: models.RuleOccupancy, Threshold: 80, Adjustment: 25}
	ctx := PriceContext{OccupancyPercent: 90, Now: time.Now()}

	forward := EvaluatePlan(plan, []models.PricingRule{a, b}, ctx)
	if forward.OccupancyRule != "a" || !almostEqual(forward.FinalPrice, 11000) {
		t.Errorf("forward order: rule %q price %v, want a 11000", forward.OccupancyRule, forward.FinalPrice)
	}

	reversed := EvaluatePlan(plan, []models.PricingRule{b, a}, ctx)
	if reversed.OccupancyRule != "b" || !almostEqual(reversed.FinalPrice, 12500) {
		t.Errorf("reversed order: rule %q price %v, want b 12500", reversed.OccupancyRule, reversed.FinalPrice)
	}
}

func TestEvaluatePlanPassesCompound(t *testing.T) {
	plan := models.RatePlan{ID: "p1", BasePrice: 10000}
	rules := []models.PricingRule{
		{ID: "occ", RatePlanID: "p1", Type: models.RuleOccupancy, Threshold: 80, Adjustment: 15},
		{ID: "los", RatePlanID: "p1", Type: models.RuleLengthOfStay, MinDays: 5, Adjustment: -10},
		{ID: "win", RatePlanID: "p1", Type: models.RuleBookingWindow, MinDays: 30, Adjustment: -5},
	}

	now, _ := time.Parse(models.DateLayout, "2026-05-01")
	ctx := PriceContext{
		CheckIn:          date("2026-07-01"),
		CheckOut:         date("2026-07-08"),
		OccupancyPercent: 90,
		Now:              now,
	}

	quote := EvaluatePlan(plan, rules, ctx)
	want := 10000.0 * 1.15 * 0.90 * 0.95
	if !almostEqual(quote.FinalPrice, want) {
		t.Fatalf("FinalPrice = %v, want %v", quote.FinalPrice, want)
	}
	if quote.OccupancyRule != "occ" || quote.LOSRule != "los" || quote.WindowRule != "win" {
		t.Fatalf("expected all three rules to fire, got %+v", quote)
	}
}

func TestEvaluatePlanSkipsPassesWithoutDates(t *testing.T) {
	plan := models.RatePlan{ID: "p1", BasePrice: 10000}
	rules := []models.PricingRule{
		{ID: "los", RatePlanID: "p1", Type: models.RuleLengthOfStay, MinDays: 0, Adjustment: -10},
		{ID: "win", RatePlanID: "p1", Type: models.RuleBookingWindow, MinDays: 0, Adjustment: -5},
	}

	t.Run("no dates at all", func(t *testing.T) {
		quote := EvaluatePlan(plan, rules, PriceContext{Now: time.Now()})
		if !almostEqual(quote.FinalPrice, 10000) {
			t.Errorf("FinalPrice = %v, want unchanged 10000", quote.FinalPrice)
		}
	})

	t.Run("check-in only enables the window pass", func(t *testing.T) {
		now, _ := time.Parse(models.DateLayout, "2026-05-01")
		quote := EvaluatePlan(plan, rules, PriceContext{CheckIn: date("2026-06-01"), Now: now})
		if quote.LOSRule != "" {
			t.Errorf("length-of-stay pass must be skipped without a check-out date")
		}
		if quote.WindowRule != "win" || !almostEqual(quote.FinalPrice, 9500) {
			t.Errorf("window pass should fire: %+v", quote)
		}
	})
}

func TestEvaluatePlanNegativeStayMatchesNothing(t *testing.T) {
	plan := models.RatePlan{ID: "p1", BasePrice: 10000}
	rules := []models.PricingRule{
		{ID: "los", RatePlanID: "p1", Type: models.RuleLengthOfStay, MinDays: 1, Adjustment: -10},
	}

	// Check-in after check-out gives a negative stay length; no rule with a
	// non-negative minimum can match.
	now, _ := time.Parse(models.DateLayout, "2026-01-01")
	ctx := PriceContext{CheckIn: date("2026-03-10"), CheckOut: date("2026-03-05"), Now: now}

	quote := EvaluatePlan(plan, rules, ctx)
	if quote.LOSRule != "" || !almostEqual(quote.FinalPrice, 10000) {
		t.Fatalf("negative stay must not match, got %+v", quote)
	}
}

func TestEvaluatePlanIgnoresForeignRules(t *testing.T) {
	plan := models.RatePlan{ID: "p1", BasePrice: 10000}
	rules := []models.PricingRule{
		{ID: "other", RatePlanID: "p2", Type: models.RuleOccupancy, Threshold: 0, Adjustment: 50},
	}

	quote := EvaluatePlan(plan, rules, PriceContext{OccupancyPercent: 99, Now: time.Now()})
	if !almostEqual(quote.FinalPrice, 10000) {
		t.Fatalf("rules of another plan must not apply, got %v", quote.FinalPrice)
	}
}
