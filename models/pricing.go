package models

// Pricing rule types. Evaluation applies at most one rule per type, in
// stored order, so rule order within a plan is meaningful to the author.
const (
	RuleOccupancy     = "occupancy"
	RuleLengthOfStay  = "los"
	RuleBookingWindow = "booking_window"
)

// RatePlan is a named base price for a room/service category.
type RatePlan struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	BasePrice   float64 `bson:"base_price" json:"basePrice"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// PricingRule is a condition-adjustment pair altering a rate plan's price.
// Threshold applies to occupancy rules; MinDays applies to los (minimum
// length of stay) and booking_window (minimum advance-booking lead time)
// rules. Adjustment is a signed percentage.
type PricingRule struct {
	ID         string  `bson:"id" json:"id"`
	RatePlanID string  `bson:"rate_plan_id" json:"ratePlanId"`
	Type       string  `bson:"type" json:"type"` // occupancy | los | booking_window
	Threshold  float64 `bson:"threshold,omitempty" json:"threshold,omitempty"`
	MinDays    int     `bson:"min_days,omitempty" json:"minDays,omitempty"`
	Adjustment float64 `bson:"adjustment" json:"adjustment"` // signed percent
	Position   int     `bson:"position" json:"position"`     // evaluation order within a plan
}

// PriceQuote is the result of a pricing simulation: the final price and
// which rule fired in each pass (empty when a pass did not match).
type PriceQuote struct {
	RatePlanID    string  `json:"ratePlanId"`
	BasePrice     float64 `json:"basePrice"`
	FinalPrice    float64 `json:"finalPrice"`
	OccupancyRule string  `json:"occupancyRule,omitempty"`
	LOSRule       string  `json:"losRule,omitempty"`
	WindowRule    string  `json:"windowRule,omitempty"`
}
