package models

import "time"

// RevenueSummary is a per-day rollup document written by the nightly job
// and produced on demand by the revenue aggregation pipeline.
type RevenueSummary struct {
	Date           string         `bson:"date" json:"date"` // "YYYY-MM-DD"
	PaidTotal      int64          `bson:"paid_total" json:"paidTotal"`
	PendingTotal   int64          `bson:"pending_total" json:"pendingTotal"`
	OccupancyPct   float64        `bson:"occupancy_pct" json:"occupancyPct"`
	BookingsByType map[string]int `bson:"bookings_by_type" json:"bookingsByType"`
	GeneratedAt    time.Time      `bson:"generated_at" json:"generated_at"`
}
