package models

// Loyalty tiers, ordered lowest to highest.
const (
	TierBronze  = "Bronze"
	TierSilver  = "Silver"
	TierGold    = "Gold"
	TierDiamond = "Diamond"
)

// Stay is one entry in a guest's stay history.
type Stay struct {
	Room     string `bson:"room" json:"room"`
	CheckIn  string `bson:"check_in" json:"checkIn"`
	CheckOut string `bson:"check_out" json:"checkOut"`
}

// GuestProfile is the derived per-guest aggregate, keyed by email.
// It is recomputed from scratch whenever bookings or transactions change
// and never mutated in place.
type GuestProfile struct {
	Email       string `bson:"email" json:"email"`
	Name        string `bson:"name" json:"name"`
	Avatar      string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	TotalStays  int    `bson:"total_stays" json:"totalStays"`
	TotalSpend  int64  `bson:"total_spend" json:"totalSpend"`
	Tier        string `bson:"tier" json:"tier"`
	StayHistory []Stay `bson:"stay_history" json:"stayHistory"`
}
