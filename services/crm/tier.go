package crm

import "stayflow/models"

// Tier thresholds are inclusive lower bounds on total spend.
const (
	SilverThreshold  = 25000
	GoldThreshold    = 75000
	DiamondThreshold = 150000
)

// ClassifyTier maps a total spend to a loyalty tier, checking from the
// highest threshold down. Precondition: totalSpend >= 0; negative spend is
// a caller bug, not a Bronze guest.
func ClassifyTier(totalSpend int64) string {
	switch {
	case totalSpend >= DiamondThreshold:
		return models.TierDiamond
	case totalSpend >= GoldThreshold:
		return models.TierGold
	case totalSpend >= SilverThreshold:
		return models.TierSilver
	default:
		return models.TierBronze
	}
}
