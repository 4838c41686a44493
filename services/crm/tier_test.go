package crm

import (
	"testing"

	"stayflow/models"
)

func TestClassifyTier(t *testing.T) {
	cases := []struct {
		name  string
		spend int64
		want  string
	}{
		{"zero spend", 0, models.TierBronze},
		{"just under silver", 24999, models.TierBronze},
		{"silver boundary", 25000, models.TierSilver},
		{"mid silver", 50000, models.TierSilver},
		{"just under gold", 74999, models.TierSilver},
		{"gold boundary", 75000, models.TierGold},
		{"just under diamond", 149999, models.TierGold},
		{"diamond boundary", 150000, models.TierDiamond},
		{"well past diamond", 1000000, models.TierDiamond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyTier(tc.spend); got != tc.want {
				t.Errorf("ClassifyTier(%d) = %q, want %q", tc.spend, got, tc.want)
			}
		})
	}
}

func TestClassifyTierMonotonic(t *testing.T) {
	rank := map[string]int{
		models.TierBronze:  0,
		models.TierSilver:  1,
		models.TierGold:    2,
		models.TierDiamond: 3,
	}

	prev := rank[ClassifyTier(0)]
	for spend := int64(1000); spend <= 200000; spend += 1000 {
		cur := rank[ClassifyTier(spend)]
		if cur < prev {
			t.Fatalf("tier rank dropped from %d to %d at spend %d", prev, cur, spend)
		}
		prev = cur
	}
}
