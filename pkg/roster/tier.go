package roster

// Rank badge tiers. Rank is the 1-based position in the derived view,
// never stored on the record.
const (
	TierGold    = "gold"
	TierSilver  = "silver"
	TierBronze  = "bronze"
	TierDefault = "default"
)

// Performance tiers for percentage badges.
const (
	PerfExcellent = "excellent"
	PerfGood      = "good"
	PerfFair      = "fair"
	PerfWeak      = "weak"
	PerfPoor      = "poor"
)

// RankTier maps a 1-based rank to its badge tier.
func RankTier(rank int) string {
	switch rank {
	case 1:
		return TierGold
	case 2:
		return TierSilver
	case 3:
		return TierBronze
	default:
		return TierDefault
	}
}

// PerformanceTier buckets a percentage. Boundaries are inclusive at the
// lower bound of each tier: exactly 90 is excellent.
func PerformanceTier(percentage float64) string {
	switch {
	case percentage >= 90:
		return PerfExcellent
	case percentage >= 75:
		return PerfGood
	case percentage >= 60:
		return PerfFair
	case percentage >= 45:
		return PerfWeak
	default:
		return PerfPoor
	}
}
