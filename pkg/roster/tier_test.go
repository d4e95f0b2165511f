package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankTier(t *testing.T) {
	assert.Equal(t, TierGold, RankTier(1))
	assert.Equal(t, TierSilver, RankTier(2))
	assert.Equal(t, TierBronze, RankTier(3))
	assert.Equal(t, TierDefault, RankTier(4))
	assert.Equal(t, TierDefault, RankTier(27))
	assert.Equal(t, TierDefault, RankTier(1000))
}

func TestPerformanceTierBoundaries(t *testing.T) {
	tests := []struct {
		percentage float64
		tier       string
	}{
		{100, PerfExcellent},
		{90, PerfExcellent}, // lower bound inclusive
		{89.9, PerfGood},
		{75, PerfGood},
		{74.9, PerfFair},
		{60, PerfFair},
		{59.9, PerfWeak},
		{45, PerfWeak},
		{44.9, PerfPoor},
		{0, PerfPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, PerformanceTier(tt.percentage), "percentage %v", tt.percentage)
	}
}

func TestPercentageCoercion(t *testing.T) {
	assert.Equal(t, 0.0, Student{Name: "Unscored"}.Percentage())
	assert.Equal(t, 87.5, student("Scored", 87.5).Percentage())
}
