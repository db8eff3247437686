package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "divorce", "divorce", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "divorce", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ratio(tt.a, tt.b))
		})
	}
}

func TestRatio_NearMissesScoreHigh(t *testing.T) {
	// Single-letter slips the typo table misses must clear the fuzzy
	// threshold.
	assert.Greater(t, ratio("polise", "police"), 0.8)
	assert.Greater(t, ratio("divorce", "divorcee"), 0.8)
	assert.Less(t, ratio("police", "property"), 0.8)
}

func TestRatio_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"salary", "celery"},
		{"inheritance", "in"},
		{"a", "aaaa"},
	}
	for _, p := range pairs {
		r := ratio(p[0], p[1])
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}
