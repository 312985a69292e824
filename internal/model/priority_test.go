package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriority(t *testing.T) {
	cases := map[string]Priority{
		"low":     PriorityLow,
		"Low":     PriorityLow,
		"LOW":     PriorityLow,
		"medium":  PriorityMedium,
		"Medium":  PriorityMedium,
		"high":    PriorityHigh,
		"HiGh":    PriorityHigh,
		"":        PriorityMedium,
		"urgent":  PriorityMedium,
		"lowest":  PriorityMedium,
		" low":    PriorityMedium,
		"médium":  PriorityMedium,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizePriority(raw), "raw=%q", raw)
	}
}

func TestNormalizePriorityIdempotent(t *testing.T) {
	inputs := []string{"low", "Low", "HIGH", "medium", "", "urgent", "Critical"}
	for _, raw := range inputs {
		once := NormalizePriority(raw)
		assert.Equal(t, once, NormalizePriority(string(once)), "raw=%q", raw)
		// full read -> write -> read cycle must be stable too
		assert.Equal(t, once, NormalizePriority(once.Storage()), "raw=%q", raw)
	}
}

func TestPriorityStorage(t *testing.T) {
	assert.Equal(t, "Low", PriorityLow.Storage())
	assert.Equal(t, "Medium", PriorityMedium.Storage())
	assert.Equal(t, "High", PriorityHigh.Storage())
	// unrecognized values normalize before capitalizing
	assert.Equal(t, "Medium", Priority("whatever").Storage())
	assert.Equal(t, "High", Priority("HIGH").Storage())
}
