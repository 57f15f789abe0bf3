package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Monte Rosa Traverse", "monte-rosa-traverse"},
		{"Tre Cime di Lavaredo!", "tre-cime-di-lavaredo"},
		{"  spaced   out  ", "spaced-out"},
		{"under_scored", "under-scored"},
		{"***", "hike"},
		{"", "hike"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title))
	}
}

func TestGenerateShortID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateShortID()
		assert.Len(t, id, 8)
		seen[id] = true
	}
	// Collisions across 100 draws from 36^8 would be astonishing.
	assert.Greater(t, len(seen), 95)
}
