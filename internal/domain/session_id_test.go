package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionID_Format(t *testing.T) {
	id := NewSessionID()

	assert.True(t, strings.HasPrefix(id, "rp_"), "session id should carry the namespace prefix")

	parts := strings.Split(id, "_")
	assert.Len(t, parts, 3)
	assert.NotEmpty(t, parts[1], "time component should be present")
	assert.Len(t, parts[2], 6, "random suffix should be six characters")

	for _, r := range parts[2] {
		assert.Contains(t, base36Alphabet, string(r))
	}
}

func TestNewSessionID_SuffixAlwaysSixChars(t *testing.T) {
	// The suffix is filled by rejection sampling, so length must hold
	// regardless of which bytes the random source produced
	for i := 0; i < 500; i++ {
		parts := strings.Split(NewSessionID(), "_")
		assert.Len(t, parts[2], 6)
	}
}

func TestNewSessionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewSessionID()
		assert.False(t, seen[id], "duplicate session id generated: %s", id)
		seen[id] = true
	}
}
