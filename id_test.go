package ygggo_building

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewID()
		require.Len(t, id, DefaultIDLength)
		for _, r := range id {
			if !strings.ContainsRune(DefaultAlphabet, r) {
				t.Fatalf("id %q has %q outside the alphabet", id, r)
			}
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestDefaultAlphabet(t *testing.T) {
	assert.Equal(t, 64, len([]rune(DefaultAlphabet)))
	assert.Equal(t, 12, DefaultIDLength)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID("ab", 32)
	require.NoError(t, err)
	assert.Len(t, id, 32)
	assert.Empty(t, strings.Trim(id, "ab"))

	id, err = GenerateID("x", 5)
	require.NoError(t, err)
	assert.Equal(t, "xxxxx", id)
}

func TestGenerateID_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		length   int
	}{
		{"zero length", DefaultAlphabet, 0},
		{"negative length", DefaultAlphabet, -3},
		{"empty alphabet", "", 12},
		{"repeated symbol", "abca", 12},
		{"too many symbols", longAlphabet(300), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.alphabet, tt.length)
			require.Error(t, err)
			assert.Empty(t, id)
			assert.True(t, errors.Is(err, ErrConfiguration))
		})
	}
}

func longAlphabet(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(rune(0x4e00 + i))
	}
	return b.String()
}
