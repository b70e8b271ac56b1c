package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantLength int
	}{
		{name: "default length on zero", length: 0, wantLength: DefaultLength},
		{name: "default length on negative", length: -5, wantLength: DefaultLength},
		{name: "explicit length", length: 6, wantLength: 6},
		{name: "long id", length: 32, wantLength: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.length)
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLength)
			for _, c := range got {
				assert.Contains(t, alphabet, string(c))
			}
		})
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(12)
		assert.False(t, seen[id], "duplicate id generated: %s", id)
		seen[id] = true
	}
}

func TestGenerateUpper(t *testing.T) {
	got, err := GenerateUpper(8)
	require.NoError(t, err)
	assert.Len(t, got, 8)
	assert.Equal(t, strings.ToUpper(got), got)
}
