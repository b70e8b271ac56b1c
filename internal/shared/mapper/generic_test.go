package mapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []string
	}{
		{
			name:  "nil input returns nil",
			input: nil,
			want:  nil,
		},
		{
			name:  "empty slice returns empty slice",
			input: []int{},
			want:  []string{},
		},
		{
			name:  "maps every element",
			input: []int{1, 2, 3},
			want:  []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, strconv.Itoa)
			assert.Equal(t, tt.want, got)
		})
	}
}
