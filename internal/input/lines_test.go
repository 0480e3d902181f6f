package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"blank lines dropped", "\n\n  \n", []string{}},
		{"trimmed", "  Apple \nBanana\t\n", []string{"Apple", "Banana"}},
		{"windows newlines", "a\r\nb\r\n", []string{"a", "b"}},
		{"duplicates kept", "x\nx\ny", []string{"x", "x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.text))
		})
	}
}

func TestDuplicates(t *testing.T) {
	assert.Empty(t, Duplicates([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a"}, Duplicates([]string{"a", "b", "a", "a"}))
	assert.Equal(t, []string{"b", "a"}, Duplicates([]string{"a", "b", "b", "a"}))
}
