package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		note     string
		expected []string
	}{
		{
			name:     "empty note",
			note:     "",
			expected: nil,
		},
		{
			name:     "single tag",
			note:     "#Travel",
			expected: []string{"Travel"},
		},
		{
			name:     "multi-word line is one tag",
			note:     "#Travel Food",
			expected: []string{"Travel Food"},
		},
		{
			name:     "one tag per line",
			note:     "#Travel\n#Food",
			expected: []string{"Travel", "Food"},
		},
		{
			name:     "hashtag mid-line is not a tag",
			note:     "Some text #tag",
			expected: nil,
		},
		{
			name:     "leading whitespace disqualifies",
			note:     "  #Indented",
			expected: nil,
		},
		{
			name:     "words are capitalized, rest untouched",
			note:     "#trip to NYC",
			expected: []string{"Trip To NYC"},
		},
		{
			name:     "multiple hashes stripped, still one tag",
			note:     "#summer #holiday",
			expected: []string{"Summer Holiday"},
		},
		{
			name:     "tag lines mixed with plain text",
			note:     "paid by card\n#Groceries\nsplit with Sam",
			expected: []string{"Groceries"},
		},
		{
			name:     "duplicates and order preserved",
			note:     "#Food\n#Travel\n#Food",
			expected: []string{"Food", "Travel", "Food"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.note))
		})
	}
}

func TestCleanNote(t *testing.T) {
	tests := []struct {
		name     string
		note     string
		expected string
	}{
		{
			name:     "empty note",
			note:     "",
			expected: "",
		},
		{
			name:     "only tag lines",
			note:     "#Travel\n#Food",
			expected: "",
		},
		{
			name:     "tag lines removed, text kept",
			note:     "dinner downtown\n#Trip\nwith friends",
			expected: "dinner downtown\nwith friends",
		},
		{
			name:     "indented hash line is kept",
			note:     "  #not a tag\n#Tag",
			expected: "#not a tag",
		},
		{
			name:     "result is trimmed",
			note:     "#Tag\n  note body  ",
			expected: "note body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanNote(tt.note))
		})
	}
}
