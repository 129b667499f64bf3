package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	items := []string{"planks", "log", "copper", "copper_ore", "copper_tools", "paper", "sand"}

	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{"exact match first", "copper", 3, []string{"copper", "copper_ore", "copper_tools"}},
		{"case insensitive", "PLANKS", 1, []string{"planks"}},
		{"typo", "plnaks", 3, []string{"planks"}},
		{"short typo", "logg", 3, []string{"log"}},
		{"nothing close", "zzzzzzzz", 3, []string{}},
		{"empty query", "", 3, nil},
		{"zero limit", "log", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.query, items, tt.limit))
		})
	}
}
