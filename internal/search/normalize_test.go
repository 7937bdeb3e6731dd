package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdex/avdex/internal/search"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"blank", "   ", ""},
		{"empty", "", ""},
		{"trims", "  yui  ", "yui"},
		{"collapses inner whitespace", "yui \t tanaka", "yui tanaka"},
		{"folds full-width", "ＡＢＣ-１２３", "ABC-123"},
		{"plain ascii untouched", "ABC-123", "ABC-123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, search.Normalize(tt.in))
		})
	}
}
