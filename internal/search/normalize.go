package search

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize trims a raw query and folds full-width forms to their
// half-width equivalents, so a catalog code typed as "ＡＢＣ-１２３"
// still matches the stored "ABC-123". Returns "" for blank input.
func Normalize(query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return ""
	}
	q = width.Fold.String(q)
	return strings.Join(strings.Fields(q), " ")
}
