package sentiment

import (
	"strings"
	"unicode"
)

// Clean lowercases the text and strips every rune that is not a lowercase
// Latin letter or whitespace. All Unicode whitespace survives, so words
// separated by NBSP or other exotic spaces stay separate tokens. Whitespace
// runs are kept as-is; tokenization splits on them later. Clean is
// idempotent.
func Clean(raw string) string {
	lowered := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
