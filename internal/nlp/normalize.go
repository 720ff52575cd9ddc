// Package nlp implements the rule-based command interpreter: text
// normalization, amount extraction, time-expression parsing and expense
// categorization. Everything here is pure and deterministic; classification
// is ordered pattern matching, never fuzzy.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks and recomposes,
// turning "café" into "cafe".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics, lowercases and trims surrounding space.
// It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	out, _, err := transform.String(stripMarks, text)
	if err != nil {
		out = text
	}
	return strings.TrimSpace(strings.ToLower(out))
}
