package nlp

import "strings"

// Categorize assigns the first taxonomy category whose keyword list contains
// a substring of the normalized description. Order matters twice: categories
// are scanned in taxonomy order and keywords in declaration order, so the
// result is deterministic for ambiguous descriptions.
func Categorize(description string) string {
	normalized := Normalize(description)
	if normalized == "" {
		return FallbackCategory
	}
	for _, cat := range Taxonomy {
		for _, kw := range cat.Keywords {
			if strings.Contains(normalized, kw) {
				return cat.Name
			}
		}
	}
	return FallbackCategory
}
