package nlp

import (
	"fmt"
	"regexp"
	"strings"

	"finbot/internal/core"
)

var (
	// First numeric token after a register-expense trigger. Dot and comma
	// both work as decimal separators.
	expenseAmountRe = regexp.MustCompile(`(?i)(?:gastei|fiz(?:\s+um)?\s+gasto).*?(\d+[.,]?\d*)`)
	// The trigger phrase itself, removed from the residual description.
	expenseTriggerRe = regexp.MustCompile(`(?i)gastei|fiz(?:\s+um)?\s+gasto`)
	// Connectives dropped from the residual ("no almoço" -> "almoço").
	fillerWordRe = regexp.MustCompile(`(?i)\b(no|na|em)\b`)
)

// ExtractAmount pulls the expense value and residual description out of a
// message already classified as register-expense. The residual is the
// original text minus the trigger phrase, the matched numeral and filler
// connectives; when nothing is left it defaults to core.DefaultExpenseDescription.
func ExtractAmount(text string) (core.Money, string, error) {
	m := expenseAmountRe.FindStringSubmatch(text)
	if m == nil {
		return core.Money{}, "", fmt.Errorf("no amount in %q: %w", text, core.ErrExtraction)
	}
	value, err := core.ParseAmount(m[1])
	if err != nil {
		return core.Money{}, "", fmt.Errorf("amount %q: %w", m[1], core.ErrExtraction)
	}

	desc := text
	if loc := expenseTriggerRe.FindStringIndex(desc); loc != nil {
		desc = desc[:loc[0]] + desc[loc[1]:]
	}
	desc = strings.Replace(desc, m[1], "", 1)
	desc = fillerWordRe.ReplaceAllString(desc, "")
	desc = strings.Join(strings.Fields(desc), " ")
	if desc == "" {
		desc = core.DefaultExpenseDescription
	}
	return value, desc, nil
}
