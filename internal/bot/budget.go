package bot

import (
	"context"
	"fmt"
	"time"

	"finbot/internal/core"
)

// budgetWarning renders the alert appended to a register-expense reply. The
// tiers come straight from the product copy: blown budget, above 85% and
// above 50%. Below that, no warning.
func (s *Service) budgetWarning(ctx context.Context, user core.User, now time.Time) (string, error) {
	if !user.HasBudget() {
		return "", nil
	}

	from, to := monthRange(now)
	total, err := s.store.SumExpensesInRange(ctx, user.ID, from, to)
	if err != nil {
		return "", err
	}

	percentage := float64(total.Cents) * 100 / float64(user.MonthlyBudget.Cents)
	switch {
	case percentage >= 100:
		exceeded := total.Sub(user.MonthlyBudget)
		return fmt.Sprintf("\nATENÇÃO: Você ultrapassou seu orçamento em R$ %.2f.", exceeded.Reais()), nil
	case percentage >= 85:
		return fmt.Sprintf("\nATENÇÃO: Você já gastou %.0f%% do seu orçamento. O orçamento está quase acabando!", percentage), nil
	case percentage >= 50:
		return fmt.Sprintf("\nATENÇÃO: Você já gastou %.0f%% do seu orçamento.", percentage), nil
	}
	return "", nil
}

// monthRange is the half-open interval covering now's calendar month.
func monthRange(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 1, 0)
}
