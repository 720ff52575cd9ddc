// Package sheets defines the outbound spreadsheet port the sync worker
// writes expenses through.
package sheets

import (
	"context"

	"finbot/internal/core"
)

type ExpenseWriter interface {
	Append(ctx context.Context, e core.Expense) (rowRef string, err error)
}
