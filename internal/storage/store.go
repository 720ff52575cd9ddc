// Package storage persists users, expenses, reminders and payment state.
// Two backends are provided, SQLite for single-node deployments and Postgres
// for shared ones. Both run their schema migrations on open.
package storage

import (
	"context"
	"fmt"
	"time"

	"finbot/internal/config"
	"finbot/internal/core"
)

// Store is the persistence boundary used by the bot, the scheduler and the
// sync worker. Lookups that find nothing return core.ErrNotFound.
type Store interface {
	CreateUser(ctx context.Context, u core.User) error
	FindUserByPhone(ctx context.Context, phone string) (core.User, error)
	FindUserByID(ctx context.Context, id string) (core.User, error)
	UpdateUserBudget(ctx context.Context, userID string, budget core.Money) error

	CreateExpense(ctx context.Context, e core.Expense) (int64, error)
	FindExpenseByID(ctx context.Context, id int64) (core.Expense, error)
	FindExpensesInRange(ctx context.Context, userID string, from, to time.Time) ([]core.Expense, error)
	FindLastExpense(ctx context.Context, userID string) (core.Expense, error)
	// FindExpenseByDescription matches by case-insensitive substring and
	// returns the most recent hit; FindReminderByDescription likewise.
	FindExpenseByDescription(ctx context.Context, userID, description string) (core.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	SumExpensesInRange(ctx context.Context, userID string, from, to time.Time) (core.Money, error)
	MarkExpenseSynced(ctx context.Context, id int64) error
	FindUnsyncedExpenses(ctx context.Context, limit int) ([]core.Expense, error)

	CreateReminder(ctx context.Context, r core.Reminder) (int64, error)
	FindActiveReminders(ctx context.Context, userID string) ([]core.Reminder, error)
	FindDueReminders(ctx context.Context, now time.Time) ([]core.Reminder, error)
	FindReminderByDescription(ctx context.Context, userID, description string) (core.Reminder, error)
	UpdateReminderSchedule(ctx context.Context, id int64, at time.Time) error
	DeactivateReminder(ctx context.Context, id int64) error

	GetPaymentStatus(ctx context.Context, userID string) (core.PaymentStatus, error)
	SetPaymentStatus(ctx context.Context, userID string, status core.PaymentStatus) error

	Close() error
}

// Open selects and initializes the backend named in the configuration.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.DataBackend {
	case "sqlite":
		return NewSQLiteStore(cfg.SQLiteDBPath)
	case "postgres":
		return NewPostgresStore(ctx, cfg.PostgresURL)
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}
