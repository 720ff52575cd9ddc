package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"finbot/internal/core"
)

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, url string) (*PostgresStore, error) {
	if err := runPostgresMigrations(url); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, u core.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, phone, name, email, monthly_budget_cents) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Phone, u.Name, u.Email, u.MonthlyBudget.Cents)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindUserByPhone(ctx context.Context, phone string) (core.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT id, phone, name, email, monthly_budget_cents FROM users WHERE phone = $1`, phone))
}

func (s *PostgresStore) FindUserByID(ctx context.Context, id string) (core.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx,
		`SELECT id, phone, name, email, monthly_budget_cents FROM users WHERE id = $1`, id))
}

func (s *PostgresStore) scanUser(row pgx.Row) (core.User, error) {
	var u core.User
	err := row.Scan(&u.ID, &u.Phone, &u.Name, &u.Email, &u.MonthlyBudget.Cents)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.User{}, core.ErrNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) UpdateUserBudget(ctx context.Context, userID string, budget core.Money) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET monthly_budget_cents = $1 WHERE id = $2`, budget.Cents, userID)
	if err != nil {
		return fmt.Errorf("update user budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO expenses (user_id, description, amount_cents, category, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		e.UserID, e.Description, e.Value.Cents, e.Category, e.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) FindExpenseByID(ctx context.Context, id int64) (core.Expense, error) {
	return scanPgExpense(s.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
}

func (s *PostgresStore) FindExpensesInRange(ctx context.Context, userID string, from, to time.Time) ([]core.Expense, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	return collectPgExpenses(rows)
}

func (s *PostgresStore) FindLastExpense(ctx context.Context, userID string) (core.Expense, error) {
	return scanPgExpense(s.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`, userID))
}

func (s *PostgresStore) FindExpenseByDescription(ctx context.Context, userID, description string) (core.Expense, error) {
	return scanPgExpense(s.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE user_id = $1 AND LOWER(description) LIKE '%' || LOWER($2) || '%'
		 ORDER BY created_at DESC, id DESC LIMIT 1`, userID, description))
}

func (s *PostgresStore) DeleteExpense(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SumExpensesInRange(ctx context.Context, userID string, from, to time.Time) (core.Money, error) {
	var cents int64
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM expenses
		 WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`, userID, from, to).Scan(&cents)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum expenses: %w", err)
	}
	return core.Money{Cents: cents}, nil
}

func (s *PostgresStore) MarkExpenseSynced(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `UPDATE expenses SET synced = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark expense synced: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindUnsyncedExpenses(ctx context.Context, limit int) ([]core.Expense, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE NOT synced ORDER BY created_at LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list unsynced expenses: %w", err)
	}
	defer rows.Close()
	return collectPgExpenses(rows)
}

func (s *PostgresStore) CreateReminder(ctx context.Context, r core.Reminder) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO reminders (user_id, description, scheduled_at, recurrence, active)
		 VALUES ($1, $2, $3, $4, TRUE) RETURNING id`,
		r.UserID, r.Description, r.ScheduledAt, string(r.Recurrence)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create reminder: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) FindActiveReminders(ctx context.Context, userID string) ([]core.Reminder, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE user_id = $1 AND active ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list active reminders: %w", err)
	}
	defer rows.Close()
	return collectPgReminders(rows)
}

func (s *PostgresStore) FindDueReminders(ctx context.Context, now time.Time) ([]core.Reminder, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE active AND scheduled_at IS NOT NULL AND scheduled_at <= $1
		 ORDER BY scheduled_at`, now)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()
	return collectPgReminders(rows)
}

func (s *PostgresStore) FindReminderByDescription(ctx context.Context, userID, description string) (core.Reminder, error) {
	return scanPgReminder(s.pool.QueryRow(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE user_id = $1 AND active AND LOWER(description) LIKE '%' || LOWER($2) || '%'
		 ORDER BY id DESC LIMIT 1`, userID, description))
}

func (s *PostgresStore) UpdateReminderSchedule(ctx context.Context, id int64, at time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE reminders SET scheduled_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("update reminder schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeactivateReminder(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE reminders SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) GetPaymentStatus(ctx context.Context, userID string) (core.PaymentStatus, error) {
	var status string
	err := s.pool.QueryRow(ctx,
		`SELECT status FROM payments WHERE user_id = $1`, userID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.PaymentPending, nil
	}
	if err != nil {
		return "", fmt.Errorf("get payment status: %w", err)
	}
	return core.PaymentStatus(status), nil
}

func (s *PostgresStore) SetPaymentStatus(ctx context.Context, userID string, status core.PaymentStatus) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO payments (user_id, status, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET status = EXCLUDED.status, updated_at = now()`,
		userID, string(status))
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	return nil
}

func scanPgExpense(row pgx.Row) (core.Expense, error) {
	var e core.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Value.Cents, &e.Category, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Expense{}, core.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}
	return e, nil
}

func collectPgExpenses(rows pgx.Rows) ([]core.Expense, error) {
	var out []core.Expense
	for rows.Next() {
		e, err := scanPgExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}

func scanPgReminder(row pgx.Row) (core.Reminder, error) {
	var r core.Reminder
	var at *time.Time
	var recurrence string
	err := row.Scan(&r.ID, &r.UserID, &r.Description, &at, &recurrence, &r.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Reminder{}, core.ErrNotFound
	}
	if err != nil {
		return core.Reminder{}, fmt.Errorf("scan reminder: %w", err)
	}
	r.ScheduledAt = at
	r.Recurrence = core.Recurrence(recurrence)
	return r, nil
}

func collectPgReminders(rows pgx.Rows) ([]core.Reminder, error) {
	var out []core.Reminder
	for rows.Next() {
		r, err := scanPgReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}
	return out, nil
}
