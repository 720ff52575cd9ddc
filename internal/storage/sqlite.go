package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finbot/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single local database file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runSQLiteMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) CreateUser(ctx context.Context, u core.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, phone, name, email, monthly_budget_cents) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Phone, u.Name, u.Email, u.MonthlyBudget.Cents)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) FindUserByPhone(ctx context.Context, phone string) (core.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, phone, name, email, monthly_budget_cents FROM users WHERE phone = ?`, phone))
}

func (s *SQLiteStore) FindUserByID(ctx context.Context, id string) (core.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, phone, name, email, monthly_budget_cents FROM users WHERE id = ?`, id))
}

func (s *SQLiteStore) scanUser(row *sql.Row) (core.User, error) {
	var u core.User
	err := row.Scan(&u.ID, &u.Phone, &u.Name, &u.Email, &u.MonthlyBudget.Cents)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, core.ErrNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) UpdateUserBudget(ctx context.Context, userID string, budget core.Money) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET monthly_budget_cents = ? WHERE id = ?`, budget.Cents, userID)
	if err != nil {
		return fmt.Errorf("update user budget: %w", err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (user_id, description, amount_cents, category, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.UserID, e.Description, e.Value.Cents, e.Category, e.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense id: %w", err)
	}
	return id, nil
}

const expenseColumns = `id, user_id, description, amount_cents, category, created_at`

func (s *SQLiteStore) FindExpenseByID(ctx context.Context, id int64) (core.Expense, error) {
	return scanExpense(s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id))
}

func (s *SQLiteStore) FindExpensesInRange(ctx context.Context, userID string, from, to time.Time) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE user_id = ? AND created_at >= ? AND created_at < ?
		 ORDER BY created_at`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func (s *SQLiteStore) FindLastExpense(ctx context.Context, userID string) (core.Expense, error) {
	return scanExpense(s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`, userID))
}

func (s *SQLiteStore) FindExpenseByDescription(ctx context.Context, userID, description string) (core.Expense, error) {
	return scanExpense(s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE user_id = ? AND LOWER(description) LIKE '%' || LOWER(?) || '%'
		 ORDER BY created_at DESC, id DESC LIMIT 1`, userID, description))
}

func (s *SQLiteStore) DeleteExpense(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) SumExpensesInRange(ctx context.Context, userID string, from, to time.Time) (core.Money, error) {
	var cents int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM expenses
		 WHERE user_id = ? AND created_at >= ? AND created_at < ?`, userID, from, to).Scan(&cents)
	if err != nil {
		return core.Money{}, fmt.Errorf("sum expenses: %w", err)
	}
	return core.Money{Cents: cents}, nil
}

func (s *SQLiteStore) MarkExpenseSynced(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE expenses SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark expense synced: %w", err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) FindUnsyncedExpenses(ctx context.Context, limit int) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE synced = 0 ORDER BY created_at LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list unsynced expenses: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func (s *SQLiteStore) CreateReminder(ctx context.Context, r core.Reminder) (int64, error) {
	var at sql.NullTime
	if r.ScheduledAt != nil {
		at = sql.NullTime{Time: *r.ScheduledAt, Valid: true}
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reminders (user_id, description, scheduled_at, recurrence, active) VALUES (?, ?, ?, ?, 1)`,
		r.UserID, r.Description, at, string(r.Recurrence))
	if err != nil {
		return 0, fmt.Errorf("create reminder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reminder id: %w", err)
	}
	return id, nil
}

const reminderColumns = `id, user_id, description, scheduled_at, recurrence, active`

func (s *SQLiteStore) FindActiveReminders(ctx context.Context, userID string) ([]core.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE user_id = ? AND active = 1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list active reminders: %w", err)
	}
	defer rows.Close()
	return collectReminders(rows)
}

func (s *SQLiteStore) FindDueReminders(ctx context.Context, now time.Time) ([]core.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE active = 1 AND scheduled_at IS NOT NULL AND scheduled_at <= ?
		 ORDER BY scheduled_at`, now)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()
	return collectReminders(rows)
}

func (s *SQLiteStore) FindReminderByDescription(ctx context.Context, userID, description string) (core.Reminder, error) {
	return scanReminder(s.db.QueryRowContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders
		 WHERE user_id = ? AND active = 1 AND LOWER(description) LIKE '%' || LOWER(?) || '%'
		 ORDER BY id DESC LIMIT 1`, userID, description))
}

func (s *SQLiteStore) UpdateReminderSchedule(ctx context.Context, id int64, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE reminders SET scheduled_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("update reminder schedule: %w", err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) DeactivateReminder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE reminders SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivate reminder: %w", err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) GetPaymentStatus(ctx context.Context, userID string) (core.PaymentStatus, error) {
	var status string
	err := s.db.QueryRowContext(ctx,
		`SELECT status FROM payments WHERE user_id = ?`, userID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return core.PaymentPending, nil
	}
	if err != nil {
		return "", fmt.Errorf("get payment status: %w", err)
	}
	return core.PaymentStatus(status), nil
}

func (s *SQLiteStore) SetPaymentStatus(ctx context.Context, userID string, status core.PaymentStatus) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (user_id, status, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(user_id) DO UPDATE SET status = excluded.status, updated_at = CURRENT_TIMESTAMP`,
		userID, string(status))
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (core.Expense, error) {
	var e core.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Value.Cents, &e.Category, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, core.ErrNotFound
	}
	if err != nil {
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}
	return e, nil
}

func collectExpenses(rows *sql.Rows) ([]core.Expense, error) {
	var out []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
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

func scanReminder(row rowScanner) (core.Reminder, error) {
	var r core.Reminder
	var at sql.NullTime
	var recurrence string
	err := row.Scan(&r.ID, &r.UserID, &r.Description, &at, &recurrence, &r.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Reminder{}, core.ErrNotFound
	}
	if err != nil {
		return core.Reminder{}, fmt.Errorf("scan reminder: %w", err)
	}
	if at.Valid {
		t := at.Time
		r.ScheduledAt = &t
	}
	r.Recurrence = core.Recurrence(recurrence)
	return r, nil
}

func collectReminders(rows *sql.Rows) ([]core.Reminder, error) {
	var out []core.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
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

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}
