package bot

import (
	"context"
	"strings"
	"time"

	"finbot/internal/core"
)

// fakeStore is an in-memory storage.Store used by the bot and scheduler
// tests. Not safe for concurrent use; tests are sequential.
type fakeStore struct {
	users     map[string]core.User
	expenses  []core.Expense
	reminders []core.Reminder
	payments  map[string]core.PaymentStatus

	nextExpenseID  int64
	nextReminderID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]core.User),
		payments: make(map[string]core.PaymentStatus),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, u core.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeStore) FindUserByPhone(_ context.Context, phone string) (core.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return core.User{}, core.ErrNotFound
}

func (f *fakeStore) FindUserByID(_ context.Context, id string) (core.User, error) {
	u, ok := f.users[id]
	if !ok {
		return core.User{}, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) UpdateUserBudget(_ context.Context, userID string, budget core.Money) error {
	u, ok := f.users[userID]
	if !ok {
		return core.ErrNotFound
	}
	u.MonthlyBudget = budget
	f.users[userID] = u
	return nil
}

func (f *fakeStore) CreateExpense(_ context.Context, e core.Expense) (int64, error) {
	f.nextExpenseID++
	e.ID = f.nextExpenseID
	f.expenses = append(f.expenses, e)
	return e.ID, nil
}

func (f *fakeStore) FindExpenseByID(_ context.Context, id int64) (core.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Expense{}, core.ErrNotFound
}

func (f *fakeStore) FindExpensesInRange(_ context.Context, userID string, from, to time.Time) ([]core.Expense, error) {
	var out []core.Expense
	for _, e := range f.expenses {
		if e.UserID == userID && !e.CreatedAt.Before(from) && e.CreatedAt.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) FindLastExpense(_ context.Context, userID string) (core.Expense, error) {
	var last core.Expense
	found := false
	for _, e := range f.expenses {
		if e.UserID != userID {
			continue
		}
		if !found || e.CreatedAt.After(last.CreatedAt) || (e.CreatedAt.Equal(last.CreatedAt) && e.ID > last.ID) {
			last = e
			found = true
		}
	}
	if !found {
		return core.Expense{}, core.ErrNotFound
	}
	return last, nil
}

func (f *fakeStore) FindExpenseByDescription(_ context.Context, userID, description string) (core.Expense, error) {
	needle := strings.ToLower(description)
	for i := len(f.expenses) - 1; i >= 0; i-- {
		e := f.expenses[i]
		if e.UserID == userID && strings.Contains(strings.ToLower(e.Description), needle) {
			return e, nil
		}
	}
	return core.Expense{}, core.ErrNotFound
}

func (f *fakeStore) DeleteExpense(_ context.Context, id int64) error {
	for i, e := range f.expenses {
		if e.ID == id {
			f.expenses = append(f.expenses[:i], f.expenses[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeStore) SumExpensesInRange(ctx context.Context, userID string, from, to time.Time) (core.Money, error) {
	expenses, _ := f.FindExpensesInRange(ctx, userID, from, to)
	var total core.Money
	for _, e := range expenses {
		total = total.Add(e.Value)
	}
	return total, nil
}

func (f *fakeStore) MarkExpenseSynced(_ context.Context, id int64) error {
	for _, e := range f.expenses {
		if e.ID == id {
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeStore) FindUnsyncedExpenses(_ context.Context, limit int) ([]core.Expense, error) {
	if len(f.expenses) > limit {
		return f.expenses[:limit], nil
	}
	return f.expenses, nil
}

func (f *fakeStore) CreateReminder(_ context.Context, r core.Reminder) (int64, error) {
	f.nextReminderID++
	r.ID = f.nextReminderID
	f.reminders = append(f.reminders, r)
	return r.ID, nil
}

func (f *fakeStore) FindActiveReminders(_ context.Context, userID string) ([]core.Reminder, error) {
	var out []core.Reminder
	for _, r := range f.reminders {
		if r.UserID == userID && r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) FindDueReminders(_ context.Context, now time.Time) ([]core.Reminder, error) {
	var out []core.Reminder
	for _, r := range f.reminders {
		if r.Active && r.ScheduledAt != nil && !r.ScheduledAt.After(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) FindReminderByDescription(_ context.Context, userID, description string) (core.Reminder, error) {
	needle := strings.ToLower(description)
	for i := len(f.reminders) - 1; i >= 0; i-- {
		r := f.reminders[i]
		if r.UserID == userID && r.Active && strings.Contains(strings.ToLower(r.Description), needle) {
			return r, nil
		}
	}
	return core.Reminder{}, core.ErrNotFound
}

func (f *fakeStore) UpdateReminderSchedule(_ context.Context, id int64, at time.Time) error {
	for i, r := range f.reminders {
		if r.ID == id {
			t := at
			f.reminders[i].ScheduledAt = &t
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeStore) DeactivateReminder(_ context.Context, id int64) error {
	for i, r := range f.reminders {
		if r.ID == id {
			f.reminders[i].Active = false
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeStore) GetPaymentStatus(_ context.Context, userID string) (core.PaymentStatus, error) {
	status, ok := f.payments[userID]
	if !ok {
		return core.PaymentPending, nil
	}
	return status, nil
}

func (f *fakeStore) SetPaymentStatus(_ context.Context, userID string, status core.PaymentStatus) error {
	f.payments[userID] = status
	return nil
}

func (f *fakeStore) Close() error { return nil }
