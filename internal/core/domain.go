package core

import (
	"strings"
	"time"
)

const (
	Weekly  Recurrence = "weekly"
	Monthly Recurrence = "monthly"
)

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
)

// DefaultExpenseDescription is used when an expense message carries no
// residual description after extraction.
const DefaultExpenseDescription = "Gasto sem descrição"

type (
	// Recurrence tags a reminder as repeating. The empty string means
	// one-shot. Tags other than Weekly/Monthly roll over by one day.
	Recurrence string

	PaymentStatus string

	User struct {
		ID            string
		Phone         string
		Name          string
		Email         string
		MonthlyBudget Money // zero means unset
	}

	Expense struct {
		ID          int64
		UserID      string
		Description string
		Value       Money
		Category    string
		CreatedAt   time.Time
	}

	Reminder struct {
		ID          int64
		UserID      string
		Description string
		ScheduledAt *time.Time
		Recurrence  Recurrence
		Active      bool
	}
)

// HasBudget reports whether the user configured a monthly budget.
func (u User) HasBudget() bool {
	return u.MonthlyBudget.Cents > 0
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if e.UserID == "" {
		return ErrMissingUser
	}
	return e.Value.Validate()
}

// Validate enforces the creation invariant: a reminder needs at least one
// of a scheduled instant or a recurrence tag.
func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if r.UserID == "" {
		return ErrMissingUser
	}
	if r.ScheduledAt == nil && r.Recurrence == "" {
		return ErrScheduleMissing
	}
	return nil
}

func (r Reminder) Recurring() bool {
	return r.Recurrence != ""
}

// Completed reports whether the status unlocks the assistant.
func (s PaymentStatus) Completed() bool {
	return s == PaymentCompleted
}
