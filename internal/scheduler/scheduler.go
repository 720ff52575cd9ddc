// Package scheduler periodically fires due reminders, sending each one to
// its owner through the outbound messaging queue.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"finbot/internal/core"
	"finbot/internal/log"
	"finbot/internal/messaging"
	"finbot/internal/nlp"
	"finbot/internal/storage"
)

type Scheduler struct {
	store     storage.Store
	messenger messaging.Messenger
	clock     core.Clock
	interval  time.Duration
	logger    *log.Logger
}

func New(store storage.Store, messenger messaging.Messenger, clock core.Clock, interval time.Duration, logger *log.Logger) *Scheduler {
	return &Scheduler{
		store:     store,
		messenger: messenger,
		clock:     clock,
		interval:  interval,
		logger:    logger.WithComponent(log.ComponentScheduler),
	}
}

// Run ticks until ctx is cancelled. Each tick fires every reminder whose
// schedule has elapsed.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "Scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := s.FireDueReminders(ctx, s.clock.Now()); err != nil {
				s.logger.ErrorContext(ctx, "Reminder sweep failed", log.FieldError, err)
			}
		}
	}
}

// FireDueReminders delivers every reminder scheduled at or before now. A
// failure on one reminder is logged and does not block the rest. Reminders
// advance (or deactivate) only after their notification was handed to the
// broker, so a failed send retries on the next tick.
func (s *Scheduler) FireDueReminders(ctx context.Context, now time.Time) error {
	due, err := s.store.FindDueReminders(ctx, now)
	if err != nil {
		return fmt.Errorf("find due reminders: %w", err)
	}

	for _, reminder := range due {
		if err := s.fire(ctx, reminder, now); err != nil {
			s.logger.ErrorContext(ctx, "Failed to fire reminder",
				log.FieldReminderID, reminder.ID,
				log.FieldError, err)
		}
	}
	return nil
}

func (s *Scheduler) fire(ctx context.Context, reminder core.Reminder, now time.Time) error {
	user, err := s.store.FindUserByID(ctx, reminder.UserID)
	if err != nil {
		return fmt.Errorf("find user %s: %w", reminder.UserID, err)
	}

	text := fmt.Sprintf("Lembrete: %s", reminder.Description)
	if err := s.messenger.PublishOutbound(ctx, messaging.NewOutboundMessage(user.Phone, text)); err != nil {
		return fmt.Errorf("publish reminder notification: %w", err)
	}

	s.logger.InfoContext(ctx, "Reminder fired",
		log.FieldOperation, log.OpFire,
		log.FieldReminderID, reminder.ID,
		log.FieldUserID, reminder.UserID)

	if !reminder.Recurring() {
		if err := s.store.DeactivateReminder(ctx, reminder.ID); err != nil {
			return fmt.Errorf("deactivate reminder: %w", err)
		}
		return nil
	}

	// Skip occurrences missed during downtime instead of replaying them.
	next := *reminder.ScheduledAt
	for !next.After(now) {
		next = nlp.NextOccurrence(next, reminder.Recurrence)
	}
	if err := s.store.UpdateReminderSchedule(ctx, reminder.ID, next); err != nil {
		return fmt.Errorf("reschedule reminder: %w", err)
	}
	return nil
}
