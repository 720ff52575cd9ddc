package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbot/internal/core"
	"finbot/internal/log"
	"finbot/internal/messaging"
	"finbot/internal/storage"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

// fakeStore covers only the store methods the scheduler touches. Anything
// else panics through the embedded nil interface.
type fakeStore struct {
	storage.Store

	users     map[string]core.User
	reminders map[int64]*core.Reminder
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[string]core.User),
		reminders: make(map[int64]*core.Reminder),
	}
}

func (f *fakeStore) FindUserByID(_ context.Context, id string) (core.User, error) {
	u, ok := f.users[id]
	if !ok {
		return core.User{}, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) FindDueReminders(_ context.Context, now time.Time) ([]core.Reminder, error) {
	var out []core.Reminder
	for _, r := range f.reminders {
		if r.Active && r.ScheduledAt != nil && !r.ScheduledAt.After(now) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateReminderSchedule(_ context.Context, id int64, at time.Time) error {
	r, ok := f.reminders[id]
	if !ok {
		return core.ErrNotFound
	}
	t := at
	r.ScheduledAt = &t
	return nil
}

func (f *fakeStore) DeactivateReminder(_ context.Context, id int64) error {
	r, ok := f.reminders[id]
	if !ok {
		return core.ErrNotFound
	}
	r.Active = false
	return nil
}

type fakeMessenger struct {
	sent []messaging.OutboundMessage
	err  error
}

func (f *fakeMessenger) PublishOutbound(_ context.Context, msg *messaging.OutboundMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, *msg)
	return nil
}

func newTestScheduler(store *fakeStore, messenger *fakeMessenger) *Scheduler {
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	return New(store, messenger, core.FixedClock{Instant: testNow}, time.Minute, logger)
}

func reminderAt(t time.Time) *time.Time { return &t }

func TestFireDueRemindersOneShot(t *testing.T) {
	store := newFakeStore()
	store.users["u1"] = core.User{ID: "u1", Phone: "5511999990000"}
	store.reminders[1] = &core.Reminder{
		ID: 1, UserID: "u1", Description: "pagar conta",
		ScheduledAt: reminderAt(testNow.Add(-time.Minute)), Active: true,
	}
	store.reminders[2] = &core.Reminder{
		ID: 2, UserID: "u1", Description: "dentista",
		ScheduledAt: reminderAt(testNow.Add(time.Hour)), Active: true,
	}
	messenger := &fakeMessenger{}

	err := newTestScheduler(store, messenger).FireDueReminders(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	assert.Equal(t, "5511999990000", messenger.sent[0].Phone)
	assert.Equal(t, "Lembrete: pagar conta", messenger.sent[0].Text)

	assert.False(t, store.reminders[1].Active)
	assert.True(t, store.reminders[2].Active)
}

func TestFireDueRemindersRecurringRollsOver(t *testing.T) {
	store := newFakeStore()
	store.users["u1"] = core.User{ID: "u1", Phone: "5511999990000"}
	store.reminders[1] = &core.Reminder{
		ID: 1, UserID: "u1", Description: "feira",
		ScheduledAt: reminderAt(testNow.Add(-time.Minute)),
		Recurrence:  core.Weekly, Active: true,
	}
	messenger := &fakeMessenger{}

	err := newTestScheduler(store, messenger).FireDueReminders(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	r := store.reminders[1]
	assert.True(t, r.Active)
	require.NotNil(t, r.ScheduledAt)
	assert.True(t, r.ScheduledAt.Equal(testNow.Add(-time.Minute).AddDate(0, 0, 7)))
}

func TestFireDueRemindersSkipsMissedOccurrences(t *testing.T) {
	store := newFakeStore()
	store.users["u1"] = core.User{ID: "u1", Phone: "5511999990000"}
	// Three weeks behind; a single fire catches the schedule up past now.
	store.reminders[1] = &core.Reminder{
		ID: 1, UserID: "u1", Description: "feira",
		ScheduledAt: reminderAt(testNow.AddDate(0, 0, -21)),
		Recurrence:  core.Weekly, Active: true,
	}
	messenger := &fakeMessenger{}

	err := newTestScheduler(store, messenger).FireDueReminders(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	assert.True(t, store.reminders[1].ScheduledAt.Equal(testNow.AddDate(0, 0, -21).AddDate(0, 0, 28)))
}

func TestFireDueRemindersTwiceSendsOnce(t *testing.T) {
	store := newFakeStore()
	store.users["u1"] = core.User{ID: "u1", Phone: "5511999990000"}
	store.reminders[1] = &core.Reminder{
		ID: 1, UserID: "u1", Description: "pagar conta",
		ScheduledAt: reminderAt(testNow.Add(-time.Minute)), Active: true,
	}
	store.reminders[2] = &core.Reminder{
		ID: 2, UserID: "u1", Description: "feira",
		ScheduledAt: reminderAt(testNow.Add(-time.Minute)),
		Recurrence:  core.Weekly, Active: true,
	}
	messenger := &fakeMessenger{}
	sched := newTestScheduler(store, messenger)

	require.NoError(t, sched.FireDueReminders(context.Background(), testNow))
	require.NoError(t, sched.FireDueReminders(context.Background(), testNow))

	// Each reminder fired exactly once: the one-shot is now inactive and the
	// recurring one is rescheduled past now.
	assert.Len(t, messenger.sent, 2)
	assert.False(t, store.reminders[1].Active)
	assert.True(t, store.reminders[2].ScheduledAt.After(testNow))
}

func TestFireDueRemindersSendFailureKeepsReminder(t *testing.T) {
	store := newFakeStore()
	store.users["u1"] = core.User{ID: "u1", Phone: "5511999990000"}
	store.reminders[1] = &core.Reminder{
		ID: 1, UserID: "u1", Description: "pagar conta",
		ScheduledAt: reminderAt(testNow.Add(-time.Minute)), Active: true,
	}
	messenger := &fakeMessenger{err: errors.New("broker down")}

	err := newTestScheduler(store, messenger).FireDueReminders(context.Background(), testNow)
	require.NoError(t, err)

	assert.Empty(t, messenger.sent)
	assert.True(t, store.reminders[1].Active)
}

func TestFireDueRemindersMissingUserIsIsolated(t *testing.T) {
	store := newFakeStore()
	store.users["u1"] = core.User{ID: "u1", Phone: "5511999990000"}
	store.reminders[1] = &core.Reminder{
		ID: 1, UserID: "ghost", Description: "orfao",
		ScheduledAt: reminderAt(testNow.Add(-time.Minute)), Active: true,
	}
	store.reminders[2] = &core.Reminder{
		ID: 2, UserID: "u1", Description: "pagar conta",
		ScheduledAt: reminderAt(testNow.Add(-time.Minute)), Active: true,
	}
	messenger := &fakeMessenger{}

	err := newTestScheduler(store, messenger).FireDueReminders(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, messenger.sent, 1)
	assert.Equal(t, "Lembrete: pagar conta", messenger.sent[0].Text)
	assert.False(t, store.reminders[2].Active)
}
