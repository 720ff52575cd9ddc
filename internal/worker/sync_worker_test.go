package worker

import (
	"context"
	"errors"
	"fmt"
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

type fakeStore struct {
	storage.Store

	expenses map[int64]core.Expense
	synced   map[int64]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		expenses: make(map[int64]core.Expense),
		synced:   make(map[int64]bool),
	}
}

func (f *fakeStore) FindExpenseByID(_ context.Context, id int64) (core.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return core.Expense{}, core.ErrNotFound
	}
	return e, nil
}

func (f *fakeStore) FindUnsyncedExpenses(_ context.Context, limit int) ([]core.Expense, error) {
	var out []core.Expense
	for id, e := range f.expenses {
		if !f.synced[id] && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) MarkExpenseSynced(_ context.Context, id int64) error {
	if _, ok := f.expenses[id]; !ok {
		return core.ErrNotFound
	}
	f.synced[id] = true
	return nil
}

type fakeWriter struct {
	rows []core.Expense
	err  error
}

func (f *fakeWriter) Append(_ context.Context, e core.Expense) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.rows = append(f.rows, e)
	return fmt.Sprintf("Gastos!A%d", len(f.rows)), nil
}

func newTestWorker(store *fakeStore, writer *fakeWriter) *SyncWorker {
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	return NewSyncWorker(store, writer, 10, logger)
}

func testExpense(id int64) core.Expense {
	return core.Expense{
		ID:          id,
		UserID:      "u1",
		Description: "almoço",
		Value:       core.Money{Cents: 5000},
		Category:    "Alimentação",
		CreatedAt:   time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandleSyncMessage(t *testing.T) {
	store := newFakeStore()
	store.expenses[7] = testExpense(7)
	writer := &fakeWriter{}

	err := newTestWorker(store, writer).HandleSyncMessage(context.Background(), messaging.NewExpenseSyncMessage(7))
	require.NoError(t, err)

	require.Len(t, writer.rows, 1)
	assert.Equal(t, "almoço", writer.rows[0].Description)
	assert.True(t, store.synced[7])
}

func TestHandleSyncMessageUnknownExpense(t *testing.T) {
	store := newFakeStore()
	writer := &fakeWriter{}

	err := newTestWorker(store, writer).HandleSyncMessage(context.Background(), messaging.NewExpenseSyncMessage(99))
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Empty(t, writer.rows)
}

func TestHandleSyncMessageAppendFailureLeavesUnsynced(t *testing.T) {
	store := newFakeStore()
	store.expenses[7] = testExpense(7)
	writer := &fakeWriter{err: errors.New("quota exceeded")}

	err := newTestWorker(store, writer).HandleSyncMessage(context.Background(), messaging.NewExpenseSyncMessage(7))
	require.Error(t, err)
	assert.False(t, store.synced[7])
}

func TestStartupSyncCheck(t *testing.T) {
	store := newFakeStore()
	store.expenses[1] = testExpense(1)
	store.expenses[2] = testExpense(2)
	store.synced[2] = true
	writer := &fakeWriter{}

	err := newTestWorker(store, writer).StartupSyncCheck(context.Background())
	require.NoError(t, err)

	require.Len(t, writer.rows, 1)
	assert.True(t, store.synced[1])
}
