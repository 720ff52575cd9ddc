// Package worker exports registered expenses to a spreadsheet. Work arrives
// over the sync queue; a startup sweep recovers anything a lost message
// left behind.
package worker

import (
	"context"
	"fmt"

	"finbot/internal/core"
	"finbot/internal/log"
	"finbot/internal/messaging"
	"finbot/internal/sheets"
	"finbot/internal/storage"
)

type SyncWorker struct {
	store     storage.Store
	writer    sheets.ExpenseWriter
	batchSize int
	logger    *log.Logger
}

func NewSyncWorker(store storage.Store, writer sheets.ExpenseWriter, batchSize int, logger *log.Logger) *SyncWorker {
	return &SyncWorker{
		store:     store,
		writer:    writer,
		batchSize: batchSize,
		logger:    logger.WithComponent(log.ComponentWorker),
	}
}

// HandleSyncMessage exports the expense named by one queue message. Errors
// propagate so the consumer nacks and the broker redelivers.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *messaging.ExpenseSyncMessage) error {
	expense, err := w.store.FindExpenseByID(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("find expense %d: %w", msg.ID, err)
	}
	return w.export(ctx, expense.ID, expense)
}

// StartupSyncCheck sweeps expenses never exported, in batches. Failures are
// logged per expense; the sweep keeps going.
func (w *SyncWorker) StartupSyncCheck(ctx context.Context) error {
	pending, err := w.store.FindUnsyncedExpenses(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("find unsynced expenses: %w", err)
	}
	if len(pending) == 0 {
		w.logger.InfoContext(ctx, "No pending expenses found on startup")
		return nil
	}

	w.logger.InfoContext(ctx, "Processing pending expenses", "count", len(pending))

	synced := 0
	for _, expense := range pending {
		if err := w.export(ctx, expense.ID, expense); err != nil {
			w.logger.ErrorContext(ctx, "Failed to export expense",
				log.FieldExpenseID, expense.ID,
				log.FieldError, err)
			continue
		}
		synced++
	}

	w.logger.InfoContext(ctx, "Startup sync completed",
		"total", len(pending), "synced", synced)
	return nil
}

func (w *SyncWorker) export(ctx context.Context, id int64, expense core.Expense) error {
	ref, err := w.writer.Append(ctx, expense)
	if err != nil {
		return fmt.Errorf("append to sheet: %w", err)
	}
	if err := w.store.MarkExpenseSynced(ctx, id); err != nil {
		// The row landed; an unmarked expense resurfaces in the next sweep
		// as a duplicate, which the operator reconciles by hand.
		w.logger.ErrorContext(ctx, "Failed to mark expense synced",
			log.FieldExpenseID, id,
			log.FieldError, err)
		return nil
	}
	w.logger.InfoContext(ctx, "Expense exported",
		log.FieldExpenseID, id,
		"sheet_ref", ref,
		log.FieldExpenseDesc, expense.Description)
	return nil
}
