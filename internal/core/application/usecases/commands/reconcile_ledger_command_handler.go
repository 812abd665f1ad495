package commands

import (
	"context"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ReconcileLedgerCommandHandler is the backfill sweep behind the degraded
// success contract: when a transition commits but its ledger append fails,
// the order's current status eventually disagrees with the last ledger
// entry for that order. The sweep finds those orders and appends the
// missing tail entry, attributed to the system actor and stamped with the
// order's own update time, so a replayed ledger converges with the store.
//
// The sweep is idempotent: an order whose tail already matches its status
// is never touched, and a gap repaired twice concurrently yields two
// identical tail entries, which replay to the same final status.
type ReconcileLedgerCommandHandler struct {
	uowFactory HistoryUoWFactory
}

// NewReconcileLedgerCommandHandler creates the sweep handler over the given
// unit of work factory.
func NewReconcileLedgerCommandHandler(uowFactory HistoryUoWFactory) ReconcileLedgerCommandHandler {
	return ReconcileLedgerCommandHandler{uowFactory: uowFactory}
}

// Handle runs one sweep pass and reports how many tail entries it appended.
func (h ReconcileLedgerCommandHandler) Handle(ctx context.Context, cmd ReconcileLedgerCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errs.NewStoreUnavailableError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.HistoryRepository()

	gaps, err := repo.MissingTails(ctx)
	if err != nil {
		return 0, err
	}

	backfilled := 0

	for _, gap := range gaps {
		entry, entryErr := history.NewEntry(gap.OrderID, kernel.SystemActorID, gap.Status, gap.UpdatedAt)
		if entryErr != nil {
			return backfilled, entryErr
		}

		if appendErr := repo.Append(ctx, entry); appendErr != nil {
			return backfilled, appendErr
		}

		backfilled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return backfilled, nil
}
