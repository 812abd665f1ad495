package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ClaimOrderCommandHandler is the claim coordinator: it resolves contention
// when multiple couriers attempt to claim the same unclaimed order at
// overlapping times.
//
// The whole decision rides on one conditional write. The repository applies
// the update only if the row still holds status Pending with no courier at
// write time; the store's row-level serialization guarantees at most one
// concurrent caller sees the write land. There is no read-then-write
// sequence anywhere on this path, so there is no window to race through.
//
// The ledger append is deliberately performed after the commit. If it
// fails, the claim stands and LedgerWriteFailedError is returned as a
// degraded success; the reconciliation sweep backfills the entry later.
// The ledger is a record of what happened, not a gate on it.
//
// Example:
//
//	cmd, _ := commands.NewClaimOrderCommand(orderID, courierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrAlreadyClaimed):
//	    // this job was just taken; re-query the pool
//	case errors.Is(err, errs.ErrLedgerWriteFailed):
//	    // claim granted, ledger entry pending backfill
//	case err != nil:
//	    // infrastructure failure
//	default:
//	    // claim granted
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimOrderCommandHandler creates the claim coordinator over the given
// unit of work factory.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one claim attempt. Exactly one of N concurrent attempts
// on the same pending order succeeds; the rest receive AlreadyClaimedError.
// The coordinator does not distinguish "claimed by someone else", "already
// progressed", and "does not exist" — by the time the caller observes the
// result the distinction is stale anyway.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewStoreUnavailableError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimed, err := uow.OrderRepository().Claim(ctx, cmd.OrderID(), cmd.CourierID())
	if err != nil {
		return err
	}
	if !claimed {
		return errs.NewAlreadyClaimedError(cmd.OrderID().Int64())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The transition is committed; from here on failures degrade, they do
	// not roll back.
	entry, err := history.NewEntry(cmd.OrderID(), cmd.CourierID(), order.EnRoutePickup, time.Now().UTC())
	if err != nil {
		return errs.NewLedgerWriteFailedError(cmd.OrderID().Int64(), err)
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return errs.NewLedgerWriteFailedError(cmd.OrderID().Int64(), err)
	}

	return nil
}
