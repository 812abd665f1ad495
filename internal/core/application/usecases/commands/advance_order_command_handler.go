package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AdvanceOrderCommandHandler is the lifecycle engine: it validates and
// applies every transition an order can undergo after creation.
//
// The pending -> en-route transition is the only one with contention; it is
// delegated entirely to the claim coordinator, with the acting courier as
// the candidate claimant, and its errors pass through unchanged. The
// remaining transitions apply a single conditional write keyed on the
// order id, the predecessor status from the transition table, and the
// acting courier's ownership — the same conditional-write discipline as the
// claim, so the rare legitimate concurrent advance needs no extra locking.
//
// When the conditional write matches no row the engine cannot tell "wrong
// owner" from "order missing" from the write alone; only then does it read
// the row to pick the error. A missing row and a foreign owner both map to
// UnauthorizedError so existence is not leaked across couriers; an owned
// row in the wrong status maps to InvalidTransitionError. The read happens
// strictly on the failure path and never influences a write.
type AdvanceOrderCommandHandler struct {
	uowFactory   UoWFactory
	claimHandler ClaimOrderCommandHandler
}

// NewAdvanceOrderCommandHandler creates the lifecycle engine over the given
// unit of work factory. The claim coordinator it delegates to shares the
// same factory.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory:   uowFactory,
		claimHandler: NewClaimOrderCommandHandler(uowFactory),
	}
}

// Handle processes one transition request. On success exactly one ledger
// entry is appended for the reached status, attributed to the acting
// courier; a failed append degrades the result to LedgerWriteFailedError
// without rolling the transition back.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Target() == order.EnRoutePickup {
		claimCmd, err := NewClaimOrderCommand(cmd.OrderID(), cmd.CourierID())
		if err != nil {
			return err
		}
		return h.claimHandler.Handle(ctx, claimCmd)
	}

	current, ok := order.PredecessorOf(cmd.Target())
	if !ok {
		return errs.NewInvalidTransitionError("", cmd.Target().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewStoreUnavailableError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	applied, err := repo.AdvanceOwned(ctx, cmd.OrderID(), cmd.CourierID(), current, cmd.Target())
	if err != nil {
		return err
	}
	if !applied {
		return h.classifyRejection(ctx, repo, cmd)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	entry, err := history.NewEntry(cmd.OrderID(), cmd.CourierID(), cmd.Target(), time.Now().UTC())
	if err != nil {
		return errs.NewLedgerWriteFailedError(cmd.OrderID().Int64(), err)
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return errs.NewLedgerWriteFailedError(cmd.OrderID().Int64(), err)
	}

	return nil
}

// classifyRejection decides which typed error a zero-row conditional write
// maps to. The order is left unchanged in every branch.
func (h AdvanceOrderCommandHandler) classifyRejection(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd AdvanceOrderCommand,
) error {
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewUnauthorizedError(cmd.OrderID().Int64(), cmd.CourierID().Int64())
		}
		return err
	}

	if !aggregate.IsOwnedBy(cmd.CourierID()) {
		return errs.NewUnauthorizedError(cmd.OrderID().Int64(), cmd.CourierID().Int64())
	}

	return errs.NewInvalidTransitionError(aggregate.Status().String(), cmd.Target().String())
}
