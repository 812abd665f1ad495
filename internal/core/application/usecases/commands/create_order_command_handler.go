package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// CreateOrderResult carries the identifiers assigned when the order was
// persisted: the numeric store id and the customer-facing tracking
// reference.
type CreateOrderResult struct {
	OrderID    kernel.OrderID
	TrackingID kernel.TrackingID
}

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders always start Pending with no courier; creation is not a
// transition, so no ledger entry is written here.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The order is persisted in a
// transaction; on success the store-assigned id and tracking reference are
// returned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.Contact(),
		cmd.Pieces(),
		cmd.WeightKg(),
		cmd.Window(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, errs.NewStoreUnavailableError(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:    aggregate.ID(),
		TrackingID: aggregate.TrackingID(),
	}, nil
}
