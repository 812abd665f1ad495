package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrOrderHistoryQueryIsNotConstructed = errors.New(
		"OrderHistoryQuery must be created via NewOrderHistoryQuery constructor",
	)
)

// OrderHistoryQuery retrieves the full ledger for one order in replay
// order: every recorded transition, who made it, and when.
type OrderHistoryQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewOrderHistoryQuery creates a ledger query for the given order.
func NewOrderHistoryQuery(orderID kernel.OrderID) (OrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return OrderHistoryQuery{}, err
	}

	return OrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q OrderHistoryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// OrderHistoryQueryResponse represents one ledger entry. ChangedBy is zero
// for entries backfilled by the reconciliation sweep.
type OrderHistoryQueryResponse struct {
	Status     string
	ChangedBy  int64
	RecordedAt time.Time
}
