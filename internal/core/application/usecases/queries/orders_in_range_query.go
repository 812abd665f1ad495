package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrOrdersInRangeQueryIsNotConstructed = errors.New(
		"OrdersInRangeQuery must be created via NewOrdersInRangeQuery constructor",
	)
)

// OrdersInRangeQuery retrieves every order created within a time range,
// regardless of customer or courier. It backs the admin view, so it
// exposes both sides of each order.
type OrdersInRangeQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewOrdersInRangeQuery creates a query covering orders created between
// from (inclusive) and to (exclusive).
func NewOrdersInRangeQuery(from, to time.Time) (OrdersInRangeQuery, error) {
	if from.IsZero() {
		return OrdersInRangeQuery{}, errs.NewValueIsRequiredError("from")
	}

	if to.IsZero() {
		return OrdersInRangeQuery{}, errs.NewValueIsRequiredError("to")
	}

	if !from.Before(to) {
		return OrdersInRangeQuery{}, errs.NewValueIsInvalidError("from/to range")
	}

	return OrdersInRangeQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q OrdersInRangeQuery) Validate() error {
	return q.guard.Validate(ErrOrdersInRangeQueryIsNotConstructed)
}

// From returns the inclusive start of the range.
func (q OrdersInRangeQuery) From() time.Time {
	return q.from
}

// To returns the exclusive end of the range.
func (q OrdersInRangeQuery) To() time.Time {
	return q.to
}

// OrdersInRangeQueryResponse represents one order in the admin listing.
type OrdersInRangeQueryResponse struct {
	ID         int64
	TrackingID kernel.TrackingID
	CustomerID int64
	CourierID  *int64
	Status     string
	CreatedAt  time.Time
}
