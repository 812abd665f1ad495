package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// DefaultPageSize caps how many orders a single customer page returns.
const DefaultPageSize = 20

var (
	ErrCustomerOrdersQueryIsNotConstructed = errors.New(
		"CustomerOrdersQuery must be created via NewCustomerOrdersQuery constructor",
	)
)

// CustomerOrdersQuery retrieves one page of a customer's own orders,
// newest first. Pages are numbered from 1.
//
// Example:
//
//	query, err := NewCustomerOrdersQuery(customerID, 1)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
type CustomerOrdersQuery struct {
	customerID kernel.ActorID
	page       int

	guard guard.ConstructorGuard
}

// NewCustomerOrdersQuery creates a query for one page of the customer's
// order list.
func NewCustomerOrdersQuery(customerID kernel.ActorID, page int) (CustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return CustomerOrdersQuery{}, err
	}

	if page < 1 {
		return CustomerOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}

	return CustomerOrdersQuery{
		customerID: customerID,
		page:       page,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q CustomerOrdersQuery) CustomerID() kernel.ActorID {
	return q.customerID
}

// Page returns the requested page number, starting at 1.
func (q CustomerOrdersQuery) Page() int {
	return q.page
}

// CustomerOrdersQueryResponse represents one order as shown to the
// customer who placed it. The courier's identity is not exposed; the
// customer tracks progress through the status and the tracking reference.
type CustomerOrdersQueryResponse struct {
	ID            int64
	TrackingID    kernel.TrackingID
	Status        string
	PickupStreet  string
	PickupCity    string
	DropoffStreet string
	DropoffCity   string
	Pieces        int
	WeightKg      float64
	WindowFrom    time.Time
	WindowTo      time.Time
	CreatedAt     time.Time
}
