package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCourierActiveOrdersQueryIsNotConstructed = errors.New(
		"CourierActiveOrdersQuery must be created via NewCourierActiveOrdersQuery constructor",
	)
)

// CourierActiveOrdersQuery retrieves the work a courier currently holds:
// all orders they have claimed but not yet delivered, ordered by the start
// of the delivery window so the most urgent job comes first.
type CourierActiveOrdersQuery struct {
	courierID kernel.ActorID

	guard guard.ConstructorGuard
}

// NewCourierActiveOrdersQuery creates a query scoped to the given courier.
func NewCourierActiveOrdersQuery(courierID kernel.ActorID) (CourierActiveOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return CourierActiveOrdersQuery{}, err
	}

	return CourierActiveOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CourierActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCourierActiveOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose active jobs are requested.
func (q CourierActiveOrdersQuery) CourierID() kernel.ActorID {
	return q.courierID
}

// CourierActiveOrdersQueryResponse represents one in-flight job as shown to
// the courier who owns it. Unlike the claimable pool it includes the
// dropoff address and contact, since the owning courier has to complete the
// delivery.
type CourierActiveOrdersQueryResponse struct {
	ID            int64
	TrackingID    kernel.TrackingID
	Status        string
	PickupStreet  string
	PickupCity    string
	DropoffStreet string
	DropoffCity   string
	ContactName   string
	ContactPhone  string
	Pieces        int
	WeightKg      float64
	WindowFrom    time.Time
	WindowTo      time.Time
}
