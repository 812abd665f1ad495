// Package queries contains the read side: role-scoped projections executed
// directly against the database, bypassing the aggregates. Each query is a
// validated struct paired with a handler over a GORM connection, and each
// handler returns plain response structs shaped for its audience.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAvailableOrdersQueryIsNotConstructed = errors.New(
		"AvailableOrdersQuery must be created via NewAvailableOrdersQuery constructor",
	)
)

// AvailableOrdersQuery retrieves the pool of unclaimed pending orders that
// couriers browse before claiming. Results come back oldest first so the
// longest-waiting orders surface at the top.
//
// Example:
//
//	query := NewAvailableOrdersQuery()
//	handler := NewAvailableOrdersQueryHandler(db)
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available orders: %w", err)
//	}
//
//	for _, o := range pool {
//	    fmt.Printf("order %d: %s, %s\n", o.ID, o.PickupStreet, o.PickupCity)
//	}
type AvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewAvailableOrdersQuery creates a query for the unclaimed order pool.
// This is a parameterless query; the pool is the same for every courier.
func NewAvailableOrdersQuery() AvailableOrdersQuery {
	return AvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrAvailableOrdersQueryIsNotConstructed)
}

// AvailableOrdersQueryResponse represents one claimable order as shown to
// couriers. It carries what a courier needs to decide whether to claim:
// where to pick up, the load, and the delivery window. The customer and the
// dropoff contact are deliberately absent.
type AvailableOrdersQueryResponse struct {
	ID           int64
	TrackingID   kernel.TrackingID
	PickupStreet string
	PickupCity   string
	Pieces       int
	WeightKg     float64
	WindowFrom   time.Time
	WindowTo     time.Time
	CreatedAt    time.Time
}
