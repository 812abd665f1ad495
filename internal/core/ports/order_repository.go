package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Besides plain storage it exposes the two conditional writes every
// lifecycle mutation goes through: Claim and AdvanceOwned. Both must be
// implemented as a single atomic compare-and-update against the order row —
// never as a read followed by a write — because the affected-row count is
// what resolves concurrent attempts.
type OrderRepository interface {
	// Add persists a new Pending order and assigns its numeric id on the
	// aggregate. The order must be valid and not persisted before.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its store-assigned identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Claim atomically transitions the order to EnRoutePickup with the
	// courier set, applied only if the row still holds status Pending with
	// no courier at write time. Returns claimed=false when the conditional
	// write matched no row: claimed by someone else, already progressed, or
	// missing — indistinguishable by design.
	Claim(ctx context.Context, id kernel.OrderID, courierID kernel.ActorID) (claimed bool, err error)

	// AdvanceOwned atomically moves the order from the given current status
	// to the target, applied only if the row is still in that status and
	// owned by the acting courier. Returns applied=false when the
	// conditional write matched no row.
	AdvanceOwned(
		ctx context.Context,
		id kernel.OrderID,
		courierID kernel.ActorID,
		current order.Status,
		target order.Status,
	) (applied bool, err error)
}
