package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// OrderID is the numeric identifier of an order. It is assigned by the order
// store on insertion and is immutable afterwards. The zero value means "not
// yet persisted" and fails validation.
type OrderID int64

// Validate checks that the OrderID has been assigned by the store.
func (id OrderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", id))
	}
	return nil
}

// IsZero reports whether the OrderID has not been assigned yet.
func (id OrderID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw numeric value for persistence and transport.
func (id OrderID) Int64() int64 {
	return int64(id)
}

// ActorID is the numeric identifier of a customer or courier principal.
// The reserved value SystemActorID attributes ledger entries written by the
// reconciliation sweep rather than by a user.
type ActorID int64

// SystemActorID attributes actions performed by the system itself, such as
// ledger backfills.
const SystemActorID ActorID = 0

// Validate checks that the ActorID identifies a real principal.
// SystemActorID is intentionally rejected here: callers that accept system
// attribution use ValidateAllowSystem.
func (id ActorID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actorID",
			fmt.Errorf("%d is not a valid actor id", id))
	}
	return nil
}

// ValidateAllowSystem checks that the ActorID is either a real principal or
// the system actor.
func (id ActorID) ValidateAllowSystem() error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("actorID",
			fmt.Errorf("%d is not a valid actor id", id))
	}
	return nil
}

// IsSystem reports whether the ActorID is the system actor.
func (id ActorID) IsSystem() bool {
	return id == SystemActorID
}

// Int64 returns the raw numeric value for persistence and transport.
func (id ActorID) Int64() int64 {
	return int64(id)
}
