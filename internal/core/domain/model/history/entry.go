// Package history provides the append-only ledger record of order status
// transitions. Every successful transition produces exactly one Entry naming
// the order, the actor who caused it, the status reached, and when. Entries
// are never mutated or deleted; replaying an order's entries in timestamp
// order reconstructs the exact sequence of statuses the order passed
// through.
package history

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"dispatch/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry was not created
	// through NewEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry")
)

// Entry is one immutable ledger record of a status transition.
//
// The changedBy actor is the courier or customer who caused the transition,
// or kernel.SystemActorID when the reconciliation sweep backfilled a missing
// tail. The status is the state the order reached; Pending never appears
// because creation is not a transition.
type Entry struct {
	orderID    kernel.OrderID
	changedBy  kernel.ActorID
	status     order.Status
	recordedAt time.Time

	isConstructed bool
}

// NewEntry creates a ledger entry for a transition the given actor performed
// on the given order at the given time.
func NewEntry(
	orderID kernel.OrderID,
	changedBy kernel.ActorID,
	status order.Status,
	recordedAt time.Time,
) (*Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := changedBy.ValidateAllowSystem(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status == order.Pending {
		return nil, errs.NewValueIsInvalidError("status: no transition reaches Pending")
	}
	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recordedAt")
	}

	return &Entry{
		orderID:       orderID,
		changedBy:     changedBy,
		status:        status,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was created via NewEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// OrderID returns the order the entry belongs to.
func (e *Entry) OrderID() kernel.OrderID {
	return e.orderID
}

// ChangedBy returns the actor who caused the transition
// (kernel.SystemActorID for backfilled entries).
func (e *Entry) ChangedBy() kernel.ActorID {
	return e.changedBy
}

// Status returns the status the order reached.
func (e *Entry) Status() order.Status {
	return e.status
}

// RecordedAt returns when the transition was recorded.
func (e *Entry) RecordedAt() time.Time {
	return e.recordedAt
}
