package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a closed transition table so illegal
// transitions surface as typed errors instead of silent incorrect writes.
//
// State transitions:
//
//	Pending ──> EnRoutePickup ──> PickedUp ──> Delivered
//
// Pending -> EnRoutePickup happens only through the claim, which also sets
// the courier. Delivered is terminal; nothing transitions out of it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	// Pending orders have no courier and sit in the available pool.
	Pending

	// EnRoutePickup indicates a courier has claimed the order and is on the
	// way to the pickup address.
	EnRoutePickup

	// PickedUp indicates the claiming courier has collected the shipment.
	PickedUp

	// Delivered indicates the shipment reached its dropoff address.
	// This is the terminal state; no further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		EnRoutePickup: "EnRoutePickup",
		PickedUp:      "PickedUp",
		Delivered:     "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "Pending",
		EnRoutePickup: "EnRoutePickup",
		PickedUp:      "PickedUp",
		Delivered:     "Delivered",
	}
}

// transitionPredecessor is the closed transition table: for every reachable
// target status, the single status an order must currently hold. Pending is
// absent because nothing transitions into the initial state.
func transitionPredecessor() map[Status]Status {
	return map[Status]Status{
		EnRoutePickup: Pending,
		PickedUp:      EnRoutePickup,
		Delivered:     PickedUp,
	}
}

// StatusFromString parses a status name, typically from an API request.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// PredecessorOf returns the status an order must currently hold for the
// given target to be a legal transition. The second return value is false
// when no transition reaches the target (Pending and invalid statuses).
func PredecessorOf(target Status) (Status, bool) {
	pred, ok := transitionPredecessor()[target]
	return pred, ok
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, EnRoutePickup, PickedUp, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe to call on any Status value, including
// invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a courier is set if and only if the order has left the
// Pending state.
//
// Parameters:
//   - courier: whether the order has a courier assigned
//
// Returns:
//   - error: validation error if status and courier assignment are inconsistent
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}

	if !courier && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}

	return nil
}

// AdvanceTo transitions the status to target.
//
// Returns:
//   - (target, nil) when the transition table permits moving from the
//     current status to target
//   - (0, InvalidTransitionError) otherwise: skipping a state, moving
//     backward, leaving the terminal state, or naming an invalid target
//
// Example:
//
//	next, err := current.AdvanceTo(order.PickedUp)
//	if err != nil {
//	    // errors.Is(err, errs.ErrInvalidTransition) == true
//	}
func (s Status) AdvanceTo(target Status) (Status, error) {
	pred, ok := PredecessorOf(target)
	if !ok || pred != s {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
