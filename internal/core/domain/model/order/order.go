package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an
	// order that already carries a store-assigned id.
	ErrOrderIDAlreadyAssigned = errors.New("order id is assigned exactly once by the store")
)

// Order represents one delivery request. It is the aggregate root that
// manages the order lifecycle from creation through the claim to delivery.
//
// Order maintains these invariants:
//   - customerID never changes after creation
//   - courierID is set exactly once, by the claim, and is non-nil if and
//     only if the status is not Pending
//   - the store-assigned numeric id is set exactly once
//   - status transitions follow the closed transition table in Status
//   - piece count and weight are positive
//
// The struct uses private fields and validated methods; direct mutation is
// not possible outside this package. The in-memory transition methods mirror
// the store's conditional writes so the same rules hold in both places, but
// under contention the store's conditional write is the authority.
type Order struct {
	// id is the numeric identifier assigned by the order store; zero until
	// the order is persisted
	id kernel.OrderID

	// trackingID is the customer-facing reference, generated at creation
	trackingID kernel.TrackingID

	// customerID identifies the creating customer (immutable)
	customerID kernel.ActorID

	// courierID is the claiming courier (nil while Pending)
	courierID *kernel.ActorID

	// status is the current state in the order lifecycle
	status Status

	// pickup and dropoff are the endpoints of the delivery
	pickup  kernel.Address
	dropoff kernel.Address

	// contact is the person to reach at dropoff
	contact kernel.Contact

	// pieces is the number of packages (positive)
	pieces int

	// weightKg is the total shipment weight in kilograms (positive)
	weightKg float64

	// window is the requested pickup time span
	window kernel.Window

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Pending state with no courier and a
// fresh tracking reference. This is the only way to create an order that has
// not been persisted yet; the numeric id stays zero until the store assigns
// it through AssignID.
//
// Example:
//
//	pickup, _ := kernel.NewAddress("12 Harbor Rd", "Rotterdam")
//	dropoff, _ := kernel.NewAddress("4 Mill Ln", "Delft")
//	contact, _ := kernel.NewContact("J. Visser", "+31 6 1234 5678")
//	window, _ := kernel.NewWindow(from, to)
//	order, err := order.NewOrder(customerID, pickup, dropoff, contact, 2, 4.5, window)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	customerID kernel.ActorID,
	pickup kernel.Address,
	dropoff kernel.Address,
	contact kernel.Contact,
	pieces int,
	weightKg float64,
	window kernel.Window,
) (*Order, error) {
	order := &Order{
		trackingID:    kernel.NewTrackingID(),
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setPickup(pickup),
		order.setDropoff(dropoff),
		order.setContact(contact),
		order.setPieces(pieces),
		order.setWeightKg(weightKg),
		order.setWindow(window),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. In addition to the
// field-level checks of NewOrder it enforces the cross-field invariant that
// a courier is present if and only if the order has left the Pending state.
func RestoreOrder(
	id kernel.OrderID,
	trackingID kernel.TrackingID,
	customerID kernel.ActorID,
	courierID *kernel.ActorID,
	status Status,
	pickup kernel.Address,
	dropoff kernel.Address,
	contact kernel.Contact,
	pieces int,
	weightKg float64,
	window kernel.Window,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	order, err := NewOrder(customerID, pickup, dropoff, contact, pieces, weightKg, window)
	if err != nil {
		return nil, err
	}

	order.id = id
	order.trackingID = trackingID
	order.status = status
	order.courierID = courierID
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. Call it when receiving orders
// across package boundaries.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the numeric identifier handed out by the order store.
// The id is set exactly once; a second call fails with
// ErrOrderIDAlreadyAssigned.
func (o *Order) AssignID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id == other.id
}

// ID returns the store-assigned numeric identifier (zero until persisted).
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// TrackingID returns the customer-facing reference of the order.
func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

// CustomerID returns the creating customer's identifier.
func (o *Order) CustomerID() kernel.ActorID {
	return o.customerID
}

// Courier returns the claiming courier's identifier.
// Returns nil while the order is Pending.
func (o *Order) Courier() *kernel.ActorID {
	return o.courierID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Pickup returns the pickup address.
func (o *Order) Pickup() kernel.Address {
	return o.pickup
}

// Dropoff returns the dropoff address.
func (o *Order) Dropoff() kernel.Address {
	return o.dropoff
}

// Contact returns the dropoff contact.
func (o *Order) Contact() kernel.Contact {
	return o.contact
}

// Pieces returns the number of packages in the order.
func (o *Order) Pieces() int {
	return o.pieces
}

// WeightKg returns the total shipment weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// Window returns the requested pickup window.
func (o *Order) Window() kernel.Window {
	return o.window
}

// IsOwnedBy reports whether the given courier has claimed this order.
func (o *Order) IsOwnedBy(courierID kernel.ActorID) bool {
	return o.courierID != nil && *o.courierID == courierID
}

// Claim takes ownership of a Pending, unowned order for the given courier
// and moves it to EnRoutePickup.
//
// This in-memory transition mirrors the store's conditional write: it is
// used when reasoning about a single loaded aggregate, while concurrent
// claims against the shared store are resolved by the store's atomic
// compare-and-update. Any order that is not Pending and unowned fails with
// AlreadyClaimedError.
func (o *Order) Claim(courierID kernel.ActorID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status != Pending || o.courierID != nil {
		return errs.NewAlreadyClaimedError(o.id.Int64())
	}

	newStatus, err := o.status.AdvanceTo(EnRoutePickup)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Advance applies a post-claim transition (PickedUp or Delivered) on behalf
// of the acting courier.
//
// Business rules enforced:
//   - the acting courier must own the order (UnauthorizedError otherwise)
//   - the target must be reachable from the current status per the
//     transition table (InvalidTransitionError otherwise)
//
// The claim itself (target EnRoutePickup) is not performed here; it goes
// through Claim so ownership and status change together.
func (o *Order) Advance(courierID kernel.ActorID, target Status) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if target == EnRoutePickup {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}
	if !o.IsOwnedBy(courierID) {
		return errs.NewUnauthorizedError(o.id.Int64(), courierID.Int64())
	}

	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ActorID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	return nil
}

func (o *Order) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	o.dropoff = dropoff
	return nil
}

func (o *Order) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func (o *Order) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pieces",
			fmt.Errorf("%d is not greater than 0", pieces))
	}
	o.pieces = pieces
	return nil
}

func (o *Order) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setWindow(window kernel.Window) error {
	if err := window.Validate(); err != nil {
		return err
	}
	o.window = window
	return nil
}
