package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to create a new
// delivery order. Input normalization (address cleanup, autocomplete)
// happens upstream; this command holds already-normalized values and
// re-validates them.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ActorID
	pickup     kernel.Address
	dropoff    kernel.Address
	contact    kernel.Contact
	pieces     int
	weightKg   float64
	window     kernel.Window

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// All descriptive fields are required; piece count and weight must be
// positive.
func NewCreateOrderCommand(
	customerID kernel.ActorID,
	pickup kernel.Address,
	dropoff kernel.Address,
	contact kernel.Contact,
	pieces int,
	weightKg float64,
	window kernel.Window,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
		cmd.setContact(contact),
		cmd.setPieces(pieces),
		cmd.setWeightKg(weightKg),
		cmd.setWindow(window),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the creating customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.ActorID {
	return c.customerID
}

// Pickup returns the pickup address.
func (c CreateOrderCommand) Pickup() kernel.Address {
	return c.pickup
}

// Dropoff returns the dropoff address.
func (c CreateOrderCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// Contact returns the dropoff contact.
func (c CreateOrderCommand) Contact() kernel.Contact {
	return c.contact
}

// Pieces returns the number of packages.
func (c CreateOrderCommand) Pieces() int {
	return c.pieces
}

// WeightKg returns the shipment weight in kilograms.
func (c CreateOrderCommand) WeightKg() float64 {
	return c.weightKg
}

// Window returns the requested pickup window.
func (c CreateOrderCommand) Window() kernel.Window {
	return c.window
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.ActorID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	c.dropoff = dropoff
	return nil
}

func (c *CreateOrderCommand) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *CreateOrderCommand) setPieces(pieces int) error {
	if pieces <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pieces",
			fmt.Errorf("%d is not greater than 0", pieces))
	}
	c.pieces = pieces
	return nil
}

func (c *CreateOrderCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}

func (c *CreateOrderCommand) setWindow(window kernel.Window) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.window = window
	return nil
}
