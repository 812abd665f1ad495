package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
)

// ClaimOrderCommand represents a courier's attempt to take ownership of an
// unclaimed pending order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	courierID kernel.ActorID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command for the given order and
// candidate courier.
func NewClaimOrderCommand(orderID kernel.OrderID, courierID kernel.ActorID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CourierID returns the candidate claimant.
func (c ClaimOrderCommand) CourierID() kernel.ActorID {
	return c.courierID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setCourierID(courierID kernel.ActorID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
