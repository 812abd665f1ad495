package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a courier's request to move an order to
// the given target status.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	courierID kernel.ActorID
	target    order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates an advance command. The target must be a
// valid status; whether it is reachable is decided by the handler against
// the transition table.
func NewAdvanceOrderCommand(
	orderID kernel.OrderID,
	courierID kernel.ActorID,
	target order.Status,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CourierID returns the acting courier.
func (c AdvanceOrderCommand) CourierID() kernel.ActorID {
	return c.courierID
}

// Target returns the requested status.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setCourierID(courierID kernel.ActorID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
