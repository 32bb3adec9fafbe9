package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a pickup request for a customer at an outlet.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), outletID, customerID, actor)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID    kernel.UUID
	outletID   kernel.UUID
	customerID kernel.UUID
	actor      staff.Actor

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID, outletID, customerID kernel.UUID, actor staff.Actor) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		outletID.Validate(),
		customerID.Validate(),
		actor.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:    orderID,
		outletID:   outletID,
		customerID: customerID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateOrderCommand) OutletID() kernel.UUID { return c.outletID }

func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

func (c CreateOrderCommand) Actor() staff.Actor { return c.actor }
