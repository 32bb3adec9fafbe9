package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand records that the laundry fee of an order was paid.
type MarkOrderPaidCommand struct {
	orderID kernel.UUID
	actor   staff.Actor

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(orderID kernel.UUID, actor staff.Actor) (MarkOrderPaidCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return MarkOrderPaidCommand{}, err
	}
	return MarkOrderPaidCommand{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID { return c.orderID }

func (c MarkOrderPaidCommand) Actor() staff.Actor { return c.actor }
