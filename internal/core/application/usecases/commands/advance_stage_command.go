package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrAdvanceStageCommandIsNotConstructed = errors.New(
	"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
)

// AdvanceStageCommand moves an order to the next stage of the main line.
type AdvanceStageCommand struct {
	orderID   kernel.UUID
	nextStage order.Stage
	actor     staff.Actor

	guard guard.ConstructorGuard
}

func NewAdvanceStageCommand(orderID kernel.UUID, nextStage order.Stage, actor staff.Actor) (AdvanceStageCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		nextStage.Validate(),
		actor.Validate(),
	); err != nil {
		return AdvanceStageCommand{}, err
	}

	return AdvanceStageCommand{
		orderID:   orderID,
		nextStage: nextStage,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

func (c AdvanceStageCommand) OrderID() kernel.UUID { return c.orderID }

func (c AdvanceStageCommand) NextStage() order.Stage { return c.nextStage }

func (c AdvanceStageCommand) Actor() staff.Actor { return c.actor }
