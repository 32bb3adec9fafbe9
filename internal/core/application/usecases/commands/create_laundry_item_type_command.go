package commands

import (
	"errors"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrCreateLaundryItemTypeCommandIsNotConstructed = errors.New(
	"CreateLaundryItemTypeCommand must be created via NewCreateLaundryItemTypeCommand constructor",
)

type CreateLaundryItemTypeCommand struct {
	itemType *catalog.ItemType
	actor    staff.Actor

	guard guard.ConstructorGuard
}

func NewCreateLaundryItemTypeCommand(id kernel.UUID, name string, actor staff.Actor) (CreateLaundryItemTypeCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateLaundryItemTypeCommand{}, err
	}
	itemType, err := catalog.NewItemType(id, name)
	if err != nil {
		return CreateLaundryItemTypeCommand{}, err
	}
	return CreateLaundryItemTypeCommand{itemType: itemType, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateLaundryItemTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateLaundryItemTypeCommandIsNotConstructed)
}

func (c CreateLaundryItemTypeCommand) ItemType() *catalog.ItemType { return c.itemType }

func (c CreateLaundryItemTypeCommand) Actor() staff.Actor { return c.actor }
