package commands

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

var createItemTypeRoles = staff.NewRoleSet(staff.SuperAdmin)

type CreateLaundryItemTypeCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
}

func NewCreateLaundryItemTypeCommandHandler(
	uowFactory UoWFactory,
	gate services.AccessGate,
	clock ports.Clock,
) CreateLaundryItemTypeCommandHandler {
	return CreateLaundryItemTypeCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
	}
}

func (h CreateLaundryItemTypeCommandHandler) Handle(
	ctx context.Context,
	cmd CreateLaundryItemTypeCommand,
) (*catalog.ItemType, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := h.access.authorize(ctx, uow.EmployeeRepository(), cmd.Actor(), createItemTypeRoles); err != nil {
		return nil, err
	}

	if err := uow.ItemTypeRepository().Add(ctx, cmd.ItemType()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return cmd.ItemType(), nil
}
