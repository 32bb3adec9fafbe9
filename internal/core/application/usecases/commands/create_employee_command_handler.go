package commands

import (
	"context"

	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

var createEmployeeRoles = staff.NewRoleSet(staff.SuperAdmin, staff.OutletAdmin)

// CreateEmployeeCommandHandler stores new staff. Outlet admins may only hire
// workers for their own outlet; admins are created by the super admin.
type CreateEmployeeCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
}

func NewCreateEmployeeCommandHandler(uowFactory UoWFactory, gate services.AccessGate, clock ports.Clock) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
	}
}

func (h CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) (*staff.Employee, error) {
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

	actor := cmd.Actor()
	creator, err := h.access.authorize(ctx, uow.EmployeeRepository(), actor, createEmployeeRoles)
	if err != nil {
		return nil, err
	}

	employee := cmd.Employee()
	if actor.Role == staff.OutletAdmin {
		if employee.Role() == staff.SuperAdmin || employee.Role() == staff.OutletAdmin {
			return nil, errs.NewForbiddenError(actor.Role.String(), "cannot create "+employee.Role().String())
		}
		if employee.OutletID() == nil || !creator.WorksAt(*employee.OutletID()) {
			return nil, errs.NewForbiddenError(actor.Role.String(), "employee does not work at this outlet")
		}
	}

	if err = uow.EmployeeRepository().Add(ctx, employee); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return employee, nil
}
