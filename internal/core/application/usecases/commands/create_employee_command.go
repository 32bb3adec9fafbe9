package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

// CreateEmployeeCommand registers a staff member. The employee is fully validated
// by the constructor; shift times are "HH:MM" strings.
type CreateEmployeeCommand struct {
	employee *staff.Employee
	actor    staff.Actor

	guard guard.ConstructorGuard
}

func NewCreateEmployeeCommand(
	id kernel.UUID,
	outletID *kernel.UUID,
	name string,
	role staff.Role,
	shiftStart, shiftEnd string,
	actor staff.Actor,
) (CreateEmployeeCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateEmployeeCommand{}, err
	}

	var shift *staff.Shift
	if shiftStart != "" || shiftEnd != "" {
		s, err := staff.ParseShift(shiftStart, shiftEnd)
		if err != nil {
			return CreateEmployeeCommand{}, err
		}
		shift = &s
	}

	employee, err := staff.NewEmployee(id, outletID, name, role, shift)
	if err != nil {
		return CreateEmployeeCommand{}, err
	}

	return CreateEmployeeCommand{employee: employee, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

func (c CreateEmployeeCommand) Employee() *staff.Employee { return c.employee }

func (c CreateEmployeeCommand) Actor() staff.Actor { return c.actor }
