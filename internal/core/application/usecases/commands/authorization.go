package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// accessChecker loads the caller's employee record when the gate needs it and
// runs the role and shift checks.
type accessChecker struct {
	gate  services.AccessGate
	clock ports.Clock
}

func newAccessChecker(gate services.AccessGate, clock ports.Clock) accessChecker {
	return accessChecker{gate: gate, clock: clock}
}

func (c accessChecker) authorize(
	ctx context.Context,
	employees ports.EmployeeRepository,
	actor staff.Actor,
	allowed staff.RoleSet,
) (*staff.Employee, error) {
	var employee *staff.Employee
	if allowed.Contains(actor.Role) && actor.Role.IsEmployee() && actor.Role != staff.SuperAdmin {
		e, err := employees.Get(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		employee = e
	}

	if err := c.gate.Authorize(actor, employee, allowed, c.clock.Now()); err != nil {
		return nil, err
	}
	return employee, nil
}

// authorizeOrder restricts customers to their own orders and employees to orders
// of their outlet.
func (c accessChecker) authorizeOrder(actor staff.Actor, employee *staff.Employee, o *order.Order) error {
	if actor.Role == staff.Customer {
		if !o.CustomerID().IsEqual(actor.ID) {
			return errs.NewForbiddenError(actor.Role.String(), "order belongs to another customer")
		}
		return nil
	}
	return c.gate.AuthorizeOutlet(actor, employee, o.OutletID())
}
