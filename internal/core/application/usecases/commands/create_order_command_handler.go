package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

var createOrderRoles = staff.NewRoleSet(staff.Customer, staff.OutletAdmin, staff.SuperAdmin)

// CreateOrderCommandHandler creates orders in the Created stage.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
	notifier   ports.NotificationSink
	clock      ports.Clock
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	gate services.AccessGate,
	notifier ports.NotificationSink,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle creates the order. Customers may only order for themselves and outlet
// admins only for their own outlet.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	employee, err := h.access.authorize(ctx, uow.EmployeeRepository(), actor, createOrderRoles)
	if err != nil {
		return nil, err
	}
	if actor.Role == staff.Customer && !actor.ID.IsEqual(cmd.CustomerID()) {
		return nil, errs.NewForbiddenError(actor.Role.String(), "customers can only order for themselves")
	}
	if err = h.access.gate.AuthorizeOutlet(actor, employee, cmd.OutletID()); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.OutletID(), cmd.CustomerID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.EmitToRoles(ctx, o.OutletID(), staff.NewRoleSet(staff.OutletAdmin, staff.Driver),
		ports.EventOrderCreated, orderPayload(o, ""))
	return o, nil
}
