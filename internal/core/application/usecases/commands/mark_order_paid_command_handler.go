package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

var markPaidRoles = staff.NewRoleSet(staff.Customer, staff.OutletAdmin, staff.SuperAdmin)

type MarkOrderPaidCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
	notifier   ports.NotificationSink
	clock      ports.Clock
}

func NewMarkOrderPaidCommandHandler(
	uowFactory UoWFactory,
	gate services.AccessGate,
	notifier ports.NotificationSink,
	clock ports.Clock,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle marks the order paid. The fee must already be known.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) (*order.Order, error) {
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
	employee, err := h.access.authorize(ctx, uow.EmployeeRepository(), actor, markPaidRoles)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.access.authorizeOrder(actor, employee, o); err != nil {
		return nil, err
	}

	if err = o.MarkPaid(h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	payload := orderPayload(o, "")
	h.notifier.EmitToRoles(ctx, o.OutletID(), staff.NewRoleSet(staff.OutletAdmin, staff.Driver), ports.EventOrderPaid, payload)
	h.notifier.EmitToCustomer(ctx, o.CustomerID(), ports.EventOrderPaid, payload)
	return o, nil
}
