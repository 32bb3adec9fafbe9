package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

var (
	raiseComplaintRoles   = staff.NewRoleSet(staff.Customer, staff.OutletAdmin)
	resolveComplaintRoles = staff.NewRoleSet(staff.OutletAdmin, staff.SuperAdmin)
)

// ComplaintCommandHandler raises and resolves complaints. A complaint branches the
// order off into Complaint; resolving it returns the order to the stage it left.
type ComplaintCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
	notifier   ports.NotificationSink
	clock      ports.Clock
}

func NewComplaintCommandHandler(
	uowFactory UoWFactory,
	gate services.AccessGate,
	notifier ports.NotificationSink,
	clock ports.Clock,
) ComplaintCommandHandler {
	return ComplaintCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
		notifier:   notifier,
		clock:      clock,
	}
}

func (h ComplaintCommandHandler) HandleRaise(ctx context.Context, cmd RaiseComplaintCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.mutate(ctx, cmd.OrderID(), cmd.Actor(), raiseComplaintRoles, func(o *order.Order) error {
		return o.RaiseComplaint(cmd.Description(), h.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	h.notifier.EmitToRoles(ctx, o.OutletID(), staff.NewRoleSet(staff.OutletAdmin),
		ports.EventComplaintRaised, orderPayload(o, cmd.Description()))
	return o, nil
}

func (h ComplaintCommandHandler) HandleResolve(ctx context.Context, cmd ResolveComplaintCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := h.mutate(ctx, cmd.OrderID(), cmd.Actor(), resolveComplaintRoles, func(o *order.Order) error {
		_, resolveErr := o.ResolveComplaint(cmd.Resolution(), h.clock.Now())
		return resolveErr
	})
	if err != nil {
		return nil, err
	}

	payload := orderPayload(o, cmd.Resolution())
	h.notifier.EmitToCustomer(ctx, o.CustomerID(), ports.EventComplaintResolved, payload)
	h.notifier.EmitToRoles(ctx, o.OutletID(), staff.NewRoleSet(staff.OutletAdmin), ports.EventComplaintResolved, payload)
	return o, nil
}

func (h ComplaintCommandHandler) mutate(
	ctx context.Context,
	orderID kernel.UUID,
	actor staff.Actor,
	allowed staff.RoleSet,
	change func(o *order.Order) error,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employee, err := h.access.authorize(ctx, uow.EmployeeRepository(), actor, allowed)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err = h.access.authorizeOrder(actor, employee, o); err != nil {
		return nil, err
	}

	if err = change(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
