package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// advanceRoles lists who may move an order into each stage. Other stages are
// entered through their own commands; admins asking for them get the domain error.
var advanceRoles = map[order.Stage]staff.RoleSet{
	order.ArrivedAtOutlet:   staff.NewRoleSet(staff.Driver, staff.OutletAdmin, staff.SuperAdmin),
	order.OnProgressIroning: staff.NewRoleSet(staff.WashingWorker, staff.OutletAdmin, staff.SuperAdmin),
	order.OnProgressPacking: staff.NewRoleSet(staff.IroningWorker, staff.OutletAdmin, staff.SuperAdmin),
	order.ReadyForDelivery:  staff.NewRoleSet(staff.PackingWorker, staff.OutletAdmin, staff.SuperAdmin),
	order.OnDelivery:        staff.NewRoleSet(staff.Driver, staff.OutletAdmin, staff.SuperAdmin),
	order.Completed:         staff.NewRoleSet(staff.Driver, staff.Customer, staff.OutletAdmin, staff.SuperAdmin),
}

// AdvanceStageCommandHandler appends the next stage to an order and keeps its
// jobs in step: the job of the new stage is opened and the previous one completed.
//
// Example:
//
//	cmd, _ := NewAdvanceStageCommand(orderID, order.OnProgressIroning, actor)
//	o, err := handler.Handle(ctx, cmd)
//	if errs.KindOf(err) == errs.KindInvalidTransition {
//	    // the order is not at OnProgressWashing
//	}
type AdvanceStageCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
	notifier   ports.NotificationSink
	clock      ports.Clock
	dispatcher services.JobDispatcher
}

func NewAdvanceStageCommandHandler(
	uowFactory UoWFactory,
	gate services.AccessGate,
	notifier ports.NotificationSink,
	clock ports.Clock,
) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
		notifier:   notifier,
		clock:      clock,
		dispatcher: services.NewJobDispatcher(),
	}
}

func (h AdvanceStageCommandHandler) Handle(ctx context.Context, cmd AdvanceStageCommand) (*order.Order, error) {
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
	next := cmd.NextStage()
	allowed, ok := advanceRoles[next]
	if !ok {
		allowed = staff.NewRoleSet(staff.OutletAdmin, staff.SuperAdmin)
	}
	employee, err := h.access.authorize(ctx, uow.EmployeeRepository(), actor, allowed)
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

	now := h.clock.Now()
	if err = o.Advance(next, now); err != nil {
		return nil, err
	}

	jobRepo := uow.JobRepository()
	existing, err := jobRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	changes, err := h.dispatcher.StageEntered(o, next, existing, actor, now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = applyJobChanges(ctx, jobRepo, changes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notifyStage(ctx, h.notifier, o, changes)
	return o, nil
}
