package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var assignItemsRoles = staff.NewRoleSet(staff.OutletAdmin, staff.SuperAdmin)

// AssignItemsCommandHandler weighs an order in. In one transaction it stores the
// items, fixes the laundry fee, records OnProgressWashing and opens the Washing job.
//
// Example:
//
//	handler := NewAssignItemsCommandHandler(uowFactory, gate, notifier, clock, decimal.NewFromInt(10000))
//	o, err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindInvalidStage:
//	    // order has not arrived yet
//	case errs.KindUnknownItemType:
//	    // some item type does not exist
//	}
type AssignItemsCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
	notifier   ports.NotificationSink
	clock      ports.Clock
	fees       services.FeeCalculator
	dispatcher services.JobDispatcher
	ratePerKg  decimal.Decimal
}

func NewAssignItemsCommandHandler(
	uowFactory UoWFactory,
	gate services.AccessGate,
	notifier ports.NotificationSink,
	clock ports.Clock,
	ratePerKg decimal.Decimal,
) AssignItemsCommandHandler {
	return AssignItemsCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
		notifier:   notifier,
		clock:      clock,
		fees:       services.NewFeeCalculator(),
		dispatcher: services.NewJobDispatcher(),
		ratePerKg:  ratePerKg,
	}
}

// Handle returns the updated order. Preconditions are checked in order: the
// order exists, it is exactly at ArrivedAtOutlet, every item type exists.
func (h AssignItemsCommandHandler) Handle(ctx context.Context, cmd AssignItemsCommand) (*order.Order, error) {
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
	employee, err := h.access.authorize(ctx, uow.EmployeeRepository(), actor, assignItemsRoles)
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

	stage, err := o.CurrentStage()
	if err != nil {
		return nil, err
	}
	if stage != order.ArrivedAtOutlet {
		return nil, errs.NewInvalidStageError(stage.String(), "Order not arrived at outlet yet")
	}

	requested := cmd.ItemTypeIDs()
	found, err := uow.ItemTypeRepository().FindByIDs(ctx, requested)
	if err != nil {
		return nil, err
	}
	if len(found) != len(requested) {
		return nil, errs.NewUnknownItemTypeError(len(requested), len(found))
	}

	items := cmd.Items()
	fee, err := h.fees.ComputeItemsFee(items, h.ratePerKg)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err = o.AssignItems(items, fee, now); err != nil {
		return nil, err
	}

	jobRepo := uow.JobRepository()
	existing, err := jobRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	changes, err := h.dispatcher.StageEntered(o, order.OnProgressWashing, existing, actor, now)
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
