package commands

import (
	"context"

	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

var claimJobRoles = staff.NewRoleSet(
	staff.WashingWorker,
	staff.IroningWorker,
	staff.PackingWorker,
	staff.Driver,
	staff.OutletAdmin,
	staff.SuperAdmin,
)

type ClaimJobCommandHandler struct {
	uowFactory UoWFactory
	access     accessChecker
	notifier   ports.NotificationSink
}

func NewClaimJobCommandHandler(
	uowFactory UoWFactory,
	gate services.AccessGate,
	notifier ports.NotificationSink,
	clock ports.Clock,
) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		uowFactory: uowFactory,
		access:     newAccessChecker(gate, clock),
		notifier:   notifier,
	}
}

// Handle assigns the job to the caller. Workers may only claim jobs of their
// own stage at their own outlet.
func (h ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) (*job.Job, error) {
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
	employee, err := h.access.authorize(ctx, uow.EmployeeRepository(), actor, claimJobRoles)
	if err != nil {
		return nil, err
	}

	jobRepo := uow.JobRepository()
	j, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}
	if !actor.Role.CanClaim(j.Type()) {
		return nil, errs.NewForbiddenError(actor.Role.String(), "cannot take "+j.Type().String()+" jobs")
	}
	if err = h.access.gate.AuthorizeOutlet(actor, employee, j.OutletID()); err != nil {
		return nil, err
	}

	if err = j.Claim(actor.ID); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.EmitToRoles(ctx, j.OutletID(), staff.NewRoleSet(staff.OutletAdmin), ports.EventJobClaimed, jobPayload(j))
	return j, nil
}
