package commands

import (
	"context"

	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"
)

// RemindUnassignedJobsCommandHandler emits job:reminder for each stale job to
// the worker role of its type at its outlet. It only reads, so nothing is committed.
type RemindUnassignedJobsCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSink
	clock      ports.Clock
}

func NewRemindUnassignedJobsCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSink,
	clock ports.Clock,
) RemindUnassignedJobsCommandHandler {
	return RemindUnassignedJobsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle returns the number of reminders sent.
func (h RemindUnassignedJobsCommandHandler) Handle(ctx context.Context, cmd RemindUnassignedJobsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	stale, err := uow.JobRepository().ListUnassigned(ctx, h.clock.Now().Add(-cmd.Threshold()))
	if err != nil {
		return 0, err
	}

	for _, j := range stale {
		roles := staff.NewRoleSet(staff.WorkerRoleFor(j.Type()))
		h.notifier.EmitToRoles(ctx, j.OutletID(), roles, ports.EventJobReminder, jobPayload(j))
	}
	return len(stale), nil
}
