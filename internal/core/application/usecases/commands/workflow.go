package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

func applyJobChanges(ctx context.Context, jobs ports.JobRepository, changes services.JobChanges) error {
	for _, j := range changes.Updated {
		if err := jobs.Update(ctx, j); err != nil {
			return err
		}
	}
	if changes.Created != nil {
		if err := jobs.Add(ctx, changes.Created); err != nil {
			return err
		}
	}
	return nil
}

// notifyStage tells the outlet and the customer about a committed stage change.
// A newly opened job is announced to the workers who can take it.
func notifyStage(ctx context.Context, notifier ports.NotificationSink, o *order.Order, changes services.JobChanges) {
	payload := orderPayload(o, "")
	notifier.EmitToRoles(ctx, o.OutletID(), staff.NewRoleSet(staff.OutletAdmin), ports.EventOrderProgress, payload)
	notifier.EmitToCustomer(ctx, o.CustomerID(), ports.EventOrderProgress, payload)

	if changes.Created != nil {
		roles := staff.NewRoleSet(staff.WorkerRoleFor(changes.Created.Type()), staff.OutletAdmin)
		notifier.EmitToRoles(ctx, o.OutletID(), roles, ports.EventJobCreated, jobPayload(changes.Created))
	}
}
