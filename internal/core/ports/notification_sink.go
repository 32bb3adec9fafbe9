package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
)

// Event names carried to clients.
const (
	EventOrderCreated      = "order:created"
	EventOrderProgress     = "order:progress"
	EventOrderPaid         = "order:paid"
	EventJobCreated        = "job:created"
	EventJobClaimed        = "job:claimed"
	EventJobReminder       = "job:reminder"
	EventComplaintRaised   = "complaint:raised"
	EventComplaintResolved = "complaint:resolved"
)

// NotificationSink fans events out to connected clients. Delivery is best effort:
// implementations never block the caller on the transport and report no errors.
type NotificationSink interface {
	EmitToRoles(ctx context.Context, outletID kernel.UUID, roles staff.RoleSet, event string, payload any)
	EmitToCustomer(ctx context.Context, customerID kernel.UUID, event string, payload any)
}
