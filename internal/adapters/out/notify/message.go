// Package notify turns NotificationSink calls into routed messages and hands
// them to a Publisher off the request path. Emitting never blocks a command
// handler: when the buffer is full the message is dropped and logged.
package notify

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
)

// Message is one routed notification. RoutingKey is either
// "outlet.<outlet id>.<role>" or "customer.<customer id>".
type Message struct {
	RoutingKey string    `json:"-"`
	Event      string    `json:"event"`
	Payload    any       `json:"payload"`
	At         time.Time `json:"at"`
}

func OutletRoleKey(outletID kernel.UUID, role staff.Role) string {
	return "outlet." + outletID.String() + "." + role.String()
}

func CustomerKey(customerID kernel.UUID) string {
	return "customer." + customerID.String()
}
