// Package ports defines the contracts between the laundry domain and its
// infrastructure: repositories, the unit of work, notifications and time.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items and
// progress ledger.
type OrderRepository interface {
	// Add persists a new order with its initial progress.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order: new progress events, items,
	// fee and payment. The write only succeeds if the stored version still equals
	// aggregate.Version(); otherwise errs.VersionIsInvalidError is returned and
	// nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and full progress history.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
