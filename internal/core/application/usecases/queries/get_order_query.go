// Package queries contains read operations. Handlers query PostgreSQL directly
// through gorm and return read models shaped for the HTTP layer rather than
// loading aggregates.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches the full view of one order: fee, payment, items,
// progress history and jobs.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

type OrderItemView struct {
	ItemTypeID   kernel.UUID
	ItemTypeName string
	WeightKg     decimal.Decimal
	Quantity     int
}

type ProgressView struct {
	Sequence int
	Stage    string
	At       time.Time
	Note     string
}

type JobView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OutletID    kernel.UUID
	Type        string
	State       string
	WorkerID    *kernel.UUID
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// GetOrderQueryResponse is the aggregate view of an order.
type GetOrderQueryResponse struct {
	OrderSummary
	Items    []OrderItemView
	Progress []ProgressView
	Jobs     []JobView
}
