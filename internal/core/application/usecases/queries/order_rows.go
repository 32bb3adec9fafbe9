package queries

import (
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummary is the orders row without its children.
type OrderSummary struct {
	ID         kernel.UUID
	OutletID   kernel.UUID
	CustomerID kernel.UUID
	Stage      string
	LaundryFee *decimal.Decimal
	Paid       bool
	PaidAt     *time.Time
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const orderSelect = `
	SELECT
		o.id,
		o.outlet_id,
		o.customer_id,
		o.stage,
		o.laundry_fee,
		o.paid_at,
		o.version,
		o.created_at,
		o.updated_at
	FROM orders o`

type orderRow struct {
	ID         uuid.UUID
	OutletID   uuid.UUID
	CustomerID uuid.UUID
	Stage      string
	LaundryFee *decimal.Decimal
	PaidAt     *time.Time
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (r orderRow) toSummary() (OrderSummary, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	outletID, err := kernel.UUIDFromBytes(r.OutletID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:         id,
		OutletID:   outletID,
		CustomerID: customerID,
		Stage:      r.Stage,
		LaundryFee: r.LaundryFee,
		Paid:       r.PaidAt != nil,
		PaidAt:     r.PaidAt,
		Version:    r.Version,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

type jobRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	OutletID    uuid.UUID
	Type        string
	State       string
	WorkerID    *uuid.UUID
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// listJobs runs a jobs SELECT with the given WHERE clause and ordering.
func listJobs(db *gorm.DB, where string, args []any, orderBy string) ([]JobView, error) {
	var rows []jobRow
	err := db.Raw(`
		SELECT id, order_id, outlet_id, type, state, worker_id, created_at, completed_at
		FROM jobs `+where+`
		ORDER BY `+orderBy, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]JobView, 0, len(rows))
	for _, r := range rows {
		view := JobView{Type: r.Type, State: r.State, CreatedAt: r.CreatedAt, CompletedAt: r.CompletedAt}
		if view.ID, err = kernel.UUIDFromBytes(r.ID[:]); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromBytes(r.OrderID[:]); err != nil {
			return nil, err
		}
		if view.OutletID, err = kernel.UUIDFromBytes(r.OutletID[:]); err != nil {
			return nil, err
		}
		if r.WorkerID != nil {
			workerID, wErr := kernel.UUIDFromBytes((*r.WorkerID)[:])
			if wErr != nil {
				return nil, wErr
			}
			view.WorkerID = &workerID
		}
		jobs = append(jobs, view)
	}
	return jobs, nil
}
