package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	var row orderRow
	result := db.Raw(orderSelect+` WHERE o.id = ?`, id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	summary, err := row.toSummary()
	if err != nil {
		return nil, err
	}
	response := &GetOrderQueryResponse{OrderSummary: summary}

	if response.Items, err = h.items(db, id); err != nil {
		return nil, err
	}
	if response.Progress, err = h.progress(db, id); err != nil {
		return nil, err
	}
	if response.Jobs, err = listJobs(db, `WHERE order_id = ?`, []any{id}, "created_at, id"); err != nil {
		return nil, err
	}
	return response, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID uuid.UUID) ([]OrderItemView, error) {
	rows, err := db.Raw(`
		SELECT
			i.item_type_id,
			COALESCE(t.name, ''),
			i.weight_kg,
			i.quantity
		FROM order_items i
		LEFT JOIN laundry_item_types t ON t.id = i.item_type_id
		WHERE i.order_id = ?
		ORDER BY i.id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var item OrderItemView
		var typeID uuid.UUID
		if err = rows.Scan(&typeID, &item.ItemTypeName, &item.WeightKg, &item.Quantity); err != nil {
			return nil, err
		}
		if item.ItemTypeID, err = kernel.UUIDFromBytes(typeID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (h GetOrderQueryHandler) progress(db *gorm.DB, orderID uuid.UUID) ([]ProgressView, error) {
	events := make([]ProgressView, 0)
	err := db.Raw(`
		SELECT sequence, stage, at, note
		FROM progress_events
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID).Scan(&events).Error
	return events, err
}
