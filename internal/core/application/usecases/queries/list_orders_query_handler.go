package queries

import (
	"context"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (*ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := h.filter(query)
	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM orders o`+where, args...).Scan(&total).Error; err != nil {
		return nil, err
	}

	var rows []orderRow
	sql := orderSelect + where +
		` ORDER BY ` + query.sortColumn + ` ` + strings.ToUpper(string(query.direction)) + ` NULLS LAST, o.id` +
		` LIMIT ? OFFSET ?`
	if err := db.Raw(sql, append(args, query.limit, query.offset)...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		summary, err := r.toSummary()
		if err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}

	return &ListOrdersQueryResponse{Orders: orders, Total: total}, nil
}

func (h ListOrdersQueryHandler) filter(query ListOrdersQuery) (string, []any) {
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if query.outletID != nil {
		clauses = append(clauses, "o.outlet_id = ?")
		args = append(args, query.outletID.Bytes())
	}
	if query.customerID != nil {
		clauses = append(clauses, "o.customer_id = ?")
		args = append(args, query.customerID.Bytes())
	}
	if len(query.stages) > 0 {
		clauses = append(clauses, "o.stage = ANY(?)")
		args = append(args, pq.Array(query.stageNames()))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
