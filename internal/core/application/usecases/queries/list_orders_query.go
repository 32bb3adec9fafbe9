package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// sortColumns maps every accepted sort key to its column. Keys outside the
// map are rejected instead of being passed into SQL.
var sortColumns = map[string]string{
	"created_at":  "o.created_at",
	"updated_at":  "o.updated_at",
	"laundry_fee": "o.laundry_fee",
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ListOrdersQuery pages through orders, optionally restricted to one outlet,
// one customer or a set of current stages.
type ListOrdersQuery struct {
	outletID   *kernel.UUID
	customerID *kernel.UUID
	stages     []order.Stage
	sortColumn string
	direction  SortDirection
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the filter. An empty sortBy means created_at,
// an empty direction means descending and a zero limit means DefaultListLimit.
func NewListOrdersQuery(
	outletID, customerID *kernel.UUID,
	stages []order.Stage,
	sortBy string,
	direction SortDirection,
	limit, offset int,
) (ListOrdersQuery, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("sort_by " + sortBy)
	}

	switch direction {
	case "":
		direction = Descending
	case Ascending, Descending:
	default:
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("direction " + string(direction))
	}

	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	for _, s := range stages {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		outletID:   outletID,
		customerID: customerID,
		stages:     stages,
		sortColumn: column,
		direction:  direction,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) stageNames() []string {
	names := make([]string, len(q.stages))
	for i, s := range q.stages {
		names[i] = s.String()
	}
	return names
}

type ListOrdersQueryResponse struct {
	Orders []OrderSummary
	Total  int64
}
