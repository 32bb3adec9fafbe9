package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		direction queries.SortDirection
		limit     int
		offset    int
		stages    []order.Stage
		wantErr   bool
	}{
		{name: "defaults"},
		{name: "fee ascending", sortBy: "laundry_fee", direction: queries.Ascending},
		{name: "unknown sort key", sortBy: "customer_name", wantErr: true},
		{name: "sql in sort key", sortBy: "created_at; DROP TABLE orders", wantErr: true},
		{name: "bad direction", direction: "sideways", wantErr: true},
		{name: "limit too large", limit: queries.MaxListLimit + 1, wantErr: true},
		{name: "negative offset", offset: -1, wantErr: true},
		{name: "invalid stage", stages: []order.Stage{order.Stage(42)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewListOrdersQuery(nil, nil, tt.stages, tt.sortBy, tt.direction, tt.limit, tt.offset)
			if !tt.wantErr {
				require.NoError(t, err)
				require.NoError(t, q.Validate())
				return
			}
			require.Error(t, err)
			assert.Equal(t, errs.KindInvalid, errs.KindOf(err))
		})
	}
}

func TestListOrdersQuery_ZeroValueIsRejected(t *testing.T) {
	err := queries.ListOrdersQuery{}.Validate()

	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
