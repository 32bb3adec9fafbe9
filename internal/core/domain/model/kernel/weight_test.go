package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should keep decimal precision", func(t *testing.T) {
		w, err := kernel.NewWeightFromFloat(2.2)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, decimal.RequireFromString("2.2").Equal(w.Kilograms()))
	})

	t.Run("should reject zero and negative weights", func(t *testing.T) {
		for _, v := range []string{"0", "-0.5", "-3"} {
			_, err := kernel.NewWeight(decimal.RequireFromString(v))

			var weightErr *errs.InvalidWeightError
			require.ErrorAs(t, err, &weightErr, "weight %s", v)
			assert.Equal(t, errs.KindInvalidWeight, errs.KindOf(err))
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, kernel.Weight{}.Validate(), kernel.ErrWeightIsNotConstructed)
	})
}
