package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kg(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFeeCalculator_ComputeFee(t *testing.T) {
	calc := services.NewFeeCalculator()
	rate := decimal.NewFromInt(10000)

	tests := []struct {
		name     string
		weights  []decimal.Decimal
		expected int64
	}{
		{"rounds the sum up", []decimal.Decimal{kg("2.2"), kg("1.1")}, 40000},
		{"whole kilograms stay", []decimal.Decimal{kg("1"), kg("2")}, 30000},
		{"small weight costs one kilogram", []decimal.Decimal{kg("0.01")}, 10000},
		{"empty list is free", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := calc.ComputeFee(tt.weights, rate)

			require.NoError(t, err)
			assert.True(t, fee.Equal(decimal.NewFromInt(tt.expected)), "got %s", fee)
		})
	}

	t.Run("rejects zero weight", func(t *testing.T) {
		_, err := calc.ComputeFee([]decimal.Decimal{kg("1"), decimal.Zero}, rate)

		assert.ErrorIs(t, err, errs.ErrInvalidWeight)
		assert.Equal(t, errs.KindInvalidWeight, errs.KindOf(err))
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		_, err := calc.ComputeFee([]decimal.Decimal{kg("-1.5")}, rate)
		assert.ErrorIs(t, err, errs.ErrInvalidWeight)
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, err := calc.ComputeFee([]decimal.Decimal{kg("1")}, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestFeeCalculator_ComputeItemsFee(t *testing.T) {
	calc := services.NewFeeCalculator()
	var items []order.Item
	for _, w := range []string{"2.2", "1.1"} {
		weight, err := kernel.NewWeight(kg(w))
		require.NoError(t, err)
		item, err := order.NewItem(kernel.NewUUID(), weight, 2)
		require.NoError(t, err)
		items = append(items, item)
	}

	fee, err := calc.ComputeItemsFee(items, decimal.NewFromInt(10000))

	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.NewFromInt(40000)))

	_, err = calc.ComputeItemsFee([]order.Item{{}}, decimal.NewFromInt(10000))
	assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
}
