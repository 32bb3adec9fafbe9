package services

import (
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// FeeCalculator prices an order: the total weight is rounded up to the next whole
// kilogram and multiplied by the rate per kilogram.
type FeeCalculator struct{}

func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// ComputeFee returns ceil(sum(weights)) * ratePerKg. An empty list costs nothing.
// Any weight that is zero or negative fails with an InvalidWeightError.
//
// Example:
//
//	fee, _ := calc.ComputeFee(
//	    []decimal.Decimal{decimal.RequireFromString("2.2"), decimal.RequireFromString("1.1")},
//	    decimal.NewFromInt(10000),
//	) // 40000
func (FeeCalculator) ComputeFee(weights []decimal.Decimal, ratePerKg decimal.Decimal) (decimal.Decimal, error) {
	if ratePerKg.IsNegative() {
		return decimal.Zero, errs.NewValueIsOutOfRangeError("rate per kg", ratePerKg.String(), 0, "unbounded")
	}

	total := decimal.Zero
	for _, w := range weights {
		if !w.IsPositive() {
			return decimal.Zero, errs.NewInvalidWeightError(w.String())
		}
		total = total.Add(w)
	}

	return total.Ceil().Mul(ratePerKg), nil
}

// ComputeItemsFee prices weighed order items.
func (c FeeCalculator) ComputeItemsFee(items []order.Item, ratePerKg decimal.Decimal) (decimal.Decimal, error) {
	weights := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return decimal.Zero, err
		}
		weights = append(weights, item.Weight().Kilograms())
	}
	return c.ComputeFee(weights, ratePerKg)
}
