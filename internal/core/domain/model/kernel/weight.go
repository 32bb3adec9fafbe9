package kernel

import (
	"errors"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight constructor")

// Weight is a strictly positive laundry weight in kilograms.
// Decimal arithmetic keeps sums such as 2.2 + 1.1 exact.
type Weight struct {
	kg            decimal.Decimal
	isConstructed bool
}

// NewWeight returns an InvalidWeightError for zero or negative values.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if !kg.IsPositive() {
		return Weight{}, errs.NewInvalidWeightError(kg.String())
	}
	return Weight{kg: kg, isConstructed: true}, nil
}

// NewWeightFromFloat is a convenience for inputs decoded from JSON numbers.
func NewWeightFromFloat(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

func (w Weight) String() string {
	return w.kg.String()
}

func (w Weight) Validate() error {
	if !w.isConstructed {
		return ErrWeightIsNotConstructed
	}
	return nil
}
