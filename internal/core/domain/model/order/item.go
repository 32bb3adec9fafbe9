package order

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one weighed line of an order: a catalog item type, its weight in kg
// and how many pieces were handed in.
type Item struct {
	itemTypeID kernel.UUID
	weight     kernel.Weight
	quantity   int
	guard      guard.ConstructorGuard
}

func NewItem(itemTypeID kernel.UUID, weight kernel.Weight, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		itemTypeID.Validate(),
		weight.Validate(),
	); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	item.itemTypeID = itemTypeID
	item.weight = weight
	item.quantity = quantity
	return item, nil
}

func (i Item) ItemTypeID() kernel.UUID { return i.itemTypeID }

func (i Item) Weight() kernel.Weight { return i.weight }

func (i Item) Quantity() int { return i.quantity }

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
