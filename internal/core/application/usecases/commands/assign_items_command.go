package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAssignItemsCommandIsNotConstructed = errors.New(
		"AssignItemsCommand must be created via NewAssignItemsCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemInput is one weighed line as entered at the outlet scale.
type ItemInput struct {
	ItemTypeID kernel.UUID
	Weight     decimal.Decimal
	Quantity   int
}

// AssignItemsCommand records the weighed items of an order that has arrived at
// its outlet. Weights are validated here, so a zero or negative weight fails
// with errs.InvalidWeightError before any storage is touched.
//
// Example:
//
//	cmd, err := NewAssignItemsCommand(orderID, []ItemInput{
//	    {ItemTypeID: shirtID, Weight: decimal.RequireFromString("2.2"), Quantity: 4},
//	    {ItemTypeID: towelID, Weight: decimal.RequireFromString("1.1"), Quantity: 2},
//	}, actor)
type AssignItemsCommand struct {
	orderID kernel.UUID
	items   []order.Item
	actor   staff.Actor

	guard guard.ConstructorGuard
}

func NewAssignItemsCommand(orderID kernel.UUID, inputs []ItemInput, actor staff.Actor) (AssignItemsCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return AssignItemsCommand{}, err
	}
	if len(inputs) == 0 {
		return AssignItemsCommand{}, ErrItemsAreRequired
	}

	items := make([]order.Item, 0, len(inputs))
	for i, in := range inputs {
		weight, err := kernel.NewWeight(in.Weight)
		if err != nil {
			return AssignItemsCommand{}, err
		}
		item, err := order.NewItem(in.ItemTypeID, weight, in.Quantity)
		if err != nil {
			return AssignItemsCommand{}, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	return AssignItemsCommand{
		orderID: orderID,
		items:   items,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignItemsCommand) Validate() error {
	return c.guard.Validate(ErrAssignItemsCommandIsNotConstructed)
}

func (c AssignItemsCommand) OrderID() kernel.UUID { return c.orderID }

func (c AssignItemsCommand) Actor() staff.Actor { return c.actor }

// Items returns a copy of the weighed items.
func (c AssignItemsCommand) Items() []order.Item {
	out := make([]order.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemTypeIDs returns the distinct item types referenced by the command.
func (c AssignItemsCommand) ItemTypeIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	seen := make(map[string]struct{}, len(c.items))
	for _, item := range c.items {
		key := item.ItemTypeID().String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, item.ItemTypeID())
	}
	return ids
}
