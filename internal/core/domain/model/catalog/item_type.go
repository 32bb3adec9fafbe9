// Package catalog holds the laundry item types customers' items are weighed against.
package catalog

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrItemTypeIsNotConstructed = errors.New("ItemType must be created via NewItemType constructor")
)

// ItemType is a kind of laundry item, e.g. "Shirt" or "Bed sheet".
type ItemType struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

func NewItemType(id kernel.UUID, name string) (*ItemType, error) {
	name = strings.TrimSpace(name)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	return &ItemType{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (t *ItemType) Validate() error {
	if t == nil {
		return ErrItemTypeIsNotConstructed
	}
	return t.guard.Validate(ErrItemTypeIsNotConstructed)
}

func (t *ItemType) ID() kernel.UUID { return t.id }

func (t *ItemType) Name() string { return t.name }
