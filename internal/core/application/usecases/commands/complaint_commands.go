package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrRaiseComplaintCommandIsNotConstructed = errors.New(
		"RaiseComplaintCommand must be created via NewRaiseComplaintCommand constructor",
	)
	ErrResolveComplaintCommandIsNotConstructed = errors.New(
		"ResolveComplaintCommand must be created via NewResolveComplaintCommand constructor",
	)
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	ErrResolutionIsRequired  = errs.NewValueIsRequiredError("resolution")
)

// RaiseComplaintCommand opens a complaint on an order.
type RaiseComplaintCommand struct {
	orderID     kernel.UUID
	description string
	actor       staff.Actor

	guard guard.ConstructorGuard
}

func NewRaiseComplaintCommand(orderID kernel.UUID, description string, actor staff.Actor) (RaiseComplaintCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return RaiseComplaintCommand{}, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return RaiseComplaintCommand{}, ErrDescriptionIsRequired
	}

	return RaiseComplaintCommand{
		orderID:     orderID,
		description: description,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RaiseComplaintCommand) Validate() error {
	return c.guard.Validate(ErrRaiseComplaintCommandIsNotConstructed)
}

func (c RaiseComplaintCommand) OrderID() kernel.UUID { return c.orderID }

func (c RaiseComplaintCommand) Description() string { return c.description }

func (c RaiseComplaintCommand) Actor() staff.Actor { return c.actor }

// ResolveComplaintCommand closes the open complaint of an order.
type ResolveComplaintCommand struct {
	orderID    kernel.UUID
	resolution string
	actor      staff.Actor

	guard guard.ConstructorGuard
}

func NewResolveComplaintCommand(orderID kernel.UUID, resolution string, actor staff.Actor) (ResolveComplaintCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ResolveComplaintCommand{}, err
	}
	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		return ResolveComplaintCommand{}, ErrResolutionIsRequired
	}

	return ResolveComplaintCommand{
		orderID:    orderID,
		resolution: resolution,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveComplaintCommand) Validate() error {
	return c.guard.Validate(ErrResolveComplaintCommandIsNotConstructed)
}

func (c ResolveComplaintCommand) OrderID() kernel.UUID { return c.orderID }

func (c ResolveComplaintCommand) Resolution() string { return c.resolution }

func (c ResolveComplaintCommand) Actor() staff.Actor { return c.actor }
