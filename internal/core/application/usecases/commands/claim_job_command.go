package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/guard"
)

var ErrClaimJobCommandIsNotConstructed = errors.New(
	"ClaimJobCommand must be created via NewClaimJobCommand constructor",
)

// ClaimJobCommand lets a worker take an open job of their outlet.
type ClaimJobCommand struct {
	jobID kernel.UUID
	actor staff.Actor

	guard guard.ConstructorGuard
}

func NewClaimJobCommand(jobID kernel.UUID, actor staff.Actor) (ClaimJobCommand, error) {
	if err := errors.Join(jobID.Validate(), actor.Validate()); err != nil {
		return ClaimJobCommand{}, err
	}
	return ClaimJobCommand{jobID: jobID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

func (c ClaimJobCommand) JobID() kernel.UUID { return c.jobID }

func (c ClaimJobCommand) Actor() staff.Actor { return c.actor }
