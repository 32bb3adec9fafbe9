// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler follows the same shape: validate the command, authorize the actor,
// run all writes in one unit of work, commit, then notify.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	ItemTypeRepoFactory interface {
		ItemTypeRepository() ports.ItemTypeRepository
	}

	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// UoW spans every aggregate a workflow transition may touch.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... mutate, then
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
		ItemTypeRepoFactory
		EmployeeRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
