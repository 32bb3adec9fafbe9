package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
)

type EmployeeRepository interface {
	Add(ctx context.Context, employee *staff.Employee) error

	// Get returns errs.ObjectNotFoundError when no employee has the given id.
	Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error)
}
