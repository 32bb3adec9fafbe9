package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
)

type JobRepository interface {
	// Add persists a new job. A second Ongoing job of the same type for the same
	// order fails with errs.DuplicateJobError.
	Add(ctx context.Context, j *job.Job) error

	Update(ctx context.Context, j *job.Job) error

	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// ListByOrder returns every job of an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error)

	// ListUnassigned returns Ongoing jobs without a worker created before olderThan.
	ListUnassigned(ctx context.Context, olderThan time.Time) ([]*job.Job, error)
}
