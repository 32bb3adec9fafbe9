package queries

import (
	"errors"

	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrListOutletJobsQueryIsNotConstructed = errors.New(
	"ListOutletJobsQuery must be created via NewListOutletJobsQuery constructor",
)

// ListOutletJobsQuery lists the Ongoing jobs of an outlet, the work queue
// workers pick from.
type ListOutletJobsQuery struct {
	outletID       kernel.UUID
	jobType        *job.Type
	onlyUnassigned bool

	guard guard.ConstructorGuard
}

func NewListOutletJobsQuery(outletID kernel.UUID, jobType *job.Type, onlyUnassigned bool) (ListOutletJobsQuery, error) {
	if err := outletID.Validate(); err != nil {
		return ListOutletJobsQuery{}, err
	}
	if jobType != nil {
		if err := jobType.Validate(); err != nil {
			return ListOutletJobsQuery{}, err
		}
	}

	return ListOutletJobsQuery{
		outletID:       outletID,
		jobType:        jobType,
		onlyUnassigned: onlyUnassigned,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q ListOutletJobsQuery) Validate() error {
	return q.guard.Validate(ErrListOutletJobsQueryIsNotConstructed)
}
