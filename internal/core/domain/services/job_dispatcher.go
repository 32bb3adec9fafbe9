package services

import (
	"time"

	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// stageJobs says which job a stage opens and which job it completes.
// An empty type means none.
type stageJobs struct {
	open  job.Type
	close job.Type
}

var jobsByStage = map[order.Stage]stageJobs{
	order.OnProgressWashing: {open: job.Washing},
	order.OnProgressIroning: {open: job.Ironing, close: job.Washing},
	order.OnProgressPacking: {open: job.Packing, close: job.Ironing},
	order.ReadyForDelivery:  {open: job.Delivery, close: job.Packing},
	order.Completed:         {close: job.Delivery},
}

// JobChanges lists what a stage change did to the order's jobs. Repositories
// add Created and update every job in Updated.
type JobChanges struct {
	Created *job.Job
	Updated []*job.Job
}

// JobDispatcher is a domain service that keeps the jobs of an order in step with
// its progress.
//
// Business rules:
//   - at most one Ongoing job of each type exists per order
//   - entering a processing stage opens that stage's job and completes the previous one
//   - a driver moving an order OnDelivery takes the delivery job if nobody has it yet
type JobDispatcher struct{}

func NewJobDispatcher() JobDispatcher {
	return JobDispatcher{}
}

// CreateJob opens a job of jobType for o. existing must hold the jobs already
// stored for the order; an Ongoing job of the same type fails with DuplicateJob.
func (JobDispatcher) CreateJob(o *order.Order, jobType job.Type, existing []*job.Job, at time.Time) (*job.Job, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := jobType.Validate(); err != nil {
		return nil, err
	}

	for _, j := range existing {
		if j.OrderID().IsEqual(o.ID()) && j.Type() == jobType && j.IsOngoing() {
			return nil, errs.NewDuplicateJobError(o.ID().String(), jobType.String())
		}
	}

	return job.NewJob(kernel.NewUUID(), o.ID(), o.OutletID(), jobType, at)
}

// StageEntered applies the job table for the stage o has just entered.
func (d JobDispatcher) StageEntered(
	o *order.Order,
	stage order.Stage,
	existing []*job.Job,
	actor staff.Actor,
	at time.Time,
) (JobChanges, error) {
	var changes JobChanges

	plan := jobsByStage[stage]
	if plan.close != "" {
		if j := ongoing(existing, plan.close); j != nil {
			if err := j.Complete(at); err != nil {
				return JobChanges{}, err
			}
			changes.Updated = append(changes.Updated, j)
		}
	}

	if stage == order.OnDelivery && actor.Role == staff.Driver {
		if j := ongoing(existing, job.Delivery); j != nil && j.IsUnassigned() {
			if err := j.Claim(actor.ID); err != nil {
				return JobChanges{}, err
			}
			changes.Updated = append(changes.Updated, j)
		}
	}

	if plan.open != "" {
		created, err := d.CreateJob(o, plan.open, existing, at)
		if err != nil {
			return JobChanges{}, err
		}
		changes.Created = created
	}

	return changes, nil
}

func ongoing(jobs []*job.Job, jobType job.Type) *job.Job {
	for _, j := range jobs {
		if j.Type() == jobType && j.IsOngoing() {
			return j
		}
	}
	return nil
}
