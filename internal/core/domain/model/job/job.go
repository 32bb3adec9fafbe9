// Package job models the per-stage work units of a laundry order.
package job

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

type Type string

const (
	Washing  Type = "Washing"
	Ironing  Type = "Ironing"
	Packing  Type = "Packing"
	Delivery Type = "Delivery"
)

// Types lists the job types in processing order.
func Types() []Type {
	return []Type{Washing, Ironing, Packing, Delivery}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) String() string { return string(t) }

func (t Type) Validate() error {
	switch t {
	case Washing, Ironing, Packing, Delivery:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("job type", fmt.Errorf("%q is not a known job type", string(t)))
}

type State string

const (
	Ongoing   State = "Ongoing"
	Completed State = "Completed"
)

func (s State) String() string { return string(s) }

func (s State) Validate() error {
	if s != Ongoing && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("job state", fmt.Errorf("%q is not a known job state", string(s)))
	}
	return nil
}

// Job is one unit of work for an order at an outlet. A job starts Ongoing with
// no worker, is claimed by at most one worker and is completed when the order
// moves past its stage.
type Job struct {
	id          kernel.UUID
	orderID     kernel.UUID
	outletID    kernel.UUID
	jobType     Type
	state       State
	workerID    *kernel.UUID
	createdAt   time.Time
	completedAt *time.Time
	guard       guard.ConstructorGuard
}

func NewJob(id, orderID, outletID kernel.UUID, jobType Type, at time.Time) (*Job, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		outletID.Validate(),
		jobType.Validate(),
	); err != nil {
		return nil, err
	}

	return &Job{
		id:        id,
		orderID:   orderID,
		outletID:  outletID,
		jobType:   jobType,
		state:     Ongoing,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreJob rebuilds a Job loaded from storage.
func RestoreJob(
	id, orderID, outletID kernel.UUID,
	jobType Type,
	state State,
	workerID *kernel.UUID,
	createdAt time.Time,
	completedAt *time.Time,
) (*Job, error) {
	j, err := NewJob(id, orderID, outletID, jobType, createdAt)
	if err != nil {
		return nil, err
	}
	if err = state.Validate(); err != nil {
		return nil, err
	}
	if workerID != nil {
		if err = workerID.Validate(); err != nil {
			return nil, err
		}
	}

	j.state = state
	j.workerID = workerID
	j.completedAt = completedAt
	return j, nil
}

func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

func (j *Job) ID() kernel.UUID { return j.id }

func (j *Job) OrderID() kernel.UUID { return j.orderID }

func (j *Job) OutletID() kernel.UUID { return j.outletID }

func (j *Job) Type() Type { return j.jobType }

func (j *Job) State() State { return j.state }

func (j *Job) WorkerID() *kernel.UUID { return j.workerID }

func (j *Job) CreatedAt() time.Time { return j.createdAt }

func (j *Job) CompletedAt() *time.Time { return j.completedAt }

func (j *Job) IsOngoing() bool { return j.state == Ongoing }

func (j *Job) IsUnassigned() bool { return j.workerID == nil }

// Claim assigns an Ongoing, unassigned job to workerID.
func (j *Job) Claim(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if j.state != Ongoing {
		return errs.NewInvalidStageError(j.state.String(), "Job is already completed")
	}
	if j.workerID != nil {
		return errs.NewInvalidStageError(j.state.String(), "Job is already taken")
	}

	worker := workerID
	j.workerID = &worker
	return nil
}

// Complete closes the job. Completing a completed job is an InvalidStage error.
func (j *Job) Complete(at time.Time) error {
	if j.state == Completed {
		return errs.NewInvalidStageError(j.state.String(), "Job is already completed")
	}
	done := at
	j.state = Completed
	j.completedAt = &done
	return nil
}
