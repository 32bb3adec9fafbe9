package commands

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrRemindUnassignedJobsCommandIsNotConstructed = errors.New(
	"RemindUnassignedJobsCommand must be created via NewRemindUnassignedJobsCommand constructor",
)

// RemindUnassignedJobsCommand asks workers to pick up jobs that have waited
// longer than threshold without anyone taking them.
type RemindUnassignedJobsCommand struct {
	threshold time.Duration

	guard guard.ConstructorGuard
}

func NewRemindUnassignedJobsCommand(threshold time.Duration) (RemindUnassignedJobsCommand, error) {
	if threshold < 0 {
		return RemindUnassignedJobsCommand{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, "unbounded")
	}
	return RemindUnassignedJobsCommand{threshold: threshold, guard: guard.NewConstructorGuard()}, nil
}

func (c RemindUnassignedJobsCommand) Validate() error {
	return c.guard.Validate(ErrRemindUnassignedJobsCommandIsNotConstructed)
}

func (c RemindUnassignedJobsCommand) Threshold() time.Duration { return c.threshold }
