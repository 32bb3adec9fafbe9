package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	reminder *UnassignedJobReminder
}

func NewJobManager(
	remindHandler reminderHandler,
	reminderSchedule string,
	reminderThreshold time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		reminder: NewUnassignedJobReminder(remindHandler, reminderSchedule, reminderThreshold, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.reminder.Start(); err != nil {
		return fmt.Errorf("failed to start unassigned job reminder: %w", err)
	}
	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	jm.reminder.Stop()
}
