package jobs

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type reminderHandler interface {
	Handle(ctx context.Context, cmd commands.RemindUnassignedJobsCommand) (int, error)
}

// UnassignedJobReminder nudges workers about jobs nobody has taken for longer
// than the configured threshold.
type UnassignedJobReminder struct {
	handler   reminderHandler
	schedule  string
	threshold time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewUnassignedJobReminder(
	handler reminderHandler,
	schedule string,
	threshold time.Duration,
	logger *zap.Logger,
) *UnassignedJobReminder {
	return &UnassignedJobReminder{
		handler:   handler,
		schedule:  schedule,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With(zap.String("component", "unassigned_job_reminder")),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *UnassignedJobReminder) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("unassigned job reminder started",
		zap.String("schedule", j.schedule),
		zap.Duration("threshold", j.threshold),
	)
	return nil
}

func (j *UnassignedJobReminder) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("unassigned job reminder stopped")
}

func (j *UnassignedJobReminder) run() {
	ctx := context.Background()
	cmd, err := commands.NewRemindUnassignedJobsCommand(j.threshold)
	if err != nil {
		j.logger.Error("invalid reminder threshold", zap.Error(err))
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("unassigned job reminder failed", zap.Error(err))
		return
	}
	if sent > 0 {
		j.logger.Info("reminded workers about unassigned jobs", zap.Int("jobs", sent))
	}
}
