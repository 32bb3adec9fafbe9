// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// UnassignedJobReminder runs on a standard five-field cron schedule ("* * * * *"
// by default) and emits job:reminder to the worker role of every Ongoing job
// that has had no worker for longer than the configured threshold.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(remindHandler, "* * * * *", 15*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Handler errors are logged and the next tick runs normally.
package jobs
