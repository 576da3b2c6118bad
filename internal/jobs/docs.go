// Package jobs provides scheduled background tasks for the stowage service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(identifyWasteHandler, cfg.WasteInspectionSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// WasteInspectionJob flags items that expired or exhausted their usage limit.
// It runs hourly unless configured otherwise. Errors are logged and the next
// run proceeds as scheduled.
package jobs
