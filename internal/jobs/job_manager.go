package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	wasteInspectionJob *WasteInspectionJob
}

// NewJobManager creates a job manager. wasteSchedule is passed to the waste
// inspection job.
func NewJobManager(identifier WasteIdentifier, wasteSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		wasteInspectionJob: NewWasteInspectionJob(identifier, wasteSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.wasteInspectionJob.Start(); err != nil {
		return fmt.Errorf("failed to start waste inspection job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.wasteInspectionJob.Stop()
}
