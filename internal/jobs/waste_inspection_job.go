package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"stowage/internal/core/application/usecases/commands"
	"stowage/internal/core/domain/services"
)

// DefaultWasteInspectionSchedule runs the inspection at the top of every hour.
const DefaultWasteInspectionSchedule = "0 0 * * * *"

// WasteIdentifier flags expired and depleted items as waste.
type WasteIdentifier interface {
	Handle(ctx context.Context, cmd commands.IdentifyWasteCommand) ([]services.WasteFinding, error)
}

// WasteInspectionJob periodically flags items that expired or ran out of uses,
// so waste shows up without a crew member asking for it.
type WasteInspectionJob struct {
	handler  WasteIdentifier
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWasteInspectionJob creates the job. schedule is a six-field cron expression
// with seconds; an empty schedule selects DefaultWasteInspectionSchedule.
func NewWasteInspectionJob(handler WasteIdentifier, schedule string, logger *slog.Logger) *WasteInspectionJob {
	if schedule == "" {
		schedule = DefaultWasteInspectionSchedule
	}
	return &WasteInspectionJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "waste_inspection_job"),
	}
}

// Start registers the inspection on its schedule and starts the scheduler.
func (j *WasteInspectionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Waste inspection job started", "schedule", j.schedule)
	return nil
}

// RunOnce inspects all usable items at the current time. Failures are logged.
func (j *WasteInspectionJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewIdentifyWasteCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Waste inspection job failed", "error", err)
		return
	}

	findings, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Waste inspection job failed", "error", err)
		return
	}

	if len(findings) > 0 {
		j.logger.InfoContext(ctx, "Waste identified", "count", len(findings))
	}
}

// Stop stops the scheduler and waits for a running inspection to finish.
func (j *WasteInspectionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Waste inspection job stopped")
}
