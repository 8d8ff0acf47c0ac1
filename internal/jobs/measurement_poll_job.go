package jobs

import (
	"context"
	"log/slog"

	"seedflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MeasurementPollJob schedules the periodic refresh of the TKW measurement
// feed. The composition root only creates it for sessions where the
// laboratory workflow is enabled and the user holds the Laboratory role.
type MeasurementPollJob struct {
	handler commands.RefreshMeasurementsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMeasurementPollJob creates the measurement polling job.
func NewMeasurementPollJob(
	handler commands.RefreshMeasurementsCommandHandler,
	logger *slog.Logger,
) *MeasurementPollJob {
	return &MeasurementPollJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "measurement_poll_job"),
	}
}

// Start begins the measurement polling job.
func (j *MeasurementPollJob) Start() error {
	_, err := j.cron.AddFunc(pollSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshMeasurementsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Measurement poll tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Measurement poll job started (running every ten seconds)")
	return nil
}

// Stop stops the measurement polling job.
func (j *MeasurementPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Measurement poll job stopped")
}
