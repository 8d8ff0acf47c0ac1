package jobs

import (
	"fmt"
	"log/slog"

	"seedflow/internal/core/application/usecases/commands"
)

// JobManager coordinates the polling jobs of one session.
// Provides a unified interface to start and stop all background jobs;
// satisfies commands.JobStopper for the logout use case.
type JobManager struct {
	orderPollJob       *OrderPollJob
	measurementPollJob *MeasurementPollJob
}

// NewJobManager creates a job manager for the session. The measurement
// handler is optional: sessions without the laboratory workflow (or
// without the Laboratory role) pass nil and only the order poll runs.
func NewJobManager(
	refreshOrdersHandler commands.RefreshOrdersCommandHandler,
	refreshMeasurementsHandler *commands.RefreshMeasurementsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		orderPollJob: NewOrderPollJob(refreshOrdersHandler, logger),
	}
	if refreshMeasurementsHandler != nil {
		jm.measurementPollJob = NewMeasurementPollJob(*refreshMeasurementsHandler, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderPollJob.Start(); err != nil {
		return fmt.Errorf("failed to start order poll job: %w", err)
	}

	if jm.measurementPollJob != nil {
		if err := jm.measurementPollJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.orderPollJob.Stop()
			return fmt.Errorf("failed to start measurement poll job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.measurementPollJob != nil {
		jm.measurementPollJob.Stop()
	}
	jm.orderPollJob.Stop()
}
