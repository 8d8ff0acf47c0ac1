package jobs

import (
	"context"
	"log/slog"

	"seedflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// pollSchedule fires one tick every ten seconds.
const pollSchedule = "*/10 * * * * *"

// OrderPollJob schedules the periodic refresh of the active order
// collection.
type OrderPollJob struct {
	handler commands.RefreshOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderPollJob creates the order polling job.
// Uses RefreshOrdersCommandHandler to process one tick every ten seconds.
func NewOrderPollJob(handler commands.RefreshOrdersCommandHandler, logger *slog.Logger) *OrderPollJob {
	return &OrderPollJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_poll_job"),
	}
}

// Start begins the order polling job.
func (j *OrderPollJob) Start() error {
	_, err := j.cron.AddFunc(pollSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A failed tick must not stop the schedule.
			j.logger.ErrorContext(ctx, "Order poll tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order poll job started (running every ten seconds)")
	return nil
}

// Stop stops the order polling job.
func (j *OrderPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order poll job stopped")
}
