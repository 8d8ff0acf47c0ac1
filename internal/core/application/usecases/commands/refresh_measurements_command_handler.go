package commands

import (
	"context"
	"log/slog"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/snapshot"
	"seedflow/internal/core/domain/services"
	"seedflow/internal/core/ports"
)

// RefreshMeasurementsCommandHandler runs one poll tick over the TKW
// measurement feed, diffing against the measurement snapshot and raising
// the laboratory alert for new entries. Shares recovery semantics with the
// order tick: a failed diff reports nothing and keeps the prior snapshot.
type RefreshMeasurementsCommandHandler struct {
	measurementClient ports.MeasurementClient
	store             ports.SnapshotStore
	queue             ports.AlertQueue
	detector          services.ChangeDetector
	dispatcher        services.NotificationDispatcher
	user              account.User
	logger            *slog.Logger
}

// NewRefreshMeasurementsCommandHandler creates a handler for measurement
// poll ticks.
func NewRefreshMeasurementsCommandHandler(
	measurementClient ports.MeasurementClient,
	store ports.SnapshotStore,
	queue ports.AlertQueue,
	user account.User,
	logger *slog.Logger,
) RefreshMeasurementsCommandHandler {
	return RefreshMeasurementsCommandHandler{
		measurementClient: measurementClient,
		store:             store,
		queue:             queue,
		detector:          services.NewChangeDetector(),
		dispatcher:        services.NewNotificationDispatcher(),
		user:              user,
		logger:            logger.With("component", "refresh_measurements_handler"),
	}
}

// Handle processes one measurement poll tick.
func (h RefreshMeasurementsCommandHandler) Handle(ctx context.Context, command RefreshMeasurementsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.user.Validate(); err != nil {
		return err
	}

	measurements, err := h.measurementClient.ListForLab(ctx)
	if err != nil {
		return err
	}

	currentIDs := make([]string, 0, len(measurements))
	for _, m := range measurements {
		currentIDs = append(currentIDs, m.ID().String())
	}

	added := h.detectCategory(ctx, currentIDs)

	alerts := h.dispatcher.Dispatch(services.DetectedChanges{
		MeasurementIDs: added,
	}, h.user)
	for _, a := range alerts {
		h.queue.Push(a)
	}

	return nil
}

func (h RefreshMeasurementsCommandHandler) detectCategory(ctx context.Context, currentIDs []string) []string {
	prior, err := h.store.Get(ctx, snapshot.TkwMeasurements)
	if err != nil {
		h.logger.ErrorContext(ctx, "Snapshot load failed", "category", snapshot.TkwMeasurements.Key(), "error", err)
		return nil
	}

	diff, err := h.detector.Detect(prior, currentIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "Diff computation failed", "category", snapshot.TkwMeasurements.Key(), "error", err)
		return nil
	}

	if err = h.store.Replace(ctx, diff.Next); err != nil {
		h.logger.ErrorContext(ctx, "Snapshot replace failed", "category", snapshot.TkwMeasurements.Key(), "error", err)
	}

	return diff.AddedIDs
}
