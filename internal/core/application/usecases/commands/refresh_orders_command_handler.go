package commands

import (
	"context"
	"log/slog"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/core/domain/model/snapshot"
	"seedflow/internal/core/domain/services"
	"seedflow/internal/core/ports"
)

// RefreshOrdersCommandHandler runs one poll tick over the active order
// collection. The collection is sliced twice, into operator-visible and
// lab-visible statuses, and each slice is diffed against its own persisted
// snapshot, so the two alert rules stay independent.
//
// Diff failures are recovered locally: the failing category reports no
// additions, keeps its prior snapshot, and the tick continues. Polling must
// survive a malformed payload.
type RefreshOrdersCommandHandler struct {
	orderClient ports.OrderClient
	store       ports.SnapshotStore
	queue       ports.AlertQueue
	cache       ports.OrderCache
	detector    services.ChangeDetector
	dispatcher  services.NotificationDispatcher
	user        account.User
	logger      *slog.Logger
}

// NewRefreshOrdersCommandHandler creates a handler for order poll ticks.
// The user is the authenticated session profile; alerts are derived for its
// roles only.
func NewRefreshOrdersCommandHandler(
	orderClient ports.OrderClient,
	store ports.SnapshotStore,
	queue ports.AlertQueue,
	cache ports.OrderCache,
	user account.User,
	logger *slog.Logger,
) RefreshOrdersCommandHandler {
	return RefreshOrdersCommandHandler{
		orderClient: orderClient,
		store:       store,
		queue:       queue,
		cache:       cache,
		detector:    services.NewChangeDetector(),
		dispatcher:  services.NewNotificationDispatcher(),
		user:        user,
		logger:      logger.With("component", "refresh_orders_handler"),
	}
}

// Handle processes one order poll tick: fetch, diff per category, dispatch
// alerts, persist the replacement snapshots, refresh the order cache.
//
// The session user is validated before any derived effect: an invalid
// profile stops the tick before alerts or snapshot writes.
func (h RefreshOrdersCommandHandler) Handle(ctx context.Context, command RefreshOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.user.Validate(); err != nil {
		return err
	}

	orders, err := h.orderClient.ListActive(ctx)
	if err != nil {
		return err
	}

	operatorAdded := h.detectCategory(ctx, snapshot.OperatorOrders, operatorVisibleIDs(orders))
	labAdded := h.detectCategory(ctx, snapshot.LabOrders, labVisibleIDs(orders))

	alerts := h.dispatcher.Dispatch(services.DetectedChanges{
		OperatorOrderIDs: operatorAdded,
		LabOrderIDs:      labAdded,
	}, h.user)
	for _, a := range alerts {
		h.queue.Push(a)
	}

	h.cache.ReplaceAll(orders)
	return nil
}

// detectCategory diffs one category and persists its replacement snapshot,
// returning the added identifiers. Failures are logged and yield nil: a bad
// tick must neither alert nor corrupt the stored snapshot.
func (h RefreshOrdersCommandHandler) detectCategory(
	ctx context.Context,
	category snapshot.Category,
	currentIDs []string,
) []string {
	prior, err := h.store.Get(ctx, category)
	if err != nil {
		h.logger.ErrorContext(ctx, "Snapshot load failed", "category", category.Key(), "error", err)
		return nil
	}

	diff, err := h.detector.Detect(prior, currentIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "Diff computation failed", "category", category.Key(), "error", err)
		return nil
	}

	if err = h.store.Replace(ctx, diff.Next); err != nil {
		h.logger.ErrorContext(ctx, "Snapshot replace failed", "category", category.Key(), "error", err)
	}

	return diff.AddedIDs
}

func operatorVisibleIDs(orders []*order.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.Status().RequiresExecution() {
			ids = append(ids, o.ID().String())
		}
	}
	return ids
}

func labVisibleIDs(orders []*order.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.Status().InLabReview() {
			ids = append(ids, o.ID().String())
		}
	}
	return ids
}
