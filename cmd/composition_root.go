package cmd

import (
	"log/slog"

	seedhttp "seedflow/internal/adapters/in/http"
	"seedflow/internal/adapters/out/backend"
	"seedflow/internal/adapters/out/inmemory/alertqueue"
	"seedflow/internal/adapters/out/inmemory/ordercache"
	"seedflow/internal/adapters/out/postgres/snapshotrepo"
	"seedflow/internal/core/application/usecases/commands"
	"seedflow/internal/core/application/usecases/queries"
	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases, and jobs for one session.
type CompositionRoot struct {
	backendClient *backend.Client
	snapshotStore *snapshotrepo.GormSnapshotRepository
	alertQueue    *alertqueue.Queue
	orderCache    *ordercache.Cache
	user          account.User
	logger        *slog.Logger
}

// NewCompositionRoot builds the object graph. The user is the session
// profile fetched from the backend before anything else runs.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	backendClient *backend.Client,
	user account.User,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		backendClient: backendClient,
		snapshotStore: snapshotrepo.NewGormSnapshotRepository(gormDB),
		alertQueue:    alertqueue.NewQueue(),
		orderCache:    ordercache.NewCache(),
		user:          user,
		logger:        logger,
	}
}

// CreateJobManager builds the session's polling jobs. The measurement poll
// only exists when the laboratory workflow is enabled and the user holds
// the Laboratory role.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	refreshOrders := commands.NewRefreshOrdersCommandHandler(
		c.backendClient, c.snapshotStore, c.alertQueue, c.orderCache, c.user, c.logger,
	)

	var refreshMeasurements *commands.RefreshMeasurementsCommandHandler
	if c.user.LabEnabled() && c.user.HasRole(account.Laboratory) {
		handler := commands.NewRefreshMeasurementsCommandHandler(
			c.backendClient, c.snapshotStore, c.alertQueue, c.user, c.logger,
		)
		refreshMeasurements = &handler
	}

	return jobs.NewJobManager(refreshOrders, refreshMeasurements, c.logger)
}

// CreateServer builds the HTTP server over the session's handlers.
func (c *CompositionRoot) CreateServer(jobManager *jobs.JobManager) *seedhttp.Server {
	return seedhttp.NewServer(
		commands.NewTransitionOrderCommandHandler(c.backendClient),
		commands.NewFinalizeOrderCommandHandler(c.backendClient),
		commands.NewLogoutCommandHandler(jobManager, c.snapshotStore, c.alertQueue, c.orderCache),
		queries.NewGetActiveOrdersQueryHandler(c.orderCache, c.user),
		queries.NewGetReportQueryHandler(c.orderCache),
		queries.NewGetAlertsQueryHandler(c.alertQueue),
		c.user,
	)
}
