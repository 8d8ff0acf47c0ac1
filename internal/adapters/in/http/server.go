// Package http exposes the workflow over REST. Handlers translate between
// the wire and the application use cases; business decisions stay in the
// domain.
package http

import (
	"errors"
	"net/http"
	"time"

	"seedflow/internal/core/application/usecases/commands"
	"seedflow/internal/core/application/usecases/queries"
	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/core/domain/services"
	"seedflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	transitionHandler commands.TransitionOrderCommandHandler
	finalizeHandler   commands.FinalizeOrderCommandHandler
	logoutHandler     commands.LogoutCommandHandler

	// Query handlers
	activeOrdersHandler queries.GetActiveOrdersQueryHandler
	reportHandler       queries.GetReportQueryHandler
	alertsHandler       queries.GetAlertsQueryHandler

	user account.User
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The user is the authenticated session profile.
func NewServer(
	transitionHandler commands.TransitionOrderCommandHandler,
	finalizeHandler commands.FinalizeOrderCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	reportHandler queries.GetReportQueryHandler,
	alertsHandler queries.GetAlertsQueryHandler,
	user account.User,
) *Server {
	return &Server{
		transitionHandler:   transitionHandler,
		finalizeHandler:     finalizeHandler,
		logoutHandler:       logoutHandler,
		activeOrdersHandler: activeOrdersHandler,
		reportHandler:       reportHandler,
		alertsHandler:       alertsHandler,
		user:                user,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders/execution-queue", s.GetExecutionQueue)
	api.GET("/orders/lab-queue", s.GetLabQueue)
	api.GET("/orders/board", s.GetBoard)
	api.POST("/orders/:id/transitions/:action", s.TransitionOrder)

	api.GET("/report", s.GetReport)
	api.GET("/alerts", s.GetAlerts)
	api.POST("/logout", s.Logout)
}

// Error is the JSON error envelope every failing handler returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderResponse represents one order in a slice listing.
type OrderResponse struct {
	ID              string     `json:"id"`
	Crop            string     `json:"crop"`
	Variety         string     `json:"variety"`
	LotNumber       string     `json:"lotNumber"`
	Status          string     `json:"status"`
	Operator        string     `json:"operator,omitempty"`
	ApplicationDate *time.Time `json:"applicationDate,omitempty"`
}

// StatusShareResponse is one status category of the report.
type StatusShareResponse struct {
	Count      int     `json:"count"`
	SeedUnits  int     `json:"seedUnits"`
	Kg         float64 `json:"kg"`
	Percent    float64 `json:"percent"`
	Applicable bool    `json:"applicable"`
}

func toShareResponse(share queries.StatusShare) StatusShareResponse {
	return StatusShareResponse{
		Count:      share.Count,
		SeedUnits:  share.SeedUnits,
		Kg:         share.Kg,
		Percent:    share.Percent,
		Applicable: share.Applicable,
	}
}

// CropTotalResponse is one row of the per-crop report.
type CropTotalResponse struct {
	Crop      string  `json:"crop"`
	SeedUnits int     `json:"seedUnits"`
	Kg        float64 `json:"kg"`
}

// ReportResponse is the aggregated report payload.
type ReportResponse struct {
	GeneratedAt   time.Time           `json:"generatedAt"`
	CropTotals    []CropTotalResponse `json:"cropTotals"`
	Approved      StatusShareResponse `json:"approved"`
	ToAcknowledge StatusShareResponse `json:"toAcknowledge"`
	Disapproved   StatusShareResponse `json:"disapproved"`
	TotalCount    int                 `json:"totalCount"`
}

// AlertResponse represents one visible alert.
type AlertResponse struct {
	Key  string         `json:"key"`
	Data map[string]any `json:"data,omitempty"`
}

// transitionActions maps URL action names to the command constructor and
// the role the surface requires for the button. Edge legality itself is
// the aggregate's decision.
type transitionAction struct {
	role      account.Role
	construct func(kernel.UUID, account.Role) (commands.TransitionOrderCommand, error)
}

func transitionActions() map[string]transitionAction {
	return map[string]transitionAction{
		"send-to-lab":     {account.Manager, commands.NewSendOrderToLabCommand},
		"start-control":   {account.Laboratory, commands.NewStartLabControlCommand},
		"confirm-tkw":     {account.Laboratory, commands.NewConfirmTkwCommand},
		"start-treatment": {account.Operator, commands.NewStartTreatmentCommand},
		"fail":            {account.Operator, commands.NewFailTreatmentCommand},
		"acknowledge":     {account.Manager, commands.NewAcknowledgeOrderCommand},
		"archive":         {account.Manager, commands.NewArchiveOrderCommand},
	}
}

// GetExecutionQueue handles GET /api/v1/orders/execution-queue.
func (s *Server) GetExecutionQueue(ctx echo.Context) error {
	return s.getSlice(ctx, account.FeatureExecutionQueue)
}

// GetLabQueue handles GET /api/v1/orders/lab-queue.
func (s *Server) GetLabQueue(ctx echo.Context) error {
	return s.getSlice(ctx, account.FeatureLabQueue)
}

// GetBoard handles GET /api/v1/orders/board.
func (s *Server) GetBoard(ctx echo.Context) error {
	return s.getSlice(ctx, account.FeatureBoard)
}

func (s *Server) getSlice(ctx echo.Context, slice account.Feature) error {
	query, err := queries.NewGetActiveOrdersQuery(slice)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.activeOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrFeatureNotGranted) {
			return errorJSON(ctx, http.StatusForbidden, "This surface is not available to your roles")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:              o.ID.String(),
			Crop:            o.Crop,
			Variety:         o.Variety,
			LotNumber:       o.LotNumber,
			Status:          o.Status.String(),
			Operator:        o.Operator,
			ApplicationDate: o.ApplicationDate,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transitions/:action.
// The "finalize" action routes to the dedicated finalize command; every
// other action is a plain lifecycle edge.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	action := ctx.Param("action")
	if action == "finalize" {
		return s.finalizeOrder(ctx, orderID)
	}

	spec, ok := transitionActions()[action]
	if !ok {
		return errorJSON(ctx, http.StatusBadRequest, "Unknown transition action: "+action)
	}
	if !s.user.HasRole(spec.role) {
		return errorJSON(ctx, http.StatusForbidden, "Action not available to your roles")
	}

	cmd, err := spec.construct(orderID, spec.role)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid transition request: "+err.Error())
	}

	if handleErr := s.transitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return transitionErrorJSON(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) finalizeOrder(ctx echo.Context, orderID kernel.UUID) error {
	if !s.user.HasRole(account.Manager) {
		return errorJSON(ctx, http.StatusForbidden, "Action not available to your roles")
	}

	cmd, err := commands.NewFinalizeOrderCommand(orderID, account.Manager)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid finalize request: "+err.Error())
	}

	if handleErr := s.finalizeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return transitionErrorJSON(ctx, handleErr)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetReport handles GET /api/v1/report.
// Filter parameters: crop, variety, operator, status, start, end
// (dates as 2006-01-02).
func (s *Server) GetReport(ctx echo.Context) error {
	spec := services.FilterSpec{
		Crop:     ctx.QueryParam("crop"),
		Variety:  ctx.QueryParam("variety"),
		Operator: ctx.QueryParam("operator"),
	}

	if name := ctx.QueryParam("status"); name != "" {
		status, err := order.StatusFromString(name)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid status filter: "+name)
		}
		spec.Status = status
	}

	var err error
	if spec.Start, err = parseDateParam(ctx.QueryParam("start")); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid start date")
	}
	if spec.End, err = parseDateParam(ctx.QueryParam("end")); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid end date")
	}

	query, err := queries.NewGetReportQuery(spec)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid report filter: "+err.Error())
	}

	report, err := s.reportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to build report")
	}

	cropTotals := make([]CropTotalResponse, len(report.CropTotals))
	for i, row := range report.CropTotals {
		cropTotals[i] = CropTotalResponse{Crop: row.Crop, SeedUnits: row.SeedUnits, Kg: row.Kg}
	}

	return ctx.JSON(http.StatusOK, ReportResponse{
		GeneratedAt:   report.GeneratedAt,
		CropTotals:    cropTotals,
		Approved:      toShareResponse(report.Approved),
		ToAcknowledge: toShareResponse(report.ToAcknowledge),
		Disapproved:   toShareResponse(report.Disapproved),
		TotalCount:    report.TotalCount,
	})
}

// GetAlerts handles GET /api/v1/alerts.
func (s *Server) GetAlerts(ctx echo.Context) error {
	alerts, err := s.alertsHandler.Handle(ctx.Request().Context(), queries.NewGetAlertsQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve alerts")
	}

	response := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		response[i] = AlertResponse{Key: a.Key, Data: a.Data}
	}
	return ctx.JSON(http.StatusOK, response)
}

// Logout handles POST /api/v1/logout.
func (s *Server) Logout(ctx echo.Context) error {
	if err := s.logoutHandler.Handle(ctx.Request().Context(), commands.NewLogoutCommand()); err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Logout incomplete: "+err.Error())
	}
	return ctx.NoContent(http.StatusNoContent)
}

func transitionErrorJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, errs.ErrIllegalTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrPreconditionNotMet):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Transition failed")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
