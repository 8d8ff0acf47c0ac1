// Package backend is the resty-backed client to the remote service that
// owns order, measurement, and profile persistence. This process never
// stores those resources durably; it polls, transitions in memory, and
// pushes results back.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/measurement"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/core/ports"
	"seedflow/internal/pkg/errs"
)

var (
	_ ports.OrderClient       = (*Client)(nil)
	_ ports.MeasurementClient = (*Client)(nil)
	_ ports.ProfileClient     = (*Client)(nil)
)

// Config holds the connection parameters for the backend service.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// Client is a resty-backed implementation of the backend ports.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds a backend client using the provided configuration values.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIToken)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{httpClient: restyClient}
}

// ListActive retrieves all non-archived orders visible to the current
// user's company.
func (c *Client) ListActive(ctx context.Context) ([]*order.Order, error) {
	dtos := make([]OrderDTO, 0)
	apiErr := new(errorDTO)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&dtos).
		SetError(apiErr).
		Get("/orders")
	if err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, newAPIError("list active orders", resp.StatusCode(), apiErr)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("restore order %q: %w", dto.ID, err)
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// Get retrieves a single order by its identifier.
func (c *Client) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	dto := new(OrderDTO)
	apiErr := new(errorDTO)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(dto).
		SetError(apiErr).
		Get(fmt.Sprintf("/orders/%s", id.String()))
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, newAPIError("get order", resp.StatusCode(), apiErr)
	}

	return dto.toDomain()
}

// Update pushes a transitioned order back to the backend.
func (c *Client) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	apiErr := new(errorDTO)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(orderFromDomain(aggregate)).
		SetError(apiErr).
		Put(fmt.Sprintf("/orders/%s", aggregate.ID().String()))
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return newAPIError("update order", resp.StatusCode(), apiErr)
	}

	return nil
}

// ListForLab retrieves all TKW measurements visible to the laboratory.
func (c *Client) ListForLab(ctx context.Context) ([]measurement.Measurement, error) {
	dtos := make([]MeasurementDTO, 0)
	apiErr := new(errorDTO)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&dtos).
		SetError(apiErr).
		Get("/lab/measurements")
	if err != nil {
		return nil, fmt.Errorf("list lab measurements: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, newAPIError("list lab measurements", resp.StatusCode(), apiErr)
	}

	measurements := make([]measurement.Measurement, 0, len(dtos))
	for _, dto := range dtos {
		m, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("restore measurement %q: %w", dto.ID, err)
		}
		measurements = append(measurements, m)
	}
	return measurements, nil
}

// CurrentUser fetches and validates the session's user profile.
func (c *Client) CurrentUser(ctx context.Context) (account.User, error) {
	dto := new(ProfileDTO)
	apiErr := new(errorDTO)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(dto).
		SetError(apiErr).
		Get("/profile")
	if err != nil {
		return account.User{}, fmt.Errorf("get profile: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return account.User{}, newAPIError("get profile", resp.StatusCode(), apiErr)
	}

	return dto.toDomain()
}

func newAPIError(operation string, statusCode int, apiErr *errorDTO) error {
	message := ""
	code := statusCode
	if apiErr != nil {
		message = apiErr.Message
		if apiErr.Code != 0 {
			code = apiErr.Code
		}
	}
	return fmt.Errorf("%s: backend error: code=%d, message=%s", operation, code, message)
}
