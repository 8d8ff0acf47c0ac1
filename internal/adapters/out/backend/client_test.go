package backend_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"seedflow/internal/adapters/out/backend"
	"seedflow/internal/core/domain/model/account"
	"seedflow/internal/core/domain/model/kernel"
	"seedflow/internal/core/domain/model/order"
	"seedflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(backend.Config{BaseURL: srv.URL, APIToken: "test-token"})
}

func TestClient_ListActive_RestoresOrders(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]backend.OrderDTO{{
			ID:        orderID.String(),
			Crop:      "wheat",
			Variety:   "aurora",
			LotNumber: "LOT-7",
			Status:    "TkwConfirmed",
			Operator:  "Olaf",
			Recipe:    &backend.RecipeDTO{SeedUnitCount: 12},
		}})
	})

	orders, err := client.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].ID().IsEqual(orderID))
	assert.Equal(t, "wheat", orders[0].Crop())
	assert.Equal(t, order.TkwConfirmed, orders[0].Status())
	assert.Equal(t, 12, orders[0].SeedUnitCount())
}

func TestClient_ListActive_NullDosageFiguresStayNil(t *testing.T) {
	ctx := t.Context()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"id": "` + kernel.NewUUID().String() + `",
			"crop": "wheat",
			"variety": "aurora",
			"lotNumber": "LOT-7",
			"status": "TreatmentInProgress",
			"numbers": {"seedsToTreatKg": 1200, "bagSizeKg": null}
		}]`))
	})

	orders, err := client.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	numbers := orders[0].Numbers()
	require.NotNil(t, numbers.SeedsToTreatKg)
	assert.InDelta(t, 1200, *numbers.SeedsToTreatKg, 0.001)
	assert.Nil(t, numbers.BagSizeKg, "null figure must stay nil, it blocks finalization")
	assert.Nil(t, numbers.TotalSlurryLitres)
}

func TestClient_ListActive_UnknownStatusFails(t *testing.T) {
	ctx := t.Context()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]backend.OrderDTO{{
			ID: kernel.NewUUID().String(), Crop: "wheat", LotNumber: "LOT-7", Status: "Nonsense",
		}})
	})

	_, err := client.ListActive(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestClient_Get_NotFound(t *testing.T) {
	ctx := t.Context()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Get(ctx, kernel.NewUUID())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestClient_Update_SendsWholeAggregate(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "wheat", "aurora", "LOT-7", order.LabToControl,
		"", nil, nil, order.TreatmentNumbers{},
	)
	require.NoError(t, err)

	var received backend.OrderDTO
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/"+aggregate.ID().String(), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Update(ctx, aggregate))
	assert.Equal(t, aggregate.ID().String(), received.ID)
	assert.Equal(t, "LabToControl", received.Status)
}

func TestClient_Update_BackendErrorEnvelope(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "wheat", "aurora", "LOT-7", order.LabToControl,
		"", nil, nil, order.TreatmentNumbers{},
	)
	require.NoError(t, err)

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code": 409, "message": "stale order version"}`))
	})

	err = client.Update(ctx, aggregate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale order version")
}

func TestClient_CurrentUser_RestoresProfile(t *testing.T) {
	ctx := t.Context()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(backend.ProfileDTO{
			Name:       "Lena",
			Email:      "lena@example.com",
			Roles:      []string{"Laboratory", "Operator"},
			LabEnabled: true,
		})
	})

	user, err := client.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Lena", user.Name())
	assert.True(t, user.HasRole(account.Laboratory))
	assert.True(t, user.HasRole(account.Operator))
	assert.True(t, user.LabEnabled())
}

func TestClient_CurrentUser_MissingIdentityIsFatal(t *testing.T) {
	ctx := t.Context()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(backend.ProfileDTO{Name: "", Email: "", Roles: nil})
	})

	_, err := client.CurrentUser(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, account.ErrInvalidUserState)
}
