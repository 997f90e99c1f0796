package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rvconsign/internal/domain"
	"rvconsign/internal/middleware"
	"rvconsign/internal/pkg/outcome"
)

func setupRouter(t *testing.T, scopeRenter string) (*gin.Engine, *domain.Asset) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, crm, _, asset := setupService(t)
	crm.On("SyncBooking", mock.Anything).Return(nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if scopeRenter != "" {
			c.Set(middleware.CtxRenterID, scopeRenter)
		}
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r, asset
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type bookingResponse struct {
	Data    domain.Booking  `json:"data"`
	Effects outcome.Effects `json:"effects"`
}

func TestHandler_CreateAndPatch(t *testing.T) {
	r, asset := setupRouter(t, "")

	rr := doJSON(r, http.MethodPost, "/api/bookings", map[string]any{
		"asset_id": asset.ID, "start_date": "2025-06-01", "end_date": "2025-06-08",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created bookingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, 1615.0, created.Data.TotalAmount)
	require.Len(t, created.Effects, 1)

	// id in the body
	rr = doJSON(r, http.MethodPatch, "/api/bookings", map[string]any{"id": created.Data.ID, "status": "confirmed"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSON(r, http.MethodPatch, "/api/bookings/"+created.Data.ID, map[string]any{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(r, http.MethodGet, "/api/bookings?status=confirmed", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Data []View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, asset.Name, list.Data[0].AssetName)
}

func TestHandler_Validation(t *testing.T) {
	r, asset := setupRouter(t, "")

	rr := doJSON(r, http.MethodPost, "/api/bookings", map[string]any{"asset_id": asset.ID, "start_date": "06/01/2025"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")

	rr = doJSON(r, http.MethodGet, "/api/bookings/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(r, http.MethodDelete, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_RenterScope(t *testing.T) {
	r, asset := setupRouter(t, "renter-1")

	rr := doJSON(r, http.MethodPost, "/api/bookings", map[string]any{
		"asset_id": asset.ID, "renter_id": "someone-else", "start_date": "2025-06-01", "end_date": "2025-06-03",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created bookingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "renter-1", created.Data.RenterID)

	rr = doJSON(r, http.MethodDelete, "/api/bookings?id="+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var cancelled bookingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cancelled))
	assert.Equal(t, domain.BookingCancelled, cancelled.Data.Status)
}

func TestHandler_OwnerScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, crm, _, asset := setupService(t)
	crm.On("SyncBooking", mock.Anything).Return(nil)

	theirs, _, err := svc.Create(context.Background(), CreateRequest{
		AssetID: asset.ID, StartDate: "2025-06-01", EndDate: "2025-06-03",
	}, "")
	require.NoError(t, err)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxRole, string(domain.RoleOwner))
		c.Set(middleware.CtxOwnerID, "owner-elsewhere")
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))

	rr := doJSON(r, http.MethodPost, "/api/bookings", map[string]any{
		"asset_id": asset.ID, "start_date": "2025-07-01", "end_date": "2025-07-04",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())

	rr = doJSON(r, http.MethodPost, "/api/bookings", map[string]any{
		"asset_id": asset.ID, "start_date": "2025-07-01", "end_date": "2025-07-04", "status": "completed",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code, rr.Body.String())

	rr = doJSON(r, http.MethodPatch, "/api/bookings/"+theirs.ID, map[string]any{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	got, err := svc.Get(context.Background(), theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingInquiry, got.Status)
}
