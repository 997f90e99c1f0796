package inspection

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvconsign/internal/middleware"
)

func TestHandler_CreateWithDamage(t *testing.T) {
	svc, _, b := setupService(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, "manager-1")
		c.Set(middleware.CtxRole, "manager")
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))

	body, _ := json.Marshal(map[string]any{
		"booking_id":            b.ID,
		"inspection_type":       "checkout",
		"damages_found":         true,
		"damage_description":    "Torn awning",
		"estimated_repair_cost": 900,
	})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/inspections", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Data struct {
			Inspection   map[string]any `json:"inspection"`
			DamageReport map[string]any `json:"damage_report"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "manager-1", resp.Data.Inspection["inspector_id"])
	assert.Equal(t, "major", resp.Data.DamageReport["severity"])

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/inspections", bytes.NewReader([]byte(`{"inspection_type":"checkin"}`))))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/damage-reports?status=reported", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Torn awning")
}
