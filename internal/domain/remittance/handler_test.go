package remittance

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"rvconsign/internal/middleware"
	"rvconsign/internal/notify"
)

func setupRouter(t *testing.T, svc *Service, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxRole, role)
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandler_CalculateAndSend(t *testing.T) {
	svc, _, db := setupService(t)
	owner, _ := seedFleet(t, db)
	r := setupRouter(t, svc, "manager")
	body := map[string]string{"owner_id": owner.ID, "period_start": "2025-06-01", "period_end": "2025-06-30"}

	rr := postJSON(r, "/api/remittances/calculate", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var calc struct {
		Data Calculation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &calc))
	assert.Equal(t, 1615.0, calc.Data.GrossIncome)

	rr = postJSON(r, "/api/remittances/send", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"effects"`)

	rr = postJSON(r, "/api/remittances/calculate", map[string]string{"owner_id": owner.ID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postJSON(r, "/api/remittances/calculate", map[string]string{
		"owner_id": "nope", "period_start": "2025-06-01", "period_end": "2025-06-30",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_OwnerCannotSend(t *testing.T) {
	svc, _, _ := setupService(t)
	r := setupRouter(t, svc, "owner")

	rr := postJSON(r, "/api/remittances/send", map[string]string{})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestHandler_StoreErrorIs500(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "remittances"`).WillReturnError(errors.New("connection reset by peer"))

	svc := NewService(NewRepository(db), notify.LogNotifier{})
	r := setupRouter(t, svc, "manager")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/remittances", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "connection reset by peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}
