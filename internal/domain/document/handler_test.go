package document

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rvconsign/internal/storage"
	"rvconsign/internal/testutil"
)

func multipartRequest(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("file", "receipt.pdf")
		require.NoError(t, err)
		_, _ = part.Write([]byte("%PDF-1.4"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandler_UploadListDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewService(NewRepository(testutil.NewDB(t)), storage.NewLocal(t.TempDir(), "/static/uploads"))
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, multipartRequest(t, map[string]string{"document_type": "rental_receipt", "title": "Receipt"}, false))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, multipartRequest(t, map[string]string{"document_type": "rental_receipt", "title": "Receipt", "owner_id": "o1"}, true))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/documents/upload?type=rental_receipt&owner_id=o1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"Receipt"`)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/documents/upload", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/documents/upload?id=missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
