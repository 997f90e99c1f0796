package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(CtxRole, role)
		}
		c.Next()
	})
	r.GET("/staff", StaffOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestStaffOnly(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{role: "manager", want: http.StatusOK},
		{role: "admin", want: http.StatusOK},
		{role: "owner", want: http.StatusForbidden},
		{role: "renter", want: http.StatusForbidden},
		{role: "", want: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		roleRouter(tc.role).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/staff", nil))
		assert.Equal(t, tc.want, w.Code, "role=%q", tc.role)
	}
}
