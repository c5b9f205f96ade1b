package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleTestRouter(role string, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only",
		func(c *gin.Context) {
			if role != "" {
				c.Set(ContextUserRole, role)
			}
			c.Next()
		},
		RequireRole(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"admin allowed", "admin", []string{"admin"}, http.StatusOK},
		{"analyst in set", "analyst", []string{"analyst", "admin"}, http.StatusOK},
		{"viewer denied", "viewer", []string{"analyst", "admin"}, http.StatusForbidden},
		{"unknown role denied", "superuser", []string{"admin"}, http.StatusForbidden},
		{"no role in context", "", []string{"admin"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := roleTestRouter(tt.role, tt.allowed...)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
