package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhiwarkar/Intellica/internal/auth"
)

// fakeChecker marks a fixed set of token IDs as revoked.
type fakeChecker struct {
	revoked map[string]bool
}

func (f *fakeChecker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func jwtTestRouter(svc *auth.JWTService, checker auth.RevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWT(svc, checker), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"org":  c.MustGet(ContextOrgID).(uuid.UUID).String(),
			"role": c.MustGet(ContextUserRole).(string),
		})
	})
	return r
}

func TestJWT_ValidToken(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 24)
	orgID := uuid.New()
	token, err := svc.Generate(uuid.New(), "a@example.com", "admin", orgID)
	require.NoError(t, err)

	r := jwtTestRouter(svc, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), orgID.String())
	assert.Contains(t, w.Body.String(), "admin")
}

func TestJWT_StoresTokenMetadata(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 24)
	token, err := svc.Generate(uuid.New(), "a@example.com", "admin", uuid.New())
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	var tokenID string
	var expiry time.Time
	r.GET("/protected", JWT(svc, nil), func(c *gin.Context) {
		tokenID = c.GetString(ContextTokenID)
		expiry = c.MustGet(ContextTokenExpiry).(time.Time)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	// Logout revokes by jti until expiry, so both must reach the context.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, tokenID)
	assert.True(t, expiry.After(time.Now()))
}

func TestJWT_MissingHeader(t *testing.T) {
	r := jwtTestRouter(auth.NewJWTService("test-secret", 24), nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWT_MalformedHeader(t *testing.T) {
	r := jwtTestRouter(auth.NewJWTService("test-secret", 24), nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWT_InvalidToken(t *testing.T) {
	r := jwtTestRouter(auth.NewJWTService("test-secret", 24), nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWT_RevokedToken(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 24)
	token, err := svc.Generate(uuid.New(), "a@example.com", "admin", uuid.New())
	require.NoError(t, err)
	claims, err := svc.Validate(token)
	require.NoError(t, err)

	r := jwtTestRouter(svc, &fakeChecker{revoked: map[string]bool{claims.ID: true}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
