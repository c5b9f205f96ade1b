package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, err)

	var body Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return w.Code, body.Error
}

func TestError_NoRows(t *testing.T) {
	status, msg := classify(t, pgx.ErrNoRows)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Resource not found", msg)
}

func TestError_UniqueViolation(t *testing.T) {
	status, msg := classify(t, &pgconn.PgError{Code: "23505"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Duplicate field value entered", msg)
}

func TestError_InvalidValues(t *testing.T) {
	for _, code := range []string{"23503", "22P02"} {
		status, msg := classify(t, &pgconn.PgError{Code: code})
		assert.Equal(t, http.StatusBadRequest, status, "code %s", code)
		assert.Equal(t, "Invalid field value entered", msg)
	}
}

func TestError_Wrapped(t *testing.T) {
	status, msg := classify(t, errors.Join(errors.New("query overview"), pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Resource not found", msg)
}

func TestError_Generic(t *testing.T) {
	status, msg := classify(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server Error", msg)
}

func TestError_UnknownPgCode(t *testing.T) {
	status, msg := classify(t, &pgconn.PgError{Code: "40001"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Server Error", msg)
}
