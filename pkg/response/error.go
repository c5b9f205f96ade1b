package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes relevant to the API error taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// Error classifies err and writes the matching JSON error response. All
// repository and pipeline errors funnel through here so the status-code
// mapping lives in one place: unknown rows map to 404, unique-constraint
// violations to 400, malformed input to 400, everything else to a generic 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Server Error"

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		status = http.StatusNotFound
		message = "Resource not found"
	case errors.As(err, &pgErr):
		switch pgErr.Code {
		case pgUniqueViolation:
			status = http.StatusBadRequest
			message = "Duplicate field value entered"
		case pgForeignKeyViolation, pgInvalidTextRepr:
			status = http.StatusBadRequest
			message = "Invalid field value entered"
		}
	}

	c.JSON(status, Body{Success: false, Error: message})
}
