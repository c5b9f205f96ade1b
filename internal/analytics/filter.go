package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 100
)

// EventFilter is the immutable predicate built once per event-list request.
// The organization is always present; the rest is optional. A zero StartDate
// or EndDate means no bound on that side.
type EventFilter struct {
	OrganizationID uuid.UUID
	Name           string
	UserID         string
	StartDate      *time.Time
	EndDate        *time.Time
	Page           int
	Limit          int
}

// NewEventFilter builds a filter, normalizing pagination to page>=1 and limit>=1.
func NewEventFilter(orgID uuid.UUID, name, userID string, start, end *time.Time, page, limit int) EventFilter {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return EventFilter{
		OrganizationID: orgID,
		Name:           name,
		UserID:         userID,
		StartDate:      start,
		EndDate:        end,
		Page:           page,
		Limit:          limit,
	}
}

// WhereClause renders the filter as a SQL WHERE clause with positional args.
func (f EventFilter) WhereClause() (string, []any) {
	conds := []string{"organization_id = $1"}
	args := []any{f.OrganizationID}
	if f.Name != "" {
		args = append(args, f.Name)
		conds = append(conds, fmt.Sprintf("name = $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("timestamp <= $%d", len(args)))
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// Offset returns the row offset for the requested page.
func (f EventFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Pages returns the total page count for a matching-row total.
func (f EventFilter) Pages(total int) int {
	if total == 0 {
		return 0
	}
	return (total + f.Limit - 1) / f.Limit
}
