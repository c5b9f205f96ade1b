package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abhiwarkar/Intellica/internal/models"
)

// Repository runs event persistence and aggregation queries against Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an analytics repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert persists a single event.
func (r *Repository) Insert(ctx context.Context, e *models.Event) error {
	const q = `INSERT INTO events (organization_id, name, user_id, session_id, properties, metadata, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	return r.pool.QueryRow(ctx, q, e.OrganizationID, e.Name, e.UserID, e.SessionID, e.Properties, e.Metadata, e.Timestamp).
		Scan(&e.ID, &e.CreatedAt)
}

// List returns one page of events matching the filter, newest first,
// along with the total matching count.
func (r *Repository) List(ctx context.Context, f EventFilter) ([]models.Event, int, error) {
	where, args := f.WhereClause()

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM events "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := fmt.Sprintf(`SELECT id, organization_id, name, user_id, session_id, properties, metadata, timestamp, created_at
		FROM events %s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset())
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.OrganizationID, &e.Name, &e.UserID, &e.SessionID, &e.Properties, &e.Metadata, &e.Timestamp, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

// Overview computes the dashboard overview metrics for one tenant. Windows
// are anchored to the start of the current day, matching the dashboard's
// today/this-week/this-month cards.
func (r *Repository) Overview(ctx context.Context, orgID uuid.UUID, now time.Time) (*Overview, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	lastWeek := today.AddDate(0, 0, -7)
	lastMonth := today.AddDate(0, -1, 0)
	fiveMonthsAgo := now.AddDate(0, -5, 0)

	o := NewOverview()

	const countQ = `SELECT COUNT(*) FROM events WHERE organization_id = $1 AND timestamp >= $2`
	if err := r.pool.QueryRow(ctx, countQ, orgID, today).Scan(&o.TotalEventsToday); err != nil {
		return nil, err
	}
	if err := r.pool.QueryRow(ctx, countQ, orgID, lastWeek).Scan(&o.TotalEventsThisWeek); err != nil {
		return nil, err
	}
	if err := r.pool.QueryRow(ctx, countQ, orgID, lastMonth).Scan(&o.TotalEventsThisMonth); err != nil {
		return nil, err
	}

	var err error
	if o.UniqueUsersToday, err = r.UniqueUsers(ctx, orgID, today); err != nil {
		return nil, err
	}

	const topQ = `SELECT name, COUNT(*) AS count FROM events
		WHERE organization_id = $1 AND timestamp >= $2
		GROUP BY name ORDER BY count DESC LIMIT 5`
	rows, err := r.pool.Query(ctx, topQ, orgID, lastWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ec EventCount
		if err := rows.Scan(&ec.Name, &ec.Count); err != nil {
			return nil, err
		}
		o.TopEvents = append(o.TopEvents, ec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Per-day buckets for the trailing week, ascending by date. The group key
	// (a truncated timestamp) is lifted into a formatted date field.
	const dailyQ = `SELECT date_trunc('day', timestamp) AS day, COUNT(*) FROM events
		WHERE organization_id = $1 AND timestamp >= $2
		GROUP BY day ORDER BY day`
	rows, err = r.pool.Query(ctx, dailyQ, orgID, lastWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		o.DailyEvents = append(o.DailyEvents, DailyCount{Date: day.Format("2006-01-02"), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const monthlyQ = `SELECT date_trunc('month', timestamp) AS month, COUNT(DISTINCT user_id) FROM events
		WHERE organization_id = $1 AND timestamp >= $2
		GROUP BY month ORDER BY month`
	rows, err = r.pool.Query(ctx, monthlyQ, orgID, fiveMonthsAgo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var month time.Time
		var users int
		if err := rows.Scan(&month, &users); err != nil {
			return nil, err
		}
		o.MonthlyUsers = append(o.MonthlyUsers, MonthlyUsers{Month: month.Format("Jan"), Users: users})
	}
	return o, rows.Err()
}

// UniqueUsers counts distinct non-null user IDs for a tenant since the given time.
func (r *Repository) UniqueUsers(ctx context.Context, orgID uuid.UUID, since time.Time) (int, error) {
	const q = `SELECT COUNT(DISTINCT user_id) FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND user_id IS NOT NULL`
	var n int
	err := r.pool.QueryRow(ctx, q, orgID, since).Scan(&n)
	return n, err
}

// BulkInsert writes a batch of events with COPY. Used by the sample-data seeder.
func (r *Repository) BulkInsert(ctx context.Context, events []models.Event) (int64, error) {
	rows := make([][]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, []any{e.OrganizationID, e.Name, e.UserID, e.SessionID, e.Properties, e.Metadata, e.Timestamp})
	}
	return r.pool.CopyFrom(ctx,
		pgx.Identifier{"events"},
		[]string{"organization_id", "name", "user_id", "session_id", "properties", "metadata", "timestamp"},
		pgx.CopyFromRows(rows),
	)
}
