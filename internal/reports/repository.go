package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository runs the report aggregation queries against the events table.
// Every query is tenant-scoped and read-only; a report either fully succeeds
// or returns an error with no data.
type Repository struct {
	pool *pgxpool.Pool
}

// Ingestion accepts arbitrary properties, so amount can be any JSON type.
// The revenue queries only aggregate JSON numbers; a string or object amount
// would otherwise abort the whole report with a cast error (22P02).
const revenueQuery = `SELECT COALESCE(SUM((properties->>'amount')::numeric), 0),
		COUNT(*),
		COALESCE(AVG((properties->>'amount')::numeric), 0)
	FROM events
	WHERE organization_id = $1 AND timestamp >= $2 AND name = ANY($3)
		AND jsonb_typeof(properties->'amount') = 'number'`

// Top products by summed revenue. The anonymous group key becomes "name".
const productsQuery = `SELECT properties->>'product',
		COALESCE(SUM(CASE WHEN jsonb_typeof(properties->'amount') = 'number'
			THEN (properties->>'amount')::numeric ELSE 0 END), 0) AS revenue,
		COUNT(*)
	FROM events
	WHERE organization_id = $1 AND timestamp >= $2 AND name = ANY($3) AND properties ? 'product'
	GROUP BY properties->>'product' ORDER BY revenue DESC LIMIT 5`

const monthlyRevenueQuery = `SELECT date_trunc('month', timestamp) AS month,
		COALESCE(SUM(CASE WHEN jsonb_typeof(properties->'amount') = 'number'
			THEN (properties->>'amount')::numeric ELSE 0 END), 0),
		COUNT(DISTINCT user_id),
		COUNT(*)
	FROM events
	WHERE organization_id = $1 AND timestamp >= $2 AND name = ANY($3)
	GROUP BY month ORDER BY month`

// NewRepository creates a reports repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// BusinessData gathers the raw numbers behind the business overview report.
func (r *Repository) BusinessData(ctx context.Context, orgID uuid.UUID, since time.Time) (*BusinessRaw, error) {
	var raw BusinessRaw

	err := r.pool.QueryRow(ctx, revenueQuery, orgID, since, purchaseEventNames).
		Scan(&raw.TotalRevenue, &raw.TotalOrders, &raw.AvgOrderValue)
	if err != nil {
		return nil, err
	}

	const distinctUsersQ = `SELECT COUNT(DISTINCT user_id) FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND user_id IS NOT NULL`
	if err := r.pool.QueryRow(ctx, distinctUsersQ, orgID, since).Scan(&raw.Customers); err != nil {
		return nil, err
	}
	raw.Visitors = raw.Customers

	const purchasersQ = `SELECT COUNT(DISTINCT user_id) FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND name = ANY($3) AND user_id IS NOT NULL`
	if err := r.pool.QueryRow(ctx, purchasersQ, orgID, since, purchaseEventNames).Scan(&raw.Purchasers); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, productsQuery, orgID, since, productEventNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	raw.TopProducts = []ProductRevenue{}
	for rows.Next() {
		var p ProductRevenue
		if err := rows.Scan(&p.Name, &p.Revenue, &p.Units); err != nil {
			return nil, err
		}
		raw.TopProducts = append(raw.TopProducts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, monthlyRevenueQuery, orgID, since, productEventNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	raw.Monthly = []MonthlyRevenue{}
	for rows.Next() {
		var month time.Time
		var m MonthlyRevenue
		if err := rows.Scan(&month, &m.Revenue, &m.Customers, &m.Orders); err != nil {
			return nil, err
		}
		m.Month = month.Format("Jan")
		raw.Monthly = append(raw.Monthly, m)
	}
	return &raw, rows.Err()
}

// ActivityData gathers the raw numbers behind the user activity report.
func (r *Repository) ActivityData(ctx context.Context, orgID uuid.UUID, since time.Time) (*ActivityRaw, error) {
	var raw ActivityRaw

	const sessionsQ = `SELECT COUNT(DISTINCT session_id) FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND session_id IS NOT NULL`
	if err := r.pool.QueryRow(ctx, sessionsQ, orgID, since).Scan(&raw.Sessions); err != nil {
		return nil, err
	}

	const pageViewsQ = `SELECT COUNT(*) FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND name = 'page_view'`
	if err := r.pool.QueryRow(ctx, pageViewsQ, orgID, since).Scan(&raw.PageViews); err != nil {
		return nil, err
	}

	const usersQ = `SELECT COUNT(DISTINCT user_id) FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND user_id IS NOT NULL`
	if err := r.pool.QueryRow(ctx, usersQ, orgID, since).Scan(&raw.UniqueUsers); err != nil {
		return nil, err
	}

	// A bounce is a session with exactly one page_view.
	const bounceQ = `SELECT COUNT(*) FROM (
			SELECT session_id FROM events
			WHERE organization_id = $1 AND timestamp >= $2 AND name = 'page_view' AND session_id IS NOT NULL
			GROUP BY session_id HAVING COUNT(*) = 1
		) bounced`
	if err := r.pool.QueryRow(ctx, bounceQ, orgID, since).Scan(&raw.BounceSessions); err != nil {
		return nil, err
	}

	const pagesQ = `SELECT properties->>'page', COUNT(*) AS views, COUNT(DISTINCT user_id)
		FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND name = 'page_view' AND properties ? 'page'
		GROUP BY properties->>'page' ORDER BY views DESC LIMIT 10`
	rows, err := r.pool.Query(ctx, pagesQ, orgID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	raw.TopPages = []PageStats{}
	for rows.Next() {
		var p PageStats
		if err := rows.Scan(&p.Page, &p.Views, &p.UniqueViews); err != nil {
			return nil, err
		}
		raw.TopPages = append(raw.TopPages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const devicesQ = `SELECT metadata->>'device', COUNT(DISTINCT user_id) AS users
		FROM events
		WHERE organization_id = $1 AND timestamp >= $2 AND metadata ? 'device'
		GROUP BY metadata->>'device' ORDER BY users DESC`
	rows, err = r.pool.Query(ctx, devicesQ, orgID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	raw.Devices = []DeviceStats{}
	for rows.Next() {
		var d DeviceStats
		if err := rows.Scan(&d.Device, &d.Users); err != nil {
			return nil, err
		}
		raw.Devices = append(raw.Devices, d)
	}
	return &raw, rows.Err()
}

// FunnelCounts returns the distinct-user count for each funnel step. In the
// default mode each step is counted independently (a user can qualify for a
// late step without the earlier ones). With sequential=true each step's user
// set is progressively intersected with all earlier steps, giving true
// ordered-funnel semantics.
func (r *Repository) FunnelCounts(ctx context.Context, orgID uuid.UUID, since time.Time, steps []FunnelStep, sequential bool) ([]int, error) {
	counts := make([]int, len(steps))
	for i := range steps {
		var q string
		var args []any
		if sequential {
			q, args = sequentialFunnelQuery(orgID, since, steps[:i+1])
		} else {
			q, args = stepCountQuery(orgID, since, steps[i])
		}
		if err := r.pool.QueryRow(ctx, q, args...).Scan(&counts[i]); err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// stepCountQuery counts distinct users matching a single step's criteria.
func stepCountQuery(orgID uuid.UUID, since time.Time, step FunnelStep) (string, []any) {
	sub, args := stepUsersSubquery(step, []any{orgID, since})
	return "SELECT COUNT(*) FROM (" + sub + ") step_users", args
}

// sequentialFunnelQuery counts users present in every step's distinct-user
// set via an INTERSECT chain.
func sequentialFunnelQuery(orgID uuid.UUID, since time.Time, steps []FunnelStep) (string, []any) {
	args := []any{orgID, since}
	subs := make([]string, 0, len(steps))
	for _, step := range steps {
		var sub string
		sub, args = stepUsersSubquery(step, args)
		subs = append(subs, "("+sub+")")
	}
	return "SELECT COUNT(*) FROM (" + strings.Join(subs, " INTERSECT ") + ") funnel_users", args
}

// stepUsersSubquery renders the distinct-user SELECT for one step, appending
// its parameters to args.
func stepUsersSubquery(step FunnelStep, args []any) (string, []any) {
	args = append(args, step.Events)
	cond := fmt.Sprintf("organization_id = $1 AND timestamp >= $2 AND name = ANY($%d) AND user_id IS NOT NULL", len(args))
	if step.Page != "" {
		args = append(args, step.Page)
		cond += fmt.Sprintf(" AND properties->>'page' = $%d", len(args))
	}
	return "SELECT DISTINCT user_id FROM events WHERE " + cond, args
}
