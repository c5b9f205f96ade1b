package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueQueriesSkipNonNumericAmounts(t *testing.T) {
	// A tracked event can carry any JSON under properties, including
	// {"amount":"free"}. Casting that to numeric would abort the whole
	// report, so every revenue aggregate must gate the cast on type.
	assert.Contains(t, revenueQuery, "jsonb_typeof(properties->'amount') = 'number'")
	assert.NotContains(t, revenueQuery, "properties ? 'amount'")

	for _, q := range []string{productsQuery, monthlyRevenueQuery} {
		assert.Contains(t, q, "CASE WHEN jsonb_typeof(properties->'amount') = 'number'")
		assert.Contains(t, q, "ELSE 0 END")
	}
}

func TestStepUsersSubquery(t *testing.T) {
	orgID := uuid.New()
	since := time.Now()

	step := FunnelStep{Name: "Started Signup", Events: []string{"signup_started", "form_submit"}}
	sub, args := stepUsersSubquery(step, []any{orgID, since})

	assert.Equal(t,
		"SELECT DISTINCT user_id FROM events WHERE organization_id = $1 AND timestamp >= $2 AND name = ANY($3) AND user_id IS NOT NULL",
		sub)
	require.Len(t, args, 3)
	assert.Equal(t, step.Events, args[2])
}

func TestStepUsersSubquery_WithPageFilter(t *testing.T) {
	step := FunnelStep{Name: "Viewed Product/Pricing", Events: []string{"page_view"}, Page: "/pricing"}
	sub, args := stepUsersSubquery(step, []any{uuid.New(), time.Now()})

	assert.Contains(t, sub, "properties->>'page' = $4")
	require.Len(t, args, 4)
	assert.Equal(t, "/pricing", args[3])
}

func TestStepCountQuery(t *testing.T) {
	q, args := stepCountQuery(uuid.New(), time.Now(), FunnelSteps[0])

	assert.Equal(t,
		"SELECT COUNT(*) FROM (SELECT DISTINCT user_id FROM events WHERE organization_id = $1 AND timestamp >= $2 AND name = ANY($3) AND user_id IS NOT NULL) step_users",
		q)
	assert.Len(t, args, 3)
}

func TestSequentialFunnelQuery_NumbersArgsAcrossSteps(t *testing.T) {
	q, args := sequentialFunnelQuery(uuid.New(), time.Now(), FunnelSteps[:3])

	// Steps: page_view ($3), page_view + /pricing page ($4, $5), signup events ($6).
	assert.Contains(t, q, "name = ANY($3)")
	assert.Contains(t, q, "name = ANY($4)")
	assert.Contains(t, q, "properties->>'page' = $5")
	assert.Contains(t, q, "name = ANY($6)")
	assert.Equal(t, 2, strings.Count(q, " INTERSECT "))
	require.Len(t, args, 6)
	assert.Equal(t, "/pricing", args[4])
}
