package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventFilter_Defaults(t *testing.T) {
	orgID := uuid.New()
	f := NewEventFilter(orgID, "", "", nil, nil, 0, 0)

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 100, f.Limit)
	assert.Equal(t, 0, f.Offset())
}

func TestEventFilter_WhereClause_OrgOnly(t *testing.T) {
	orgID := uuid.New()
	f := NewEventFilter(orgID, "", "", nil, nil, 1, 100)

	where, args := f.WhereClause()
	assert.Equal(t, "WHERE organization_id = $1", where)
	assert.Equal(t, []any{orgID}, args)
}

func TestEventFilter_WhereClause_AllPredicates(t *testing.T) {
	orgID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	f := NewEventFilter(orgID, "page_view", "user_7", &start, &end, 2, 50)

	where, args := f.WhereClause()
	assert.Equal(t,
		"WHERE organization_id = $1 AND name = $2 AND user_id = $3 AND timestamp >= $4 AND timestamp <= $5",
		where)
	assert.Equal(t, []any{orgID, "page_view", "user_7", start, end}, args)
}

func TestEventFilter_Offset(t *testing.T) {
	f := NewEventFilter(uuid.New(), "", "", nil, nil, 3, 25)
	assert.Equal(t, 50, f.Offset())
}

func TestEventFilter_Pages(t *testing.T) {
	f := NewEventFilter(uuid.New(), "", "", nil, nil, 1, 100)

	assert.Equal(t, 0, f.Pages(0))
	assert.Equal(t, 1, f.Pages(1))
	assert.Equal(t, 1, f.Pages(100))
	assert.Equal(t, 2, f.Pages(101))
	assert.Equal(t, 3, f.Pages(250))
}
