package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleEvents_Bounds(t *testing.T) {
	orgID := uuid.New()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))

	events := GenerateSampleEvents(orgID, now, rng)

	require.NotEmpty(t, events)
	// 5-50 events per day over 30 days.
	assert.GreaterOrEqual(t, len(events), 5*SampleDataDays)
	assert.LessOrEqual(t, len(events), 50*SampleDataDays)

	earliest := now.AddDate(0, 0, -SampleDataDays)
	for _, e := range events {
		assert.Equal(t, orgID, e.OrganizationID)
		require.NotNil(t, e.UserID)
		require.NotNil(t, e.SessionID)
		assert.NotEmpty(t, e.Name)
		assert.True(t, e.Timestamp.After(earliest), "timestamp %v before window start %v", e.Timestamp, earliest)
		assert.Contains(t, e.Properties, "page")
		assert.Contains(t, e.Metadata, "device")
	}
}

func TestGenerateSampleEvents_PurchasesCarryRevenueFields(t *testing.T) {
	orgID := uuid.New()
	rng := rand.New(rand.NewSource(7))

	events := GenerateSampleEvents(orgID, time.Now(), rng)

	var purchases int
	for _, e := range events {
		if e.Name != "purchase" {
			assert.NotContains(t, e.Properties, "amount")
			continue
		}
		purchases++
		assert.Contains(t, e.Properties, "amount")
		assert.Contains(t, e.Properties, "product")
		amount, ok := e.Properties["amount"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, amount, 10.0)
	}
	assert.Greater(t, purchases, 0)
}
