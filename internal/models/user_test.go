package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRole(t *testing.T) {
	for _, role := range []string{"viewer", "analyst", "admin"} {
		assert.True(t, ValidRole(role), role)
	}
	for _, role := range []string{"", "superuser", "Admin", "owner"} {
		assert.False(t, ValidRole(role), role)
	}
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	u := User{ID: uuid.New(), Email: "a@example.com", Password: "bcrypt-hash", Role: RoleAdmin}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt-hash")

	raw, err = json.Marshal(u.ToPublic())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt-hash")
	assert.Contains(t, string(raw), "a@example.com")
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "UTC", s.Timezone)
	assert.Equal(t, "MM/DD/YYYY", s.DateFormat)
	assert.True(t, s.Integrations.EnableTracking)
	assert.True(t, s.Integrations.TrackPageViews)
	assert.False(t, s.Integrations.EnableGoogleAnalytics)
	assert.Nil(t, s.UpdatedAt)
	assert.Nil(t, s.UpdatedBy)
}
