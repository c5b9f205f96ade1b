package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		token string
		want  time.Time
	}{
		{"7d", now.AddDate(0, 0, -7)},
		{"week", now.AddDate(0, 0, -7)},
		{"30d", now.AddDate(0, 0, -30)},
		{"90d", now.AddDate(0, 0, -90)},
		{"12m", now.AddDate(0, 0, -365)},
		{"1y", now.AddDate(0, 0, -365)},
		{"day", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"month", time.Date(2024, 5, 15, 14, 30, 45, 0, time.UTC)},
		{"year", time.Date(2023, 6, 15, 14, 30, 45, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Resolve(tt.token, now)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_InvalidTokens(t *testing.T) {
	now := time.Now()
	for _, token := range []string{"", "14d", "weekly", "all", "365"} {
		_, err := Resolve(token, now)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", token)
	}
}
