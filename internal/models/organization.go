package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan is an organization's subscription tier.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanStartup    Plan = "startup"
	PlanEnterprise Plan = "enterprise"
)

// Organization represents a tenant. Every event and user is scoped to one.
type Organization struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Plan      Plan                 `json:"plan"`
	APIKey    string               `json:"api_key"`
	Settings  OrganizationSettings `json:"settings"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// OrganizationSettings is the tenant settings sub-document, stored as JSONB.
type OrganizationSettings struct {
	Timezone     string              `json:"timezone,omitempty"`
	DateFormat   string              `json:"dateFormat,omitempty"`
	Integrations IntegrationSettings `json:"integrations"`
	UpdatedAt    *time.Time          `json:"updatedAt,omitempty"`
	UpdatedBy    *uuid.UUID          `json:"updatedBy,omitempty"`
}

// IntegrationSettings holds tracking and third-party integration toggles.
type IntegrationSettings struct {
	EnableTracking        bool   `json:"enableTracking"`
	TrackPageViews        bool   `json:"trackPageViews"`
	TrackClicks           bool   `json:"trackClicks"`
	EnableGoogleAnalytics bool   `json:"enableGoogleAnalytics"`
	GoogleAnalyticsID     string `json:"googleAnalyticsId,omitempty"`
}

// DefaultSettings returns the settings a new organization starts with.
func DefaultSettings() OrganizationSettings {
	return OrganizationSettings{
		Timezone:   "UTC",
		DateFormat: "MM/DD/YYYY",
		Integrations: IntegrationSettings{
			EnableTracking: true,
			TrackPageViews: true,
			TrackClicks:    true,
		},
	}
}
