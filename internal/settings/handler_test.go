package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abhiwarkar/Intellica/internal/models"
)

func TestGeneralSettings_Fallbacks(t *testing.T) {
	org := &models.Organization{Name: "Acme"}

	out := generalSettings(org)

	assert.Equal(t, "Acme", out.OrganizationName)
	assert.Equal(t, "UTC", out.Timezone)
	assert.Equal(t, "MM/DD/YYYY", out.DateFormat)
}

func TestGeneralSettings_Explicit(t *testing.T) {
	org := &models.Organization{
		Name: "Acme",
		Settings: models.OrganizationSettings{
			Timezone:   "Europe/Berlin",
			DateFormat: "DD/MM/YYYY",
		},
	}

	out := generalSettings(org)

	assert.Equal(t, "Europe/Berlin", out.Timezone)
	assert.Equal(t, "DD/MM/YYYY", out.DateFormat)
}
