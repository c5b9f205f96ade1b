package organizations

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abhiwarkar/Intellica/internal/models"
)

// Repository handles organization persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an organizations repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// NewAPIKey generates a tracking API key (16 random bytes, hex encoded).
func NewAPIKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create inserts a new organization with default settings and a generated API key.
func (r *Repository) Create(ctx context.Context, name string) (*models.Organization, error) {
	apiKey, err := NewAPIKey()
	if err != nil {
		return nil, err
	}
	settings := models.DefaultSettings()

	const q = `INSERT INTO organizations (name, plan, api_key, settings)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, plan, api_key, settings, created_at, updated_at`
	var o models.Organization
	err = r.pool.QueryRow(ctx, q, name, string(models.PlanFree), apiKey, settings).
		Scan(&o.ID, &o.Name, &o.Plan, &o.APIKey, &o.Settings, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByID returns an organization by ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	const q = `SELECT id, name, plan, api_key, settings, created_at, updated_at
		FROM organizations WHERE id = $1`
	var o models.Organization
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.Name, &o.Plan, &o.APIKey, &o.Settings, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateGeneral updates the organization name and the timezone/dateFormat
// settings, stamping who changed them and when.
func (r *Repository) UpdateGeneral(ctx context.Context, id uuid.UUID, name, timezone, dateFormat string, updatedBy uuid.UUID) (*models.Organization, error) {
	org, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	org.Settings.Timezone = timezone
	org.Settings.DateFormat = dateFormat
	org.Settings.UpdatedAt = &now
	org.Settings.UpdatedBy = &updatedBy

	const q = `UPDATE organizations SET name = $1, settings = $2, updated_at = NOW() WHERE id = $3
		RETURNING id, name, plan, api_key, settings, created_at, updated_at`
	var o models.Organization
	err = r.pool.QueryRow(ctx, q, name, org.Settings, id).
		Scan(&o.ID, &o.Name, &o.Plan, &o.APIKey, &o.Settings, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateIntegrations replaces the integrations sub-document.
func (r *Repository) UpdateIntegrations(ctx context.Context, id uuid.UUID, integrations models.IntegrationSettings, updatedBy uuid.UUID) (*models.Organization, error) {
	org, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	org.Settings.Integrations = integrations
	org.Settings.UpdatedAt = &now
	org.Settings.UpdatedBy = &updatedBy

	const q = `UPDATE organizations SET settings = $1, updated_at = NOW() WHERE id = $2
		RETURNING id, name, plan, api_key, settings, created_at, updated_at`
	var o models.Organization
	err = r.pool.QueryRow(ctx, q, org.Settings, id).
		Scan(&o.ID, &o.Name, &o.Plan, &o.APIKey, &o.Settings, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
