package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abhiwarkar/Intellica/internal/models"
)

// Repository handles tenant-scoped user management persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a users repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListByOrganization returns all users belonging to an organization.
func (r *Repository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.UserPublic, error) {
	const q = `SELECT id, email, name, role, organization_id, created_at
		FROM users WHERE organization_id = $1 ORDER BY name, email`
	rows, err := r.pool.Query(ctx, q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.UserPublic{}
	for rows.Next() {
		var u models.UserPublic
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.OrganizationID, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetByID returns a user by ID, regardless of organization. The handler
// enforces tenant access.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const q = `SELECT id, email, password_hash, name, role, organization_id, created_at, updated_at
		FROM users WHERE id = $1`
	var u models.User
	err := r.pool.QueryRow(ctx, q, id).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user into the given organization.
func (r *Repository) Create(ctx context.Context, email, passwordHash, name string, role models.Role, orgID uuid.UUID) (*models.User, error) {
	const q = `INSERT INTO users (email, password_hash, name, role, organization_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, name, role, organization_id, created_at, updated_at`
	var u models.User
	err := r.pool.QueryRow(ctx, q, email, passwordHash, name, string(role), orgID).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update changes a user's name and role.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, name string, role models.Role) (*models.User, error) {
	const q = `UPDATE users SET name = $1, role = $2, updated_at = NOW() WHERE id = $3
		RETURNING id, email, password_hash, name, role, organization_id, created_at, updated_at`
	var u models.User
	err := r.pool.QueryRow(ctx, q, name, string(role), id).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.OrganizationID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes a user by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id)
	return err
}
