package users

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Abhiwarkar/Intellica/internal/auth"
	"github.com/Abhiwarkar/Intellica/internal/models"
	"github.com/Abhiwarkar/Intellica/pkg/response"
	"github.com/Abhiwarkar/Intellica/pkg/utils"
)

// Store is the persistence surface the user management handlers need.
type Store interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.UserPublic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, email, passwordHash, name string, role models.Role, orgID uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, name string, role models.Role) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler handles admin-only, tenant-scoped user management endpoints.
type Handler struct {
	repo   Store
	logger *zap.Logger
}

// NewHandler creates a users handler.
func NewHandler(repo Store, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// CreateUserRequest is the body for POST /api/users. The organization always
// comes from the caller's session.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest is the body for PUT /api/users/:id.
type UpdateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// List handles GET /api/users. Returns users from the caller's organization only.
func (h *Handler) List(c *gin.Context) {
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	list, err := h.repo.ListByOrganization(c.Request.Context(), orgID)
	if err != nil {
		h.logger.Error("list users", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OKCount(c, len(list), list)
}

// Get handles GET /api/users/:id.
func (h *Handler) Get(c *gin.Context) {
	user, ok := h.sameOrgUser(c, "Not authorized to access this user")
	if !ok {
		return
	}
	response.OK(c, user.ToPublic())
}

// Create handles POST /api/users.
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !models.ValidRole(req.Role) {
		response.BadRequest(c, "invalid role")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	user, err := h.repo.Create(c.Request.Context(), req.Email, hash, req.Name, models.Role(req.Role), orgID)
	if err != nil {
		h.logger.Error("create user", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, user.ToPublic())
}

// Update handles PUT /api/users/:id.
func (h *Handler) Update(c *gin.Context) {
	user, ok := h.sameOrgUser(c, "Not authorized to update this user")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !models.ValidRole(req.Role) {
		response.BadRequest(c, "invalid role")
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), user.ID, req.Name, models.Role(req.Role))
	if err != nil {
		h.logger.Error("update user", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, updated.ToPublic())
}

// Delete handles DELETE /api/users/:id.
func (h *Handler) Delete(c *gin.Context) {
	user, ok := h.sameOrgUser(c, "Not authorized to delete this user")
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), user.ID); err != nil {
		h.logger.Error("delete user", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{})
}

// sameOrgUser loads the :id user and enforces that they belong to the
// caller's organization. Writes the error response itself when not ok.
func (h *Handler) sameOrgUser(c *gin.Context, forbiddenMsg string) (*models.User, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return nil, false
	}
	user, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "User not found with id of "+id.String())
			return nil, false
		}
		h.logger.Error("get user", zap.Error(err))
		response.Error(c, err)
		return nil, false
	}
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	if user.OrganizationID != orgID {
		response.Forbidden(c, forbiddenMsg)
		return nil, false
	}
	return user, true
}
