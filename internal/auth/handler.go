package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abhiwarkar/Intellica/internal/models"
	"github.com/Abhiwarkar/Intellica/internal/organizations"
	"github.com/Abhiwarkar/Intellica/pkg/response"
	"github.com/Abhiwarkar/Intellica/pkg/utils"
)

// RegisterRequest is the body for POST /api/auth/register. Registration creates
// the organization and its first (admin) user in one step.
type RegisterRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	OrganizationName string `json:"organizationName" binding:"required"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the auth response with JWT.
type TokenResponse struct {
	Token string            `json:"token"`
	User  models.UserPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	repo    *Repository
	orgRepo *organizations.Repository
	jwt     *JWTService
	revoker TokenRevoker
	logger  *zap.Logger
}

// NewHandler creates an auth handler. revoker may be nil when Redis is not configured.
func NewHandler(repo *Repository, orgRepo *organizations.Repository, jwt *JWTService, revoker TokenRevoker, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, orgRepo: orgRepo, jwt: jwt, revoker: revoker, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, err := h.repo.GetByEmail(ctx, req.Email); err == nil {
		response.BadRequest(c, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	org, err := h.orgRepo.Create(ctx, req.OrganizationName)
	if err != nil {
		h.logger.Error("create organization", zap.Error(err))
		response.Error(c, err)
		return
	}

	user, err := h.repo.Create(ctx, req.Email, hash, req.Name, models.RoleAdmin, org.ID)
	if err != nil {
		h.logger.Error("create user", zap.Error(err))
		response.Error(c, err)
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role), user.OrganizationID)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	response.Created(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email, string(user.Role), user.OrganizationID)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}

	response.OK(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// Logout handles POST /api/auth/logout. The JWT middleware has already
// validated the token and stored its jti and expiry in the context; revoke it
// until its natural expiry. Without a revocation store the server side is a
// no-op and the client simply discards the token.
func (h *Handler) Logout(c *gin.Context) {
	if h.revoker != nil {
		tokenID := c.GetString(ContextTokenID)
		if exp, ok := c.Get(ContextTokenExpiry); ok && tokenID != "" {
			if err := h.revoker.Revoke(c.Request.Context(), tokenID, exp.(time.Time)); err != nil {
				h.logger.Warn("revoke token", zap.Error(err))
			}
		}
	}
	response.OK(c, gin.H{"message": "logged out"})
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(c *gin.Context) {
	userID := c.MustGet(ContextUserID).(uuid.UUID)
	user, err := h.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user.ToPublic())
}
