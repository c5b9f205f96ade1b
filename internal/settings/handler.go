package settings

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Abhiwarkar/Intellica/internal/auth"
	"github.com/Abhiwarkar/Intellica/internal/models"
	"github.com/Abhiwarkar/Intellica/internal/organizations"
	"github.com/Abhiwarkar/Intellica/pkg/response"
)

// Handler handles tenant settings endpoints.
type Handler struct {
	orgRepo *organizations.Repository
	logger  *zap.Logger
}

// NewHandler creates a settings handler.
func NewHandler(orgRepo *organizations.Repository, logger *zap.Logger) *Handler {
	return &Handler{orgRepo: orgRepo, logger: logger}
}

// GeneralSettings is the GET/PUT /api/settings/general payload.
type GeneralSettings struct {
	OrganizationName string `json:"organizationName"`
	Timezone         string `json:"timezone"`
	DateFormat       string `json:"dateFormat"`
}

// UpdateGeneralRequest is the body for PUT /api/settings/general.
type UpdateGeneralRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	Timezone         string `json:"timezone" binding:"required"`
	DateFormat       string `json:"dateFormat" binding:"required"`
}

// GetGeneral handles GET /api/settings/general.
func (h *Handler) GetGeneral(c *gin.Context) {
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	org, err := h.orgRepo.GetByID(c.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Organization not found")
			return
		}
		h.logger.Error("get organization", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, generalSettings(org))
}

// UpdateGeneral handles PUT /api/settings/general (admin only).
func (h *Handler) UpdateGeneral(c *gin.Context) {
	var req UpdateGeneralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	userID := c.MustGet(auth.ContextUserID).(uuid.UUID)
	org, err := h.orgRepo.UpdateGeneral(c.Request.Context(), orgID, req.OrganizationName, req.Timezone, req.DateFormat, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Organization not found")
			return
		}
		h.logger.Error("update general settings", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, generalSettings(org))
}

// UpdateIntegrations handles PUT /api/settings/integrations (admin only).
func (h *Handler) UpdateIntegrations(c *gin.Context) {
	var req models.IntegrationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	userID := c.MustGet(auth.ContextUserID).(uuid.UUID)
	org, err := h.orgRepo.UpdateIntegrations(c.Request.Context(), orgID, req, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Organization not found")
			return
		}
		h.logger.Error("update integration settings", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, org.Settings.Integrations)
}

func generalSettings(org *models.Organization) GeneralSettings {
	out := GeneralSettings{
		OrganizationName: org.Name,
		Timezone:         org.Settings.Timezone,
		DateFormat:       org.Settings.DateFormat,
	}
	if out.Timezone == "" {
		out.Timezone = "UTC"
	}
	if out.DateFormat == "" {
		out.DateFormat = "MM/DD/YYYY"
	}
	return out
}
