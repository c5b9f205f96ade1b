package reports

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abhiwarkar/Intellica/internal/auth"
	"github.com/Abhiwarkar/Intellica/internal/period"
	"github.com/Abhiwarkar/Intellica/pkg/response"
)

const defaultPeriod = "30d"

// Store is the aggregation surface the report handlers need.
type Store interface {
	BusinessData(ctx context.Context, orgID uuid.UUID, since time.Time) (*BusinessRaw, error)
	ActivityData(ctx context.Context, orgID uuid.UUID, since time.Time) (*ActivityRaw, error)
	FunnelCounts(ctx context.Context, orgID uuid.UUID, since time.Time, steps []FunnelStep, sequential bool) ([]int, error)
}

// Handler handles the report HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates a reports handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger, now: time.Now}
}

// GetBusinessOverview handles GET /api/reports/overview?period=7d|30d|90d|12m.
func (h *Handler) GetBusinessOverview(c *gin.Context) {
	orgID, since, ok := h.window(c)
	if !ok {
		return
	}
	raw, err := h.store.BusinessData(c.Request.Context(), orgID, since)
	if err != nil {
		h.logger.Error("business overview", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, BuildBusinessOverview(*raw))
}

// GetUserActivity handles GET /api/reports/user-activity?period=...
func (h *Handler) GetUserActivity(c *gin.Context) {
	orgID, since, ok := h.window(c)
	if !ok {
		return
	}
	raw, err := h.store.ActivityData(c.Request.Context(), orgID, since)
	if err != nil {
		h.logger.Error("user activity report", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, BuildUserActivity(*raw))
}

// GetConversionFunnel handles GET /api/reports/conversion-funnel?period=...
// With sequential=true, step counts are progressively intersected so each
// stage only counts users who completed every stage before it.
func (h *Handler) GetConversionFunnel(c *gin.Context) {
	orgID, since, ok := h.window(c)
	if !ok {
		return
	}
	sequential := c.Query("sequential") == "true"
	counts, err := h.store.FunnelCounts(c.Request.Context(), orgID, since, FunnelSteps, sequential)
	if err != nil {
		h.logger.Error("conversion funnel", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"steps": BuildFunnel(FunnelSteps, counts)})
}

// window resolves the caller's tenant and the requested period. On an
// unknown period token it writes a 400 and reports !ok.
func (h *Handler) window(c *gin.Context) (uuid.UUID, time.Time, bool) {
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	since, err := period.Resolve(c.DefaultQuery("period", defaultPeriod), h.now())
	if err != nil {
		response.BadRequest(c, "Invalid period specified")
		return uuid.Nil, time.Time{}, false
	}
	return orgID, since, true
}
