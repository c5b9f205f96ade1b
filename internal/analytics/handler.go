package analytics

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abhiwarkar/Intellica/internal/auth"
	"github.com/Abhiwarkar/Intellica/internal/models"
	"github.com/Abhiwarkar/Intellica/internal/period"
	"github.com/Abhiwarkar/Intellica/pkg/response"
)

// EventStore is the persistence surface the analytics handlers need.
type EventStore interface {
	Insert(ctx context.Context, e *models.Event) error
	List(ctx context.Context, f EventFilter) ([]models.Event, int, error)
	Overview(ctx context.Context, orgID uuid.UUID, now time.Time) (*Overview, error)
	UniqueUsers(ctx context.Context, orgID uuid.UUID, since time.Time) (int, error)
	BulkInsert(ctx context.Context, events []models.Event) (int64, error)
}

// Handler handles event ingestion and analytics HTTP endpoints.
type Handler struct {
	store  EventStore
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates an analytics handler.
func NewHandler(store EventStore, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger, now: time.Now}
}

// TrackEventRequest is the body for POST /api/analytics/events. There is no
// organization field: the tenant always comes from the caller's session.
type TrackEventRequest struct {
	Name       string         `json:"name" binding:"required"`
	UserID     *string        `json:"userId"`
	SessionID  *string        `json:"sessionId"`
	Properties map[string]any `json:"properties"`
	Metadata   map[string]any `json:"metadata"`
	Timestamp  *time.Time     `json:"timestamp"`
}

// TrackEvent handles POST /api/analytics/events.
func (h *Handler) TrackEvent(c *gin.Context) {
	var req TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please add an event name")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		response.BadRequest(c, "Please add an event name")
		return
	}
	if len(req.Name) > models.MaxEventNameLength {
		response.BadRequest(c, "Event name cannot be more than 100 characters")
		return
	}

	event := &models.Event{
		Name:           req.Name,
		OrganizationID: c.MustGet(auth.ContextOrgID).(uuid.UUID),
		UserID:         req.UserID,
		SessionID:      req.SessionID,
		Properties:     req.Properties,
		Metadata:       req.Metadata,
		Timestamp:      h.now(),
	}
	if req.Timestamp != nil {
		event.Timestamp = *req.Timestamp
	}
	if event.Properties == nil {
		event.Properties = map[string]any{}
	}
	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	if err := h.store.Insert(c.Request.Context(), event); err != nil {
		h.logger.Error("insert event", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// ListEvents handles GET /api/analytics/events with optional name, startDate,
// endDate, userId filters and offset pagination.
func (h *Handler) ListEvents(c *gin.Context) {
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)

	var start, end *time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := parseTimeParam(v)
		if err != nil {
			response.BadRequest(c, "invalid startDate")
			return
		}
		start = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseTimeParam(v)
		if err != nil {
			response.BadRequest(c, "invalid endDate")
			return
		}
		end = &t
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	filter := NewEventFilter(orgID, c.Query("name"), c.Query("userId"), start, end, page, limit)

	events, total, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("list events", zap.Error(err))
		response.Error(c, err)
		return
	}

	response.OKPage(c, len(events), response.Pagination{
		Total: total,
		Page:  filter.Page,
		Pages: filter.Pages(total),
	}, events)
}

// GetOverview handles GET /api/analytics/overview. The windows are fixed
// (today / trailing week / trailing month), so no period parameter is read.
func (h *Handler) GetOverview(c *gin.Context) {
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	overview, err := h.store.Overview(c.Request.Context(), orgID, h.now())
	if err != nil {
		h.logger.Error("overview", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, overview)
}

// GetUserMetrics handles GET /api/analytics/users?period=day|week|month|year.
func (h *Handler) GetUserMetrics(c *gin.Context) {
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	since, err := period.Resolve(c.DefaultQuery("period", "week"), h.now())
	if err != nil {
		response.BadRequest(c, "Invalid period specified")
		return
	}
	n, err := h.store.UniqueUsers(c.Request.Context(), orgID, since)
	if err != nil {
		h.logger.Error("user metrics", zap.Error(err))
		response.Error(c, err)
		return
	}
	response.OK(c, UserMetrics{TotalUniqueUsers: n})
}

// GenerateSampleData handles POST /api/analytics/generate-sample-data.
// Seeds the trailing 30 days with synthetic events for demos and testing.
func (h *Handler) GenerateSampleData(c *gin.Context) {
	orgID := c.MustGet(auth.ContextOrgID).(uuid.UUID)
	now := h.now()

	events := GenerateSampleEvents(orgID, now, rand.New(rand.NewSource(now.UnixNano())))
	inserted, err := h.store.BulkInsert(c.Request.Context(), events)
	if err != nil {
		h.logger.Error("bulk insert sample events", zap.Error(err))
		response.Error(c, err)
		return
	}

	response.CreatedMessage(c, "Generated "+strconv.FormatInt(inserted, 10)+" sample events", gin.H{
		"eventsGenerated": inserted,
		"dateRange": gin.H{
			"from": now.AddDate(0, 0, -SampleDataDays),
			"to":   now,
		},
	})
}

// parseTimeParam accepts RFC 3339 timestamps or bare dates (2006-01-02).
func parseTimeParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
