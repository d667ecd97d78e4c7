package handler

import (
	"net/http"
	"strconv"
	"time"

	"streetcats-backend/internal/domains/activitylog"
	"streetcats-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActivityLogHandler struct {
	service activitylog.Service
}

func NewActivityLogHandler(svc activitylog.Service) *ActivityLogHandler {
	return &ActivityLogHandler{service: svc}
}

// feedEntry decorates a joined log with the display fields the feed
// renders directly: Indonesian type label, icon, relative timestamp.
type feedEntry struct {
	activitylog.LogWithCat
	TypeLabel    string `json:"type_label"`
	TypeIcon     string `json:"type_icon"`
	RelativeTime string `json:"relative_time"`
}

// ListForCat handles GET /cats/:id/activities
func (h *ActivityLogHandler) ListForCat(c *gin.Context) {
	catID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cat ID")
		return
	}

	logs := h.service.FetchForCat(c.Request.Context(), catID)
	response.Success(c, http.StatusOK, logs)
}

// ListRecent handles GET /activities?limit=
func (h *ActivityLogHandler) ListRecent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries := h.service.FetchRecent(c.Request.Context(), limit)

	now := time.Now()
	feed := make([]feedEntry, 0, len(entries))
	for _, e := range entries {
		feed = append(feed, feedEntry{
			LogWithCat:   e,
			TypeLabel:    activitylog.TypeLabel(e.ActivityType),
			TypeIcon:     activitylog.TypeIcon(e.ActivityType),
			RelativeTime: activitylog.FormatRelativeTime(e.CreatedAt, now),
		})
	}

	response.Success(c, http.StatusOK, feed)
}

// Create handles POST /cats/:id/activities
func (h *ActivityLogHandler) Create(c *gin.Context) {
	catID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cat ID")
		return
	}

	var req activitylog.AddLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	req.CatID = catID

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created := h.service.Add(c.Request.Context(), &req)
	if created == nil {
		response.InternalServerError(c, "Failed to record activity")
		return
	}

	response.Success(c, http.StatusCreated, created)
}
