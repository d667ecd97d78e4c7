package handler

import (
	"net/http"
	"strings"

	"streetcats-backend/internal/domains/cat"
	"streetcats-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatHandler struct {
	service cat.Service
}

func NewCatHandler(svc cat.Service) *CatHandler {
	return &CatHandler{service: svc}
}

// List handles GET /cats?filter=semua|sehat|sakit|butuh-perhatian
// Refreshes the store and returns the derived filtered view.
func (h *CatHandler) List(c *gin.Context) {
	if f := c.Query("filter"); f != "" {
		filter := cat.FilterStatus(f)
		if !filter.IsValid() {
			response.BadRequest(c, cat.ErrInvalidFilter.Error())
			return
		}
		h.service.Store().SetFilter(filter)
	}

	h.service.FetchCats(c.Request.Context())

	// FetchCats clears the error state up front, so a message here means
	// this fetch failed.
	if msg := h.service.Store().Err(); msg != "" {
		response.InternalServerError(c, msg)
		return
	}

	response.Success(c, http.StatusOK, h.service.Store().Filtered())
}

// GetByID handles GET /cats/:id
func (h *CatHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	found := h.service.GetCatByID(c.Request.Context(), id)
	if found == nil {
		response.NotFound(c, "Cat not found")
		return
	}

	response.Success(c, http.StatusOK, found)
}

// Create handles POST /cats
func (h *CatHandler) Create(c *gin.Context) {
	var req cat.CreateCatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created := h.service.AddCat(c.Request.Context(), &req)
	if created == nil {
		response.InternalServerError(c, h.service.Store().Err())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /cats/:id — the regular (non-privileged) update path.
func (h *CatHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var changes cat.Changes
	if err := c.ShouldBindJSON(&changes); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := changes.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated := h.service.UpdateCat(c.Request.Context(), id, &changes)
	if updated == nil {
		response.InternalServerError(c, h.service.Store().Err())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// AdminPatch handles PATCH /cats/:id behind the admin boundary.
// Merges the partial body with a fresh updated_at and returns the record.
func (h *CatHandler) AdminPatch(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var changes cat.Changes
	if err := c.ShouldBindJSON(&changes); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := changes.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated := h.service.UpdateCat(c.Request.Context(), id, &changes)
	if updated == nil {
		// The backend's message travels out as the body; this handler is
		// the last point before leaving the process.
		response.InternalServerError(c, h.service.Store().Err())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// AdminDelete handles DELETE /cats/:id behind the admin boundary.
// Soft delete only: is_active flips to false, the row stays.
func (h *CatHandler) AdminDelete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if !h.service.DeleteCat(c.Request.Context(), id) {
		response.InternalServerError(c, h.service.Store().Err())
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Cat deleted successfully")
}

func (h *CatHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	idStr := strings.TrimSpace(c.Param("id"))
	if idStr == "" {
		response.BadRequest(c, "Cat ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		response.BadRequest(c, "Invalid cat ID")
		return uuid.Nil, false
	}
	return id, true
}
