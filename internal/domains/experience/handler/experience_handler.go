package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/experience"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ExperienceHandler xử lý HTTP requests cho experience domain
type ExperienceHandler struct {
	service experience.Service
}

// NewExperienceHandler tạo handler instance
func NewExperienceHandler(service experience.Service) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

// ListPublic xử lý GET /api/experiences (public)
// Response tách 2 lists: {"experiences": [...], "education": [...]}
func (h *ExperienceHandler) ListPublic(c *gin.Context) {
	resp, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, resp)
}

// ListAdmin xử lý GET /api/admin/experiences
func (h *ExperienceHandler) ListAdmin(c *gin.Context) {
	entries, err := h.service.ListAdmin(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, entries)
}

// Create xử lý POST /api/admin/experiences
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req experience.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(200, gin.H{"id": id})
}

// Update xử lý PUT /api/admin/experiences/:id
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req experience.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c)
}

// Delete xử lý DELETE /api/admin/experiences/:id - idempotent
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c)
}

func (h *ExperienceHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, experience.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		logger.Error("experience handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
