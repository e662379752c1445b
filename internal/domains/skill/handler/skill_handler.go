package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// SkillHandler xử lý HTTP requests cho skill domain (admin CRUD)
type SkillHandler struct {
	service skill.Service
}

// NewSkillHandler tạo handler instance
func NewSkillHandler(service skill.Service) *SkillHandler {
	return &SkillHandler{service: service}
}

// List xử lý GET /api/admin/skills
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, skills)
}

// Create xử lý POST /api/admin/skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req skill.CreateRequest
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

// Update xử lý PUT /api/admin/skills/:id
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req skill.UpdateRequest
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

// Delete xử lý DELETE /api/admin/skills/:id - idempotent
func (h *SkillHandler) Delete(c *gin.Context) {
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

func (h *SkillHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, skill.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		logger.Error("skill handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
