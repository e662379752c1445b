package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// ProfileHandler xử lý HTTP requests cho profile + social links
type ProfileHandler struct {
	service profile.Service
}

// NewProfileHandler tạo handler instance
func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetPublic xử lý GET /api/profile
// Response gom profile + skills + services + social cho landing page
func (h *ProfileHandler) GetPublic(c *gin.Context) {
	bundle, err := h.service.GetPublic(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, bundle)
}

// Update xử lý PUT /api/admin/profile - full overwrite singleton
func (h *ProfileHandler) Update(c *gin.Context) {
	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c)
}

// ListSocial xử lý GET /api/admin/social
func (h *ProfileHandler) ListSocial(c *gin.Context) {
	links, err := h.service.ListSocial(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, links)
}

// CreateSocial xử lý POST /api/admin/social
func (h *ProfileHandler) CreateSocial(c *gin.Context) {
	var req profile.SocialCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, err := h.service.CreateSocial(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(200, gin.H{"id": id})
}

// UpdateSocial xử lý PUT /api/admin/social/:id
func (h *ProfileHandler) UpdateSocial(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req profile.SocialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateSocial(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c)
}

// DeleteSocial xử lý DELETE /api/admin/social/:id - idempotent
func (h *ProfileHandler) DeleteSocial(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	if err := h.service.DeleteSocial(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c)
}

func (h *ProfileHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, profile.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		logger.Error("profile handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
