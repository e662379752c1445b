package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/offering"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// OfferingHandler xử lý HTTP requests cho services resource (admin CRUD)
type OfferingHandler struct {
	service offering.Service
}

// NewOfferingHandler tạo handler instance
func NewOfferingHandler(service offering.Service) *OfferingHandler {
	return &OfferingHandler{service: service}
}

// List xử lý GET /api/admin/services
func (h *OfferingHandler) List(c *gin.Context) {
	offerings, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, offerings)
}

// Create xử lý POST /api/admin/services
func (h *OfferingHandler) Create(c *gin.Context) {
	var req offering.CreateRequest
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

// Update xử lý PUT /api/admin/services/:id
func (h *OfferingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req offering.UpdateRequest
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

// Delete xử lý DELETE /api/admin/services/:id - idempotent
func (h *OfferingHandler) Delete(c *gin.Context) {
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

func (h *OfferingHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, offering.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		logger.Error("service handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
