package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// PortfolioHandler xử lý HTTP requests cho portfolio domain
type PortfolioHandler struct {
	service portfolio.Service
}

// NewPortfolioHandler tạo handler instance
func NewPortfolioHandler(service portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// List xử lý GET /api/portfolio (public) và GET /api/admin/portfolio
// Cùng một ordered list cho cả 2 view
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, items)
}

// Create xử lý POST /api/admin/portfolio
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req portfolio.CreateRequest
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

// Update xử lý PUT /api/admin/portfolio/:id
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req portfolio.UpdateRequest
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

// Delete xử lý DELETE /api/admin/portfolio/:id - idempotent
func (h *PortfolioHandler) Delete(c *gin.Context) {
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

func (h *PortfolioHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, portfolio.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		logger.Error("portfolio handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
