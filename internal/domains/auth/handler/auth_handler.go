package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// AuthHandler xử lý HTTP requests cho auth domain
// Struct này là stateless - chỉ chứa dependencies
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler tạo handler instance
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Setup xử lý POST /api/auth/setup
// First-run only: fail khi admin đã tồn tại
func (h *AuthHandler) Setup(c *gin.Context) {
	var req auth.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Required fields missing")
		return
	}

	if err := h.service.Setup(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.OKWithMessage(c, "Admin account created")
}

// Login xử lý POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Required fields missing")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(200, resp)
}

// ChangePassword xử lý POST /api/auth/change-password (auth required)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req auth.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Required fields missing")
		return
	}

	// Identity đã được auth middleware gắn vào context
	adminID := c.GetInt64(middleware.ContextUserID)

	if err := h.service.ChangePassword(c.Request.Context(), adminID, req); err != nil {
		// Change-password mismatch là 400 (không phải 401):
		// caller đã authenticated, chỉ nhập sai current password
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.BadRequest(c, "Current password wrong")
			return
		}
		h.handleError(c, err)
		return
	}

	response.OK(c)
}

// Reset xử lý POST /api/auth/reset
// KHÔNG cần auth - recovery path, xem deployment notes
func (h *AuthHandler) Reset(c *gin.Context) {
	var req auth.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Required fields missing")
		return
	}

	if err := h.service.Reset(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.OKWithMessage(c, "Admin credentials reset successfully")
}

// handleError map domain errors thành HTTP status codes
func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrAlreadyConfigured):
		response.BadRequest(c, "Admin already configured. Use /api/auth/reset.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid credentials")
	default:
		// Validation errors từ ozzo trả về message cụ thể
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("auth handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
