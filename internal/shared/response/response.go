package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response shapes theo đúng contract của frontend:
// thành công trả payload phẳng, lỗi luôn là {"error": "..."}

// OK trả về acknowledgement đơn giản cho mutation
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// OKWithMessage trả về acknowledgement kèm human-readable message
func OKWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": message})
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func PayloadTooLarge(c *gin.Context, message string) {
	Error(c, http.StatusRequestEntityTooLarge, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
