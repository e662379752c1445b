package handler

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// UploadHandler xử lý POST /api/upload (auth required)
// Nhận multipart field "file", trả về public URL dưới /uploads/
type UploadHandler struct {
	storage  *storage.LocalStorage
	maxBytes int64
}

// NewUploadHandler tạo handler instance
func NewUploadHandler(st *storage.LocalStorage, maxBytes int64) *UploadHandler {
	return &UploadHandler{storage: st, maxBytes: maxBytes}
}

// Upload xử lý POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file")
		return
	}

	// Reject trước khi ghi disk - không để lại partial file
	if fileHeader.Size > h.maxBytes {
		response.PayloadTooLarge(c, "File too large")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("upload open failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	defer src.Close()

	name := h.storage.GenerateName(fileHeader.Filename)
	if _, err := h.storage.Save(name, src); err != nil {
		logger.Error("upload save failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	c.JSON(200, gin.H{"url": "/uploads/" + name})
}
