package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

// BlogHandler xử lý HTTP requests cho blog domain
type BlogHandler struct {
	service blog.Service
}

// NewBlogHandler tạo handler instance
func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// ListPublic xử lý GET /api/blogs - summaries không có content
// Mặc định chỉ bài đã publish; ?all=true trả cả drafts (dashboard listing)
func (h *BlogHandler) ListPublic(c *gin.Context) {
	includeDrafts := c.Query("all") != ""
	posts, err := h.service.ListSummaries(c.Request.Context(), includeDrafts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, posts)
}

// GetBySlug xử lý GET /api/blogs/:slug
// Bài chưa publish trả 404 y như không tồn tại - không leak draft
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, post)
}

// ListAdmin xử lý GET /api/admin/blogs - toàn bộ posts kể cả draft
func (h *BlogHandler) ListAdmin(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(200, posts)
}

// Create xử lý POST /api/admin/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	id, slug, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Trả lại slug cuối cùng để dashboard biết URL của bài mới
	c.JSON(200, gin.H{"id": id, "slug": slug})
}

// Update xử lý PUT /api/admin/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return
	}

	var req blog.UpdateRequest
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

// Delete xử lý DELETE /api/admin/blogs/:id - idempotent
func (h *BlogHandler) Delete(c *gin.Context) {
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

func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, blog.ErrDuplicateSlug):
		response.BadRequest(c, "Slug already exists")
	case errors.Is(err, blog.ErrNotFound):
		response.NotFound(c, "Not found")
	default:
		logger.Error("blog handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
