package blog

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post là domain entity - một bài viết trên blog
// Slug UNIQUE toàn bảng, dùng làm public identifier thay cho id
type Post struct {
	ID        int64  `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Slug      string `db:"slug" json:"slug"`
	Excerpt   string `db:"excerpt" json:"excerpt"`
	Content   string `db:"content" json:"content"`
	CoverURL  string `db:"cover_url" json:"cover_url"`
	Published bool   `db:"published" json:"published"`
	CreatedAt string `db:"created_at" json:"created_at"`
	UpdatedAt string `db:"updated_at" json:"updated_at"`
}

// Summary là listing view cho public - không có content để giảm payload
type Summary struct {
	ID        int64  `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Slug      string `db:"slug" json:"slug"`
	Excerpt   string `db:"excerpt" json:"excerpt"`
	CoverURL  string `db:"cover_url" json:"cover_url"`
	Published bool   `db:"published" json:"published"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// Sentinel errors
var (
	ErrNotFound      = errors.New("blog post not found")
	ErrDuplicateSlug = errors.New("slug already exists")
)

// ========================================
// DTOs
// ========================================

type CreateRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}

type UpdateRequest struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	CoverURL  string `json:"cover_url"`
	Published bool   `json:"published"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}
