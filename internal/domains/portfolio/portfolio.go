package portfolio

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Item là domain entity - một project trong portfolio showcase
// Ordering: (sort_order ASC, id DESC) - item mới cùng sort_order đứng trước
type Item struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	ImageURL    string `db:"image_url" json:"image_url"`
	Category    string `db:"category" json:"category"`
	Link        string `db:"link" json:"link"`
	SortOrder   int    `db:"sort_order" json:"sort_order"`
	CreatedAt   string `db:"created_at" json:"created_at"`
}

var ErrNotFound = errors.New("portfolio item not found")

// ========================================
// DTOs
// ========================================

type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Link        string `json:"link"`
	SortOrder   int    `json:"sort_order"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}

type UpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Link        string `json:"link"`
	SortOrder   int    `json:"sort_order"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}
