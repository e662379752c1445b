// Package offering quản lý các service/dịch vụ hiển thị trên trang chủ.
// Tên package là "offering" để tránh đụng tên với service layer;
// table và API path vẫn là "services".
package offering

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Offering là domain entity - ánh xạ với bảng services
type Offering struct {
	ID          int64  `db:"id" json:"id"`
	Icon        string `db:"icon" json:"icon"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	SortOrder   int    `db:"sort_order" json:"sort_order"`
}

var ErrNotFound = errors.New("service not found")

// ========================================
// DTOs
// ========================================

type CreateRequest struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}

type UpdateRequest struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
	)
}
