package skill

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Skill là domain entity - một kỹ năng hiển thị trên trang chủ với progress bar
// Ordering: sort_order tăng dần, caller-assigned, ties broken by id
type Skill struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Percentage int    `db:"percentage" json:"percentage"`
	SortOrder  int    `db:"sort_order" json:"sort_order"`
}

// ErrNotFound - skill id không tồn tại
var ErrNotFound = errors.New("skill not found")

// DefaultPercentage áp dụng khi create request không gửi percentage
const DefaultPercentage = 80

// ========================================
// DTOs
// ========================================

// CreateRequest - percentage là pointer để phân biệt omitted với 0
type CreateRequest struct {
	Name       string `json:"name"`
	Percentage *int   `json:"percentage"`
	SortOrder  int    `json:"sort_order"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		// Store không enforce [0,100] - validate ở đây theo convention
		validation.Field(&r.Percentage, validation.Min(0), validation.Max(100)),
	)
}

// UpdateRequest - full overwrite của mọi mutable field
type UpdateRequest struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	SortOrder  int    `json:"sort_order"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Percentage, validation.Min(0), validation.Max(100)),
	)
}
