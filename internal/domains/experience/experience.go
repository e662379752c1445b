package experience

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Experience là domain entity - một mục kinh nghiệm làm việc hoặc học vấn
// Type là closed tag phân biệt 2 loại, không phải bảng riêng
type Experience struct {
	ID          int64  `db:"id" json:"id"`
	YearRange   string `db:"year_range" json:"year_range"`
	Title       string `db:"title" json:"title"`
	Company     string `db:"company" json:"company"`
	Description string `db:"description" json:"description"`
	Type        string `db:"type" json:"type"`
	SortOrder   int    `db:"sort_order" json:"sort_order"`
}

// Type values - ĐÚNG 2 loại
const (
	TypeExperience = "experience"
	TypeEducation  = "education"
)

var ErrNotFound = errors.New("experience not found")

// ========================================
// DTOs
// ========================================

type CreateRequest struct {
	YearRange   string `json:"year_range"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Type        string `json:"type"`
	SortOrder   int    `json:"sort_order"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Type, validation.In(TypeExperience, TypeEducation).Error("type must be experience or education")),
	)
}

type UpdateRequest struct {
	YearRange   string `json:"year_range"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Type        string `json:"type"`
	SortOrder   int    `json:"sort_order"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeExperience, TypeEducation).Error("type must be experience or education")),
	)
}

// PublicResponse - public read tách thành 2 ordered lists
type PublicResponse struct {
	Experiences []Experience `json:"experiences"`
	Education   []Experience `json:"education"`
}
