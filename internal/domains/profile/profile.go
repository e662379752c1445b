package profile

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/offering"
	"portfolio-backend/internal/domains/skill"
)

// Profile là singleton entity (luôn id = 1) - thông tin chủ site
type Profile struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Tagline     string `db:"tagline" json:"tagline"`
	Bio         string `db:"bio" json:"bio"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone"`
	Location    string `db:"location" json:"location"`
	Quote       string `db:"quote" json:"quote"`
	QuoteAuthor string `db:"quote_author" json:"quote_author"`
	PhotoURL    string `db:"photo_url" json:"photo_url"`
	UpdatedAt   string `db:"updated_at" json:"updated_at"`
}

// SocialLink - một liên kết mạng xã hội hiển thị cùng profile
type SocialLink struct {
	ID       int64  `db:"id" json:"id"`
	Platform string `db:"platform" json:"platform"`
	URL      string `db:"url" json:"url"`
	Icon     string `db:"icon" json:"icon"`
}

// ProfileID là id cố định của singleton row
const ProfileID = 1

var ErrNotFound = errors.New("profile not found")

// PublicResponse bundle toàn bộ data cho landing page trong 1 round trip
type PublicResponse struct {
	Profile  *Profile            `json:"profile"`
	Skills   []skill.Skill       `json:"skills"`
	Services []offering.Offering `json:"services"`
	Social   []SocialLink        `json:"social"`
}

// ========================================
// DTOs
// ========================================

// UpdateRequest - full overwrite của profile singleton
type UpdateRequest struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Bio         string `json:"bio"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Quote       string `json:"quote"`
	QuoteAuthor string `json:"quote_author"`
	PhotoURL    string `json:"photo_url"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
	)
}

type SocialCreateRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

func (r SocialCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Platform, validation.Required.Error("platform is required")),
		validation.Field(&r.URL, validation.Required.Error("url is required")),
	)
}

type SocialUpdateRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

func (r SocialUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Platform, validation.Required.Error("platform is required")),
		validation.Field(&r.URL, validation.Required.Error("url is required")),
	)
}
