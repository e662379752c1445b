package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// AUTH DTOs
// ========================================

// SetupRequest - first-run creation của admin account
type SetupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r SetupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginRequest - admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse - bearer token + identity
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ChangePasswordRequest - admin tự đổi password (auth required)
// JSON keys camelCase theo contract của dashboard
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required),
	)
}

// ResetRequest - recovery escape hatch, overwrite credential vô điều kiện
type ResetRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r ResetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}
