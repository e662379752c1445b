package auth

import "errors"

var (
	// ErrAlreadyConfigured - setup gọi khi credential row đã tồn tại
	ErrAlreadyConfigured = errors.New("admin already configured")

	// ErrInvalidCredentials - login/change-password mismatch
	// Một message duy nhất: không phân biệt "user absent" với "password wrong"
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotConfigured - chưa có credential row nào
	ErrNotConfigured = errors.New("admin not configured")
)
