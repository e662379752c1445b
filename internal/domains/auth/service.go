package auth

import "context"

// Service - business logic cho single-admin authentication
type Service interface {
	// Setup tạo admin account, chỉ thành công khi chưa có credential row
	Setup(ctx context.Context, req SetupRequest) error

	// Login verify credentials và issue bearer token
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// ChangePassword re-verify current password rồi rotate hash
	ChangePassword(ctx context.Context, adminID int64, req ChangePasswordRequest) error

	// Reset overwrite credential vô điều kiện (không cần prior auth)
	Reset(ctx context.Context, req ResetRequest) error

	// Configured cho biết admin account đã được tạo chưa
	Configured(ctx context.Context) (bool, error)
}
