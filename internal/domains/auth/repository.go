package auth

import "context"

// Repository - data access cho credential row duy nhất
type Repository interface {
	// Exists kiểm tra đã có credential row chưa
	Exists(ctx context.Context) (bool, error)

	// FindByUsername trả về ErrNotConfigured nếu không có row match
	FindByUsername(ctx context.Context, username string) (*Admin, error)

	// FindByID trả về ErrNotConfigured nếu row không tồn tại
	FindByID(ctx context.Context, id int64) (*Admin, error)

	// Create insert credential row với id=1
	Create(ctx context.Context, username, passwordHash string) error

	// UpdatePassword rotate password hash của row id
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// Upsert overwrite row id=1 nếu có, tạo mới nếu chưa (recovery path)
	Upsert(ctx context.Context, username, passwordHash string) error
}
