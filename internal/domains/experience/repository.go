package experience

import "context"

// Repository - data access cho experiences table
type Repository interface {
	// ListByType trả về entries của 1 type theo sort_order
	ListByType(ctx context.Context, typ string) ([]Experience, error)

	// ListAll trả về toàn bộ entries theo (type, sort_order) cho admin view
	ListAll(ctx context.Context) ([]Experience, error)

	Create(ctx context.Context, e *Experience) (int64, error)
	// Update id không tồn tại: silent no-op
	Update(ctx context.Context, id int64, e *Experience) error
	// Delete idempotent
	Delete(ctx context.Context, id int64) error
}
