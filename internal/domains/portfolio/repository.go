package portfolio

import "context"

// Repository - data access cho portfolio table
type Repository interface {
	// List trả về items theo (sort_order ASC, id DESC)
	List(ctx context.Context) ([]Item, error)

	Create(ctx context.Context, item *Item) (int64, error)
	// Update id không tồn tại: silent no-op
	Update(ctx context.Context, id int64, item *Item) error
	// Delete idempotent
	Delete(ctx context.Context, id int64) error
}
