package offering

import "context"

// Repository - data access cho services table
type Repository interface {
	List(ctx context.Context) ([]Offering, error)
	Create(ctx context.Context, o *Offering) (int64, error)
	// Update id không tồn tại: silent no-op
	Update(ctx context.Context, id int64, o *Offering) error
	// Delete idempotent
	Delete(ctx context.Context, id int64) error
}
