package offering

import "context"

// Service - business logic cho offering domain
type Service interface {
	List(ctx context.Context) ([]Offering, error)
	Create(ctx context.Context, req CreateRequest) (int64, error)
	Update(ctx context.Context, id int64, req UpdateRequest) error
	Delete(ctx context.Context, id int64) error
}
