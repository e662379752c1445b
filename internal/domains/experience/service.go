package experience

import "context"

// Service - business logic cho experience domain
type Service interface {
	// ListPublic bundle 2 lists {experiences, education} cho public read
	ListPublic(ctx context.Context) (*PublicResponse, error)

	// ListAdmin trả về flat list theo (type, sort_order)
	ListAdmin(ctx context.Context) ([]Experience, error)

	Create(ctx context.Context, req CreateRequest) (int64, error)
	Update(ctx context.Context, id int64, req UpdateRequest) error
	Delete(ctx context.Context, id int64) error
}
