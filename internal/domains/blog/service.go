package blog

import "context"

// Service - business logic cho blog domain
type Service interface {
	ListSummaries(ctx context.Context, includeDrafts bool) ([]Summary, error)
	ListAll(ctx context.Context) ([]Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Post, error)
	// Create trả về id và slug cuối cùng (derived nếu request bỏ trống)
	Create(ctx context.Context, req CreateRequest) (int64, string, error)
	Update(ctx context.Context, id int64, req UpdateRequest) error
	Delete(ctx context.Context, id int64) error
}
