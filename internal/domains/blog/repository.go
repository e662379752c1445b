package blog

import "context"

// Repository - data access cho blogs table
type Repository interface {
	// ListSummaries trả về summaries mới nhất trước;
	// includeDrafts=false lọc published = 1
	ListSummaries(ctx context.Context, includeDrafts bool) ([]Summary, error)
	// ListAll trả về toàn bộ posts cho admin, mới nhất trước
	ListAll(ctx context.Context) ([]Post, error)
	// FindPublishedBySlug trả về ErrNotFound nếu slug không tồn tại HOẶC chưa publish
	FindPublishedBySlug(ctx context.Context, slug string) (*Post, error)

	// Create trả về ErrDuplicateSlug khi slug đã tồn tại
	Create(ctx context.Context, post *Post) (int64, error)
	// Update id không tồn tại: silent no-op. Slug trùng: ErrDuplicateSlug
	Update(ctx context.Context, id int64, post *Post) error
	// Delete idempotent
	Delete(ctx context.Context, id int64) error
}
