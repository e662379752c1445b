package profile

import "context"

// Repository - data access cho profile singleton và social_links
type Repository interface {
	// Get trả về profile row (id = 1), ErrNotFound nếu chưa seed
	Get(ctx context.Context) (*Profile, error)
	// Upsert ghi đè toàn bộ profile, set updated_at = CURRENT_TIMESTAMP
	Upsert(ctx context.Context, p *Profile) error

	ListSocial(ctx context.Context) ([]SocialLink, error)
	CreateSocial(ctx context.Context, link *SocialLink) (int64, error)
	UpdateSocial(ctx context.Context, id int64, link *SocialLink) error
	DeleteSocial(ctx context.Context, id int64) error
}
