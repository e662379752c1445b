package profile

import "context"

// Service - business logic cho profile domain
// GetPublic aggregate profile + skills + services + social cho landing page
type Service interface {
	GetPublic(ctx context.Context) (*PublicResponse, error)
	Update(ctx context.Context, req UpdateRequest) error

	ListSocial(ctx context.Context) ([]SocialLink, error)
	CreateSocial(ctx context.Context, req SocialCreateRequest) (int64, error)
	UpdateSocial(ctx context.Context, id int64, req SocialUpdateRequest) error
	DeleteSocial(ctx context.Context, id int64) error
}
