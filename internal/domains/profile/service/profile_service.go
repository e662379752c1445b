package service

import (
	"context"

	"portfolio-backend/internal/domains/offering"
	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/domains/skill"
)

// profileService aggregate profile + skills + services + social
// Phụ thuộc service của skill/offering thay vì query chéo bảng
type profileService struct {
	repo      profile.Repository
	skills    skill.Service
	offerings offering.Service
}

// NewProfileService tạo service instance
func NewProfileService(repo profile.Repository, skills skill.Service, offerings offering.Service) profile.Service {
	return &profileService{repo: repo, skills: skills, offerings: offerings}
}

// GetPublic trả về bundle cho GET /api/profile - 1 round trip cho landing page
func (s *profileService) GetPublic(ctx context.Context) (*profile.PublicResponse, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	sk, err := s.skills.List(ctx)
	if err != nil {
		return nil, err
	}

	sv, err := s.offerings.List(ctx)
	if err != nil {
		return nil, err
	}

	social, err := s.repo.ListSocial(ctx)
	if err != nil {
		return nil, err
	}

	return &profile.PublicResponse{
		Profile:  p,
		Skills:   sk,
		Services: sv,
		Social:   social,
	}, nil
}

func (s *profileService) Update(ctx context.Context, req profile.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := &profile.Profile{
		Name:        req.Name,
		Tagline:     req.Tagline,
		Bio:         req.Bio,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Quote:       req.Quote,
		QuoteAuthor: req.QuoteAuthor,
		PhotoURL:    req.PhotoURL,
	}
	return s.repo.Upsert(ctx, entity)
}

func (s *profileService) ListSocial(ctx context.Context) ([]profile.SocialLink, error) {
	return s.repo.ListSocial(ctx)
}

func (s *profileService) CreateSocial(ctx context.Context, req profile.SocialCreateRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	link := &profile.SocialLink{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
	}
	return s.repo.CreateSocial(ctx, link)
}

func (s *profileService) UpdateSocial(ctx context.Context, id int64, req profile.SocialUpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	link := &profile.SocialLink{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
	}
	return s.repo.UpdateSocial(ctx, id, link)
}

func (s *profileService) DeleteSocial(ctx context.Context, id int64) error {
	return s.repo.DeleteSocial(ctx, id)
}
