package service

import (
	"context"

	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/shared/utils"
)

// blogService implement blog.Service interface
type blogService struct {
	repo blog.Repository
}

// NewBlogService tạo service instance
func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) ListSummaries(ctx context.Context, includeDrafts bool) ([]blog.Summary, error) {
	return s.repo.ListSummaries(ctx, includeDrafts)
}

func (s *blogService) ListAll(ctx context.Context) ([]blog.Post, error) {
	return s.repo.ListAll(ctx)
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return s.repo.FindPublishedBySlug(ctx, slug)
}

func (s *blogService) Create(ctx context.Context, req blog.CreateRequest) (int64, string, error) {
	if err := req.Validate(); err != nil {
		return 0, "", err
	}

	// Slug bỏ trống -> derive từ title
	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	entity := &blog.Post{
		Title:     req.Title,
		Slug:      slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
	id, err := s.repo.Create(ctx, entity)
	if err != nil {
		return 0, "", err
	}
	return id, slug, nil
}

func (s *blogService) Update(ctx context.Context, id int64, req blog.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	entity := &blog.Post{
		Title:     req.Title,
		Slug:      slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
	return s.repo.Update(ctx, id, entity)
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
