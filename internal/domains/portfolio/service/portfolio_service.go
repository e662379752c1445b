package service

import (
	"context"

	"portfolio-backend/internal/domains/portfolio"
)

// portfolioService implement portfolio.Service interface
type portfolioService struct {
	repo portfolio.Repository
}

// NewPortfolioService tạo service instance
func NewPortfolioService(repo portfolio.Repository) portfolio.Service {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) List(ctx context.Context) ([]portfolio.Item, error) {
	return s.repo.List(ctx)
}

func (s *portfolioService) Create(ctx context.Context, req portfolio.CreateRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	entity := &portfolio.Item{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Link:        req.Link,
		SortOrder:   req.SortOrder,
	}
	return s.repo.Create(ctx, entity)
}

func (s *portfolioService) Update(ctx context.Context, id int64, req portfolio.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := &portfolio.Item{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Link:        req.Link,
		SortOrder:   req.SortOrder,
	}
	return s.repo.Update(ctx, id, entity)
}

func (s *portfolioService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
