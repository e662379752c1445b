package service

import (
	"context"

	"portfolio-backend/internal/domains/offering"
)

// offeringService implement offering.Service interface
type offeringService struct {
	repo offering.Repository
}

// NewOfferingService tạo service instance
func NewOfferingService(repo offering.Repository) offering.Service {
	return &offeringService{repo: repo}
}

func (s *offeringService) List(ctx context.Context) ([]offering.Offering, error) {
	return s.repo.List(ctx)
}

func (s *offeringService) Create(ctx context.Context, req offering.CreateRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	entity := &offering.Offering{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	return s.repo.Create(ctx, entity)
}

func (s *offeringService) Update(ctx context.Context, id int64, req offering.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := &offering.Offering{
		Icon:        req.Icon,
		Title:       req.Title,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	return s.repo.Update(ctx, id, entity)
}

func (s *offeringService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
