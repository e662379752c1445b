package service

import (
	"context"
	"fmt"

	"portfolio-backend/internal/domains/experience"
)

// experienceService implement experience.Service interface
type experienceService struct {
	repo experience.Repository
}

// NewExperienceService tạo service instance
func NewExperienceService(repo experience.Repository) experience.Service {
	return &experienceService{repo: repo}
}

func (s *experienceService) ListPublic(ctx context.Context) (*experience.PublicResponse, error) {
	experiences, err := s.repo.ListByType(ctx, experience.TypeExperience)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	education, err := s.repo.ListByType(ctx, experience.TypeEducation)
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}

	return &experience.PublicResponse{
		Experiences: experiences,
		Education:   education,
	}, nil
}

func (s *experienceService) ListAdmin(ctx context.Context) ([]experience.Experience, error) {
	return s.repo.ListAll(ctx)
}

func (s *experienceService) Create(ctx context.Context, req experience.CreateRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	// Type omit → default "experience"
	typ := req.Type
	if typ == "" {
		typ = experience.TypeExperience
	}

	entity := &experience.Experience{
		YearRange:   req.YearRange,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Type:        typ,
		SortOrder:   req.SortOrder,
	}
	return s.repo.Create(ctx, entity)
}

func (s *experienceService) Update(ctx context.Context, id int64, req experience.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := &experience.Experience{
		YearRange:   req.YearRange,
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Type:        req.Type,
		SortOrder:   req.SortOrder,
	}
	return s.repo.Update(ctx, id, entity)
}

func (s *experienceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
