package service

import (
	"context"

	"portfolio-backend/internal/domains/skill"
)

// skillService implement skill.Service interface
type skillService struct {
	repo skill.Repository
}

// NewSkillService tạo service instance
func NewSkillService(repo skill.Repository) skill.Service {
	return &skillService{repo: repo}
}

func (s *skillService) List(ctx context.Context) ([]skill.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillService) Create(ctx context.Context, req skill.CreateRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	// Default cho optional field bị omit
	percentage := skill.DefaultPercentage
	if req.Percentage != nil {
		percentage = *req.Percentage
	}

	entity := &skill.Skill{
		Name:       req.Name,
		Percentage: percentage,
		SortOrder:  req.SortOrder,
	}
	return s.repo.Create(ctx, entity)
}

func (s *skillService) Update(ctx context.Context, id int64, req skill.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity := &skill.Skill{
		Name:       req.Name,
		Percentage: req.Percentage,
		SortOrder:  req.SortOrder,
	}
	return s.repo.Update(ctx, id, entity)
}

func (s *skillService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
