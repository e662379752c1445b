package skill

import "context"

// Service - business logic cho skill domain
type Service interface {
	List(ctx context.Context) ([]Skill, error)
	Create(ctx context.Context, req CreateRequest) (int64, error)
	Update(ctx context.Context, id int64, req UpdateRequest) error
	Delete(ctx context.Context, id int64) error
}
