package skill

import "context"

// Repository - data access cho skills table
type Repository interface {
	// List trả về skills theo sort_order tăng dần; empty slice không phải lỗi
	List(ctx context.Context) ([]Skill, error)

	// Create insert skill mới và trả về id được gán
	Create(ctx context.Context, s *Skill) (int64, error)

	// Update overwrite toàn bộ mutable fields
	// Id không tồn tại: silent no-op, không phải lỗi
	Update(ctx context.Context, id int64, s *Skill) error

	// Delete idempotent - xóa id không tồn tại không phải lỗi
	Delete(ctx context.Context, id int64) error
}
