package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-backend/internal/domains/skill"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository tạo repository instance
func NewSQLiteRepository(db *sql.DB) skill.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) List(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, percentage, sort_order FROM skills ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []skill.Skill{}
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Percentage, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *sqliteRepository) Create(ctx context.Context, s *skill.Skill) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (name, percentage, sort_order) VALUES (?, ?, ?)`,
		s.Name, s.Percentage, s.SortOrder)
	if err != nil {
		return 0, fmt.Errorf("create skill: %w", err)
	}
	return res.LastInsertId()
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, s *skill.Skill) error {
	// Update id không tồn tại affect 0 rows - treated as success
	_, err := r.db.ExecContext(ctx,
		`UPDATE skills SET name = ?, percentage = ?, sort_order = ? WHERE id = ?`,
		s.Name, s.Percentage, s.SortOrder, id)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}
