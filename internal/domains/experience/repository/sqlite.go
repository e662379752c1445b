package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-backend/internal/domains/experience"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository tạo repository instance
func NewSQLiteRepository(db *sql.DB) experience.Repository {
	return &sqliteRepository{db: db}
}

const selectColumns = `id, COALESCE(year_range, ''), title, COALESCE(company, ''),
	COALESCE(description, ''), type, sort_order`

func (r *sqliteRepository) ListByType(ctx context.Context, typ string) ([]experience.Experience, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM experiences WHERE type = ? ORDER BY sort_order`, typ)
	if err != nil {
		return nil, fmt.Errorf("list experiences by type: %w", err)
	}
	defer rows.Close()
	return scanExperiences(rows)
}

func (r *sqliteRepository) ListAll(ctx context.Context) ([]experience.Experience, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM experiences ORDER BY type, sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()
	return scanExperiences(rows)
}

func (r *sqliteRepository) Create(ctx context.Context, e *experience.Experience) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO experiences (year_range, title, company, description, type, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.YearRange, e.Title, e.Company, e.Description, e.Type, e.SortOrder)
	if err != nil {
		return 0, fmt.Errorf("create experience: %w", err)
	}
	return res.LastInsertId()
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, e *experience.Experience) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE experiences SET year_range = ?, title = ?, company = ?, description = ?, type = ?, sort_order = ?
		 WHERE id = ?`,
		e.YearRange, e.Title, e.Company, e.Description, e.Type, e.SortOrder, id)
	if err != nil {
		return fmt.Errorf("update experience: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}

func scanExperiences(rows *sql.Rows) ([]experience.Experience, error) {
	entries := []experience.Experience{}
	for rows.Next() {
		var e experience.Experience
		if err := rows.Scan(&e.ID, &e.YearRange, &e.Title, &e.Company, &e.Description, &e.Type, &e.SortOrder); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
