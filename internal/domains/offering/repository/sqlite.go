package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-backend/internal/domains/offering"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository tạo repository instance
func NewSQLiteRepository(db *sql.DB) offering.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) List(ctx context.Context) ([]offering.Offering, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, COALESCE(icon, ''), title, COALESCE(description, ''), sort_order
		 FROM services ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	offerings := []offering.Offering{}
	for rows.Next() {
		var o offering.Offering
		if err := rows.Scan(&o.ID, &o.Icon, &o.Title, &o.Description, &o.SortOrder); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		offerings = append(offerings, o)
	}
	return offerings, rows.Err()
}

func (r *sqliteRepository) Create(ctx context.Context, o *offering.Offering) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO services (icon, title, description, sort_order) VALUES (?, ?, ?, ?)`,
		o.Icon, o.Title, o.Description, o.SortOrder)
	if err != nil {
		return 0, fmt.Errorf("create service: %w", err)
	}
	return res.LastInsertId()
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, o *offering.Offering) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE services SET icon = ?, title = ?, description = ?, sort_order = ? WHERE id = ?`,
		o.Icon, o.Title, o.Description, o.SortOrder, id)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
