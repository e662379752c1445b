package repository

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio-backend/internal/domains/portfolio"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository tạo repository instance
func NewSQLiteRepository(db *sql.DB) portfolio.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) List(ctx context.Context) ([]portfolio.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, COALESCE(description, ''), COALESCE(image_url, ''),
			COALESCE(category, ''), COALESCE(link, ''), sort_order, created_at
		FROM portfolio ORDER BY sort_order, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list portfolio: %w", err)
	}
	defer rows.Close()

	items := []portfolio.Item{}
	for rows.Next() {
		var it portfolio.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.ImageURL,
			&it.Category, &it.Link, &it.SortOrder, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan portfolio item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *sqliteRepository) Create(ctx context.Context, item *portfolio.Item) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO portfolio (title, description, image_url, category, link, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.Title, item.Description, item.ImageURL, item.Category, item.Link, item.SortOrder)
	if err != nil {
		return 0, fmt.Errorf("create portfolio item: %w", err)
	}
	return res.LastInsertId()
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, item *portfolio.Item) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE portfolio SET title = ?, description = ?, image_url = ?, category = ?, link = ?, sort_order = ?
		WHERE id = ?`,
		item.Title, item.Description, item.ImageURL, item.Category, item.Link, item.SortOrder, id)
	if err != nil {
		return fmt.Errorf("update portfolio item: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM portfolio WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete portfolio item: %w", err)
	}
	return nil
}
