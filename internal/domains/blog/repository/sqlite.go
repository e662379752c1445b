package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"portfolio-backend/internal/domains/blog"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository tạo repository instance
func NewSQLiteRepository(db *sql.DB) blog.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) ListSummaries(ctx context.Context, includeDrafts bool) ([]blog.Summary, error) {
	query := `
		SELECT id, title, slug, COALESCE(excerpt, ''), COALESCE(cover_url, ''), published, created_at
		FROM blogs WHERE published = 1 ORDER BY created_at DESC`
	if includeDrafts {
		query = `
		SELECT id, title, slug, COALESCE(excerpt, ''), COALESCE(cover_url, ''), published, created_at
		FROM blogs ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list blog summaries: %w", err)
	}
	defer rows.Close()

	posts := []blog.Summary{}
	for rows.Next() {
		var s blog.Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Excerpt, &s.CoverURL,
			&s.Published, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blog summary: %w", err)
		}
		posts = append(posts, s)
	}
	return posts, rows.Err()
}

func (r *sqliteRepository) ListAll(ctx context.Context) ([]blog.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, slug, COALESCE(excerpt, ''), COALESCE(content, ''),
			COALESCE(cover_url, ''), published, created_at, updated_at
		FROM blogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	posts := []blog.Post{}
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
			&p.CoverURL, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *sqliteRepository) FindPublishedBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	var p blog.Post
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, slug, COALESCE(excerpt, ''), COALESCE(content, ''),
			COALESCE(cover_url, ''), published, created_at, updated_at
		FROM blogs WHERE slug = ? AND published = 1`, slug).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
			&p.CoverURL, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, blog.ErrNotFound
		}
		return nil, fmt.Errorf("find blog by slug: %w", err)
	}
	return &p, nil
}

func (r *sqliteRepository) Create(ctx context.Context, post *blog.Post) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO blogs (title, slug, excerpt, content, cover_url, published)
		VALUES (?, ?, ?, ?, ?, ?)`,
		post.Title, post.Slug, post.Excerpt, post.Content, post.CoverURL, post.Published)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, blog.ErrDuplicateSlug
		}
		return 0, fmt.Errorf("create blog post: %w", err)
	}
	return res.LastInsertId()
}

func (r *sqliteRepository) Update(ctx context.Context, id int64, post *blog.Post) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE blogs SET title = ?, slug = ?, excerpt = ?, content = ?, cover_url = ?,
			published = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		post.Title, post.Slug, post.Excerpt, post.Content, post.CoverURL, post.Published, id)
	if err != nil {
		if isUniqueViolation(err) {
			return blog.ErrDuplicateSlug
		}
		return fmt.Errorf("update blog post: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

// isUniqueViolation check lỗi UNIQUE constraint của SQLite (slug trùng)
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
