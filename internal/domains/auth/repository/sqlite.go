package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/auth"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository tạo repository instance
func NewSQLiteRepository(db *sql.DB) auth.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Exists(ctx context.Context) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM admin LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check admin exists: %w", err)
	}
	return true, nil
}

func (r *sqliteRepository) FindByUsername(ctx context.Context, username string) (*auth.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM admin WHERE username = ?`, username)
	return scanAdmin(row)
}

func (r *sqliteRepository) FindByID(ctx context.Context, id int64) (*auth.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash FROM admin WHERE id = ?`, id)
	return scanAdmin(row)
}

func (r *sqliteRepository) Create(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admin (id, username, password_hash) VALUES (?, ?, ?)`,
		auth.AdminID, username, passwordHash)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (r *sqliteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Upsert(ctx context.Context, username, passwordHash string) error {
	// SQLite upsert: overwrite row id=1 hoặc tạo mới
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin (id, username, password_hash) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET username = excluded.username, password_hash = excluded.password_hash`,
		auth.AdminID, username, passwordHash)
	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}

func scanAdmin(row *sql.Row) (*auth.Admin, error) {
	a := &auth.Admin{}
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	return a, nil
}
