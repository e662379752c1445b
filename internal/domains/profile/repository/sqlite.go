package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/profile"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository tạo repository instance
func NewSQLiteRepository(db *sql.DB) profile.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Get(ctx context.Context) (*profile.Profile, error) {
	var p profile.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(tagline, ''), COALESCE(bio, ''), COALESCE(email, ''),
			COALESCE(phone, ''), COALESCE(location, ''), COALESCE(quote, ''),
			COALESCE(quote_author, ''), COALESCE(photo_url, ''), updated_at
		FROM profile WHERE id = ?`, profile.ProfileID).
		Scan(&p.ID, &p.Name, &p.Tagline, &p.Bio, &p.Email, &p.Phone, &p.Location,
			&p.Quote, &p.QuoteAuthor, &p.PhotoURL, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (r *sqliteRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (id, name, tagline, bio, email, phone, location, quote, quote_author, photo_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			tagline = excluded.tagline,
			bio = excluded.bio,
			email = excluded.email,
			phone = excluded.phone,
			location = excluded.location,
			quote = excluded.quote,
			quote_author = excluded.quote_author,
			photo_url = excluded.photo_url,
			updated_at = CURRENT_TIMESTAMP`,
		profile.ProfileID, p.Name, p.Tagline, p.Bio, p.Email, p.Phone, p.Location,
		p.Quote, p.QuoteAuthor, p.PhotoURL)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *sqliteRepository) ListSocial(ctx context.Context) ([]profile.SocialLink, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, platform, url, COALESCE(icon, '') FROM social_links ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	defer rows.Close()

	links := []profile.SocialLink{}
	for rows.Next() {
		var l profile.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon); err != nil {
			return nil, fmt.Errorf("scan social link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *sqliteRepository) CreateSocial(ctx context.Context, link *profile.SocialLink) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO social_links (platform, url, icon) VALUES (?, ?, ?)`,
		link.Platform, link.URL, link.Icon)
	if err != nil {
		return 0, fmt.Errorf("create social link: %w", err)
	}
	return res.LastInsertId()
}

func (r *sqliteRepository) UpdateSocial(ctx context.Context, id int64, link *profile.SocialLink) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE social_links SET platform = ?, url = ?, icon = ? WHERE id = ?`,
		link.Platform, link.URL, link.Icon, id)
	if err != nil {
		return fmt.Errorf("update social link: %w", err)
	}
	return nil
}

func (r *sqliteRepository) DeleteSocial(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM social_links WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}
