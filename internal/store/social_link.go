// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"afterglow/internal/models"
)

// SocialLinkStore handles all social-link database operations.
type SocialLinkStore struct {
	db *sql.DB
}

// NewSocialLinkStore creates a new SocialLinkStore with the given database connection.
func NewSocialLinkStore(db *sql.DB) *SocialLinkStore {
	return &SocialLinkStore{db: db}
}

const socialLinkColumns = `id, name, url, description, platform_key, display_order,
	show_on_home, show_on_navbar, show_on_hero, is_private, cta_label, created_at, updated_at`

// List returns all social links ordered by display order.
func (s *SocialLinkStore) List() ([]models.SocialLink, error) {
	rows, err := s.db.Query(`
		SELECT ` + socialLinkColumns + `
		FROM social_links
		ORDER BY display_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	defer rows.Close()

	var items []models.SocialLink
	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

// FindByID retrieves a social link by its UUID. Returns nil if not found.
func (s *SocialLinkStore) FindByID(id uuid.UUID) (*models.SocialLink, error) {
	row := s.db.QueryRow(`SELECT `+socialLinkColumns+` FROM social_links WHERE id = $1`, id)
	l, err := scanSocialLink(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find social link by id: %w", err)
	}
	return l, nil
}

// Create inserts a new social link and returns it with generated fields.
// The platform key is stored exactly as given — a key derived from the
// URL at render time is never persisted.
func (s *SocialLinkStore) Create(l *models.SocialLink) (*models.SocialLink, error) {
	row := s.db.QueryRow(`
		INSERT INTO social_links
			(name, url, description, platform_key, display_order,
			 show_on_home, show_on_navbar, show_on_hero, is_private, cta_label)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+socialLinkColumns,
		l.Name, l.URL, l.Description, nullIfEmpty(l.PlatformKey), l.DisplayOrder,
		l.ShowOnHome, l.ShowOnNavbar, l.ShowOnHero, l.IsPrivate, l.CTALabel,
	)
	created, err := scanSocialLink(row)
	if err != nil {
		return nil, fmt.Errorf("create social link: %w", err)
	}
	return created, nil
}

// Update saves changes to an existing social link (merge by id).
func (s *SocialLinkStore) Update(l *models.SocialLink) error {
	res, err := s.db.Exec(`
		UPDATE social_links
		SET name = $2, url = $3, description = $4, platform_key = $5,
		    display_order = $6, show_on_home = $7, show_on_navbar = $8,
		    show_on_hero = $9, is_private = $10, cta_label = $11, updated_at = now()
		WHERE id = $1
	`, l.ID, l.Name, l.URL, l.Description, nullIfEmpty(l.PlatformKey), l.DisplayOrder,
		l.ShowOnHome, l.ShowOnNavbar, l.ShowOnHero, l.IsPrivate, l.CTALabel)
	if err != nil {
		return fmt.Errorf("update social link: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a social link by id.
func (s *SocialLinkStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM social_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}

// Count returns the number of social links.
func (s *SocialLinkStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM social_links`).Scan(&n)
	return n, err
}

func scanSocialLink(row rowScanner) (*models.SocialLink, error) {
	l := &models.SocialLink{}
	var platformKey sql.NullString
	if err := row.Scan(
		&l.ID, &l.Name, &l.URL, &l.Description, &platformKey, &l.DisplayOrder,
		&l.ShowOnHome, &l.ShowOnNavbar, &l.ShowOnHero, &l.IsPrivate, &l.CTALabel,
		&l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	l.PlatformKey = platformKey.String
	return l, nil
}

// nullIfEmpty maps an empty string to SQL NULL so "no explicit key"
// stays distinguishable from an empty one.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
