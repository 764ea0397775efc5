// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"afterglow/internal/models"
)

// PreviewStore handles all preview-related database operations.
type PreviewStore struct {
	db *sql.DB
}

// NewPreviewStore creates a new PreviewStore with the given database connection.
func NewPreviewStore(db *sql.DB) *PreviewStore {
	return &PreviewStore{db: db}
}

const previewColumns = `id, title, duration, tags, poster_url, video_url, is_sensitive, display_order, created_at, updated_at`

// List returns all previews ordered by display order. Ordering is
// requested server-side; callers re-sort defensively where it matters.
func (s *PreviewStore) List() ([]models.Preview, error) {
	rows, err := s.db.Query(`
		SELECT ` + previewColumns + `
		FROM previews
		ORDER BY display_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list previews: %w", err)
	}
	defer rows.Close()

	var items []models.Preview
	for rows.Next() {
		p, err := scanPreview(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a preview by its UUID. Returns nil if not found.
func (s *PreviewStore) FindByID(id uuid.UUID) (*models.Preview, error) {
	row := s.db.QueryRow(`SELECT `+previewColumns+` FROM previews WHERE id = $1`, id)
	p, err := scanPreview(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find preview by id: %w", err)
	}
	return p, nil
}

// Create inserts a new preview and returns it with generated fields.
func (s *PreviewStore) Create(p *models.Preview) (*models.Preview, error) {
	row := s.db.QueryRow(`
		INSERT INTO previews (title, duration, tags, poster_url, video_url, is_sensitive, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+previewColumns,
		p.Title, p.Duration, joinTags(p.Tags), p.PosterURL, p.VideoURL, p.IsSensitive, p.DisplayOrder,
	)
	created, err := scanPreview(row)
	if err != nil {
		return nil, fmt.Errorf("create preview: %w", err)
	}
	return created, nil
}

// Update saves changes to an existing preview (merge by id).
func (s *PreviewStore) Update(p *models.Preview) error {
	res, err := s.db.Exec(`
		UPDATE previews
		SET title = $2, duration = $3, tags = $4, poster_url = $5,
		    video_url = $6, is_sensitive = $7, display_order = $8, updated_at = now()
		WHERE id = $1
	`, p.ID, p.Title, p.Duration, joinTags(p.Tags), p.PosterURL, p.VideoURL, p.IsSensitive, p.DisplayOrder)
	if err != nil {
		return fmt.Errorf("update preview: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetPosterURL updates only the poster URL, used after a poster upload.
func (s *PreviewStore) SetPosterURL(id uuid.UUID, url string) error {
	_, err := s.db.Exec(`UPDATE previews SET poster_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("update preview poster: %w", err)
	}
	return nil
}

// SetVideoURL updates only the video URL, used after a video upload.
func (s *PreviewStore) SetVideoURL(id uuid.UUID, url string) error {
	_, err := s.db.Exec(`UPDATE previews SET video_url = $2, updated_at = now() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("update preview video: %w", err)
	}
	return nil
}

// Delete removes a preview by id.
func (s *PreviewStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM previews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete preview: %w", err)
	}
	return nil
}

// Count returns the number of previews.
func (s *PreviewStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM previews`).Scan(&n)
	return n, err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreview(row rowScanner) (*models.Preview, error) {
	p := &models.Preview{}
	var tags string
	if err := row.Scan(
		&p.ID, &p.Title, &p.Duration, &tags, &p.PosterURL, &p.VideoURL,
		&p.IsSensitive, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Tags = splitTags(tags)
	return p, nil
}

// Tags are stored as a comma-separated string; empty means no tags.

func joinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
