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

// GalleryStore handles all gallery-image database operations.
type GalleryStore struct {
	db *sql.DB
}

// NewGalleryStore creates a new GalleryStore with the given database connection.
func NewGalleryStore(db *sql.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

const galleryColumns = `id, url, alt_text, display_order, show_on_home, created_at, updated_at`

// List returns all gallery images ordered by display order.
func (s *GalleryStore) List() ([]models.GalleryImage, error) {
	rows, err := s.db.Query(`
		SELECT ` + galleryColumns + `
		FROM gallery_images
		ORDER BY display_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	defer rows.Close()

	var items []models.GalleryImage
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *g)
	}
	return items, rows.Err()
}

// FindByID retrieves a gallery image by its UUID. Returns nil if not found.
func (s *GalleryStore) FindByID(id uuid.UUID) (*models.GalleryImage, error) {
	row := s.db.QueryRow(`SELECT `+galleryColumns+` FROM gallery_images WHERE id = $1`, id)
	g, err := scanGalleryImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find gallery image by id: %w", err)
	}
	return g, nil
}

// Create inserts a new gallery image and returns it with generated fields.
func (s *GalleryStore) Create(g *models.GalleryImage) (*models.GalleryImage, error) {
	row := s.db.QueryRow(`
		INSERT INTO gallery_images (url, alt_text, display_order, show_on_home)
		VALUES ($1, $2, $3, $4)
		RETURNING `+galleryColumns,
		g.URL, g.AltText, g.DisplayOrder, g.ShowOnHome,
	)
	created, err := scanGalleryImage(row)
	if err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}
	return created, nil
}

// Update saves changes to an existing gallery image (merge by id).
func (s *GalleryStore) Update(g *models.GalleryImage) error {
	res, err := s.db.Exec(`
		UPDATE gallery_images
		SET url = $2, alt_text = $3, display_order = $4, show_on_home = $5, updated_at = now()
		WHERE id = $1
	`, g.ID, g.URL, g.AltText, g.DisplayOrder, g.ShowOnHome)
	if err != nil {
		return fmt.Errorf("update gallery image: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a gallery image by id.
func (s *GalleryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	return nil
}

// Count returns the number of gallery images.
func (s *GalleryStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM gallery_images`).Scan(&n)
	return n, err
}

func scanGalleryImage(row rowScanner) (*models.GalleryImage, error) {
	g := &models.GalleryImage{}
	if err := row.Scan(
		&g.ID, &g.URL, &g.AltText, &g.DisplayOrder, &g.ShowOnHome,
		&g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return g, nil
}
