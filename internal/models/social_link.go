// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLink represents one external monetization or social destination.
//
// PlatformKey is optional; when empty the platform is derived from the
// URL's host at render time and never written back. The ShowOn* flags are
// pointers because absence carries meaning: records created before the
// navbar flag existed have it unset, and the link resolver treats a
// partially-flagged data set differently from an unflagged one.
type SocialLink struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Description  string    `json:"description"`
	PlatformKey  string    `json:"platform_key,omitempty"`
	DisplayOrder int       `json:"display_order"`
	ShowOnHome   *bool     `json:"show_on_home,omitempty"`
	ShowOnNavbar *bool     `json:"show_on_navbar,omitempty"`
	ShowOnHero   bool      `json:"show_on_hero"`
	IsPrivate    bool      `json:"is_private"`
	CTALabel     string    `json:"cta_label,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OnHome reports home-grid visibility. Unset means visible (default-in).
func (l *SocialLink) OnHome() bool {
	return l.ShowOnHome == nil || *l.ShowOnHome
}

// HasNavbarFlag reports whether the record declares the navbar flag at
// all, regardless of its value.
func (l *SocialLink) HasNavbarFlag() bool {
	return l.ShowOnNavbar != nil
}

// OnNavbar reports navbar visibility under the explicit opt-out model:
// anything other than an explicit false is included.
func (l *SocialLink) OnNavbar() bool {
	return l.ShowOnNavbar == nil || *l.ShowOnNavbar
}

// GalleryImage represents one photo in the public gallery.
type GalleryImage struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	AltText      string    `json:"alt_text,omitempty"`
	DisplayOrder int       `json:"display_order"`
	ShowOnHome   *bool     `json:"show_on_home,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OnHome reports home-page visibility. Unset defaults to true.
func (g *GalleryImage) OnHome() bool {
	return g.ShowOnHome == nil || *g.ShowOnHome
}
