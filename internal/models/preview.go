// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// maxDisplayTags caps how many tags a preview card shows.
const maxDisplayTags = 3

// Preview represents one teaser video card on the public site.
// IsSensitive is a pointer so that "not set" defaults to sensitive:
// only an explicit false opts a preview out of the consent gate.
// PosterURL and VideoURL stay nil until the media is uploaded.
type Preview struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Duration     int       `json:"duration"` // seconds, non-negative
	Tags         []string  `json:"tags"`
	PosterURL    *string   `json:"poster_url,omitempty"`
	VideoURL     *string   `json:"video_url,omitempty"`
	IsSensitive  *bool     `json:"is_sensitive,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sensitive reports whether the preview is consent-gated.
// Previews are sensitive by default; only an explicit false opts out.
func (p *Preview) Sensitive() bool {
	return p.IsSensitive == nil || *p.IsSensitive
}

// DisplayTags returns the tags shown on the card, truncated to the first
// three in their stored order.
func (p *Preview) DisplayTags() []string {
	if len(p.Tags) <= maxDisplayTags {
		return p.Tags
	}
	return p.Tags[:maxDisplayTags]
}

// DisplayDuration returns the badge duration in whole seconds, clamped to
// zero for bad data.
func (p *Preview) DisplayDuration() int {
	if p.Duration < 0 {
		return 0
	}
	return p.Duration
}

// HasPoster reports whether a poster image is set.
func (p *Preview) HasPoster() bool {
	return p.PosterURL != nil && *p.PosterURL != ""
}

// Poster returns the poster URL or an empty string.
func (p *Preview) Poster() string {
	if p.PosterURL == nil {
		return ""
	}
	return *p.PosterURL
}
