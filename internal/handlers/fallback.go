// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "afterglow/internal/models"

// Static fallback content shown when the database is empty or unreachable,
// so a fresh deployment never renders a blank page. Poster and photo URLs
// point at bundled placeholder assets.

const placeholderImage = "/static/placeholders/placeholder.svg"

func fallbackPreviews() []models.Preview {
	poster := placeholderImage
	sensitive := true

	return []models.Preview{
		{Title: "Golden hour", Duration: 34, Tags: []string{"teaser", "outdoor"}, PosterURL: &poster, IsSensitive: &sensitive},
		{Title: "Backstage", Duration: 58, Tags: []string{"bts"}, PosterURL: &poster, IsSensitive: &sensitive, DisplayOrder: 1},
		{Title: "Red room", Duration: 41, Tags: []string{"teaser", "exclusive", "new", "extra"}, PosterURL: &poster, IsSensitive: &sensitive, DisplayOrder: 2},
	}
}

func fallbackPhotos() []models.GalleryImage {
	return []models.GalleryImage{
		{URL: placeholderImage, AltText: "Studio portrait"},
		{URL: placeholderImage, AltText: "Beach shoot", DisplayOrder: 1},
		{URL: placeholderImage, AltText: "Neon lights", DisplayOrder: 2},
		{URL: placeholderImage, AltText: "Golden hour", DisplayOrder: 3},
	}
}
