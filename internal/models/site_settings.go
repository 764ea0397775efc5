// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Well-known site settings keys. Settings are a singleton per deployment:
// a fixed key namespace upserted in place, never deleted.
const (
	SettingHeroTitle         = "hero_title"
	SettingHeroSubtitle      = "hero_subtitle"
	SettingHeroBadge         = "hero_badge"
	SettingHeroCTALabel      = "hero_cta_label"
	SettingHeroBackgroundURL = "hero_background_url"
	SettingHeroPrimaryLink   = "hero_primary_social_id"
	SettingContactEmail      = "contact_email"
	SettingExitURL           = "exit_url"
	SettingTermsMarkdown     = "terms_md"
	SettingPrivacyMarkdown   = "privacy_md"
	SettingFAQMarkdown       = "faq_md"
)

// SiteSetting represents a single configuration key-value pair.
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings is a convenience map for accessing settings by key.
type SiteSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}
