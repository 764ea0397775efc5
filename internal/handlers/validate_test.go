// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"

	"afterglow/internal/models"
)

func TestValidatePreview(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		tags     string
		duration int
		wantErr  bool
	}{
		{"valid", "Beach Day", "outdoor, summer", 34, false},
		{"empty title", "", "", 0, true},
		{"whitespace title", "   ", "", 0, true},
		{"title too long", strings.Repeat("x", 201), "", 0, true},
		{"title at limit", strings.Repeat("x", 200), "", 0, false},
		{"negative duration", "Clip", "", -1, true},
		{"zero duration ok", "Clip", "", 0, false},
		{"tags too long", "Clip", strings.Repeat("t", 301), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validatePreview(tt.title, tt.tags, tt.duration)
			if (got != "") != tt.wantErr {
				t.Errorf("validatePreview(%q, %q, %d) = %q, wantErr %v", tt.title, tt.tags, tt.duration, got, tt.wantErr)
			}
		})
	}
}

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		url     string
		wantErr bool
	}{
		{"valid https", "OnlyFans", "https://onlyfans.com/someone", false},
		{"valid http", "Site", "http://example.com", false},
		{"empty name", "", "https://example.com", true},
		{"empty url", "X", "", true},
		{"no scheme", "X", "example.com", true},
		{"bad scheme", "X", "ftp://example.com/file", true},
		{"javascript scheme", "X", "javascript:alert(1)", true},
		{"scheme without host", "X", "https://", true},
		{"name too long", strings.Repeat("n", 121), "https://example.com", true},
		{"url too long", "X", "https://example.com/" + strings.Repeat("p", 2000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateLink(tt.link, tt.url)
			if (got != "") != tt.wantErr {
				t.Errorf("validateLink(%q, %q) = %q, wantErr %v", tt.link, tt.url, got, tt.wantErr)
			}
		})
	}
}

func TestValidateSettings(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		values := map[string]string{
			models.SettingHeroTitle: "Afterglow",
			models.SettingExitURL:   "https://google.com",
		}
		if got := validateSettings(values); got != "" {
			t.Errorf("validateSettings = %q, want no error", got)
		}
	})

	t.Run("setting too long", func(t *testing.T) {
		values := map[string]string{
			models.SettingHeroTitle: strings.Repeat("x", 2001),
		}
		if got := validateSettings(values); got == "" {
			t.Error("expected error for oversized setting")
		}
	})

	t.Run("markdown gets larger limit", func(t *testing.T) {
		values := map[string]string{
			models.SettingTermsMarkdown: strings.Repeat("x", 50_000),
		}
		if got := validateSettings(values); got != "" {
			t.Errorf("validateSettings = %q, want markdown under 100k to pass", got)
		}
	})

	t.Run("markdown too long", func(t *testing.T) {
		values := map[string]string{
			models.SettingPrivacyMarkdown: strings.Repeat("x", 100_001),
		}
		if got := validateSettings(values); got == "" {
			t.Error("expected error for oversized markdown")
		}
	})

	t.Run("bad exit url", func(t *testing.T) {
		values := map[string]string{
			models.SettingExitURL: "not a url",
		}
		if got := validateSettings(values); got == "" {
			t.Error("expected error for invalid exit URL")
		}
	})

	t.Run("empty exit url allowed", func(t *testing.T) {
		values := map[string]string{
			models.SettingExitURL: "",
		}
		if got := validateSettings(values); got != "" {
			t.Errorf("validateSettings = %q, want empty exit URL to pass", got)
		}
	})
}
