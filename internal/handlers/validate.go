package handlers

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"afterglow/internal/models"
)

// Validation limits for admin form fields.
const (
	maxTitleLen    = 200
	maxNameLen     = 120
	maxURLLen      = 2000
	maxDescLen     = 500
	maxTagsLen     = 300
	maxSettingLen  = 2_000
	maxMarkdownLen = 100_000
)

// validatePreview checks preview form inputs and returns the first error found.
func validatePreview(title, tags string, duration int) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 200 characters)."
	}
	if duration < 0 {
		return "Duration cannot be negative."
	}
	if utf8.RuneCountInString(tags) > maxTagsLen {
		return "Tags are too long (max 300 characters)."
	}
	return ""
}

// validateLink checks social link form inputs and returns the first error found.
func validateLink(name, rawURL string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 120 characters)."
	}
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "URL is required."
	}
	if utf8.RuneCountInString(rawURL) > maxURLLen {
		return "URL is too long (max 2,000 characters)."
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "URL must be a valid http(s) address."
	}
	return ""
}

// validateSettings checks the settings form values.
func validateSettings(values map[string]string) string {
	for key, val := range values {
		limit := maxSettingLen
		switch key {
		case models.SettingTermsMarkdown, models.SettingPrivacyMarkdown, models.SettingFAQMarkdown:
			limit = maxMarkdownLen
		}
		if utf8.RuneCountInString(val) > limit {
			return "Setting " + key + " is too long."
		}
	}
	if exit := values[models.SettingExitURL]; exit != "" {
		u, err := url.Parse(exit)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return "Exit URL must be a valid http(s) address."
		}
	}
	return ""
}
