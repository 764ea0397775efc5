package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// defaultSettings are the initial site settings for a fresh deployment.
// Hero copy and legal text are placeholders the admin replaces.
var defaultSettings = map[string]string{
	"hero_title":    "Exclusive content, after dark",
	"hero_subtitle": "New drops every week on the partner platforms.",
	"hero_badge":    "18+",
	"exit_url":      "https://google.com",
	"terms_md":      "# Terms of Service\n\nThis site hosts promotional previews only. Full content lives on the linked partner platforms, each with its own terms.",
	"privacy_md":    "# Privacy Policy\n\nWe store a single consent cookie and nothing else about visitors.",
}

// Seed populates the database with initial development data: a default
// admin user and the baseline site settings. No-op when users exist.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
	`, "admin@afterglow.local", string(hash), "Admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	for k, v := range defaultSettings {
		_, err := db.Exec(`
			INSERT INTO site_settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING
		`, k, v)
		if err != nil {
			return fmt.Errorf("seed setting %s: %w", k, err)
		}
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@afterglow.local",
		"password", "admin",
	)

	return nil
}
