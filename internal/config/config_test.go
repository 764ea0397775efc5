// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// envVars lists every environment variable Load reads.
var envVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	"S3_BUCKET", "S3_PUBLIC_URL",
	"SITE_NAME", "EXIT_URL",
}

// clearEnv blanks all config environment variables for the duration of
// the test. envOrDefault treats empty the same as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("DBHost", cfg.DBHost, "localhost")
	check("DBPort", cfg.DBPort, "5432")
	check("DBUser", cfg.DBUser, "afterglow")
	check("DBPassword", cfg.DBPassword, "changeme")
	check("DBName", cfg.DBName, "afterglow")
	check("ValkeyHost", cfg.ValkeyHost, "localhost")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")
	check("S3Endpoint", cfg.S3Endpoint, "")
	check("S3Region", cfg.S3Region, "us-east-1")
	check("S3Bucket", cfg.S3Bucket, "afterglow-media")
	check("SiteName", cfg.SiteName, "Afterglow")
	check("ExitURL", cfg.ExitURL, "https://google.com")
}

// TestLoad_EnvOverrides verifies that set environment variables win over defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("S3_ENDPOINT", "https://obj.example.net")
	t.Setenv("S3_PUBLIC_URL", "https://cdn.example.net")
	t.Setenv("EXIT_URL", "https://example.org/away")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.DBHost != "db.internal" {
		t.Errorf("DBHost = %q, want db.internal", cfg.DBHost)
	}
	if cfg.S3Endpoint != "https://obj.example.net" {
		t.Errorf("S3Endpoint = %q", cfg.S3Endpoint)
	}
	if cfg.ExitURL != "https://example.org/away" {
		t.Errorf("ExitURL = %q", cfg.ExitURL)
	}
}

// TestLoad_ProductionRequiresDBPassword verifies the production guard.
func TestLoad_ProductionRequiresDBPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load() in production with default password: want error, got nil")
	} else if !strings.Contains(err.Error(), "POSTGRES_PASSWORD") {
		t.Errorf("error = %v, want mention of POSTGRES_PASSWORD", err)
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with password set: %v", err)
	}
	if cfg.DBPassword != "s3cret" {
		t.Errorf("DBPassword = %q", cfg.DBPassword)
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := &Config{
		Host: "127.0.0.1", Port: "8081",
		DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5433", DBName: "d",
	}
	if got, want := cfg.DSN(), "postgres://u:p@h:5433/d?sslmode=disable"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got, want := cfg.Addr(), "127.0.0.1:8081"; got != want {
		t.Errorf("Addr() = %q, want %q", got, want)
	}
}
