// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"afterglow/internal/middleware"
)

// gateHandlers runs the consent endpoints behind the real LoadConsent
// middleware so cookie persistence is exercised end to end.
func gateHandlers(t *testing.T) http.Handler {
	t.Helper()
	c := NewConsent()
	mux := http.NewServeMux()
	mux.HandleFunc("/consent/accept", c.Accept)
	mux.HandleFunc("/consent/revoke", c.Revoke)
	return middleware.LoadConsent(false)(mux)
}

func TestConsentAcceptSetsCookieAndRedirects(t *testing.T) {
	h := gateHandlers(t)

	form := url.Values{"return": {"/previews"}}
	req := httptest.NewRequest(http.MethodPost, "/consent/accept", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/previews" {
		t.Errorf("Location = %q, want /previews", loc)
	}

	var consentCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "ag_consent" {
			consentCookie = c
		}
	}
	if consentCookie == nil {
		t.Fatal("expected ag_consent cookie to be set")
	}
	if consentCookie.Value != "true" {
		t.Errorf("cookie value = %q, want true", consentCookie.Value)
	}
	if !consentCookie.HttpOnly {
		t.Error("consent cookie must be HttpOnly")
	}
}

func TestConsentRevokeClearsCookie(t *testing.T) {
	h := gateHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/consent/revoke", nil)
	req.AddCookie(&http.Cookie{Name: "ag_consent", Value: "true"})
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "ag_consent" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected ag_consent cookie to be expired")
	}
}

func TestConsentReturnPath(t *testing.T) {
	tests := []struct {
		name string
		ret  string
		want string
	}{
		{"local path", "/previews", "/previews"},
		{"root", "/", "/"},
		{"empty falls back", "", "/"},
		{"absolute URL rejected", "https://evil.example/", "/"},
		{"protocol-relative rejected", "//evil.example/", "/"},
		{"relative rejected", "previews", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"return": {tt.ret}}
			req := httptest.NewRequest(http.MethodPost, "/consent/accept", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if got := returnPath(req); got != tt.want {
				t.Errorf("returnPath(%q) = %q, want %q", tt.ret, got, tt.want)
			}
		})
	}
}
