// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package consent

import (
	"net/http"
	"time"
)

const (
	// CookieName is the browser cookie that carries the consent marker.
	CookieName = "ag_consent"

	// cookieTTL keeps the grant across sessions for a year.
	cookieTTL = 365 * 24 * time.Hour
)

// CookiePersistence adapts one HTTP request/response pair to the
// Persistence interface. Load reads the request cookie; Save and Clear
// set cookies on the response, so a reload reflects the new state.
type CookiePersistence struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

// NewCookiePersistence wires consent persistence to an HTTP exchange.
func NewCookiePersistence(w http.ResponseWriter, r *http.Request, secure bool) *CookiePersistence {
	return &CookiePersistence{r: r, w: w, secure: secure}
}

// Load returns the consent cookie value from the request.
func (c *CookiePersistence) Load() (string, bool) {
	cookie, err := c.r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Save sets the consent cookie on the response.
func (c *CookiePersistence) Save(value string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the consent cookie.
func (c *CookiePersistence) Clear() error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
