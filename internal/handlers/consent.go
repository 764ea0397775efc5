// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"afterglow/internal/middleware"
)

// Consent handles the age gate form posts. Grant and revoke both redirect
// back to the page the visitor was on; the next request re-renders with
// the new state.
type Consent struct{}

// NewConsent creates a new Consent handler group.
func NewConsent() *Consent {
	return &Consent{}
}

// Accept records the visitor's age confirmation and redirects back.
func (c *Consent) Accept(w http.ResponseWriter, r *http.Request) {
	if store := middleware.ConsentFromCtx(r.Context()); store != nil {
		store.Grant()
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// Revoke clears the visitor's age confirmation and redirects back. The
// site immediately returns to the gated, blurred presentation.
func (c *Consent) Revoke(w http.ResponseWriter, r *http.Request) {
	if store := middleware.ConsentFromCtx(r.Context()); store != nil {
		store.Revoke()
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// returnPath picks a safe same-site redirect target from the form.
// Anything that isn't a local absolute path falls back to the homepage.
func returnPath(r *http.Request) string {
	p := r.FormValue("return")
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "/"
	}
	return p
}
