// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"afterglow/internal/consent"
)

// LoadConsent builds a consent store for the request from the consent
// cookie, resolves it, and places it in the request context. Every public
// handler reads the resolved state from here; by the time a handler runs
// the state is Granted or Denied, never Unknown.
func LoadConsent(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := consent.NewStore(consent.NewCookiePersistence(w, r, secure))
			store.Resolve()

			ctx := context.WithValue(r.Context(), ConsentKey, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ConsentFromCtx extracts the consent store from the request context.
// Returns nil when LoadConsent is not in the chain.
func ConsentFromCtx(ctx context.Context) *consent.Store {
	store, _ := ctx.Value(ConsentKey).(*consent.Store)
	return store
}

// ConsentState returns the resolved consent state for the request, or
// Unknown when no consent store is loaded.
func ConsentState(ctx context.Context) consent.State {
	if store := ConsentFromCtx(ctx); store != nil {
		return store.Current()
	}
	return consent.Unknown
}
