// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders sets the response headers every page on the site shares.
// Referrer-Policy is no-referrer so outbound clicks to social platforms never
// leak where the visitor came from, and the Rating header carries the RTA
// (Restricted To Adults) label so filtering software can classify the site
// without parsing the page body.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Rating", "RTA-5042-1996-1400-1577-RTA")
		next.ServeHTTP(w, r)
	})
}
