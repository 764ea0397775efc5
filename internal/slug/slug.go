// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns titles into the url-safe fragments used in media
// object keys.
package slug

import "strings"

// maxLen caps slugs so object keys stay readable in bucket listings.
const maxLen = 60

// Generate lowercases s and maps every run of characters outside [a-z0-9]
// to a single hyphen. Example: "Beach Day 2026" -> "beach-day-2026".
func Generate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range strings.ToLower(s) {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			pending = true
			continue
		}
		need := 1
		if pending && b.Len() > 0 {
			need = 2
		}
		if b.Len()+need > maxLen {
			break
		}
		if need == 2 {
			b.WriteByte('-')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}
