// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package policy decides blur, interactivity, and hover-preview behavior
// for media items from the visitor's consent state. Items are sensitive
// by default: only an explicit opt-out or an explicit grant unblurs them.
package policy

import "afterglow/internal/consent"

// ShouldBlur reports whether an item must render blurred. True iff the
// item is sensitive (unset counts as sensitive) and consent is anything
// other than Granted — Unknown blurs too, so unresolved state never
// flashes gated content.
func ShouldBlur(isSensitive *bool, state consent.State) bool {
	sensitive := isSensitive == nil || *isSensitive
	return sensitive && state != consent.Granted
}

// Interactive reports whether the main content region accepts pointer
// interaction. When false the page presents the consent gate overlay and
// suppresses content interaction; navigation chrome stays reachable.
func Interactive(state consent.State) bool {
	return state == consent.Granted
}

// AllowHoverPreview reports whether a video-backed card may autoplay its
// muted preview loop on hover. A blurred item gets no hover handlers at
// all — the media action is disabled, not merely hidden.
func AllowHoverPreview(isSensitive *bool, state consent.State) bool {
	return !ShouldBlur(isSensitive, state)
}

// ShowGate reports whether the age-gate overlay is open. The overlay is
// presented for Denied and for the transient Unknown state.
func ShowGate(state consent.State) bool {
	return state != consent.Granted
}
