// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package links resolves the raw social-link records into the ranked,
// per-surface display lists used by the navbar ribbon, mobile dock, hero
// call-to-action, and homepage grid. Resolution is a pure transformation;
// the package also centralizes the write-time invariants on link flags.
package links

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"afterglow/internal/brand"
	"afterglow/internal/models"
)

// Surface is a distinct placement context for resolved links.
type Surface int

const (
	Ribbon Surface = iota // desktop top ribbon
	Dock                  // mobile bottom dock
	Hero                  // single hero call-to-action
	HomeGrid              // homepage social grid
)

// String returns the surface name for logging.
func (s Surface) String() string {
	switch s {
	case Ribbon:
		return "ribbon"
	case Dock:
		return "dock"
	case Hero:
		return "hero"
	case HomeGrid:
		return "homegrid"
	default:
		return fmt.Sprintf("surface(%d)", int(s))
	}
}

// maxRibbonLinks caps the ribbon and dock surfaces.
const maxRibbonLinks = 3

// DisplayLink is one resolved entry ready for rendering.
type DisplayLink struct {
	ID          uuid.UUID
	Platform    brand.Platform
	Meta        brand.Meta
	Label       string // explicit name, else brand short label
	ShortLabel  string // explicit CTA label, else brand short label
	URL         string
	Description string
	Priority    bool // true for the hero-flagged record
}

// DefaultLinks is the built-in fallback shown when no usable records
// exist, so the ribbon and dock are never empty on a fresh deployment.
var DefaultLinks = []models.SocialLink{
	{Name: "TopFans", URL: "https://topfans.me/afterglow", PlatformKey: "topfans", ShowOnHero: true, CTALabel: "TopFans"},
	{Name: "Privacy", URL: "https://privacy.com.br/@afterglow", PlatformKey: "privacy", DisplayOrder: 1, CTALabel: "Privacy"},
	{Name: "Telegram (Free)", URL: "https://t.me/afterglow", PlatformKey: "telegram", DisplayOrder: 2, CTALabel: "Telegram"},
}

// defaultHero is the last-resort hero CTA when no records and no settings
// exist at all.
var defaultHero = models.SocialLink{
	Name:        "Telegram",
	URL:         "https://t.me/afterglow",
	PlatformKey: "telegram",
	CTALabel:    "Join on Telegram",
}

// Resolve produces the ranked display list for a surface.
//
// Ribbon and Dock share the two-tier inclusion predicate: when any record
// in the input declares the navbar flag, `showOnNavbar != false` governs
// inclusion for every record; otherwise the older `showOnHome != false`
// signal is used. The fallback exists because unmigrated records lack the
// navbar flag entirely, and it is a known sharp edge: adding the flag to a
// single record silently switches the predicate for the whole set.
func Resolve(records []models.SocialLink, surface Surface) []DisplayLink {
	if surface == Hero {
		// Hero is a single-entry surface; use ResolveHero.
		if hero := ResolveHero(records, nil); hero != nil {
			return []DisplayLink{*hero}
		}
		return nil
	}

	usable := withURLs(records)

	var filtered []models.SocialLink
	switch surface {
	case Ribbon, Dock:
		if anyNavbarFlag(usable) {
			for _, l := range usable {
				if l.OnNavbar() {
					filtered = append(filtered, l)
				}
			}
		} else {
			for _, l := range usable {
				if l.OnHome() {
					filtered = append(filtered, l)
				}
			}
		}
	default: // HomeGrid
		for _, l := range usable {
			if l.OnHome() {
				filtered = append(filtered, l)
			}
		}
	}

	sortByOrder(filtered)

	if surface == Ribbon || surface == Dock {
		if len(filtered) > maxRibbonLinks {
			filtered = filtered[:maxRibbonLinks]
		}
		if len(filtered) == 0 {
			filtered = DefaultLinks
		}
	}

	out := make([]DisplayLink, 0, len(filtered))
	for _, l := range filtered {
		out = append(out, toDisplay(l))
	}
	return out
}

// ResolveHero selects the single hero call-to-action. Precedence:
//  1. the record flagged showOnHero (lowest display order wins a tie,
//     then input order),
//  2. the record whose id matches the settings' primary social id,
//  3. the first record by display order,
//  4. a hardcoded default.
// The returned link always has Priority set.
func ResolveHero(records []models.SocialLink, settings models.SiteSettings) *DisplayLink {
	usable := withURLs(records)
	sortByOrder(usable)

	pick := func(l models.SocialLink) *DisplayLink {
		d := toDisplay(l)
		d.Priority = true
		return &d
	}

	for _, l := range usable {
		if l.ShowOnHero {
			return pick(l)
		}
	}

	if primary := settings.Get(models.SettingHeroPrimaryLink, ""); primary != "" {
		for _, l := range usable {
			if l.ID.String() == primary {
				return pick(l)
			}
		}
	}

	if len(usable) > 0 {
		return pick(usable[0])
	}

	return pick(defaultHero)
}

// Write-time invariant violations.
var (
	// ErrHeroTaken is returned when a second record would be flagged as
	// the hero link.
	ErrHeroTaken = errors.New("another link is already the hero link")

	// ErrNavbarFull is returned when more than three records would be
	// flagged for the navbar.
	ErrNavbarFull = errors.New("the navbar already has three links")
)

// Validate checks the cross-record invariants for a candidate create or
// update against the existing records: at most one hero link system-wide
// and at most three navbar-flagged links. Violations are rejected here
// rather than silently truncated at render time.
func Validate(existing []models.SocialLink, candidate *models.SocialLink) error {
	if candidate.ShowOnHero {
		for _, l := range existing {
			if l.ID != candidate.ID && l.ShowOnHero {
				return ErrHeroTaken
			}
		}
	}

	if candidate.HasNavbarFlag() && candidate.OnNavbar() {
		count := 0
		for _, l := range existing {
			if l.ID != candidate.ID && l.HasNavbarFlag() && l.OnNavbar() {
				count++
			}
		}
		if count >= maxRibbonLinks {
			return ErrNavbarFull
		}
	}

	return nil
}

// anyNavbarFlag reports whether any record declares the navbar flag,
// which switches the ribbon/dock predicate to the navbar tier.
func anyNavbarFlag(records []models.SocialLink) bool {
	for _, l := range records {
		if l.HasNavbarFlag() {
			return true
		}
	}
	return false
}

// withURLs drops records with an empty URL, preserving input order.
func withURLs(records []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(records))
	for _, l := range records {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

// sortByOrder sorts ascending by display order, stable on ties so the
// original fetch order breaks them.
func sortByOrder(records []models.SocialLink) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DisplayOrder < records[j].DisplayOrder
	})
}

// toDisplay resolves brand metadata and labels for one record.
func toDisplay(l models.SocialLink) DisplayLink {
	platform, meta := brand.Resolve(l.PlatformKey, l.URL)

	label := l.Name
	if label == "" {
		label = meta.Short
	}
	short := l.CTALabel
	if short == "" {
		short = meta.Short
	}

	return DisplayLink{
		ID:          l.ID,
		Platform:    platform,
		Meta:        meta,
		Label:       label,
		ShortLabel:  short,
		URL:         l.URL,
		Description: l.Description,
		Priority:    l.ShowOnHero,
	}
}
