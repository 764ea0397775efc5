// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package brand maps a monetization/social platform to its presentation
// metadata: icon reference, colors, contrast variant, and short label.
// Resolution is a pure function over a link's explicit platform key and
// its URL; unknown inputs fall back to a generic entry.
package brand

import (
	"net/url"
	"strings"
)

// Platform is the canonical short key naming a platform.
type Platform string

const (
	TopFans   Platform = "topfans"
	Privacy   Platform = "privacy"
	Telegram  Platform = "telegram"
	Instagram Platform = "instagram"
	X         Platform = "x"
	WhatsApp  Platform = "whatsapp"
	Linktree  Platform = "linktree"
	OnlyFans  Platform = "onlyfans"
	Default   Platform = "default"
)

// Variant selects contrast-correct styling. It carries no business logic
// beyond visual legibility.
type Variant string

const (
	// VariantSolid renders a colored background with a light foreground.
	VariantSolid Variant = "solid"
	// VariantInverted renders a light background with a dark foreground
	// and a visible border, for brands whose color would vanish on dark.
	VariantInverted Variant = "inverted"
)

// Meta is the presentation metadata for one platform.
type Meta struct {
	Icon       string  // icon reference, matched to a sprite in the templates
	Background string  // hex background color
	Hover      string  // hex hover color
	Foreground string  // hex text/icon color
	Border     string  // hex border color, empty for solid variants
	Variant    Variant // solid or inverted
	Short      string  // short display label
}

// registry holds the static brand style table.
var registry = map[Platform]Meta{
	TopFans:   {Icon: "star", Background: "#7C3AED", Hover: "#6D28D9", Foreground: "#FFFFFF", Variant: VariantSolid, Short: "TopFans"},
	// Privacy is inverted: a light pill that stays legible on the dark theme.
	Privacy:   {Icon: "crown", Background: "#F8FAFC", Hover: "#E5E7EB", Foreground: "#111827", Border: "#CBD5E1", Variant: VariantInverted, Short: "Privacy"},
	Telegram:  {Icon: "telegram", Background: "#229ED9", Hover: "#1F8DC3", Foreground: "#FFFFFF", Variant: VariantSolid, Short: "Telegram"},
	Instagram: {Icon: "instagram", Background: "#E1306C", Hover: "#C1265C", Foreground: "#FFFFFF", Variant: VariantSolid, Short: "Instagram"},
	X:         {Icon: "twitter", Background: "#000000", Hover: "#111827", Foreground: "#FFFFFF", Variant: VariantSolid, Short: "X"},
	WhatsApp:  {Icon: "whatsapp", Background: "#25D366", Hover: "#1DA851", Foreground: "#FFFFFF", Variant: VariantSolid, Short: "WhatsApp"},
	Linktree:  {Icon: "link", Background: "#39E09B", Hover: "#2FC586", Foreground: "#0F172A", Variant: VariantSolid, Short: "Linktree"},
	OnlyFans:  {Icon: "star", Background: "#00AFF0", Hover: "#0D9AD1", Foreground: "#FFFFFF", Variant: VariantSolid, Short: "OnlyFans"},
	Default:   {Icon: "flame", Background: "#E11D48", Hover: "#C41041", Foreground: "#FFFFFF", Variant: VariantSolid, Short: "Premium"},
}

// aliases maps accepted short spellings of a platform key to the
// canonical identifier. Keys are matched case-insensitively.
var aliases = map[string]Platform{
	"tg":        Telegram,
	"telegram":  Telegram,
	"priv":      Privacy,
	"privacy":   Privacy,
	"fans":      TopFans,
	"topfans":   TopFans,
	"insta":     Instagram,
	"instagram": Instagram,
	"x":         X,
	"twitter":   X,
	"wa":        WhatsApp,
	"whatsapp":  WhatsApp,
	"tree":      Linktree,
	"linktree":  Linktree,
	"onlyfans":  OnlyFans,
}

// hostRule matches a platform by URL host substring. Rules are evaluated
// in order; the first match wins.
type hostRule struct {
	substrings []string
	platform   Platform
}

var hostRules = []hostRule{
	{[]string{"topfans"}, TopFans},
	{[]string{"privacy.com.br"}, Privacy},
	{[]string{"t.me", "telegram.me"}, Telegram},
	{[]string{"instagram.com"}, Instagram},
	{[]string{"whatsapp.com"}, WhatsApp},
	{[]string{"x.com", "twitter.com"}, X},
	{[]string{"linktr.ee", "linktree"}, Linktree},
	{[]string{"onlyfans"}, OnlyFans},
}

// NormalizeKey resolves an explicit platform key, accepting known short
// aliases. Unknown or empty keys return Default.
func NormalizeKey(key string) Platform {
	if p, ok := aliases[strings.ToLower(strings.TrimSpace(key))]; ok {
		return p
	}
	return Default
}

// FromURL derives a platform from a URL's hostname. The host is matched
// case-insensitively with a leading "www." stripped. Malformed URLs are
// treated as unmatched, never as an error.
func FromURL(rawURL string) Platform {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Default
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return Default
	}

	for _, rule := range hostRules {
		for _, sub := range rule.substrings {
			if strings.Contains(host, sub) {
				return rule.platform
			}
		}
	}
	return Default
}

// Identify returns the platform for a link: the explicit key when present,
// otherwise the platform derived from the URL. A present-but-unknown key
// resolves to Default; the URL is only consulted when no key is set at all.
// The derivation happens at render time only — it is never persisted back
// onto the record.
func Identify(platformKey, rawURL string) Platform {
	if strings.TrimSpace(platformKey) != "" {
		return NormalizeKey(platformKey)
	}
	return FromURL(rawURL)
}

// Resolve returns the presentation metadata for a link. Deterministic:
// identical input always yields identical output.
func Resolve(platformKey, rawURL string) (Platform, Meta) {
	p := Identify(platformKey, rawURL)
	meta, ok := registry[p]
	if !ok {
		return Default, registry[Default]
	}
	return p, meta
}

// Lookup returns the registry entry for a platform, falling back to the
// Default entry for unknown platforms.
func Lookup(p Platform) Meta {
	if meta, ok := registry[p]; ok {
		return meta
	}
	return registry[Default]
}
