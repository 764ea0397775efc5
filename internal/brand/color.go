// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"fmt"
	"strconv"
	"strings"
)

// hexToRGB parses a #RGB or #RRGGBB hex color. Invalid input yields black.
func hexToRGB(hex string) (r, g, b int) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0
	}
	n, err := strconv.ParseInt(h, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(n >> 16 & 0xFF), int(n >> 8 & 0xFF), int(n & 0xFF)
}

// WithAlpha returns a CSS rgba() value for a hex color at the given
// opacity. Used by the mobile dock to render translucent brand pills.
func WithAlpha(hex string, alpha float64) string {
	r, g, b := hexToRGB(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b,
		strconv.FormatFloat(alpha, 'g', -1, 64))
}

// DockColors derives the translucent pill colors the mobile dock uses for
// one brand: inverted brands keep their light background, solid brands get
// an alpha-blended tint of the brand color.
type DockColors struct {
	Background string
	HoverBg    string
	Border     string
	Text       string
}

// DockStyle computes the dock pill colors for a brand entry.
func DockStyle(m Meta) DockColors {
	if m.Variant == VariantInverted {
		border := m.Border
		if border == "" {
			border = m.Foreground
		}
		hover := m.Hover
		if hover == "" {
			hover = "#E5E7EB"
		}
		return DockColors{
			Background: m.Background,
			HoverBg:    hover,
			Border:     border,
			Text:       m.Foreground,
		}
	}

	base := m.Background
	return DockColors{
		Background: WithAlpha(base, 0.16),
		HoverBg:    WithAlpha(base, 0.26),
		Border:     WithAlpha(base, 0.7),
		Text:       base,
	}
}
