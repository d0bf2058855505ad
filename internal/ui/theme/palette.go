// Package theme provides the colour palettes used to paint dock areas.
package theme

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/dockyard/internal/application/port"
)

// Palette holds semantic color tokens as hex strings.
type Palette struct {
	Background     string // Panel content background
	Surface        string // Tab strip background
	SurfaceVariant string // Hovered tabs
	Text           string // Primary text color
	Muted          string // Secondary text, inactive tabs
	Accent         string // Active splitter, drop zones, active tab indicator
	AccentHover    string // Hovered accent surfaces
	Border         string // Splitters and outlines
	ZoneIdle       string // Drop zone buttons not under the pointer
	// Semantic status colors (not user-editable, derived defaults)
	Destructive string // Hovered close buttons
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#262626",
		Surface:        "#1a1a1a",
		SurfaceVariant: "#333333",
		Text:           "#f2f2f2",
		Muted:          "#b3b3b3",
		Accent:         "#4296fa",
		AccentHover:    "#59a6ff",
		Border:         "#404040",
		ZoneIdle:       "#4d4d4de6",
		Destructive:    "#e64d4d",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#fafafa",
		Surface:        "#ebebeb",
		SurfaceVariant: "#dcdcdc",
		Text:           "#1a1a1a",
		Muted:          "#666666",
		Accent:         "#2b7de9",
		AccentHover:    "#4a90ee",
		Border:         "#c8c8c8",
		ZoneIdle:       "#b4b4b4e6",
		Destructive:    "#dc2626",
	}
}

// Merge fills empty tokens of overrides from the dark or light defaults.
func Merge(overrides Palette, isDark bool) Palette {
	defaults := DefaultLightPalette()
	if isDark {
		defaults = DefaultDarkPalette()
	}

	return Palette{
		Background:     Coalesce(overrides.Background, defaults.Background),
		Surface:        Coalesce(overrides.Surface, defaults.Surface),
		SurfaceVariant: Coalesce(overrides.SurfaceVariant, defaults.SurfaceVariant),
		Text:           Coalesce(overrides.Text, defaults.Text),
		Muted:          Coalesce(overrides.Muted, defaults.Muted),
		Accent:         Coalesce(overrides.Accent, defaults.Accent),
		AccentHover:    Coalesce(overrides.AccentHover, defaults.AccentHover),
		Border:         Coalesce(overrides.Border, defaults.Border),
		ZoneIdle:       Coalesce(overrides.ZoneIdle, defaults.ZoneIdle),
		// Semantic colors always use defaults (not user-editable)
		Destructive: defaults.Destructive,
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB, #RRGGBBAA).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if color == "" {
		return nil // Empty is valid (will use default)
	}
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %s", color)
	}
	return nil
}

// Validate checks all palette colors are valid hex values.
func (p Palette) Validate() error {
	colors := map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"accent_hover":    p.AccentHover,
		"border":          p.Border,
		"zone_idle":       p.ZoneIdle,
	}

	for name, color := range colors {
		if err := ValidateHexColor(color); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// ParseColor converts a hex string to a renderer colour. An eighth and
// ninth hex digit set the alpha.
func ParseColor(hex string) (port.Color, error) {
	if err := ValidateHexColor(hex); err != nil {
		return port.Color{}, err
	}
	if hex == "" {
		return port.Color{}, fmt.Errorf("invalid hex color: empty")
	}

	alpha := 1.0
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return port.Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		alpha = float64(a) / 255
		hex = hex[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return port.Color{}, fmt.Errorf("invalid hex color: %s: %w", hex, err)
	}
	return port.Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// mustColor parses a token already known to be valid, falling back to
// magenta so a bad value is visible rather than silent.
func mustColor(hex string) port.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return port.Color{R: 1, B: 1, A: 1}
	}
	return c
}

// Theme converts the palette into renderer colours.
func (p Palette) Theme() port.Theme {
	return port.Theme{
		Accent:        mustColor(p.Accent),
		AccentHover:   mustColor(p.AccentHover),
		Border:        mustColor(p.Border),
		BgDark:        mustColor(p.Surface),
		BgMedium:      mustColor(p.Background),
		BgLight:       mustColor(p.SurfaceVariant),
		TextPrimary:   mustColor(p.Text),
		TextSecondary: mustColor(p.Muted),
		Error:         mustColor(p.Destructive),
		ZoneIdle:      mustColor(p.ZoneIdle),
	}
}
