package port

import "github.com/bnema/dockyard/internal/domain/entity"

// Color is a straight-alpha RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns the colour with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// HAlign positions text horizontally inside its bounds.
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// VAlign positions text vertically inside its bounds.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// Renderer is the batch drawing surface a dock area paints on once per frame.
// Implementations decide how primitives map to pixels or terminal cells.
type Renderer interface {
	// DrawRect fills a rectangle.
	DrawRect(bounds entity.Rect, color Color)

	// DrawRoundedRect fills a rectangle with rounded corners.
	DrawRoundedRect(bounds entity.Rect, color Color, radius float64)

	// DrawRoundedRectOutline strokes a rounded rectangle.
	DrawRoundedRectOutline(bounds entity.Rect, color Color, radius, thickness float64)

	// DrawLine draws a straight segment.
	DrawLine(from, to entity.Vec2, color Color, thickness float64)

	// PushClip intersects the clip region with bounds until the matching PopClip.
	PushClip(bounds entity.Rect)

	// PopClip restores the clip region saved by the last PushClip.
	PopClip()

	// DrawTextInBounds draws a single line of text aligned inside bounds.
	DrawTextInBounds(text string, bounds entity.Rect, color Color, hAlign HAlign, vAlign VAlign)
}

// Theme is the palette used by the dock area, its tab bars and the drop
// zone overlays.
type Theme struct {
	Accent        Color
	AccentHover   Color
	Border        Color
	BgDark        Color
	BgMedium      Color
	BgLight       Color
	TextPrimary   Color
	TextSecondary Color
	Error         Color
	ZoneIdle      Color
}
