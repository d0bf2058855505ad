// Package dock hosts the interactive docking area: the tree of splits and
// tab groups, the drop zone detector shown while a panel is dragged, and
// the pointer routing between splitters, tab bars and drag sessions.
package dock

import (
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// ZoneSettings tunes drop zone detection and the overlays drawn while a
// panel is dragged.
type ZoneSettings struct {
	// EdgeThreshold is the fraction of a leaf's width or height, measured
	// from each edge, that maps to an edge zone.
	EdgeThreshold float64
	// ZoneSize is the side of each overlay button.
	ZoneSize float64
	// ZoneGap separates the edge buttons from the center button.
	ZoneGap float64
	// PreviewAlpha is the opacity of the landing preview.
	PreviewAlpha float64
	// SplitRatio is the share given to the dropped panel on an edge drop.
	SplitRatio float64
}

// Settings are the geometric constants of a dock area.
type Settings struct {
	MinPanelSize      entity.Vec2
	SplitterThickness float64
	TabBarHeight      float64
	// DefaultDockRatio applies to AddPanel calls with a non-positive ratio.
	DefaultDockRatio float64
	Zones            ZoneSettings
}

// DefaultZoneSettings returns the stock detector tuning.
func DefaultZoneSettings() ZoneSettings {
	return ZoneSettings{
		EdgeThreshold: 0.3,
		ZoneSize:      32,
		ZoneGap:       4,
		PreviewAlpha:  0.3,
		SplitRatio:    usecase.DefaultDockRatio,
	}
}

// DefaultSettings returns the stock dock geometry.
func DefaultSettings() Settings {
	return Settings{
		MinPanelSize:      entity.Vec2{X: 100, Y: 100},
		SplitterThickness: 4,
		TabBarHeight:      24,
		DefaultDockRatio:  usecase.DefaultDockRatio,
		Zones:             DefaultZoneSettings(),
	}
}

// normalized replaces unusable values with defaults.
func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if s.SplitterThickness < 0 {
		s.SplitterThickness = def.SplitterThickness
	}
	if s.TabBarHeight < 0 {
		s.TabBarHeight = def.TabBarHeight
	}
	if s.DefaultDockRatio <= 0 || s.DefaultDockRatio >= 1 {
		s.DefaultDockRatio = def.DefaultDockRatio
	}
	if s.MinPanelSize.X < 0 {
		s.MinPanelSize.X = 0
	}
	if s.MinPanelSize.Y < 0 {
		s.MinPanelSize.Y = 0
	}

	z := &s.Zones
	if z.EdgeThreshold < 0 || z.EdgeThreshold > 0.5 {
		z.EdgeThreshold = def.Zones.EdgeThreshold
	}
	if z.ZoneSize <= 0 {
		z.ZoneSize = def.Zones.ZoneSize
	}
	if z.ZoneGap < 0 {
		z.ZoneGap = def.Zones.ZoneGap
	}
	if z.PreviewAlpha < 0 || z.PreviewAlpha > 1 {
		z.PreviewAlpha = def.Zones.PreviewAlpha
	}
	if z.SplitRatio <= 0 || z.SplitRatio >= 1 {
		z.SplitRatio = def.Zones.SplitRatio
	}
	return s
}

// PanelPainter draws the content of the active panel of a Tabs node inside
// its content rectangle. The area clips to bounds before calling it.
type PanelPainter func(renderer port.Renderer, theme port.Theme, panel *entity.Panel, bounds entity.Rect)

type options struct {
	settings Settings
	theme    port.Theme
	tabBars  port.TabBarFactory
	painter  PanelPainter
	useCase  *usecase.ManageDockUseCase
}

// Option configures an Area.
type Option func(*options)

// WithSettings overrides the default geometry.
func WithSettings(s Settings) Option {
	return func(o *options) { o.settings = s }
}

// WithTheme overrides the default dark palette.
func WithTheme(t port.Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithTabBarFactory sets how tab bars are created for Tabs nodes. Without
// one the area draws no tab strips and forwards no events to them.
func WithTabBarFactory(f port.TabBarFactory) Option {
	return func(o *options) { o.tabBars = f }
}

// WithPanelPainter sets the callback that fills panel content.
func WithPanelPainter(p PanelPainter) Option {
	return func(o *options) { o.painter = p }
}

func defaultOptions() options {
	return options{
		settings: DefaultSettings(),
		theme:    theme.DefaultDarkPalette().Theme(),
		useCase:  usecase.NewManageDockUseCase(),
	}
}
