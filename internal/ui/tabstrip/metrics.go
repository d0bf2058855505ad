// Package tabstrip provides the default tab bar drawn on top of each tab
// group of a dock area.
package tabstrip

// Metrics sizes the tabs of a strip, in the same units as the area bounds.
type Metrics struct {
	MinTabWidth       float64
	MaxTabWidth       float64
	Padding           float64
	Spacing           float64
	CloseButtonSize   float64
	CloseButtonMargin float64
	IndicatorHeight   float64
	CloseThickness    float64
	// DragThreshold is the distance a pressed tab must travel before it
	// turns into a panel drag.
	DragThreshold float64
}

// DefaultMetrics returns the stock strip metrics.
func DefaultMetrics() Metrics {
	return Metrics{
		MinTabWidth:       60,
		MaxTabWidth:       200,
		Padding:           8,
		Spacing:           1,
		CloseButtonSize:   14,
		CloseButtonMargin: 4,
		IndicatorHeight:   2,
		CloseThickness:    1.5,
		DragThreshold:     5,
	}
}

func (m Metrics) normalized() Metrics {
	def := DefaultMetrics()
	if m.MinTabWidth <= 0 {
		m.MinTabWidth = def.MinTabWidth
	}
	if m.MaxTabWidth < m.MinTabWidth {
		m.MaxTabWidth = m.MinTabWidth
	}
	if m.Padding < 0 {
		m.Padding = 0
	}
	if m.Spacing < 0 {
		m.Spacing = 0
	}
	if m.CloseButtonSize < 0 {
		m.CloseButtonSize = 0
	}
	if m.DragThreshold < 0 {
		m.DragThreshold = 0
	}
	return m
}
