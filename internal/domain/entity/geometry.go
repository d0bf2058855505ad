package entity

// Vec2 is a point or size in screen space.
type Vec2 struct {
	X, Y float64
}

// Rect is a screen rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y float64 // Top-left position relative to the dock area's window
	W, H float64 // Width and height
}

// Contains reports whether p lies inside r. The far edges are exclusive so
// adjacent rectangles never both contain a point on their shared border.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Extent returns the rectangle's size along the given split axis.
func (r Rect) Extent(dir SplitDirection) float64 {
	if dir == SplitHorizontal {
		return r.W
	}
	return r.H
}

// Origin returns the rectangle's start coordinate along the given split axis.
func (r Rect) Origin(dir SplitDirection) float64 {
	if dir == SplitHorizontal {
		return r.X
	}
	return r.Y
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
