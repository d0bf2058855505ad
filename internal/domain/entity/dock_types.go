// Package entity contains domain entities representing core docking concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// NodeID identifies a dock node within a single tree.
type NodeID uint32

// InvalidNodeID is never handed out by a Tree.
const InvalidNodeID NodeID = 0

// PanelID identifies a panel for the lifetime of its PanelIDSource.
type PanelID uint32

// InvalidPanelID is never handed out by a PanelIDSource.
const InvalidPanelID PanelID = 0

// SplitDirection indicates how a split node divides its bounds.
type SplitDirection int

const (
	SplitHorizontal SplitDirection = iota // Left | Right
	SplitVertical                         // Top / Bottom
)

// Opposite returns the other split axis.
func (d SplitDirection) Opposite() SplitDirection {
	if d == SplitHorizontal {
		return SplitVertical
	}
	return SplitHorizontal
}

func (d SplitDirection) String() string {
	switch d {
	case SplitHorizontal:
		return "horizontal"
	case SplitVertical:
		return "vertical"
	default:
		return fmt.Sprintf("SplitDirection(%d)", int(d))
	}
}

// DropZone classifies where a dragged panel lands relative to a target leaf.
type DropZone int

const (
	DropZoneNone   DropZone = iota // No valid drop zone
	DropZoneLeft                   // Dock to the left edge
	DropZoneRight                  // Dock to the right edge
	DropZoneTop                    // Dock to the top edge
	DropZoneBottom                 // Dock to the bottom edge
	DropZoneCenter                 // Tab into the existing container
	DropZoneRoot                   // Dock to the window edge
)

// IsEdge reports whether dropping in this zone creates a split.
func (z DropZone) IsEdge() bool {
	return z == DropZoneLeft || z == DropZoneRight || z == DropZoneTop || z == DropZoneBottom
}

// SplitDirection returns the split axis produced by an edge zone.
func (z DropZone) SplitDirection() SplitDirection {
	if z == DropZoneLeft || z == DropZoneRight {
		return SplitHorizontal
	}
	return SplitVertical
}

// InsertsFirst reports whether the new content becomes the first child.
func (z DropZone) InsertsFirst() bool {
	return z == DropZoneLeft || z == DropZoneTop
}

func (z DropZone) String() string {
	switch z {
	case DropZoneNone:
		return "none"
	case DropZoneLeft:
		return "left"
	case DropZoneRight:
		return "right"
	case DropZoneTop:
		return "top"
	case DropZoneBottom:
		return "bottom"
	case DropZoneCenter:
		return "center"
	case DropZoneRoot:
		return "root"
	default:
		return fmt.Sprintf("DropZone(%d)", int(z))
	}
}

// TabState is the visual state of a single tab.
type TabState int

const (
	TabNormal TabState = iota
	TabHovered
	TabActive
	TabDragging
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// MouseEvent is a pointer event delivered by the windowing layer.
type MouseEvent struct {
	X, Y   float64
	Button MouseButton
}

// Pos returns the event position.
func (e MouseEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// DropTarget describes where a dragged panel would land. Target is only
// meaningful while the drag session that produced it is live.
type DropTarget struct {
	Zone          DropZone
	Target        *Node
	SplitRatio    float64
	PreviewBounds Rect
}

// ZoneOverlay is one of the five drop indicators drawn over a target leaf.
type ZoneOverlay struct {
	Zone    DropZone
	Bounds  Rect
	Hovered bool
}
