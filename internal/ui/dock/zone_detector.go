package dock

import (
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	zoneCornerRadius = 4.0
	zoneIconScale    = 0.4
)

// ZoneDetector tracks a single panel drag session: Idle until BeginDrag,
// Dragging until EndDrag or CancelDrag. While dragging it classifies the
// pointer into a drop zone over the leaf under it and keeps the overlays
// and landing preview for that leaf. It never mutates the tree.
type ZoneDetector struct {
	tree     *entity.Tree
	settings ZoneSettings

	dragging     bool
	draggedPanel *entity.Panel
	startPos     entity.Vec2
	currentPos   entity.Vec2
	target       entity.DropTarget
	overlays     []entity.ZoneOverlay
}

// NewZoneDetector creates a detector over tree.
func NewZoneDetector(tree *entity.Tree, settings ZoneSettings) *ZoneDetector {
	return &ZoneDetector{
		tree:     tree,
		settings: settings,
		target:   entity.DropTarget{SplitRatio: settings.SplitRatio},
	}
}

// Settings returns the current tuning.
func (d *ZoneDetector) Settings() ZoneSettings { return d.settings }

// ApplySettings replaces the tuning. A live drag picks it up on its next update.
func (d *ZoneDetector) ApplySettings(settings ZoneSettings) {
	d.settings = settings
}

// BeginDrag starts a session for panel. Any previous session is discarded.
func (d *ZoneDetector) BeginDrag(panel *entity.Panel, pos entity.Vec2) {
	d.dragging = true
	d.draggedPanel = panel
	d.startPos = pos
	d.currentPos = pos
	d.target = d.emptyTarget()
	d.overlays = nil
}

// UpdateDrag reclassifies the pointer. It is a no-op when idle.
func (d *ZoneDetector) UpdateDrag(pos entity.Vec2) {
	if !d.dragging {
		return
	}
	d.currentPos = pos

	zone, node := d.DetectZoneAtPosition(pos)
	d.target.Zone = zone
	d.target.Target = node
	d.target.SplitRatio = d.settings.SplitRatio

	if zone != entity.DropZoneNone && node != nil {
		d.target.PreviewBounds = d.CalculatePreviewBounds(d.target)
		d.overlays = d.CalculateZoneOverlays(node)
		return
	}
	d.target.PreviewBounds = entity.Rect{}
	d.overlays = nil
}

// EndDrag finishes the session and returns the last computed target.
func (d *ZoneDetector) EndDrag() entity.DropTarget {
	result := d.target
	d.reset()
	return result
}

// CancelDrag aborts the session without reporting a target.
func (d *ZoneDetector) CancelDrag() {
	d.reset()
}

func (d *ZoneDetector) reset() {
	d.dragging = false
	d.draggedPanel = nil
	d.target = d.emptyTarget()
	d.overlays = nil
}

func (d *ZoneDetector) emptyTarget() entity.DropTarget {
	return entity.DropTarget{SplitRatio: d.settings.SplitRatio}
}

// IsDragging reports whether a session is live.
func (d *ZoneDetector) IsDragging() bool { return d.dragging }

// DraggedPanel returns the panel being dragged, nil when idle.
func (d *ZoneDetector) DraggedPanel() *entity.Panel { return d.draggedPanel }

// DragStart returns the position the session started at.
func (d *ZoneDetector) DragStart() entity.Vec2 { return d.startPos }

// DragPosition returns the last pointer position seen by the session.
func (d *ZoneDetector) DragPosition() entity.Vec2 { return d.currentPos }

// CurrentTarget returns the target computed by the last update.
func (d *ZoneDetector) CurrentTarget() entity.DropTarget { return d.target }

// Overlays returns a copy of the overlays for the current target.
func (d *ZoneDetector) Overlays() []entity.ZoneOverlay {
	if len(d.overlays) == 0 {
		return nil
	}
	out := make([]entity.ZoneOverlay, len(d.overlays))
	copy(out, d.overlays)
	return out
}

// DetectZoneAtPosition returns the zone under pos and the node it refers
// to. The last leaf containing pos wins; when no leaf does, the root is
// tried. Zones are tested in the order Left, Right, Top, Bottom, Center,
// so the horizontal edges win at corners.
func (d *ZoneDetector) DetectZoneAtPosition(pos entity.Vec2) (entity.DropZone, *entity.Node) {
	if d.tree == nil || d.tree.IsEmpty() {
		return entity.DropZoneNone, nil
	}
	root := d.tree.Root()

	var hit *entity.Node
	root.ForEachLeaf(func(leaf *entity.Node) {
		if leaf.Bounds().Contains(pos) {
			hit = leaf
		}
	})
	if hit == nil {
		if !root.Bounds().Contains(pos) {
			return entity.DropZoneNone, nil
		}
		hit = root
	}

	return d.classify(hit.Bounds(), pos), hit
}

func (d *ZoneDetector) classify(bounds entity.Rect, pos entity.Vec2) entity.DropZone {
	if bounds.Empty() {
		return entity.DropZoneNone
	}

	relX := (pos.X - bounds.X) / bounds.W
	relY := (pos.Y - bounds.Y) / bounds.H
	t := d.settings.EdgeThreshold

	switch {
	case relX < t:
		return entity.DropZoneLeft
	case relX > 1-t:
		return entity.DropZoneRight
	case relY < t:
		return entity.DropZoneTop
	case relY > 1-t:
		return entity.DropZoneBottom
	default:
		return entity.DropZoneCenter
	}
}

// CalculateZoneOverlays returns the five drop buttons centred on node in a
// plus pattern: Center, Left, Right, Top, Bottom. The edge buttons sit
// ZoneGap away from the center button.
func (d *ZoneDetector) CalculateZoneOverlays(node *entity.Node) []entity.ZoneOverlay {
	if node == nil {
		return nil
	}

	c := node.Bounds().Center()
	size := d.settings.ZoneSize
	half := size * 0.5
	offset := size + d.settings.ZoneGap

	square := func(zone entity.DropZone, dx, dy float64) entity.ZoneOverlay {
		return entity.ZoneOverlay{
			Zone:    zone,
			Bounds:  entity.Rect{X: c.X - half + dx, Y: c.Y - half + dy, W: size, H: size},
			Hovered: d.target.Zone == zone,
		}
	}

	return []entity.ZoneOverlay{
		square(entity.DropZoneCenter, 0, 0),
		square(entity.DropZoneLeft, -offset, 0),
		square(entity.DropZoneRight, offset, 0),
		square(entity.DropZoneTop, 0, -offset),
		square(entity.DropZoneBottom, 0, offset),
	}
}

// CalculatePreviewBounds returns where the dragged panel would land: the
// whole node for Center, a SplitRatio share carved from the matching side
// for an edge.
func (*ZoneDetector) CalculatePreviewBounds(target entity.DropTarget) entity.Rect {
	if target.Target == nil {
		return entity.Rect{}
	}

	b := target.Target.Bounds()
	r := target.SplitRatio

	switch target.Zone {
	case entity.DropZoneLeft:
		return entity.Rect{X: b.X, Y: b.Y, W: b.W * r, H: b.H}
	case entity.DropZoneRight:
		return entity.Rect{X: b.X + b.W*(1-r), Y: b.Y, W: b.W * r, H: b.H}
	case entity.DropZoneTop:
		return entity.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H * r}
	case entity.DropZoneBottom:
		return entity.Rect{X: b.X, Y: b.Y + b.H*(1-r), W: b.W, H: b.H * r}
	case entity.DropZoneCenter:
		return b
	default:
		return entity.Rect{}
	}
}

// Render draws the landing preview and the zone buttons. Nothing is drawn
// while idle.
func (d *ZoneDetector) Render(renderer port.Renderer, theme port.Theme) {
	if !d.dragging || renderer == nil {
		return
	}

	if d.target.Zone != entity.DropZoneNone {
		renderer.DrawRect(d.target.PreviewBounds, theme.Accent.WithAlpha(d.settings.PreviewAlpha))
	}
	for _, overlay := range d.overlays {
		d.renderZoneButton(renderer, theme, overlay)
	}
}

func (d *ZoneDetector) renderZoneButton(renderer port.Renderer, theme port.Theme, overlay entity.ZoneOverlay) {
	bg := theme.ZoneIdle
	icon := theme.TextSecondary
	if overlay.Hovered {
		bg = theme.Accent
		icon = theme.TextPrimary
	}

	renderer.DrawRoundedRect(overlay.Bounds, bg, zoneCornerRadius)
	renderer.DrawRoundedRectOutline(overlay.Bounds, theme.Accent, zoneCornerRadius, 1)

	c := overlay.Bounds.Center()
	size := d.settings.ZoneSize * zoneIconScale
	half := size * 0.5
	x, y := c.X-half, c.Y-half

	// Edge icons: a filled bar on the docking side, an outlined body opposite.
	switch overlay.Zone {
	case entity.DropZoneCenter:
		renderer.DrawRoundedRectOutline(entity.Rect{X: x, Y: y, W: size, H: size}, icon, 2, 1.5)
	case entity.DropZoneLeft:
		renderer.DrawRect(entity.Rect{X: x, Y: y, W: size * 0.4, H: size}, icon)
		renderer.DrawRoundedRectOutline(entity.Rect{X: x + size*0.5, Y: y, W: size * 0.5, H: size}, icon, 1, 1)
	case entity.DropZoneRight:
		renderer.DrawRoundedRectOutline(entity.Rect{X: x, Y: y, W: size * 0.5, H: size}, icon, 1, 1)
		renderer.DrawRect(entity.Rect{X: x + size*0.6, Y: y, W: size * 0.4, H: size}, icon)
	case entity.DropZoneTop:
		renderer.DrawRect(entity.Rect{X: x, Y: y, W: size, H: size * 0.4}, icon)
		renderer.DrawRoundedRectOutline(entity.Rect{X: x, Y: y + size*0.5, W: size, H: size * 0.5}, icon, 1, 1)
	case entity.DropZoneBottom:
		renderer.DrawRoundedRectOutline(entity.Rect{X: x, Y: y, W: size, H: size * 0.5}, icon, 1, 1)
		renderer.DrawRect(entity.Rect{X: x, Y: y + size*0.6, W: size, H: size * 0.4}, icon)
	}
}
