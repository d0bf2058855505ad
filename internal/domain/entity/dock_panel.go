package entity

import "sync/atomic"

// PanelIDSource hands out panel ids that stay unique across every dock area
// sharing it. Hosts create one per process and pass it to NewPanel.
type PanelIDSource struct {
	last atomic.Uint32
}

// NewPanelIDSource returns a source whose first id is 1.
func NewPanelIDSource() *PanelIDSource {
	return &PanelIDSource{}
}

// Next returns a fresh panel id.
func (s *PanelIDSource) Next() PanelID {
	return PanelID(s.last.Add(1))
}

// Panel is a titled content slot living in exactly one Tabs node at a time.
// It does not know about the tree shape beyond its owner.
type Panel struct {
	id        PanelID
	panelType string
	title     string
	closable  bool
	minSize   Vec2
	iconRef   string

	owner  *Node // non-owning
	bounds Rect

	titleListeners []func(string)
}

// NewPanel creates a detached panel with a fresh id from ids.
func NewPanel(ids *PanelIDSource, title string) *Panel {
	return &Panel{
		id:       ids.Next(),
		title:    title,
		closable: true,
		minSize:  Vec2{X: 100, Y: 100},
	}
}

// ID returns the panel id.
func (p *Panel) ID() PanelID { return p.id }

// Title returns the tab title.
func (p *Panel) Title() string { return p.title }

// SetTitle changes the title and notifies listeners when it differs.
func (p *Panel) SetTitle(title string) {
	if p.title == title {
		return
	}
	p.title = title
	for _, fn := range p.titleListeners {
		fn(title)
	}
}

// OnTitleChanged registers a listener for title changes.
func (p *Panel) OnTitleChanged(fn func(string)) {
	p.titleListeners = append(p.titleListeners, fn)
}

// PanelType returns the host-defined panel kind (e.g. "inspector").
func (p *Panel) PanelType() string { return p.panelType }

// SetPanelType sets the host-defined panel kind.
func (p *Panel) SetPanelType(kind string) { p.panelType = kind }

// Closable reports whether the tab shows a close button.
func (p *Panel) Closable() bool { return p.closable }

// SetClosable toggles the close button.
func (p *Panel) SetClosable(closable bool) { p.closable = closable }

// MinSize returns the preferred minimum size.
func (p *Panel) MinSize() Vec2 { return p.minSize }

// SetMinSize sets the preferred minimum size.
func (p *Panel) SetMinSize(size Vec2) { p.minSize = size }

// IconRef returns the host's icon reference, empty for none.
func (p *Panel) IconRef() string { return p.iconRef }

// SetIconRef sets the host's icon reference.
func (p *Panel) SetIconRef(ref string) { p.iconRef = ref }

// Owner returns the Tabs node holding this panel, nil when detached.
func (p *Panel) Owner() *Node { return p.owner }

// Tree returns the dock tree containing this panel, nil when detached.
func (p *Panel) Tree() *Tree {
	if p.owner == nil {
		return nil
	}
	return p.owner.tree
}

// Bounds returns the content rectangle from the last layout pass.
func (p *Panel) Bounds() Rect { return p.bounds }

// Layout records the content rectangle assigned by the owning node.
func (p *Panel) Layout(bounds Rect) { p.bounds = bounds }
