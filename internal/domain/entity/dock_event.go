package entity

// DockEvent is implemented by every event a dock area publishes to its
// listeners. Type-switch on the concrete struct.
type DockEvent interface {
	dockEvent()
}

// PanelClosedEvent is published after a panel's close button removed it.
type PanelClosedEvent struct {
	PanelID PanelID
}

// PanelActivatedEvent is published when a tab is selected.
type PanelActivatedEvent struct {
	PanelID PanelID
	NodeID  NodeID
}

// PanelAddedEvent is published when a panel enters the tree.
type PanelAddedEvent struct {
	PanelID PanelID
	NodeID  NodeID
}

// PanelRemovedEvent is published when a panel leaves the tree.
type PanelRemovedEvent struct {
	PanelID PanelID
	NodeID  NodeID
}

// LayoutChangedEvent is published after every structural mutation.
type LayoutChangedEvent struct{}

// NodeSplitEvent is published when a node is wrapped into a new split.
type NodeSplitEvent struct {
	ParentID  NodeID
	NewNodeID NodeID
	Direction SplitDirection
}

// NodeMergedEvent is published when an empty leaf is garbage collected.
// Removed holds the leaf and, unless the tree became empty, the split that
// held it. Remaining is the sibling promoted into the split's place, or
// InvalidNodeID when the tree became empty.
type NodeMergedEvent struct {
	Removed   []NodeID
	Remaining NodeID
}

// SplitterChangedEvent is published while a splitter is dragged.
type SplitterChangedEvent struct {
	NodeID   NodeID
	OldRatio float64
	NewRatio float64
}

// DragStartEvent is published when a panel drag session begins.
type DragStartEvent struct {
	PanelID  PanelID
	Position Vec2
}

// DragUpdateEvent is published on every pointer move during a panel drag.
type DragUpdateEvent struct {
	PanelID      PanelID
	Position     Vec2
	Zone         DropZone
	TargetNodeID NodeID
}

// DragEndEvent is published when a panel drag session ends.
type DragEndEvent struct {
	PanelID      PanelID
	Zone         DropZone
	TargetNodeID NodeID
	Cancelled    bool
}

func (PanelClosedEvent) dockEvent()     {}
func (PanelActivatedEvent) dockEvent()  {}
func (PanelAddedEvent) dockEvent()      {}
func (PanelRemovedEvent) dockEvent()    {}
func (LayoutChangedEvent) dockEvent()   {}
func (NodeSplitEvent) dockEvent()       {}
func (NodeMergedEvent) dockEvent()      {}
func (SplitterChangedEvent) dockEvent() {}
func (DragStartEvent) dockEvent()       {}
func (DragUpdateEvent) dockEvent()      {}
func (DragEndEvent) dockEvent()         {}
