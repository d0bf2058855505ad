package dock

import (
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// Layout stretches the root over the area bounds and recomputes every
// node, panel and tab strip rectangle.
func (a *Area) Layout() {
	if a.tree.IsEmpty() {
		return
	}

	root := a.tree.Root()
	root.SetBounds(a.bounds)
	root.Layout(a.settings.SplitterThickness, a.settings.TabBarHeight)

	for _, leaf := range a.leaves() {
		if bar := a.tabBar(leaf); bar != nil {
			bar.Layout(leaf.TabBarBounds(a.settings.TabBarHeight))
		}
	}
}

// Render lays the tree out and paints it: panel content and tab strips per
// leaf, splitters over their children, then the drag overlays on top.
func (a *Area) Render(renderer port.Renderer) {
	if renderer == nil || a.tree.IsEmpty() {
		return
	}

	a.Layout()
	a.renderNode(renderer, a.tree.Root())
	a.detector.Render(renderer, a.theme)
}

func (a *Area) renderNode(renderer port.Renderer, node *entity.Node) {
	if node == nil {
		return
	}

	if node.IsSplit() {
		a.renderNode(renderer, node.First())
		a.renderNode(renderer, node.Second())
		a.renderSplitter(renderer, node)
		return
	}

	if bar := a.tabBar(node); bar != nil {
		bar.Render(renderer, a.theme)
	}
	a.renderContent(renderer, node)
}

func (a *Area) renderSplitter(renderer port.Renderer, node *entity.Node) {
	bounds := node.SplitterBounds(a.settings.SplitterThickness)

	color := a.theme.Border
	if a.draggedSplitter == node || bounds.Contains(a.lastMouse) {
		color = a.theme.Accent
	}
	renderer.DrawRect(bounds, color)
}

func (a *Area) renderContent(renderer port.Renderer, node *entity.Node) {
	content := node.ContentBounds()
	if content.Empty() {
		return
	}

	renderer.DrawRect(content, a.theme.BgMedium)

	panel := node.ActivePanel()
	if panel == nil {
		return
	}

	renderer.PushClip(content)
	defer renderer.PopClip()

	if a.painter != nil {
		a.painter(renderer, a.theme, panel, content)
		return
	}
	renderer.DrawTextInBounds(panel.Title(), content, a.theme.TextSecondary, port.HAlignCenter, port.VAlignMiddle)
}
