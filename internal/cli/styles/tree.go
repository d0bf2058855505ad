package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// TreeRenderer renders a dock tree as a coloured outline.
type TreeRenderer struct {
	theme *Theme
}

// NewTreeRenderer creates a new tree renderer with the given theme.
func NewTreeRenderer(theme *Theme) *TreeRenderer {
	return &TreeRenderer{theme: theme}
}

// Render renders the outline of tree. Splits show direction and ratio,
// tab groups list their panels with the active one highlighted.
func (r *TreeRenderer) Render(tree *entity.Tree) string {
	if tree == nil || tree.IsEmpty() {
		return r.theme.Subtle.Render("<empty>")
	}

	var sb strings.Builder
	r.renderNode(&sb, tree.Root(), 0)
	return strings.TrimRight(sb.String(), "\n")
}

func (r *TreeRenderer) renderNode(sb *strings.Builder, node *entity.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	if node.IsSplit() {
		fmt.Fprintf(sb, "%s%s %s %s %s\n",
			indent,
			iconStyle.Render(IconPane),
			r.theme.Title.Render(fmt.Sprintf("split#%d", node.ID())),
			r.theme.Normal.Render(node.SplitDirection().String()),
			r.theme.Subtle.Render(fmt.Sprintf("ratio=%.2f", node.SplitRatio())),
		)
		r.renderNode(sb, node.First(), depth+1)
		r.renderNode(sb, node.Second(), depth+1)
		return
	}

	active := node.ActivePanel()
	titles := make([]string, 0, node.PanelCount())
	for _, p := range node.Panels() {
		if p == active {
			titles = append(titles, r.theme.Highlight.Render(p.Title()+"*"))
			continue
		}
		titles = append(titles, r.theme.Normal.Render(p.Title()))
	}

	fmt.Fprintf(sb, "%s%s %s [%s]\n",
		indent,
		iconStyle.Render(IconTree),
		r.theme.Title.Render(fmt.Sprintf("tabs#%d", node.ID())),
		strings.Join(titles, " "),
	)
}
