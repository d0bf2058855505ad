package styles_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestTreeRenderer_Empty(t *testing.T) {
	r := styles.NewTreeRenderer(styles.NewTheme(nil))

	require.Equal(t, "<empty>", ansi.Strip(r.Render(entity.NewTree())))
	require.Equal(t, "<empty>", ansi.Strip(r.Render(nil)))
}

func TestTreeRenderer_Outline(t *testing.T) {
	ids := entity.NewPanelIDSource()
	tree := entity.NewTree()
	split := tree.NewSplit(entity.SplitHorizontal)
	left := tree.NewTabs()
	left.AddPanel(entity.NewPanel(ids, "Files"))
	right := tree.NewTabs()
	right.AddPanel(entity.NewPanel(ids, "Editor"))
	right.AddPanel(entity.NewPanel(ids, "Preview"))
	split.SetFirst(left)
	split.SetSecond(right)
	tree.SetRoot(split)

	out := ansi.Strip(styles.NewTreeRenderer(styles.NewTheme(nil)).Render(tree))

	require.Contains(t, out, "split#")
	require.Contains(t, out, "ratio=0.50")
	require.Contains(t, out, "Files*")
	require.Contains(t, out, "Editor* Preview")
}
