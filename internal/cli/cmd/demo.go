package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/termcanvas"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/tabstrip"
)

var demoSnapshot bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay a scripted docking session without a terminal host",
	Long: `Run a scripted sequence of docking operations and print the tree
after each step, followed by a structural validation.

The steps cover docking into an empty area, docking at an edge,
closing a panel so its empty group merges away, drop zone detection and
dragging a splitter.

Examples:
  dockyard demo                  # Print every step
  dockyard demo --snapshot       # Also draw the final layout`,
	RunE: runDemoCmd,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoSnapshot, "snapshot", false, "draw the final layout on a 60x14 canvas")
}

func runDemoCmd(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return runDemo(app.Ctx(), cmd.OutOrStdout(), app.Theme, demoSnapshot)
}

// errDemoFailed reports a step whose outcome did not match.
var errDemoFailed = errors.New("demo step failed")

// demoStep is one scripted docking operation. check returns a description of the
// outcome or an error when the area is not in the expected state.
type demoStep struct {
	name  string
	check func() (string, error)
}

// runDemo replays the steps on a 400x300 area and writes a report to w.
func runDemo(ctx context.Context, w io.Writer, theme *styles.Theme, snapshot bool) error {
	log := logging.FromContext(ctx).With().Str("component", "demo").Logger()
	ctx = logging.WithContext(ctx, log)

	area := dock.NewArea(ctx, dock.WithTabBarFactory(tabstrip.NewFactory(tabstrip.DefaultMetrics())))
	area.SetBounds(entity.Rect{W: 400, H: 300})
	ids := entity.NewPanelIDSource()
	p1 := entity.NewPanel(ids, "P1")
	p2 := entity.NewPanel(ids, "P2")
	var original *entity.Node

	steps := []demoStep{
		{
			name: "dock P1 into an empty area",
			check: func() (string, error) {
				original = area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
				root := area.Root()
				if root == nil || !root.IsTabs() || root.PanelCount() != 1 || root.ActiveTabIndex() != 0 {
					return "", fmt.Errorf("root is not a tab group holding P1")
				}
				return "root is a tab group holding P1", nil
			},
		},
		{
			name: "dock P2 left of the root at 0.3",
			check: func() (string, error) {
				area.AddPanel(p2, entity.DropZoneLeft, area.Root(), 0.3)
				root := area.Root()
				switch {
				case !root.IsSplit() || root.SplitDirection() != entity.SplitHorizontal:
					return "", fmt.Errorf("root is not a horizontal split")
				case root.SplitRatio() != 0.3:
					return "", fmt.Errorf("split ratio is %.2f", root.SplitRatio())
				case root.Second() != original:
					return "", fmt.Errorf("P1's tab group was replaced")
				case root.First().ActivePanel() != p2:
					return "", fmt.Errorf("P2 is not in the first child")
				}
				return "root split horizontally, P2 first, P1 keeps its group", nil
			},
		},
		{
			name: "close P2",
			check: func() (string, error) {
				if !area.ClosePanel(p2.ID()) {
					return "", fmt.Errorf("P2 was not closed")
				}
				if area.Root() != original {
					return "", fmt.Errorf("the empty group was not merged away")
				}
				return "the empty group merged, P1's group is the root again", nil
			},
		},
		{
			name: "detect zones on a 200x100 leaf",
			check: func() (string, error) {
				detector := dock.NewZoneDetector(area.Tree(), dock.ZoneSettings{EdgeThreshold: 0.15})
				area.SetBounds(entity.Rect{W: 200, H: 100})
				area.Layout()

				left, _ := detector.DetectZoneAtPosition(entity.Vec2{X: 10, Y: 50})
				center, _ := detector.DetectZoneAtPosition(entity.Vec2{X: 100, Y: 50})
				if left != entity.DropZoneLeft || center != entity.DropZoneCenter {
					return "", fmt.Errorf("got %s and %s", left, center)
				}
				return fmt.Sprintf("(10,50) is %s, (100,50) is %s", left, center), nil
			},
		},
		{
			name: "drag the splitter of a 400 wide split to x=200",
			check: func() (string, error) {
				p3 := entity.NewPanel(ids, "P3")
				area.SetBounds(entity.Rect{W: 400, H: 300})
				area.AddPanel(p3, entity.DropZoneLeft, area.Root(), 0.3)
				area.Layout()

				root := area.Root()
				press := entity.MouseEvent{X: 120, Y: 150, Button: entity.MouseButtonLeft}
				if !area.OnMouseDown(press) || !area.IsDraggingSplitter() {
					return "", fmt.Errorf("no splitter under (120,150)")
				}
				area.OnMouseMove(entity.MouseEvent{X: 200, Y: 40, Button: entity.MouseButtonLeft})
				area.OnMouseUp(entity.MouseEvent{X: 200, Y: 40, Button: entity.MouseButtonLeft})
				if root.SplitRatio() != 0.5 {
					return "", fmt.Errorf("ratio is %.3f", root.SplitRatio())
				}
				return "ratio is 0.50", nil
			},
		},
	}

	tree := styles.NewTreeRenderer(theme)
	var failed int
	for _, step := range steps {
		fmt.Fprintln(w, theme.Title.Render(step.name))

		outcome, err := step.check()
		if err == nil {
			err = area.Tree().Validate()
		}
		if err != nil {
			failed++
			log.Error().Err(err).Str("step", step.name).Msg("demo step failed")
			fmt.Fprintf(w, "  %s %v\n", theme.ErrorStyle.Render(styles.IconX), err)
		} else {
			fmt.Fprintf(w, "  %s %s\n", theme.SuccessStyle.Render(styles.IconCheck), outcome)
		}
		fmt.Fprintln(w, indent(tree.Render(area.Tree()), "    "))
		fmt.Fprintln(w)
	}

	if snapshot {
		canvas := termcanvas.New(60, 14, termcanvas.WithCellSize(400.0/60, 300.0/14))
		area.Render(canvas)
		fmt.Fprintln(w, canvas.String())
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errDemoFailed, failed, len(steps))
	}
	fmt.Fprintln(w, theme.SuccessStyle.Render(fmt.Sprintf("All %d steps passed", len(steps))))
	return nil
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
