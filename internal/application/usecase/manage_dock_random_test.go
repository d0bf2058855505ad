package usecase_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var randomZones = []entity.DropZone{
	entity.DropZoneNone,
	entity.DropZoneLeft,
	entity.DropZoneRight,
	entity.DropZoneTop,
	entity.DropZoneBottom,
	entity.DropZoneCenter,
	entity.DropZoneRoot,
}

func allNodes(tree *entity.Tree) []*entity.Node {
	var nodes []*entity.Node
	if root := tree.Root(); root != nil {
		root.ForEachNode(func(n *entity.Node) { nodes = append(nodes, n) })
	}
	return nodes
}

func emptyLeaves(tree *entity.Tree) int {
	count := 0
	if root := tree.Root(); root != nil {
		root.ForEachLeaf(func(n *entity.Node) {
			if n.IsEmpty() {
				count++
			}
		})
	}
	return count
}

// randomTarget picks an attached node most of the time, and otherwise nil
// or a node from no tree, which both fall back to the root.
func randomTarget(rng *rand.Rand, tree *entity.Tree) *entity.Node {
	nodes := allNodes(tree)
	switch n := rng.Intn(10); {
	case n == 0:
		return nil
	case n == 1:
		return entity.NewTabsNode(entity.NodeID(1000 + rng.Intn(10)))
	case len(nodes) == 0:
		return nil
	default:
		return nodes[rng.Intn(len(nodes))]
	}
}

func randomRatio(rng *rand.Rand) float64 {
	return []float64{rng.Float64(), rng.Float64(), 0, -1, 2, math.NaN()}[rng.Intn(6)]
}

func TestManageDock_RandomOperationsKeepTreeValid(t *testing.T) {
	seeds, steps := int64(300), 60
	if testing.Short() {
		seeds = 20
	}

	for seed := int64(1); seed <= seeds; seed++ {
		f := newDockFixture()
		rng := rand.New(rand.NewSource(seed))
		docked := 0

		for step := range steps {
			panels := f.tree.AllPanels()
			zone := randomZones[rng.Intn(len(randomZones))]
			target := randomTarget(rng, f.tree)
			op := "add"

			switch r := rng.Intn(10); {
			case r < 3 && len(panels) > 0:
				op = "remove"
				p := panels[rng.Intn(len(panels))]
				removed, _ := f.uc.RemovePanel(f.ctx, f.tree, p.ID())
				require.Same(t, p, removed, "seed %d step %d", seed, step)
				require.Nil(t, p.Owner(), "seed %d step %d", seed, step)
				docked--
			case r < 6 && len(panels) > 0:
				op = "move"
				p := panels[rng.Intn(len(panels))]
				f.uc.MovePanel(f.ctx, f.tree, p, entity.DropTarget{
					Zone:       zone,
					Target:     target,
					SplitRatio: randomRatio(rng),
				})
				require.NotNil(t, p.Owner(), "seed %d step %d: moved panel lost", seed, step)
			default:
				if f.uc.AddPanel(f.ctx, f.tree, f.panel("P"), zone, target, randomRatio(rng)) != nil {
					docked++
				}
			}

			require.NoError(t, f.tree.Validate(), "seed %d step %d (%s %s)\n%s", seed, step, op, zone, f.tree)
			require.Len(t, f.tree.AllPanels(), docked, "seed %d step %d (%s)", seed, step, op)
			require.Zero(t, emptyLeaves(f.tree), "seed %d step %d (%s): empty leaves must collapse", seed, step, op)
			require.Equal(t, docked == 0, f.tree.IsEmpty(), "seed %d step %d", seed, step)
		}
	}
}
