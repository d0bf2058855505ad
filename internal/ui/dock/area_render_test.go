package dock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/theme"
)

func TestArea_Render_EmptyDrawsNothing(t *testing.T) {
	f := newAreaFixture()
	renderer := mocks.NewMockRenderer(t)

	f.area.Render(renderer)
	f.area.Render(nil)
}

func TestArea_Render_SingleLeafDrawsTitle(t *testing.T) {
	f := newAreaFixture()
	f.area.AddPanel(f.panel("Inspector"), entity.DropZoneCenter, nil, 0)
	f.area.SetBounds(entity.Rect{W: 200, H: 100})
	th := f.area.Theme()
	content := entity.Rect{Y: 24, W: 200, H: 76}

	renderer := mocks.NewMockRenderer(t)
	renderer.EXPECT().DrawRect(content, th.BgMedium).Once()
	renderer.EXPECT().PushClip(content).Once()
	renderer.EXPECT().DrawTextInBounds("Inspector", content, th.TextSecondary, port.HAlignCenter, port.VAlignMiddle).Once()
	renderer.EXPECT().PopClip().Once()

	f.area.Render(renderer)

	assert.Equal(t, entity.Rect{W: 200, H: 100}, f.area.Root().Bounds())
}

func TestArea_Render_SplitterColour(t *testing.T) {
	f, _, _ := splitArea(t)
	th := f.area.Theme()
	splitter := f.area.Root().SplitterBounds(4)

	idle := mocks.NewMockRenderer(t)
	idle.EXPECT().DrawRect(splitter, th.Border).Once()
	idle.EXPECT().DrawRect(mock.Anything, th.BgMedium).Times(2)
	idle.EXPECT().PushClip(mock.Anything).Times(2)
	idle.EXPECT().DrawTextInBounds(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Times(2)
	idle.EXPECT().PopClip().Times(2)
	f.area.Render(idle)

	f.area.OnMouseMove(left(splitter.X+1, 150))
	hovered := mocks.NewMockRenderer(t)
	hovered.EXPECT().DrawRect(splitter, th.Accent).Once()
	hovered.EXPECT().DrawRect(mock.Anything, th.BgMedium).Times(2)
	hovered.EXPECT().PushClip(mock.Anything).Times(2)
	hovered.EXPECT().DrawTextInBounds(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Times(2)
	hovered.EXPECT().PopClip().Times(2)
	f.area.Render(hovered)
}

func TestArea_Render_UsesPanelPainterAndTabBars(t *testing.T) {
	var painted []string
	painter := func(_ port.Renderer, _ port.Theme, p *entity.Panel, bounds entity.Rect) {
		painted = append(painted, p.Title())
		assert.Equal(t, p.Bounds(), bounds)
	}

	h := newTabBarHarness(t)
	light := theme.DefaultLightPalette().Theme()
	f := newAreaFixture(
		dock.WithPanelPainter(painter),
		dock.WithTabBarFactory(h.factory),
		dock.WithTheme(light),
	)
	f.area.AddPanel(f.panel("Scene"), entity.DropZoneCenter, nil, 0)
	f.area.SetBounds(entity.Rect{W: 300, H: 200})

	renderer := mocks.NewMockRenderer(t)
	renderer.EXPECT().DrawRect(mock.Anything, light.BgMedium).Once()
	renderer.EXPECT().PushClip(mock.Anything).Once()
	renderer.EXPECT().PopClip().Once()

	f.area.Layout()
	require.Len(t, h.bars, 1)
	for _, bar := range h.bars {
		bar.EXPECT().Render(renderer, light).Once()
	}

	f.area.Render(renderer)

	assert.Equal(t, []string{"Scene"}, painted)
}

func TestArea_Render_DragOverlaysOnTop(t *testing.T) {
	f := newAreaFixture()
	p1 := f.panel("P1")
	f.area.AddPanel(p1, entity.DropZoneCenter, nil, 0)
	f.area.SetBounds(entity.Rect{W: 400, H: 300})
	f.area.Layout()
	th := f.area.Theme()

	f.area.BeginPanelDrag(p1, entity.Vec2{})
	f.area.OnMouseMove(left(200, 150))

	var calls []string

	renderer := mocks.NewMockRenderer(t)
	renderer.EXPECT().DrawRect(mock.Anything, th.BgMedium).Run(func(entity.Rect, port.Color) { calls = append(calls, "content") }).Once()
	renderer.EXPECT().PushClip(mock.Anything).Once()
	renderer.EXPECT().DrawTextInBounds(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()
	renderer.EXPECT().PopClip().Once()
	renderer.EXPECT().DrawRect(mock.Anything, th.Accent.WithAlpha(0.3)).Run(func(entity.Rect, port.Color) { calls = append(calls, "preview") }).Once()
	renderer.EXPECT().DrawRoundedRect(mock.Anything, mock.Anything, mock.Anything).Times(5)
	renderer.EXPECT().DrawRoundedRectOutline(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Times(10)
	renderer.EXPECT().DrawRect(mock.Anything, mock.Anything).Times(4)

	f.area.Render(renderer)

	assert.Equal(t, []string{"content", "preview"}, calls)
}
