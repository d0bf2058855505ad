package dock_test

import (
	"context"
	"testing"

	"go.uber.org/goleak"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("disabled", "console")
	return logging.WithContext(context.Background(), logger)
}

// eventLog records everything an area publishes.
type eventLog struct {
	events    []entity.DockEvent
	closed    []entity.PanelID
	activated []entity.PanelID
	layouts   int
}

func (l *eventLog) attach(a *dock.Area) {
	a.OnEvent(func(e entity.DockEvent) { l.events = append(l.events, e) })
	a.OnPanelClosed(func(id entity.PanelID) { l.closed = append(l.closed, id) })
	a.OnPanelActivated(func(id entity.PanelID) { l.activated = append(l.activated, id) })
	a.OnLayoutChanged(func() { l.layouts++ })
}

func eventsOfType[T entity.DockEvent](l *eventLog) []T {
	var out []T
	for _, e := range l.events {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

type areaFixture struct {
	area *dock.Area
	ids  *entity.PanelIDSource
	log  *eventLog
}

func newAreaFixture(opts ...dock.Option) *areaFixture {
	a := dock.NewArea(testContext(), opts...)
	l := &eventLog{}
	l.attach(a)
	return &areaFixture{area: a, ids: entity.NewPanelIDSource(), log: l}
}

func (f *areaFixture) panel(title string) *entity.Panel {
	return entity.NewPanel(f.ids, title)
}
