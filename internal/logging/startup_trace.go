package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records milestones from process launch to the first rendered
// frame. Enabled only when the log level is debug or trace.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	milestones []Milestone
	enabled    bool
	logger     *zerolog.Logger
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace at now. A nil or disabled trace is a no-op.
func NewStartupTrace(level zerolog.Level) *StartupTrace {
	return &StartupTrace{
		t0:      time.Now(),
		enabled: level <= zerolog.DebugLevel,
	}
}

// SetLogger attaches the logger and replays milestones recorded before it.
func (st *StartupTrace) SetLogger(logger *zerolog.Logger) {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.logger = logger
	for _, m := range st.milestones {
		st.emitMilestone(m)
	}
}

// Mark records a milestone with the given name.
func (st *StartupTrace) Mark(name string) {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	var delta time.Duration
	if n := len(st.milestones); n > 0 {
		delta = elapsed - st.milestones[n-1].Elapsed
	}

	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)
	st.emitMilestone(m)
}

// emitMilestone logs a single milestone. Caller must hold mutex.
func (st *StartupTrace) emitMilestone(m Milestone) {
	if st.logger == nil {
		return
	}

	st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", m.Elapsed.Milliseconds()).
		Int64("delta_ms", m.Delta.Milliseconds()).
		Msgf("startup_trace: %s (T+%dms)", m.Name, m.Elapsed.Milliseconds())
}

// Finish emits a one-line summary. Later marks are ignored.
func (st *StartupTrace) Finish() {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	if st.logger == nil {
		return
	}

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}

	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: first frame ready")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Milestone, len(st.milestones))
	copy(out, st.milestones)
	return out
}
