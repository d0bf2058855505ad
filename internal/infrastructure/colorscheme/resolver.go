// Package colorscheme picks the dark or light palette when the config
// leaves the choice to the terminal.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
)

// sourceFallback indicates no detector provided the preference.
const sourceFallback = "fallback"

// Resolver queries registered detectors in priority order.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
}

// NewResolver creates a resolver without detectors. It resolves to dark
// until one is registered.
func NewResolver() *Resolver {
	return &Resolver{}
}

// NewTerminalResolver creates a resolver with the COLORFGBG and terminal
// background detectors.
func NewTerminalResolver() *Resolver {
	r := NewResolver()
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewTerminalDetector())
	return r
}

// Resolve returns the preference of the first available detector that
// succeeds, or dark.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, detector := range r.detectors {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{
		PrefersDark: true,
		Source:      sourceFallback,
	}
}

// RegisterDetector adds a detector. Detectors stay sorted by priority,
// highest first.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.detectors = append(r.detectors, detector)
	sort.SliceStable(r.detectors, func(i, j int) bool {
		return r.detectors[i].Priority() > r.detectors[j].Priority()
	})
}
