package port

// ColorSchemePreference represents the resolved color scheme preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	Source string
}

// ColorSchemeDetector detects whether the terminal prefers a dark palette.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values are checked first.
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}
