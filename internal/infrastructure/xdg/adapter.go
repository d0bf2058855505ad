package xdg

import (
	"os"
	"path/filepath"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

// LogDir holds session log files. Logs are state, so they live under StateDir.
func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

// ManDir is the user's man1 directory under XDG_DATA_HOME so that
// 'man dockyard' works without touching MANPATH.
func (a *Adapter) ManDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "man", "man1"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)
