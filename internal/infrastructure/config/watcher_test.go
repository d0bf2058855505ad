package config

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedManager(t *testing.T) (*Manager, string) {
	t.Helper()
	path := tempConfigFile(t)
	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr, path
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	mgr, path := loadedManager(t)

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })
	mgr.OnConfigChange(nil)

	cfg := mgr.Get()
	cfg.Tabs.Padding = 2
	require.NoError(t, WriteConfigOrdered(cfg, path))

	require.NoError(t, mgr.Reload())

	require.Len(t, got, 1)
	assert.InDelta(t, 2, got[0].Tabs.Padding, 1e-9)
	assert.InDelta(t, 2, mgr.Get().Tabs.Padding, 1e-9)
}

func TestManager_ReloadKeepsConfigOnInvalidFile(t *testing.T) {
	mgr, path := loadedManager(t)
	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	require.NoError(t, os.WriteFile(path, []byte("[drop_zones]\nzone_size = -1\n"), filePerm))

	require.Error(t, mgr.Reload())
	assert.False(t, called)
	assert.InDelta(t, 32, mgr.Get().DropZones.ZoneSize, 1e-9)
}

func TestManager_WatchPicksUpExternalEdits(t *testing.T) {
	mgr, path := loadedManager(t)

	var mu sync.Mutex
	var latest *Config
	mgr.OnConfigChange(func(c *Config) {
		mu.Lock()
		latest = c
		mu.Unlock()
	})

	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()), "second call is a no-op")
	assert.True(t, mgr.IsWatching())

	cfg := mgr.Get()
	cfg.Dock.SplitterThickness = 9
	require.NoError(t, WriteConfigOrdered(cfg, path))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return latest != nil && latest.Dock.SplitterThickness == 9
	}, 3*time.Second, 20*time.Millisecond)
}

func TestManager_SaveWhileWatchingUpdatesMemory(t *testing.T) {
	mgr, _ := loadedManager(t)
	require.NoError(t, mgr.Watch(context.Background()))

	cfg := mgr.Get()
	cfg.Dock.TabBarHeight = 28
	require.NoError(t, mgr.Save(cfg))

	assert.InDelta(t, 28, mgr.Get().Dock.TabBarHeight, 1e-9)
}
