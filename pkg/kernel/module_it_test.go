//go:build integration
// +build integration

package kernel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// These tests drive the real kernel through modprobe, so they need root and
// are kept behind the integration tag. The dummy module is used as a harmless
// fixture; it loads on any stock kernel and nothing depends on it.

func requireRoot(t *testing.T) {
	t.Helper()

	if os.Geteuid() != 0 {
		t.Skip("requires root privileges")
	}
}

func TestModule_LoadUnloadCycle(t *testing.T) {
	requireRoot(t)

	module, err := NewModule("dummy")
	require.NoError(t, err)

	wasLoaded, wasPersisted, err := module.IsLoaded()
	require.NoError(t, err)
	if wasLoaded || wasPersisted {
		t.Skip("dummy module already in use on this host")
	}

	t.Cleanup(func() {
		_ = module.Unload(true)
	})

	require.NoError(t, module.Load(true))

	loaded, persisted, err := module.IsLoaded()
	require.NoError(t, err)
	require.True(t, loaded, "module must appear in /proc/modules after Load")
	require.True(t, persisted, "Load(persist) must write the modules-load.d drop-in")

	data, err := os.ReadFile(filepath.Join(modulesLoadDir, "dummy.conf"))
	require.NoError(t, err)
	require.Equal(t, "dummy\n", string(data))

	require.NoError(t, module.Unload(true))

	loaded, persisted, err = module.IsLoaded()
	require.NoError(t, err)
	require.False(t, loaded)
	require.False(t, persisted)
}

func TestModule_LoadIsIdempotent(t *testing.T) {
	requireRoot(t)

	module, err := NewModule("dummy")
	require.NoError(t, err)

	wasLoaded, _, err := module.IsLoaded()
	require.NoError(t, err)
	if wasLoaded {
		t.Skip("dummy module already in use on this host")
	}

	t.Cleanup(func() {
		_ = module.Unload(true)
	})

	require.NoError(t, module.Load(false))
	require.NoError(t, module.Load(false), "loading an already loaded module must succeed")

	_, persisted, err := module.IsLoaded()
	require.NoError(t, err)
	require.False(t, persisted, "Load without persist must not write a drop-in")
}

func TestModule_LoadNonexistentFails(t *testing.T) {
	requireRoot(t)

	module, err := NewModule("printbot_no_such_module_42")
	require.NoError(t, err)

	require.Error(t, module.Load(false))

	loaded, _, err := module.IsLoaded()
	require.NoError(t, err)
	require.False(t, loaded)
}

func TestModule_UnloadNotLoadedSucceeds(t *testing.T) {
	requireRoot(t)

	module, err := NewModule("printbot_no_such_module_42")
	require.NoError(t, err)

	// unloading something that is not loaded is a no-op, not an error
	require.NoError(t, module.Unload(true))
}
