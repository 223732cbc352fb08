//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireGLFW skips the test when the GLFW shared library is not present or
// the platform refuses to initialize (headless CI has no display).
func requireGLFW(t *testing.T) {
	t.Helper()
	if err := registerBindings(); err != nil {
		t.Skipf("GLFW library not available: %v", err)
	}
	if err := Init(); err != nil {
		t.Skipf("GLFW failed to initialize: %v", err)
	}
	t.Cleanup(Terminate)
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "", goString(nil))

	b := append([]byte("libglfw"), 0)
	assert.Equal(t, "libglfw", goString(&b[0]))

	b2 := append([]byte("cut\x00rest"), 0)
	assert.Equal(t, "cut", goString(&b2[0]))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "release", Release.String())
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "repeat", Repeat.String())
}

func TestModifierKeyHas(t *testing.T) {
	m := ModShift | ModAlt
	assert.True(t, m.Has(ModShift))
	assert.True(t, m.Has(ModAlt))
	assert.False(t, m.Has(ModControl))
	assert.False(t, ModifierKey(0).Has(ModShift))
}

func TestNoWindowIsNil(t *testing.T) {
	assert.True(t, NoWindow.IsNil())
	assert.False(t, Window{handle: 1}.IsNil())
	assert.True(t, NoMonitor.IsNil())
}

func TestCallsBeforeLoadAreSafe(t *testing.T) {
	// Every wrapper is nil-guarded, so querying state before the library is
	// loaded degrades to zero values instead of crashing.
	if IsLoaded() {
		t.Skip("library already loaded in this process")
	}
	assert.NotPanics(t, func() {
		PollEvents()
		PostEmptyEvent()
		_ = GetTime()
		_, _, _ = Version()
		_ = NoWindow.ShouldClose()
	})
}

func TestInitAndVersion(t *testing.T) {
	requireGLFW(t)

	major, minor, rev := Version()
	require.Equal(t, 3, major)
	assert.GreaterOrEqual(t, minor, 0)
	assert.GreaterOrEqual(t, rev, 0)
	assert.NotEmpty(t, VersionString())
}

func TestMonitorsAfterInit(t *testing.T) {
	requireGLFW(t)

	mons := Monitors()
	if len(mons) == 0 {
		t.Skip("no monitors attached")
	}
	primary := PrimaryMonitor()
	require.False(t, primary.IsNil())
	assert.NotEmpty(t, primary.Name())

	mode, ok := primary.VideoMode()
	require.True(t, ok)
	assert.Greater(t, mode.Width, 0)
	assert.Greater(t, mode.Height, 0)
}

func TestCreateHiddenWindow(t *testing.T) {
	requireGLFW(t)

	DefaultWindowHints()
	WindowHint(HintVisible, False)

	w, err := CreateWindow(320, 240, "glfwgo test", NoMonitor, NoWindow)
	require.NoError(t, err)
	defer w.Destroy()

	width, height := w.Size()
	assert.Equal(t, 320, width)
	assert.Equal(t, 240, height)

	w.SetTitle("renamed")
	assert.False(t, w.ShouldClose())
	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())
}
