//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fake handle values standing in for native pointers. No native library is
// needed: the per-window callback setters are nil until Init, and the
// install/uninstall hooks tolerate that.
const (
	testHandle1 uintptr = 0x1000
	testHandle2 uintptr = 0x2000
)

func testWindow(t *testing.T, h uintptr) Window {
	t.Helper()
	t.Cleanup(func() { dropWindowData(h) })
	return Window{handle: h}
}

func TestWindowDataAggregateIdempotent(t *testing.T) {
	t.Cleanup(func() { dropWindowData(testHandle1) })

	d1 := windowDataFor(testHandle1)
	d2 := windowDataFor(testHandle1)
	assert.Same(t, d1, d2, "one aggregate per handle")
}

func TestWindowEventDispatchScenario(t *testing.T) {
	w := testWindow(t, testHandle1)

	var got []WindowSizeEvent
	h := w.OnSize(func(ev WindowSizeEvent) { got = append(got, ev) })

	dispatchWindowSize(testHandle1, 800, 600)
	require.Len(t, got, 1)
	assert.Equal(t, w, got[0].Window)
	assert.Equal(t, 800, got[0].Width)
	assert.Equal(t, 600, got[0].Height)

	require.True(t, w.RemoveSizeListener(h))
	dispatchWindowSize(testHandle1, 1024, 768)
	assert.Len(t, got, 1, "a removed listener must not fire")
}

func TestWindowEventPerHandleIsolation(t *testing.T) {
	w1 := testWindow(t, testHandle1)
	w2 := testWindow(t, testHandle2)

	fired1, fired2 := 0, 0
	w1.OnClose(func(WindowCloseEvent) { fired1++ })
	w2.OnClose(func(WindowCloseEvent) { fired2++ })

	dispatchWindowClose(testHandle1)
	assert.Equal(t, 1, fired1)
	assert.Equal(t, 0, fired2, "events for one handle must not leak to another")

	dispatchWindowClose(testHandle2)
	assert.Equal(t, 1, fired1)
	assert.Equal(t, 1, fired2)
}

func TestWindowEventDispatchWithoutAggregate(t *testing.T) {
	// A handle that never registered anything has no aggregate; the
	// trampoline body must treat that as a no-op.
	assert.NotPanics(t, func() { dispatchWindowPos(0xdead, 10, 20) })
	assert.Nil(t, windowTable.Lookup(0xdead), "dispatch must not create aggregates")
}

func TestWindowEventKindsIndependent(t *testing.T) {
	w := testWindow(t, testHandle1)

	keys, chars := 0, 0
	w.OnKey(func(KeyEvent) { keys++ })
	w.OnChar(func(CharEvent) { chars++ })

	dispatchKey(testHandle1, int32(KeyEscape), 9, int32(Press), 0)
	assert.Equal(t, 1, keys)
	assert.Equal(t, 0, chars, "event kinds must not cross-fire")
}

func TestKeyEventFields(t *testing.T) {
	w := testWindow(t, testHandle1)

	var got KeyEvent
	w.OnKey(func(ev KeyEvent) { got = ev })

	dispatchKey(testHandle1, int32(KeyA), 38, int32(Repeat), int32(ModShift|ModControl))
	assert.Equal(t, KeyA, got.Key)
	assert.Equal(t, 38, got.Scancode)
	assert.Equal(t, Repeat, got.Action)
	assert.True(t, got.Mods.Has(ModShift))
	assert.True(t, got.Mods.Has(ModControl))
	assert.False(t, got.Mods.Has(ModAlt))
}

func TestRemoveListenerAfterDrop(t *testing.T) {
	w := testWindow(t, testHandle1)

	h := w.OnSize(func(WindowSizeEvent) {})
	dropWindowData(testHandle1)

	assert.False(t, w.RemoveSizeListener(h), "removal after teardown must report false")
}

func TestDropWindowDataClearsListeners(t *testing.T) {
	w := testWindow(t, testHandle1)

	fired := 0
	w.OnRefresh(func(WindowRefreshEvent) { fired++ })
	dropWindowData(testHandle1)

	dispatchWindowRefresh(testHandle1)
	assert.Equal(t, 0, fired)
	assert.Nil(t, windowTable.Lookup(testHandle1))
}

func TestWindowUserPointer(t *testing.T) {
	w := testWindow(t, testHandle1)

	assert.Nil(t, w.UserPointer(), "fresh aggregate carries no user pointer")

	type appState struct{ frames int }
	s := &appState{frames: 7}
	w.SetUserPointer(s)

	got, ok := w.UserPointer().(*appState)
	require.True(t, ok)
	assert.Equal(t, 7, got.frames)

	w.SetUserPointer(nil)
	assert.Nil(t, w.UserPointer())
}

func TestUserPointerPerHandle(t *testing.T) {
	w1 := testWindow(t, testHandle1)
	w2 := testWindow(t, testHandle2)

	w1.SetUserPointer("one")
	w2.SetUserPointer("two")
	assert.Equal(t, "one", w1.UserPointer())
	assert.Equal(t, "two", w2.UserPointer())
}

func TestMonitorDisconnectTeardown(t *testing.T) {
	const mon uintptr = 0x3000
	t.Cleanup(func() { dropMonitorData(mon) })

	m := Monitor{handle: mon}
	instance, class := 0, 0
	m.OnDisconnect(func(MonitorDisconnectEvent) { instance++ })
	ch := OnMonitorDisconnect(func(MonitorDisconnectEvent) { class++ })
	t.Cleanup(func() { RemoveMonitorDisconnectListener(ch) })

	monitorTrampoline(mon, disconnected)
	assert.Equal(t, 1, instance, "instance listeners fire on disconnect")
	assert.Equal(t, 1, class, "class listeners fire on disconnect")
	assert.Nil(t, monitorTable.Lookup(mon), "disconnect tears down the aggregate")

	monitorTrampoline(mon, disconnected)
	assert.Equal(t, 1, instance, "instance listeners must not fire after teardown")
	assert.Equal(t, 2, class, "class listeners keep firing")
}

func TestMonitorConnectClassTopic(t *testing.T) {
	var got Monitor
	h := OnMonitorConnect(func(ev MonitorConnectEvent) { got = ev.Monitor })
	t.Cleanup(func() { RemoveMonitorConnectListener(h) })

	monitorTrampoline(0x4000, connected)
	assert.Equal(t, uintptr(0x4000), got.Handle())
}

func TestJoystickDisconnectTeardown(t *testing.T) {
	j := Joystick1
	t.Cleanup(func() { dropJoystickData(int32(j)) })

	instance, class := 0, 0
	j.OnDisconnect(func(JoystickDisconnectEvent) { instance++ })
	ch := OnJoystickDisconnect(func(JoystickDisconnectEvent) { class++ })
	t.Cleanup(func() { RemoveJoystickDisconnectListener(ch) })

	joystickTrampoline(int32(j), disconnected)
	assert.Equal(t, 1, instance)
	assert.Equal(t, 1, class)
	assert.Nil(t, joystickTable.Lookup(uintptr(j)), "disconnect tears down the aggregate")
}

func TestJoystickUserPointer(t *testing.T) {
	j := Joystick2
	t.Cleanup(func() { dropJoystickData(int32(j)) })

	j.SetUserPointer(99)
	assert.Equal(t, 99, j.UserPointer())
}

func TestTeardownAll(t *testing.T) {
	w := testWindow(t, testHandle1)
	w.OnSize(func(WindowSizeEvent) {})
	monitorDataFor(0x3000).userPtr = "m"
	joystickDataFor(int32(Joystick3)).userPtr = "j"
	ch := OnMonitorConnect(func(MonitorConnectEvent) {})
	_ = ch

	teardownAll()

	assert.Zero(t, windowTable.Count())
	assert.Zero(t, monitorTable.Count())
	assert.Zero(t, joystickTable.Count())
	assert.True(t, monitorConnectTopic.empty())
}
