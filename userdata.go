//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"github.com/obinnaokechukwu/glfwgo/internal/state"
)

// Each handle kind gets a process-wide table mapping the native handle value
// to the Go-side aggregate attached to it: one topic per event kind plus the
// user-defined pass-through slot. GLFW's own per-handle user pointer cannot
// hold Go memory, so these tables are the retention mechanism; entries are
// created lazily on first listener registration (or first user-pointer
// access) and deleted when the handle is destroyed or disconnects.

// windowData is the per-window aggregate.
type windowData struct {
	handle uintptr

	pos      *topic[WindowPosEvent]
	size     *topic[WindowSizeEvent]
	close    *topic[WindowCloseEvent]
	refresh  *topic[WindowRefreshEvent]
	focus    *topic[WindowFocusEvent]
	iconify  *topic[WindowIconifyEvent]
	maximize *topic[WindowMaximizeEvent]
	fbSize   *topic[FramebufferSizeEvent]
	scale    *topic[ContentScaleEvent]

	key         *topic[KeyEvent]
	char        *topic[CharEvent]
	charMods    *topic[CharModsEvent]
	mouseButton *topic[MouseButtonEvent]
	cursorPos   *topic[CursorPosEvent]
	cursorEnter *topic[CursorEnterEvent]
	scroll      *topic[ScrollEvent]
	drop        *topic[DropEvent]

	userPtr any
}

var windowTable = state.NewTable[windowData]()

// windowCallbackTopic builds a topic whose install/uninstall hooks flip one
// of GLFW's per-window callback slots between the given trampoline and NULL.
func windowCallbackTopic[E any](h uintptr, set func(window, cb uintptr) uintptr, tramp func() uintptr) *topic[E] {
	return newTopic[E](
		func() {
			if set != nil {
				set(h, tramp())
			}
		},
		func() {
			if set != nil {
				set(h, 0)
			}
		},
	)
}

func newWindowData(h uintptr) *windowData {
	return &windowData{
		handle: h,

		pos:      windowCallbackTopic[WindowPosEvent](h, glfwSetWindowPosCallback, windowPosTrampoline),
		size:     windowCallbackTopic[WindowSizeEvent](h, glfwSetWindowSizeCallback, windowSizeTrampoline),
		close:    windowCallbackTopic[WindowCloseEvent](h, glfwSetWindowCloseCallback, windowCloseTrampoline),
		refresh:  windowCallbackTopic[WindowRefreshEvent](h, glfwSetWindowRefreshCallback, windowRefreshTrampoline),
		focus:    windowCallbackTopic[WindowFocusEvent](h, glfwSetWindowFocusCallback, windowFocusTrampoline),
		iconify:  windowCallbackTopic[WindowIconifyEvent](h, glfwSetWindowIconifyCallback, windowIconifyTrampoline),
		maximize: windowCallbackTopic[WindowMaximizeEvent](h, glfwSetWindowMaximizeCallback, windowMaximizeTrampoline),
		fbSize:   windowCallbackTopic[FramebufferSizeEvent](h, glfwSetFramebufferSizeCallback, framebufferSizeTrampoline),
		scale:    windowCallbackTopic[ContentScaleEvent](h, glfwSetWindowContentScaleCallback, contentScaleTrampoline),

		key:         windowCallbackTopic[KeyEvent](h, glfwSetKeyCallback, keyTrampoline),
		char:        windowCallbackTopic[CharEvent](h, glfwSetCharCallback, charTrampoline),
		charMods:    windowCallbackTopic[CharModsEvent](h, glfwSetCharModsCallback, charModsTrampoline),
		mouseButton: windowCallbackTopic[MouseButtonEvent](h, glfwSetMouseButtonCallback, mouseButtonTrampoline),
		cursorPos:   windowCallbackTopic[CursorPosEvent](h, glfwSetCursorPosCallback, cursorPosTrampoline),
		cursorEnter: windowCallbackTopic[CursorEnterEvent](h, glfwSetCursorEnterCallback, cursorEnterTrampoline),
		scroll:      windowCallbackTopic[ScrollEvent](h, glfwSetScrollCallback, scrollTrampoline),
		drop:        windowCallbackTopic[DropEvent](h, glfwSetDropCallback, dropTrampoline),
	}
}

// windowDataFor returns the aggregate for h, creating it on first access.
func windowDataFor(h uintptr) *windowData {
	return windowTable.GetOrCreate(h, func() *windowData { return newWindowData(h) })
}

// teardown clears every topic, uninstalling the native callbacks that were
// installed. Must run while the native handle is still valid.
func (d *windowData) teardown() {
	d.pos.clear()
	d.size.clear()
	d.close.clear()
	d.refresh.clear()
	d.focus.clear()
	d.iconify.clear()
	d.maximize.clear()
	d.fbSize.clear()
	d.scale.clear()

	d.key.clear()
	d.char.clear()
	d.charMods.clear()
	d.mouseButton.clear()
	d.cursorPos.clear()
	d.cursorEnter.clear()
	d.scroll.clear()
	d.drop.clear()

	d.userPtr = nil
}

// dropWindowData tears down and forgets the aggregate for h, if any.
func dropWindowData(h uintptr) {
	if d := windowTable.Lookup(h); d != nil {
		d.teardown()
		windowTable.Delete(h)
	}
}

// monitorData is the per-monitor aggregate.
type monitorData struct {
	handle     uintptr
	disconnect *topic[MonitorDisconnectEvent]
	userPtr    any
}

var monitorTable = state.NewTable[monitorData]()

func newMonitorData(h uintptr) *monitorData {
	return &monitorData{
		handle:     h,
		disconnect: newTopic[MonitorDisconnectEvent](monitorSlot.acquire, monitorSlot.release),
	}
}

func monitorDataFor(h uintptr) *monitorData {
	return monitorTable.GetOrCreate(h, func() *monitorData { return newMonitorData(h) })
}

func (d *monitorData) teardown() {
	d.disconnect.clear()
	d.userPtr = nil
}

func dropMonitorData(h uintptr) {
	if d := monitorTable.Lookup(h); d != nil {
		d.teardown()
		monitorTable.Delete(h)
	}
}

// joystickData is the per-joystick aggregate, keyed by joystick id.
type joystickData struct {
	jid        int32
	disconnect *topic[JoystickDisconnectEvent]
	userPtr    any
}

var joystickTable = state.NewTable[joystickData]()

func newJoystickData(jid int32) *joystickData {
	return &joystickData{
		jid:        jid,
		disconnect: newTopic[JoystickDisconnectEvent](joystickSlot.acquire, joystickSlot.release),
	}
}

func joystickDataFor(jid int32) *joystickData {
	return joystickTable.GetOrCreate(uintptr(jid), func() *joystickData { return newJoystickData(jid) })
}

func (d *joystickData) teardown() {
	d.disconnect.clear()
	d.userPtr = nil
}

func dropJoystickData(jid int32) {
	if d := joystickTable.Lookup(uintptr(jid)); d != nil {
		d.teardown()
		joystickTable.Delete(uintptr(jid))
	}
}

// teardownAll releases every aggregate. Called by Terminate, after which all
// native handles are dead anyway.
func teardownAll() {
	for _, h := range windowTable.Handles() {
		dropWindowData(h)
	}
	for _, h := range monitorTable.Handles() {
		dropMonitorData(h)
	}
	for _, h := range joystickTable.Handles() {
		dropJoystickData(int32(h))
	}
	monitorConnectTopic.clear()
	monitorDisconnectTopic.clear()
	joystickConnectTopic.clear()
	joystickDisconnectTopic.clear()
	errorTopic.clear()
}
