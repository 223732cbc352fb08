//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"github.com/ebitengine/purego"
)

// Window state events. Each value is an immutable snapshot built from the
// raw native callback arguments at dispatch time and is not retained after
// the listeners return.

// WindowPosEvent reports a window move.
type WindowPosEvent struct {
	Window Window
	X, Y   int
}

// WindowSizeEvent reports a content-area resize, in screen coordinates.
type WindowSizeEvent struct {
	Window        Window
	Width, Height int
}

// WindowCloseEvent reports that the user attempted to close the window.
type WindowCloseEvent struct {
	Window Window
}

// WindowRefreshEvent reports that the window contents need redrawing.
type WindowRefreshEvent struct {
	Window Window
}

// WindowFocusEvent reports an input focus change.
type WindowFocusEvent struct {
	Window  Window
	Focused bool
}

// WindowIconifyEvent reports iconification (minimize) or restoration.
type WindowIconifyEvent struct {
	Window    Window
	Iconified bool
}

// WindowMaximizeEvent reports maximization or restoration.
type WindowMaximizeEvent struct {
	Window    Window
	Maximized bool
}

// FramebufferSizeEvent reports a framebuffer resize, in pixels.
type FramebufferSizeEvent struct {
	Window        Window
	Width, Height int
}

// ContentScaleEvent reports a content scale change (e.g. the window moved to
// a monitor with a different DPI).
type ContentScaleEvent struct {
	Window Window
	X, Y   float32
}

// Trampolines: one native callback per event kind, shared by every window.
// Each is created on first install and cached; purego callback slots are a
// finite process-wide resource. The trampoline recovers the window's
// aggregate from the handle table and fans out through the matching topic;
// a handle without an aggregate (disconnect races) dispatches nothing.

var (
	windowPosCB       uintptr
	windowSizeCB      uintptr
	windowCloseCB     uintptr
	windowRefreshCB   uintptr
	windowFocusCB     uintptr
	windowIconifyCB   uintptr
	windowMaximizeCB  uintptr
	framebufferSizeCB uintptr
	contentScaleCB    uintptr
)

// The dispatch functions below are the trampoline bodies; keeping them named
// lets them be driven directly where no native library is present.

func dispatchWindowPos(h uintptr, x, y int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.pos.dispatch(WindowPosEvent{Window: Window{handle: h}, X: int(x), Y: int(y)})
	}
}

func dispatchWindowSize(h uintptr, width, height int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.size.dispatch(WindowSizeEvent{Window: Window{handle: h}, Width: int(width), Height: int(height)})
	}
}

func dispatchWindowClose(h uintptr) {
	if d := windowTable.Lookup(h); d != nil {
		d.close.dispatch(WindowCloseEvent{Window: Window{handle: h}})
	}
}

func dispatchWindowRefresh(h uintptr) {
	if d := windowTable.Lookup(h); d != nil {
		d.refresh.dispatch(WindowRefreshEvent{Window: Window{handle: h}})
	}
}

func dispatchWindowFocus(h uintptr, focused int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.focus.dispatch(WindowFocusEvent{Window: Window{handle: h}, Focused: focused == True})
	}
}

func dispatchWindowIconify(h uintptr, iconified int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.iconify.dispatch(WindowIconifyEvent{Window: Window{handle: h}, Iconified: iconified == True})
	}
}

func dispatchWindowMaximize(h uintptr, maximized int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.maximize.dispatch(WindowMaximizeEvent{Window: Window{handle: h}, Maximized: maximized == True})
	}
}

func dispatchFramebufferSize(h uintptr, width, height int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.fbSize.dispatch(FramebufferSizeEvent{Window: Window{handle: h}, Width: int(width), Height: int(height)})
	}
}

func dispatchContentScale(h uintptr, x, y float32) {
	if d := windowTable.Lookup(h); d != nil {
		d.scale.dispatch(ContentScaleEvent{Window: Window{handle: h}, X: x, Y: y})
	}
}

func windowPosTrampoline() uintptr {
	if windowPosCB == 0 {
		windowPosCB = purego.NewCallback(dispatchWindowPos)
	}
	return windowPosCB
}

func windowSizeTrampoline() uintptr {
	if windowSizeCB == 0 {
		windowSizeCB = purego.NewCallback(dispatchWindowSize)
	}
	return windowSizeCB
}

func windowCloseTrampoline() uintptr {
	if windowCloseCB == 0 {
		windowCloseCB = purego.NewCallback(dispatchWindowClose)
	}
	return windowCloseCB
}

func windowRefreshTrampoline() uintptr {
	if windowRefreshCB == 0 {
		windowRefreshCB = purego.NewCallback(dispatchWindowRefresh)
	}
	return windowRefreshCB
}

func windowFocusTrampoline() uintptr {
	if windowFocusCB == 0 {
		windowFocusCB = purego.NewCallback(dispatchWindowFocus)
	}
	return windowFocusCB
}

func windowIconifyTrampoline() uintptr {
	if windowIconifyCB == 0 {
		windowIconifyCB = purego.NewCallback(dispatchWindowIconify)
	}
	return windowIconifyCB
}

func windowMaximizeTrampoline() uintptr {
	if windowMaximizeCB == 0 {
		windowMaximizeCB = purego.NewCallback(dispatchWindowMaximize)
	}
	return windowMaximizeCB
}

func framebufferSizeTrampoline() uintptr {
	if framebufferSizeCB == 0 {
		framebufferSizeCB = purego.NewCallback(dispatchFramebufferSize)
	}
	return framebufferSizeCB
}

func contentScaleTrampoline() uintptr {
	if contentScaleCB == 0 {
		contentScaleCB = purego.NewCallback(dispatchContentScale)
	}
	return contentScaleCB
}

// Listener registration. The native callback for an event kind is installed
// on the first listener and removed with the last one; listeners run in
// registration order.

// OnPos registers a listener for window move events.
func (w Window) OnPos(fn func(WindowPosEvent)) ListenerHandle {
	return windowDataFor(w.handle).pos.add(fn)
}

// RemovePosListener removes a listener registered with OnPos.
func (w Window) RemovePosListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.pos.remove(h)
}

// OnSize registers a listener for content-area resize events.
func (w Window) OnSize(fn func(WindowSizeEvent)) ListenerHandle {
	return windowDataFor(w.handle).size.add(fn)
}

// RemoveSizeListener removes a listener registered with OnSize.
func (w Window) RemoveSizeListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.size.remove(h)
}

// OnClose registers a listener for close attempts.
func (w Window) OnClose(fn func(WindowCloseEvent)) ListenerHandle {
	return windowDataFor(w.handle).close.add(fn)
}

// RemoveCloseListener removes a listener registered with OnClose.
func (w Window) RemoveCloseListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.close.remove(h)
}

// OnRefresh registers a listener for damage/refresh events.
func (w Window) OnRefresh(fn func(WindowRefreshEvent)) ListenerHandle {
	return windowDataFor(w.handle).refresh.add(fn)
}

// RemoveRefreshListener removes a listener registered with OnRefresh.
func (w Window) RemoveRefreshListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.refresh.remove(h)
}

// OnFocus registers a listener for focus gain/loss events.
func (w Window) OnFocus(fn func(WindowFocusEvent)) ListenerHandle {
	return windowDataFor(w.handle).focus.add(fn)
}

// RemoveFocusListener removes a listener registered with OnFocus.
func (w Window) RemoveFocusListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.focus.remove(h)
}

// OnIconify registers a listener for iconify/restore events.
func (w Window) OnIconify(fn func(WindowIconifyEvent)) ListenerHandle {
	return windowDataFor(w.handle).iconify.add(fn)
}

// RemoveIconifyListener removes a listener registered with OnIconify.
func (w Window) RemoveIconifyListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.iconify.remove(h)
}

// OnMaximize registers a listener for maximize/restore events.
func (w Window) OnMaximize(fn func(WindowMaximizeEvent)) ListenerHandle {
	return windowDataFor(w.handle).maximize.add(fn)
}

// RemoveMaximizeListener removes a listener registered with OnMaximize.
func (w Window) RemoveMaximizeListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.maximize.remove(h)
}

// OnFramebufferSize registers a listener for framebuffer resize events.
func (w Window) OnFramebufferSize(fn func(FramebufferSizeEvent)) ListenerHandle {
	return windowDataFor(w.handle).fbSize.add(fn)
}

// RemoveFramebufferSizeListener removes a listener registered with
// OnFramebufferSize.
func (w Window) RemoveFramebufferSizeListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.fbSize.remove(h)
}

// OnContentScale registers a listener for content scale changes.
func (w Window) OnContentScale(fn func(ContentScaleEvent)) ListenerHandle {
	return windowDataFor(w.handle).scale.add(fn)
}

// RemoveContentScaleListener removes a listener registered with
// OnContentScale.
func (w Window) RemoveContentScaleListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.scale.remove(h)
}
