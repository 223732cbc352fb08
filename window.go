//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"image"
	"runtime"
)

// Window is a non-owning reference to a GLFW window and its OpenGL context.
// It is a value type: copies refer to the same window and compare equal.
// The zero Window refers to no window.
type Window struct {
	handle uintptr
}

// NoWindow is the zero Window, useful as the share argument to CreateWindow.
var NoWindow = Window{}

// Handle returns the raw native window handle, for interop with other
// libraries binding the same GLFW.
func (w Window) Handle() uintptr {
	return w.handle
}

// IsNil reports whether w refers to no window.
func (w Window) IsNil() bool {
	return w.handle == 0
}

// CreateWindow creates a window and its associated context, honoring the
// hints set with WindowHint. Pass a non-zero monitor for fullscreen, and a
// non-zero share to share its context's objects.
func CreateWindow(width, height int, title string, monitor Monitor, share Window) (Window, error) {
	if glfwCreateWindow == nil {
		return Window{}, ErrNotLoaded
	}
	clearLastError()
	h := glfwCreateWindow(int32(width), int32(height), title, monitor.handle, share.handle)
	if h == 0 {
		if err := consumeLastError("glfwCreateWindow"); err != nil {
			return Window{}, err
		}
		return Window{}, &Error{Code: PlatformError, Description: "window creation failed", Op: "glfwCreateWindow"}
	}
	return Window{handle: h}, nil
}

// Destroy tears down the window's listeners (uninstalling their native
// callbacks while the handle is still valid) and destroys the window.
// The Window value must not be used afterwards.
func (w Window) Destroy() {
	dropWindowData(w.handle)
	if glfwDestroyWindow == nil {
		return
	}
	glfwDestroyWindow(w.handle)
}

// ShouldClose returns the close flag of the window, set when the user
// attempts to close it or via SetShouldClose.
func (w Window) ShouldClose() bool {
	if glfwWindowShouldClose == nil {
		return false
	}
	return glfwWindowShouldClose(w.handle) == True
}

// SetShouldClose sets the close flag, e.g. to close a window from a key
// listener.
func (w Window) SetShouldClose(value bool) {
	if glfwSetWindowShouldClose == nil {
		return
	}
	glfwSetWindowShouldClose(w.handle, boolToInt(value))
}

// SetTitle sets the window title.
func (w Window) SetTitle(title string) {
	if glfwSetWindowTitle == nil {
		return
	}
	glfwSetWindowTitle(w.handle, title)
}

// SetIcon sets the window icon from candidate images; the system picks the
// closest sizes. Passing no images reverts to the platform default.
func (w Window) SetIcon(images []image.Image) {
	if glfwSetWindowIcon == nil {
		return
	}
	if len(images) == 0 {
		glfwSetWindowIcon(w.handle, 0, nil)
		return
	}
	native := make([]Image, len(images))
	bufs := make([][]uint8, len(images))
	for i, img := range images {
		native[i], bufs[i] = newImage(img)
	}
	glfwSetWindowIcon(w.handle, int32(len(native)), &native[0])
	runtime.KeepAlive(bufs)
}

// Pos returns the position of the window's upper-left corner, in screen
// coordinates.
func (w Window) Pos() (x, y int) {
	if glfwGetWindowPos == nil {
		return 0, 0
	}
	var px, py int32
	glfwGetWindowPos(w.handle, &px, &py)
	return int(px), int(py)
}

// SetPos moves the window's upper-left corner to the given screen
// coordinates.
func (w Window) SetPos(x, y int) {
	if glfwSetWindowPos == nil {
		return
	}
	glfwSetWindowPos(w.handle, int32(x), int32(y))
}

// Size returns the size of the window's content area, in screen coordinates.
func (w Window) Size() (width, height int) {
	if glfwGetWindowSize == nil {
		return 0, 0
	}
	var sw, sh int32
	glfwGetWindowSize(w.handle, &sw, &sh)
	return int(sw), int(sh)
}

// SetSize resizes the window's content area.
func (w Window) SetSize(width, height int) {
	if glfwSetWindowSize == nil {
		return
	}
	glfwSetWindowSize(w.handle, int32(width), int32(height))
}

// SetSizeLimits constrains the content area size. Pass DontCare to leave a
// bound unset.
func (w Window) SetSizeLimits(minW, minH, maxW, maxH int32) {
	if glfwSetWindowSizeLimits == nil {
		return
	}
	glfwSetWindowSizeLimits(w.handle, minW, minH, maxW, maxH)
}

// SetAspectRatio forces the content area to keep the given aspect ratio.
// Pass DontCare for both to disable the constraint.
func (w Window) SetAspectRatio(numer, denom int32) {
	if glfwSetWindowAspectRatio == nil {
		return
	}
	glfwSetWindowAspectRatio(w.handle, numer, denom)
}

// FramebufferSize returns the size of the window's framebuffer, in pixels.
func (w Window) FramebufferSize() (width, height int) {
	if glfwGetFramebufferSize == nil {
		return 0, 0
	}
	var fw, fh int32
	glfwGetFramebufferSize(w.handle, &fw, &fh)
	return int(fw), int(fh)
}

// FrameSize returns the sizes, in screen coordinates, of each edge of the
// window's frame decoration.
func (w Window) FrameSize() (left, top, right, bottom int) {
	if glfwGetWindowFrameSize == nil {
		return 0, 0, 0, 0
	}
	var l, t, r, b int32
	glfwGetWindowFrameSize(w.handle, &l, &t, &r, &b)
	return int(l), int(t), int(r), int(b)
}

// ContentScale returns the window's content scale, the ratio between the
// current DPI and the platform's default DPI.
func (w Window) ContentScale() (x, y float32) {
	if glfwGetWindowContentScale == nil {
		return 0, 0
	}
	glfwGetWindowContentScale(w.handle, &x, &y)
	return x, y
}

// Opacity returns the opacity of the whole window, in [0, 1].
func (w Window) Opacity() float32 {
	if glfwGetWindowOpacity == nil {
		return 1
	}
	return glfwGetWindowOpacity(w.handle)
}

// SetOpacity sets the opacity of the whole window, in [0, 1].
func (w Window) SetOpacity(opacity float32) {
	if glfwSetWindowOpacity == nil {
		return
	}
	glfwSetWindowOpacity(w.handle, opacity)
}

// Iconify minimizes the window, or restores a fullscreen window's video mode.
func (w Window) Iconify() {
	if glfwIconifyWindow != nil {
		glfwIconifyWindow(w.handle)
	}
}

// Restore restores the window from iconified or maximized state.
func (w Window) Restore() {
	if glfwRestoreWindow != nil {
		glfwRestoreWindow(w.handle)
	}
}

// Maximize maximizes the window.
func (w Window) Maximize() {
	if glfwMaximizeWindow != nil {
		glfwMaximizeWindow(w.handle)
	}
}

// Show makes the window visible.
func (w Window) Show() {
	if glfwShowWindow != nil {
		glfwShowWindow(w.handle)
	}
}

// Hide hides the window.
func (w Window) Hide() {
	if glfwHideWindow != nil {
		glfwHideWindow(w.handle)
	}
}

// Focus brings the window to front and gives it input focus.
func (w Window) Focus() {
	if glfwFocusWindow != nil {
		glfwFocusWindow(w.handle)
	}
}

// RequestAttention asks the system to highlight the window for the user.
func (w Window) RequestAttention() {
	if glfwRequestWindowAttention != nil {
		glfwRequestWindowAttention(w.handle)
	}
}

// Monitor returns the monitor the window is fullscreen on, or the zero
// Monitor for windowed mode.
func (w Window) Monitor() Monitor {
	if glfwGetWindowMonitor == nil {
		return Monitor{}
	}
	return Monitor{handle: glfwGetWindowMonitor(w.handle)}
}

// SetMonitor switches the window between fullscreen (non-zero monitor) and
// windowed (zero monitor, with the given geometry) mode. refreshRate may be
// DontCare.
func (w Window) SetMonitor(monitor Monitor, x, y, width, height, refreshRate int) {
	if glfwSetWindowMonitor == nil {
		return
	}
	glfwSetWindowMonitor(w.handle, monitor.handle, int32(x), int32(y), int32(width), int32(height), int32(refreshRate))
}

// SwapBuffers swaps the front and back buffers of the window.
func (w Window) SwapBuffers() {
	if glfwSwapBuffers != nil {
		glfwSwapBuffers(w.handle)
	}
}

// MakeContextCurrent makes the window's OpenGL context current on the
// calling thread.
func (w Window) MakeContextCurrent() {
	if glfwMakeContextCurrent != nil {
		glfwMakeContextCurrent(w.handle)
	}
}

// DetachCurrentContext makes no context current on the calling thread.
func DetachCurrentContext() {
	if glfwMakeContextCurrent != nil {
		glfwMakeContextCurrent(0)
	}
}

// GetCurrentContext returns the window whose context is current on the
// calling thread.
func GetCurrentContext() Window {
	if glfwGetCurrentContext == nil {
		return Window{}
	}
	return Window{handle: glfwGetCurrentContext()}
}

// SwapInterval sets the number of screen updates to wait for between buffer
// swaps for the current context (1 enables vsync).
func SwapInterval(interval int) {
	if glfwSwapInterval != nil {
		glfwSwapInterval(int32(interval))
	}
}

// SetCursor sets the cursor image shown while the cursor is over the
// window's content area. A zero Cursor restores the default arrow.
func (w Window) SetCursor(c Cursor) {
	if glfwSetCursor != nil {
		glfwSetCursor(w.handle, c.handle)
	}
}

// SetUserPointer attaches an arbitrary value to the window, retrievable with
// UserPointer. The value lives until the window is destroyed.
func (w Window) SetUserPointer(v any) {
	windowDataFor(w.handle).userPtr = v
}

// UserPointer returns the value attached with SetUserPointer, or nil.
func (w Window) UserPointer() any {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return nil
	}
	return d.userPtr
}

func boolToInt(b bool) int32 {
	if b {
		return True
	}
	return False
}
