//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Monitor is a non-owning reference to a connected monitor. It is a value
// type: copies refer to the same monitor and compare equal. The zero Monitor
// refers to no monitor (windowed mode).
type Monitor struct {
	handle uintptr
}

// NoMonitor is the zero Monitor, useful as the monitor argument to
// CreateWindow for windowed mode.
var NoMonitor = Monitor{}

// Handle returns the raw native monitor handle.
func (m Monitor) Handle() uintptr {
	return m.handle
}

// IsNil reports whether m refers to no monitor.
func (m Monitor) IsNil() bool {
	return m.handle == 0
}

// VideoMode describes a monitor video mode.
type VideoMode struct {
	Width       int // Width, in screen coordinates
	Height      int // Height, in screen coordinates
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int // Refresh rate, in Hz
}

// GLFWvidmode layout: six consecutive C ints. Decoded by offset since purego
// cannot return structs by value on every platform.
const (
	vidmodeWidth       = 0
	vidmodeHeight      = 4
	vidmodeRedBits     = 8
	vidmodeGreenBits   = 12
	vidmodeBlueBits    = 16
	vidmodeRefreshRate = 20
	vidmodeSize        = 24
)

func decodeVideoMode(p uintptr) VideoMode {
	return VideoMode{
		Width:       int(*(*int32)(unsafe.Pointer(p + vidmodeWidth))),
		Height:      int(*(*int32)(unsafe.Pointer(p + vidmodeHeight))),
		RedBits:     int(*(*int32)(unsafe.Pointer(p + vidmodeRedBits))),
		GreenBits:   int(*(*int32)(unsafe.Pointer(p + vidmodeGreenBits))),
		BlueBits:    int(*(*int32)(unsafe.Pointer(p + vidmodeBlueBits))),
		RefreshRate: int(*(*int32)(unsafe.Pointer(p + vidmodeRefreshRate))),
	}
}

// Monitors returns the currently connected monitors, primary first.
func Monitors() []Monitor {
	if glfwGetMonitors == nil {
		return nil
	}
	var count int32
	arr := glfwGetMonitors(&count)
	if arr == 0 || count == 0 {
		return nil
	}
	handles := unsafe.Slice((*uintptr)(unsafe.Pointer(arr)), int(count))
	out := make([]Monitor, count)
	for i, h := range handles {
		out[i] = Monitor{handle: h}
	}
	return out
}

// PrimaryMonitor returns the user's primary monitor, or the zero Monitor if
// none is connected.
func PrimaryMonitor() Monitor {
	if glfwGetPrimaryMonitor == nil {
		return Monitor{}
	}
	return Monitor{handle: glfwGetPrimaryMonitor()}
}

// Pos returns the position of the monitor's viewport on the virtual screen.
func (m Monitor) Pos() (x, y int) {
	if glfwGetMonitorPos == nil {
		return 0, 0
	}
	var px, py int32
	glfwGetMonitorPos(m.handle, &px, &py)
	return int(px), int(py)
}

// Workarea returns the monitor's work area: the viewport minus task bars and
// menu bars.
func (m Monitor) Workarea() (x, y, width, height int) {
	if glfwGetMonitorWorkarea == nil {
		return 0, 0, 0, 0
	}
	var px, py, pw, ph int32
	glfwGetMonitorWorkarea(m.handle, &px, &py, &pw, &ph)
	return int(px), int(py), int(pw), int(ph)
}

// PhysicalSize returns the physical size of the display, in millimetres.
func (m Monitor) PhysicalSize() (widthMM, heightMM int) {
	if glfwGetMonitorPhysicalSize == nil {
		return 0, 0
	}
	var pw, ph int32
	glfwGetMonitorPhysicalSize(m.handle, &pw, &ph)
	return int(pw), int(ph)
}

// ContentScale returns the monitor's content scale.
func (m Monitor) ContentScale() (x, y float32) {
	if glfwGetMonitorContentScale == nil {
		return 0, 0
	}
	glfwGetMonitorContentScale(m.handle, &x, &y)
	return x, y
}

// Name returns a human-readable name for the monitor.
func (m Monitor) Name() string {
	if glfwGetMonitorName == nil {
		return ""
	}
	return glfwGetMonitorName(m.handle)
}

// VideoModes returns the video modes supported by the monitor, sorted from
// lowest to highest resolution.
func (m Monitor) VideoModes() []VideoMode {
	if glfwGetVideoModes == nil {
		return nil
	}
	var count int32
	arr := glfwGetVideoModes(m.handle, &count)
	if arr == 0 || count == 0 {
		return nil
	}
	out := make([]VideoMode, count)
	for i := range out {
		out[i] = decodeVideoMode(arr + uintptr(i)*vidmodeSize)
	}
	return out
}

// VideoMode returns the monitor's current video mode.
func (m Monitor) VideoMode() (VideoMode, bool) {
	if glfwGetVideoMode == nil {
		return VideoMode{}, false
	}
	p := glfwGetVideoMode(m.handle)
	if p == 0 {
		return VideoMode{}, false
	}
	return decodeVideoMode(p), true
}

// SetGamma generates a gamma ramp from the given exponent and sets it on the
// monitor.
func (m Monitor) SetGamma(gamma float32) {
	if glfwSetGamma == nil {
		return
	}
	glfwSetGamma(m.handle, gamma)
}

// SetUserPointer attaches an arbitrary value to the monitor, retrievable
// with UserPointer. The value lives until the monitor disconnects.
func (m Monitor) SetUserPointer(v any) {
	monitorDataFor(m.handle).userPtr = v
}

// UserPointer returns the value attached with SetUserPointer, or nil.
func (m Monitor) UserPointer() any {
	d := monitorTable.Lookup(m.handle)
	if d == nil {
		return nil
	}
	return d.userPtr
}

// Connection events. GLFW delivers monitor connection changes through a
// single process-wide callback; connect events are class-scoped (there is no
// instance to listen on before the monitor exists) while disconnect events
// are also delivered to listeners on the disconnecting monitor itself.

// MonitorConnectEvent reports a newly connected monitor.
type MonitorConnectEvent struct {
	Monitor Monitor
}

// MonitorDisconnectEvent reports a disconnected monitor. Only the handle
// identity of the Monitor field remains meaningful.
type MonitorDisconnectEvent struct {
	Monitor Monitor
}

// Connection state constants delivered by native connection callbacks.
const (
	connected    int32 = 0x00040001
	disconnected int32 = 0x00040002
)

var monitorCBHandle uintptr

// monitorSlot refcounts GLFW's single monitor callback across the class
// topics and every per-monitor disconnect topic.
var monitorSlot = &callbackSlot{
	install: func() {
		if glfwSetMonitorCallback == nil {
			return
		}
		if monitorCBHandle == 0 {
			monitorCBHandle = purego.NewCallback(monitorTrampoline)
		}
		glfwSetMonitorCallback(monitorCBHandle)
	},
	uninstall: func() {
		if glfwSetMonitorCallback != nil {
			glfwSetMonitorCallback(0)
		}
	},
}

var (
	monitorConnectTopic    *topic[MonitorConnectEvent]
	monitorDisconnectTopic *topic[MonitorDisconnectEvent]
)

// Assigned in init to break the initializer cycle through monitorTrampoline.
func init() {
	monitorConnectTopic = newTopic[MonitorConnectEvent](monitorSlot.acquire, monitorSlot.release)
	monitorDisconnectTopic = newTopic[MonitorDisconnectEvent](monitorSlot.acquire, monitorSlot.release)
}

// monitorTrampoline handles both connection directions. On disconnect the
// monitor's aggregate is dispatched to and then torn down; the instance topic
// commonly removes its own listeners during that dispatch, which the topics
// tolerate.
func monitorTrampoline(h uintptr, event int32) {
	switch event {
	case connected:
		monitorConnectTopic.dispatch(MonitorConnectEvent{Monitor: Monitor{handle: h}})
	case disconnected:
		if d := monitorTable.Lookup(h); d != nil {
			d.disconnect.dispatch(MonitorDisconnectEvent{Monitor: Monitor{handle: h}})
		}
		monitorDisconnectTopic.dispatch(MonitorDisconnectEvent{Monitor: Monitor{handle: h}})
		dropMonitorData(h)
	}
}

// OnMonitorConnect registers a class-scoped listener for monitor connection.
func OnMonitorConnect(fn func(MonitorConnectEvent)) ListenerHandle {
	return monitorConnectTopic.add(fn)
}

// RemoveMonitorConnectListener removes a listener registered with
// OnMonitorConnect.
func RemoveMonitorConnectListener(h ListenerHandle) bool {
	return monitorConnectTopic.remove(h)
}

// OnMonitorDisconnect registers a class-scoped listener for monitor
// disconnection.
func OnMonitorDisconnect(fn func(MonitorDisconnectEvent)) ListenerHandle {
	return monitorDisconnectTopic.add(fn)
}

// RemoveMonitorDisconnectListener removes a listener registered with
// OnMonitorDisconnect.
func RemoveMonitorDisconnectListener(h ListenerHandle) bool {
	return monitorDisconnectTopic.remove(h)
}

// OnDisconnect registers a listener for this monitor's disconnection. The
// listener list dies with the monitor.
func (m Monitor) OnDisconnect(fn func(MonitorDisconnectEvent)) ListenerHandle {
	return monitorDataFor(m.handle).disconnect.add(fn)
}

// RemoveDisconnectListener removes a listener registered with OnDisconnect.
func (m Monitor) RemoveDisconnectListener(h ListenerHandle) bool {
	d := monitorTable.Lookup(m.handle)
	if d == nil {
		return false
	}
	return d.disconnect.remove(h)
}
