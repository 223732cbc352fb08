//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
)

// Function bindings - registered when init() is called.
// Every variable stays nil until the GLFW library is loaded, and every caller
// guards against that, so the package is safe to link without GLFW installed.
var (
	// Library and event pump
	glfwInit              func() int32
	glfwTerminate         func()
	glfwInitHint          func(hint, value int32)
	glfwGetVersion        func(major, minor, rev *int32)
	glfwGetVersionString  func() string
	glfwSetErrorCallback  func(cb uintptr) uintptr
	glfwPollEvents        func()
	glfwWaitEvents        func()
	glfwWaitEventsTimeout func(timeout float64)
	glfwPostEmptyEvent    func()
	glfwGetTime           func() float64
	glfwSetTime           func(t float64)

	// Window lifecycle and state
	glfwDefaultWindowHints       func()
	glfwWindowHint               func(hint, value int32)
	glfwWindowHintString         func(hint int32, value string)
	glfwCreateWindow             func(width, height int32, title string, monitor, share uintptr) uintptr
	glfwDestroyWindow            func(window uintptr)
	glfwWindowShouldClose        func(window uintptr) int32
	glfwSetWindowShouldClose     func(window uintptr, value int32)
	glfwSetWindowTitle           func(window uintptr, title string)
	glfwSetWindowIcon            func(window uintptr, count int32, images *Image)
	glfwGetWindowPos             func(window uintptr, x, y *int32)
	glfwSetWindowPos             func(window uintptr, x, y int32)
	glfwGetWindowSize            func(window uintptr, width, height *int32)
	glfwSetWindowSize            func(window uintptr, width, height int32)
	glfwSetWindowSizeLimits      func(window uintptr, minW, minH, maxW, maxH int32)
	glfwSetWindowAspectRatio     func(window uintptr, numer, denom int32)
	glfwGetFramebufferSize       func(window uintptr, width, height *int32)
	glfwGetWindowFrameSize       func(window uintptr, left, top, right, bottom *int32)
	glfwGetWindowContentScale    func(window uintptr, x, y *float32)
	glfwGetWindowOpacity         func(window uintptr) float32
	glfwSetWindowOpacity         func(window uintptr, opacity float32)
	glfwIconifyWindow            func(window uintptr)
	glfwRestoreWindow            func(window uintptr)
	glfwMaximizeWindow           func(window uintptr)
	glfwShowWindow               func(window uintptr)
	glfwHideWindow               func(window uintptr)
	glfwFocusWindow              func(window uintptr)
	glfwRequestWindowAttention   func(window uintptr)
	glfwGetWindowMonitor         func(window uintptr) uintptr
	glfwSetWindowMonitor         func(window, monitor uintptr, x, y, width, height, refreshRate int32)
	glfwGetWindowAttrib          func(window uintptr, attrib int32) int32
	glfwSetWindowAttrib          func(window uintptr, attrib, value int32)

	// Window callbacks
	glfwSetWindowPosCallback          func(window, cb uintptr) uintptr
	glfwSetWindowSizeCallback         func(window, cb uintptr) uintptr
	glfwSetWindowCloseCallback        func(window, cb uintptr) uintptr
	glfwSetWindowRefreshCallback      func(window, cb uintptr) uintptr
	glfwSetWindowFocusCallback        func(window, cb uintptr) uintptr
	glfwSetWindowIconifyCallback      func(window, cb uintptr) uintptr
	glfwSetWindowMaximizeCallback     func(window, cb uintptr) uintptr
	glfwSetFramebufferSizeCallback    func(window, cb uintptr) uintptr
	glfwSetWindowContentScaleCallback func(window, cb uintptr) uintptr

	// OpenGL context plumbing
	glfwMakeContextCurrent func(window uintptr)
	glfwGetCurrentContext  func() uintptr
	glfwSwapBuffers        func(window uintptr)
	glfwSwapInterval       func(interval int32)
	glfwGetProcAddress     func(name string) uintptr
	glfwExtensionSupported func(name string) int32

	// Input
	glfwGetInputMode            func(window uintptr, mode int32) int32
	glfwSetInputMode            func(window uintptr, mode, value int32)
	glfwRawMouseMotionSupported func() int32
	glfwGetKey                  func(window uintptr, key int32) int32
	glfwGetMouseButton          func(window uintptr, button int32) int32
	glfwGetCursorPos            func(window uintptr, x, y *float64)
	glfwSetCursorPos            func(window uintptr, x, y float64)
	glfwGetKeyName              func(key, scancode int32) string
	glfwGetKeyScancode          func(key int32) int32
	glfwGetClipboardString      func(window uintptr) string
	glfwSetClipboardString      func(window uintptr, s string)

	// Input callbacks
	glfwSetKeyCallback         func(window, cb uintptr) uintptr
	glfwSetCharCallback        func(window, cb uintptr) uintptr
	glfwSetCharModsCallback    func(window, cb uintptr) uintptr
	glfwSetMouseButtonCallback func(window, cb uintptr) uintptr
	glfwSetCursorPosCallback   func(window, cb uintptr) uintptr
	glfwSetCursorEnterCallback func(window, cb uintptr) uintptr
	glfwSetScrollCallback      func(window, cb uintptr) uintptr
	glfwSetDropCallback        func(window, cb uintptr) uintptr

	// Cursor objects
	glfwCreateCursor         func(image *Image, xhot, yhot int32) uintptr
	glfwCreateStandardCursor func(shape int32) uintptr
	glfwDestroyCursor        func(cursor uintptr)
	glfwSetCursor            func(window, cursor uintptr)

	// Monitors
	glfwGetMonitors            func(count *int32) uintptr
	glfwGetPrimaryMonitor      func() uintptr
	glfwGetMonitorPos          func(monitor uintptr, x, y *int32)
	glfwGetMonitorWorkarea     func(monitor uintptr, x, y, width, height *int32)
	glfwGetMonitorPhysicalSize func(monitor uintptr, widthMM, heightMM *int32)
	glfwGetMonitorContentScale func(monitor uintptr, x, y *float32)
	glfwGetMonitorName         func(monitor uintptr) string
	glfwSetMonitorCallback     func(cb uintptr) uintptr
	glfwGetVideoModes          func(monitor uintptr, count *int32) uintptr
	glfwGetVideoMode           func(monitor uintptr) uintptr
	glfwSetGamma               func(monitor uintptr, gamma float32)

	// Joysticks
	glfwJoystickPresent       func(jid int32) int32
	glfwGetJoystickAxes       func(jid int32, count *int32) uintptr
	glfwGetJoystickButtons    func(jid int32, count *int32) uintptr
	glfwGetJoystickHats       func(jid int32, count *int32) uintptr
	glfwGetJoystickName       func(jid int32) string
	glfwGetJoystickGUID       func(jid int32) string
	glfwJoystickIsGamepad     func(jid int32) int32
	glfwGetGamepadName        func(jid int32) string
	glfwGetGamepadState       func(jid int32, state *GamepadState) int32
	glfwSetJoystickCallback   func(cb uintptr) uintptr
	glfwUpdateGamepadMappings func(mappings string) int32

	bindingsRegistered bool
)

func registerBindings() error {
	if bindingsRegistered {
		return nil
	}

	if err := bindings.Load(); err != nil {
		return err
	}

	lib := bindings.LibGLFW()
	if lib == 0 {
		return bindings.ErrNotLoaded
	}

	purego.RegisterLibFunc(&glfwInit, lib, "glfwInit")
	purego.RegisterLibFunc(&glfwTerminate, lib, "glfwTerminate")
	purego.RegisterLibFunc(&glfwInitHint, lib, "glfwInitHint")
	purego.RegisterLibFunc(&glfwGetVersion, lib, "glfwGetVersion")
	purego.RegisterLibFunc(&glfwGetVersionString, lib, "glfwGetVersionString")
	purego.RegisterLibFunc(&glfwSetErrorCallback, lib, "glfwSetErrorCallback")
	purego.RegisterLibFunc(&glfwPollEvents, lib, "glfwPollEvents")
	purego.RegisterLibFunc(&glfwWaitEvents, lib, "glfwWaitEvents")
	purego.RegisterLibFunc(&glfwWaitEventsTimeout, lib, "glfwWaitEventsTimeout")
	purego.RegisterLibFunc(&glfwPostEmptyEvent, lib, "glfwPostEmptyEvent")
	purego.RegisterLibFunc(&glfwGetTime, lib, "glfwGetTime")
	purego.RegisterLibFunc(&glfwSetTime, lib, "glfwSetTime")

	purego.RegisterLibFunc(&glfwDefaultWindowHints, lib, "glfwDefaultWindowHints")
	purego.RegisterLibFunc(&glfwWindowHint, lib, "glfwWindowHint")
	purego.RegisterLibFunc(&glfwWindowHintString, lib, "glfwWindowHintString")
	purego.RegisterLibFunc(&glfwCreateWindow, lib, "glfwCreateWindow")
	purego.RegisterLibFunc(&glfwDestroyWindow, lib, "glfwDestroyWindow")
	purego.RegisterLibFunc(&glfwWindowShouldClose, lib, "glfwWindowShouldClose")
	purego.RegisterLibFunc(&glfwSetWindowShouldClose, lib, "glfwSetWindowShouldClose")
	purego.RegisterLibFunc(&glfwSetWindowTitle, lib, "glfwSetWindowTitle")
	purego.RegisterLibFunc(&glfwSetWindowIcon, lib, "glfwSetWindowIcon")
	purego.RegisterLibFunc(&glfwGetWindowPos, lib, "glfwGetWindowPos")
	purego.RegisterLibFunc(&glfwSetWindowPos, lib, "glfwSetWindowPos")
	purego.RegisterLibFunc(&glfwGetWindowSize, lib, "glfwGetWindowSize")
	purego.RegisterLibFunc(&glfwSetWindowSize, lib, "glfwSetWindowSize")
	purego.RegisterLibFunc(&glfwSetWindowSizeLimits, lib, "glfwSetWindowSizeLimits")
	purego.RegisterLibFunc(&glfwSetWindowAspectRatio, lib, "glfwSetWindowAspectRatio")
	purego.RegisterLibFunc(&glfwGetFramebufferSize, lib, "glfwGetFramebufferSize")
	purego.RegisterLibFunc(&glfwGetWindowFrameSize, lib, "glfwGetWindowFrameSize")
	purego.RegisterLibFunc(&glfwGetWindowContentScale, lib, "glfwGetWindowContentScale")
	purego.RegisterLibFunc(&glfwGetWindowOpacity, lib, "glfwGetWindowOpacity")
	purego.RegisterLibFunc(&glfwSetWindowOpacity, lib, "glfwSetWindowOpacity")
	purego.RegisterLibFunc(&glfwIconifyWindow, lib, "glfwIconifyWindow")
	purego.RegisterLibFunc(&glfwRestoreWindow, lib, "glfwRestoreWindow")
	purego.RegisterLibFunc(&glfwMaximizeWindow, lib, "glfwMaximizeWindow")
	purego.RegisterLibFunc(&glfwShowWindow, lib, "glfwShowWindow")
	purego.RegisterLibFunc(&glfwHideWindow, lib, "glfwHideWindow")
	purego.RegisterLibFunc(&glfwFocusWindow, lib, "glfwFocusWindow")
	purego.RegisterLibFunc(&glfwRequestWindowAttention, lib, "glfwRequestWindowAttention")
	purego.RegisterLibFunc(&glfwGetWindowMonitor, lib, "glfwGetWindowMonitor")
	purego.RegisterLibFunc(&glfwSetWindowMonitor, lib, "glfwSetWindowMonitor")
	purego.RegisterLibFunc(&glfwGetWindowAttrib, lib, "glfwGetWindowAttrib")
	purego.RegisterLibFunc(&glfwSetWindowAttrib, lib, "glfwSetWindowAttrib")

	purego.RegisterLibFunc(&glfwSetWindowPosCallback, lib, "glfwSetWindowPosCallback")
	purego.RegisterLibFunc(&glfwSetWindowSizeCallback, lib, "glfwSetWindowSizeCallback")
	purego.RegisterLibFunc(&glfwSetWindowCloseCallback, lib, "glfwSetWindowCloseCallback")
	purego.RegisterLibFunc(&glfwSetWindowRefreshCallback, lib, "glfwSetWindowRefreshCallback")
	purego.RegisterLibFunc(&glfwSetWindowFocusCallback, lib, "glfwSetWindowFocusCallback")
	purego.RegisterLibFunc(&glfwSetWindowIconifyCallback, lib, "glfwSetWindowIconifyCallback")
	purego.RegisterLibFunc(&glfwSetWindowMaximizeCallback, lib, "glfwSetWindowMaximizeCallback")
	purego.RegisterLibFunc(&glfwSetFramebufferSizeCallback, lib, "glfwSetFramebufferSizeCallback")
	purego.RegisterLibFunc(&glfwSetWindowContentScaleCallback, lib, "glfwSetWindowContentScaleCallback")

	purego.RegisterLibFunc(&glfwMakeContextCurrent, lib, "glfwMakeContextCurrent")
	purego.RegisterLibFunc(&glfwGetCurrentContext, lib, "glfwGetCurrentContext")
	purego.RegisterLibFunc(&glfwSwapBuffers, lib, "glfwSwapBuffers")
	purego.RegisterLibFunc(&glfwSwapInterval, lib, "glfwSwapInterval")
	purego.RegisterLibFunc(&glfwGetProcAddress, lib, "glfwGetProcAddress")
	purego.RegisterLibFunc(&glfwExtensionSupported, lib, "glfwExtensionSupported")

	purego.RegisterLibFunc(&glfwGetInputMode, lib, "glfwGetInputMode")
	purego.RegisterLibFunc(&glfwSetInputMode, lib, "glfwSetInputMode")
	purego.RegisterLibFunc(&glfwRawMouseMotionSupported, lib, "glfwRawMouseMotionSupported")
	purego.RegisterLibFunc(&glfwGetKey, lib, "glfwGetKey")
	purego.RegisterLibFunc(&glfwGetMouseButton, lib, "glfwGetMouseButton")
	purego.RegisterLibFunc(&glfwGetCursorPos, lib, "glfwGetCursorPos")
	purego.RegisterLibFunc(&glfwSetCursorPos, lib, "glfwSetCursorPos")
	purego.RegisterLibFunc(&glfwGetKeyName, lib, "glfwGetKeyName")
	purego.RegisterLibFunc(&glfwGetKeyScancode, lib, "glfwGetKeyScancode")
	purego.RegisterLibFunc(&glfwGetClipboardString, lib, "glfwGetClipboardString")
	purego.RegisterLibFunc(&glfwSetClipboardString, lib, "glfwSetClipboardString")

	purego.RegisterLibFunc(&glfwSetKeyCallback, lib, "glfwSetKeyCallback")
	purego.RegisterLibFunc(&glfwSetCharCallback, lib, "glfwSetCharCallback")
	purego.RegisterLibFunc(&glfwSetCharModsCallback, lib, "glfwSetCharModsCallback")
	purego.RegisterLibFunc(&glfwSetMouseButtonCallback, lib, "glfwSetMouseButtonCallback")
	purego.RegisterLibFunc(&glfwSetCursorPosCallback, lib, "glfwSetCursorPosCallback")
	purego.RegisterLibFunc(&glfwSetCursorEnterCallback, lib, "glfwSetCursorEnterCallback")
	purego.RegisterLibFunc(&glfwSetScrollCallback, lib, "glfwSetScrollCallback")
	purego.RegisterLibFunc(&glfwSetDropCallback, lib, "glfwSetDropCallback")

	purego.RegisterLibFunc(&glfwCreateCursor, lib, "glfwCreateCursor")
	purego.RegisterLibFunc(&glfwCreateStandardCursor, lib, "glfwCreateStandardCursor")
	purego.RegisterLibFunc(&glfwDestroyCursor, lib, "glfwDestroyCursor")
	purego.RegisterLibFunc(&glfwSetCursor, lib, "glfwSetCursor")

	purego.RegisterLibFunc(&glfwGetMonitors, lib, "glfwGetMonitors")
	purego.RegisterLibFunc(&glfwGetPrimaryMonitor, lib, "glfwGetPrimaryMonitor")
	purego.RegisterLibFunc(&glfwGetMonitorPos, lib, "glfwGetMonitorPos")
	purego.RegisterLibFunc(&glfwGetMonitorWorkarea, lib, "glfwGetMonitorWorkarea")
	purego.RegisterLibFunc(&glfwGetMonitorPhysicalSize, lib, "glfwGetMonitorPhysicalSize")
	purego.RegisterLibFunc(&glfwGetMonitorContentScale, lib, "glfwGetMonitorContentScale")
	purego.RegisterLibFunc(&glfwGetMonitorName, lib, "glfwGetMonitorName")
	purego.RegisterLibFunc(&glfwSetMonitorCallback, lib, "glfwSetMonitorCallback")
	purego.RegisterLibFunc(&glfwGetVideoModes, lib, "glfwGetVideoModes")
	purego.RegisterLibFunc(&glfwGetVideoMode, lib, "glfwGetVideoMode")
	purego.RegisterLibFunc(&glfwSetGamma, lib, "glfwSetGamma")

	purego.RegisterLibFunc(&glfwJoystickPresent, lib, "glfwJoystickPresent")
	purego.RegisterLibFunc(&glfwGetJoystickAxes, lib, "glfwGetJoystickAxes")
	purego.RegisterLibFunc(&glfwGetJoystickButtons, lib, "glfwGetJoystickButtons")
	purego.RegisterLibFunc(&glfwGetJoystickHats, lib, "glfwGetJoystickHats")
	purego.RegisterLibFunc(&glfwGetJoystickName, lib, "glfwGetJoystickName")
	purego.RegisterLibFunc(&glfwGetJoystickGUID, lib, "glfwGetJoystickGUID")
	purego.RegisterLibFunc(&glfwJoystickIsGamepad, lib, "glfwJoystickIsGamepad")
	purego.RegisterLibFunc(&glfwGetGamepadName, lib, "glfwGetGamepadName")
	purego.RegisterLibFunc(&glfwGetGamepadState, lib, "glfwGetGamepadState")
	purego.RegisterLibFunc(&glfwSetJoystickCallback, lib, "glfwSetJoystickCallback")
	purego.RegisterLibFunc(&glfwUpdateGamepadMappings, lib, "glfwUpdateGamepadMappings")

	bindingsRegistered = true
	return nil
}

// goString converts a NUL-terminated C string to a Go string.
// Used where raw callback arguments deliver char pointers.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	ptr := unsafe.Pointer(p)
	for i := 0; ; i++ {
		b := *(*byte)(unsafe.Pointer(uintptr(ptr) + uintptr(i)))
		if b == 0 {
			return string(unsafe.Slice(p, i))
		}
		if i > 4096 { // Safety limit
			return string(unsafe.Slice(p, i))
		}
	}
}
