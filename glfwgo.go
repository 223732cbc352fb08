//go:build !ios && !android && (amd64 || arm64)

// Package glfwgo provides bindings to the GLFW windowing and input library
// without CGO, using purego to load the system's GLFW shared library at
// runtime.
//
// It exposes GLFW's windows, monitors, joysticks and cursors as small
// handle-wrapping value types, and replaces GLFW's single-callback-per-event
// model with a subscription API: any number of listeners can be registered
// per event kind with OnXxx, each returning a ListenerHandle for removal.
// Listeners run synchronously, in registration order, from whichever thread
// calls PollEvents or WaitEvents.
//
// Like GLFW itself, the package must be used from the main OS thread; an
// init function locks the calling goroutine to its thread.
package glfwgo

import (
	"runtime"

	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
)

func init() {
	// GLFW requires init, window creation and the event pump to happen on
	// the main thread.
	runtime.LockOSThread()
}

var initialized bool

// Init loads the GLFW shared library and initializes it. It must be called
// from the main thread before any other function in this package, and is
// safe to call again after a successful call (a no-op).
func Init() error {
	if initialized {
		return nil
	}
	if err := registerBindings(); err != nil {
		return err
	}

	// Installed before glfwInit so initialization failures are observable.
	installErrorCallback()

	clearLastError()
	if glfwInit() != True {
		if err := consumeLastError("glfwInit"); err != nil {
			return err
		}
		return ErrNotInitialized
	}
	initialized = true

	logger().Debug("initialized", "version", VersionString())
	return nil
}

// Terminate releases all listener registrations and aggregates, destroys any
// remaining windows and cursors, and shuts GLFW down. After Terminate, Init
// must be called again before using the library.
func Terminate() {
	if !initialized {
		return
	}
	teardownAll()
	initialized = false
	glfwTerminate()
}

// IsLoaded returns true if the GLFW shared library has been loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// IsInitialized returns true between a successful Init and Terminate.
func IsInitialized() bool {
	return initialized
}

// Version returns the major, minor and revision numbers of the loaded GLFW
// library. Returns zeros if the library is not loaded.
func Version() (major, minor, rev int) {
	if glfwGetVersion == nil {
		return 0, 0, 0
	}
	var mj, mn, rv int32
	glfwGetVersion(&mj, &mn, &rv)
	return int(mj), int(mn), int(rv)
}

// VersionString returns the compile-time version string of the loaded GLFW
// library, or "" if it is not loaded.
func VersionString() string {
	if glfwGetVersionString == nil {
		return ""
	}
	return glfwGetVersionString()
}

// GetTime returns the GLFW timer value: seconds elapsed since Init (or since
// the epoch set with SetTime).
func GetTime() float64 {
	if glfwGetTime == nil {
		return 0
	}
	return glfwGetTime()
}

// SetTime sets the GLFW timer to the given value, in seconds.
func SetTime(t float64) {
	if glfwSetTime == nil {
		return
	}
	glfwSetTime(t)
}

// GetProcAddress returns the address of the named OpenGL or OpenGL ES
// function, for handing to a GL loader. A context must be current.
func GetProcAddress(name string) uintptr {
	if glfwGetProcAddress == nil {
		return 0
	}
	return glfwGetProcAddress(name)
}

// ExtensionSupported reports whether the named API extension is supported by
// the current OpenGL or OpenGL ES context.
func ExtensionSupported(name string) bool {
	if glfwExtensionSupported == nil {
		return false
	}
	return glfwExtensionSupported(name) == True
}
