//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/bindings"
)

// ErrorCode is a GLFW error code.
type ErrorCode int32

// GLFW error codes.
const (
	NotInitialized     ErrorCode = 0x00010001 // GLFW has not been initialized
	NoCurrentContext   ErrorCode = 0x00010002 // No OpenGL context current on this thread
	InvalidEnum        ErrorCode = 0x00010003 // Invalid enum argument
	InvalidValue       ErrorCode = 0x00010004 // Invalid argument value
	OutOfMemory        ErrorCode = 0x00010005 // Memory allocation failed
	APIUnavailable     ErrorCode = 0x00010006 // Requested client API unavailable
	VersionUnavailable ErrorCode = 0x00010007 // Requested API version unavailable
	PlatformError      ErrorCode = 0x00010008 // Platform-specific error
	FormatUnavailable  ErrorCode = 0x00010009 // Requested format unavailable
	NoWindowContext    ErrorCode = 0x0001000A // Window has no OpenGL context
)

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case NotInitialized:
		return "not initialized"
	case NoCurrentContext:
		return "no current context"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case OutOfMemory:
		return "out of memory"
	case APIUnavailable:
		return "API unavailable"
	case VersionUnavailable:
		return "version unavailable"
	case PlatformError:
		return "platform error"
	case FormatUnavailable:
		return "format unavailable"
	case NoWindowContext:
		return "no window context"
	default:
		return fmt.Sprintf("error 0x%08X", int32(c))
	}
}

// Common errors.
var (
	// ErrNotLoaded indicates the GLFW library is not loaded.
	ErrNotLoaded = errors.New("glfwgo: GLFW library not loaded")

	// ErrNotInitialized indicates Init has not been called or failed.
	ErrNotInitialized = errors.New("glfwgo: not initialized; call glfwgo.Init() first")

	// ErrLibraryNotFound indicates the GLFW shared library could not be found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrDestroyed indicates the handle has been destroyed.
	ErrDestroyed = errors.New("glfwgo: handle has been destroyed")
)

// Error is an error reported by GLFW.
// It carries the raw GLFW error code and the description GLFW supplied.
type Error struct {
	Code        ErrorCode // Raw GLFW error code
	Description string    // Human-readable message from GLFW
	Op          string    // Operation that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("glfw %s: %s (%s)", e.Op, e.Description, e.Code)
}

// Code returns the GLFW error code from an error, or 0 if err does not wrap a
// GLFW error.
func Code(err error) ErrorCode {
	var glErr *Error
	if errors.As(err, &glErr) {
		return glErr.Code
	}
	return 0
}

// IsPlatformError returns true if the error is a GLFW platform error.
func IsPlatformError(err error) bool {
	return Code(err) == PlatformError
}

// IsAPIUnavailable returns true if the requested client API is unavailable.
func IsAPIUnavailable(err error) bool {
	return Code(err) == APIUnavailable
}

// ErrorEvent is delivered to error listeners for every error GLFW reports.
type ErrorEvent struct {
	Code        ErrorCode
	Description string
}

// errorTopic is class-scoped: GLFW has a single process-wide error callback.
// The native slot is held by the library itself (the trampoline doubles as the
// last-error recorder), so the topic needs no install/uninstall hooks.
var errorTopic = newTopic[ErrorEvent](nil, nil)

// lastErr holds the most recent error delivered by the native error callback.
// Event processing is single-threaded per GLFW's own rules, so no lock.
var lastErr *ErrorEvent

var errorCBHandle uintptr

// installErrorCallback wires the native error callback to the recorder and
// the error topic. Called once during Init, before glfwInit, so init failures
// are reported too.
func installErrorCallback() {
	if glfwSetErrorCallback == nil {
		return
	}
	if errorCBHandle == 0 {
		errorCBHandle = purego.NewCallback(errorTrampoline)
	}
	glfwSetErrorCallback(errorCBHandle)
}

// errorTrampoline is invoked by GLFW for every error.
// Signature: void (*)(int error_code, const char *description)
func errorTrampoline(code int32, description *byte) {
	ev := ErrorEvent{
		Code:        ErrorCode(code),
		Description: goString(description),
	}
	lastErr = &ev

	if errorTopic.empty() {
		logger().Error("glfw error", "code", ev.Code.String(), "desc", ev.Description)
		return
	}
	errorTopic.dispatch(ev)
}

// consumeLastError translates the most recent GLFW error into a typed error
// and clears it. Returns nil if no error was recorded since the last call.
// Used at call sites where GLFW signals failure through a NULL return.
func consumeLastError(op string) error {
	if lastErr == nil {
		return nil
	}
	ev := *lastErr
	lastErr = nil
	return &Error{Code: ev.Code, Description: ev.Description, Op: op}
}

// clearLastError drops any recorded error. Called before fallible native
// calls so a stale error is never attributed to them.
func clearLastError() {
	lastErr = nil
}

// OnError registers a listener for GLFW error reports and returns a handle
// for removal. While at least one listener is registered, errors are not
// logged by the package logger.
func OnError(fn func(ErrorEvent)) ListenerHandle {
	return errorTopic.add(fn)
}

// RemoveErrorListener unregisters a listener previously added with OnError.
// It reports whether a listener was removed.
func RemoveErrorListener(h ListenerHandle) bool {
	return errorTopic.remove(h)
}
