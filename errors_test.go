//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "not initialized", NotInitialized.String())
	assert.Equal(t, "platform error", PlatformError.String())
	assert.Equal(t, "error 0x00012345", ErrorCode(0x12345).String())
}

func TestErrorTrampolineRecordsLastError(t *testing.T) {
	t.Cleanup(clearLastError)

	errorTrampoline(int32(InvalidValue), cString("window size must be positive"))

	err := consumeLastError("CreateWindow")
	require.Error(t, err)

	var glErr *Error
	require.ErrorAs(t, err, &glErr)
	assert.Equal(t, InvalidValue, glErr.Code)
	assert.Equal(t, "window size must be positive", glErr.Description)
	assert.Equal(t, "CreateWindow", glErr.Op)

	assert.NoError(t, consumeLastError("CreateWindow"), "consuming clears the record")
}

func TestErrorTrampolineDispatchesToListeners(t *testing.T) {
	t.Cleanup(clearLastError)

	var got []ErrorEvent
	h := OnError(func(ev ErrorEvent) { got = append(got, ev) })
	t.Cleanup(func() { RemoveErrorListener(h) })

	errorTrampoline(int32(PlatformError), cString("X11: broken"))

	require.Len(t, got, 1)
	assert.Equal(t, PlatformError, got[0].Code)
	assert.Equal(t, "X11: broken", got[0].Description)
}

func TestClearLastError(t *testing.T) {
	errorTrampoline(int32(OutOfMemory), cString("oom"))
	clearLastError()
	assert.NoError(t, consumeLastError("op"))
}

func TestCodeHelpers(t *testing.T) {
	err := fmt.Errorf("creating window: %w", &Error{
		Code:        APIUnavailable,
		Description: "no Vulkan",
		Op:          "CreateWindow",
	})

	assert.Equal(t, APIUnavailable, Code(err))
	assert.True(t, IsAPIUnavailable(err))
	assert.False(t, IsPlatformError(err))

	assert.Zero(t, Code(errors.New("plain")), "non-GLFW errors report code 0")
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Code: NoWindowContext, Description: "window has no context", Op: "MakeContextCurrent"}
	assert.Equal(t, "glfw MakeContextCurrent: window has no context (no window context)", err.Error())
}

func TestRemoveErrorListenerUnknown(t *testing.T) {
	assert.False(t, RemoveErrorListener(ListenerHandle(1 << 60)))
}
