//go:build !ios && !android && (amd64 || arm64)

package glfwgo

// The event pump is the sole dispatch point: every listener registered with
// the OnXxx functions runs synchronously inside one of these calls, on the
// calling thread.

// PollEvents processes pending events and returns immediately.
func PollEvents() {
	if glfwPollEvents == nil {
		return
	}
	glfwPollEvents()
}

// WaitEvents blocks until at least one event is available, then processes
// all pending events.
func WaitEvents() {
	if glfwWaitEvents == nil {
		return
	}
	glfwWaitEvents()
}

// WaitEventsTimeout blocks until an event arrives or timeout (in seconds)
// elapses, then processes all pending events.
func WaitEventsTimeout(timeout float64) {
	if glfwWaitEventsTimeout == nil {
		return
	}
	glfwWaitEventsTimeout(timeout)
}

// PostEmptyEvent posts an empty event, waking a thread blocked in WaitEvents.
// This is the one call in this package that may be made from any thread.
func PostEmptyEvent() {
	if glfwPostEmptyEvent == nil {
		return
	}
	glfwPostEmptyEvent()
}
