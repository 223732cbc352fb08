//go:build !ios && !android && (amd64 || arm64)

package glfwgo

// ListenerHandle identifies a registered event listener for later removal.
// Go functions are not comparable, so every registration hands out a fresh
// handle, and registering the same function twice yields two handles (and two
// invocations per event).
type ListenerHandle uint64

type listenerEntry[E any] struct {
	id uint64
	fn func(E)
}

// topic multiplexes many listeners onto GLFW's single callback slot for one
// event kind. The native callback is installed if and only if the listener
// list is non-empty: install runs on the empty -> non-empty transition,
// uninstall on non-empty -> empty.
//
// Topics are mutated and dispatched only on the thread that runs the event
// pump (GLFW's main-thread rule), so they carry no lock. Listener panics are
// not recovered; a panic unwinds through the native callback, which GLFW does
// not support.
type topic[E any] struct {
	listeners []listenerEntry[E]
	nextID    uint64
	install   func()
	uninstall func()
}

// newTopic returns a topic whose native callback lifecycle is driven by the
// given hooks. Either hook may be nil when the native slot is managed
// elsewhere (class-scoped slots held for the library's lifetime).
func newTopic[E any](install, uninstall func()) *topic[E] {
	return &topic[E]{install: install, uninstall: uninstall}
}

// add appends fn to the listener list, installing the native callback when
// the list was empty.
func (t *topic[E]) add(fn func(E)) ListenerHandle {
	wasEmpty := len(t.listeners) == 0
	t.nextID++
	t.listeners = append(t.listeners, listenerEntry[E]{id: t.nextID, fn: fn})
	if wasEmpty && t.install != nil {
		t.install()
	}
	return ListenerHandle(t.nextID)
}

// remove deletes the listener registered under h, uninstalling the native
// callback when the list empties. Removing an unknown handle is a no-op
// returning false and never touches native callback state.
func (t *topic[E]) remove(h ListenerHandle) bool {
	for i, l := range t.listeners {
		if l.id == uint64(h) {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			if len(t.listeners) == 0 {
				t.listeners = nil
				if t.uninstall != nil {
					t.uninstall()
				}
			}
			return true
		}
	}
	return false
}

// dispatch invokes every listener with ev, in registration order.
//
// Iteration runs over a snapshot copy so a listener may add or remove
// listeners (including itself) mid-dispatch: such mutations take effect for
// subsequent events, and no listener of the current dispatch is skipped or
// invoked twice because of them.
func (t *topic[E]) dispatch(ev E) {
	if len(t.listeners) == 0 {
		return
	}
	snapshot := make([]listenerEntry[E], len(t.listeners))
	copy(snapshot, t.listeners)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// clear drops all listeners, running uninstall if any were registered.
// Used by aggregate teardown when a handle is destroyed or disconnects.
func (t *topic[E]) clear() {
	if len(t.listeners) == 0 {
		return
	}
	t.listeners = nil
	if t.uninstall != nil {
		t.uninstall()
	}
}

func (t *topic[E]) empty() bool {
	return len(t.listeners) == 0
}

// callbackSlot reference-counts a native callback slot shared by several
// topics (the class-scoped connect topic and every per-handle disconnect
// topic share GLFW's single monitor/joystick callback). The slot installs on
// the first acquire and uninstalls on the last release.
type callbackSlot struct {
	refs      int
	install   func()
	uninstall func()
}

func (s *callbackSlot) acquire() {
	s.refs++
	if s.refs == 1 && s.install != nil {
		s.install()
	}
}

func (s *callbackSlot) release() {
	if s.refs == 0 {
		return
	}
	s.refs--
	if s.refs == 0 && s.uninstall != nil {
		s.uninstall()
	}
}
