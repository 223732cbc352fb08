//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct{ n int }

// countingTopic wires a topic to install/uninstall counters so the native
// callback lifecycle can be observed without a loaded library.
func countingTopic(t *testing.T) (*topic[event], *int, *int) {
	t.Helper()
	installs, uninstalls := 0, 0
	tp := newTopic[event](
		func() { installs++ },
		func() { uninstalls++ },
	)
	return tp, &installs, &uninstalls
}

func TestTopicInstallOnFirstListenerOnly(t *testing.T) {
	tp, installs, uninstalls := countingTopic(t)

	tp.add(func(event) {})
	assert.Equal(t, 1, *installs, "first add must install")

	tp.add(func(event) {})
	tp.add(func(event) {})
	assert.Equal(t, 1, *installs, "subsequent adds must not reinstall")
	assert.Equal(t, 0, *uninstalls)
}

func TestTopicUninstallOnLastRemovalOnly(t *testing.T) {
	tp, installs, uninstalls := countingTopic(t)

	h1 := tp.add(func(event) {})
	h2 := tp.add(func(event) {})

	require.True(t, tp.remove(h1))
	assert.Equal(t, 0, *uninstalls, "removing a non-last listener must not uninstall")

	require.True(t, tp.remove(h2))
	assert.Equal(t, 1, *uninstalls, "removing the last listener must uninstall")
	assert.True(t, tp.empty())

	// The cycle restarts cleanly.
	tp.add(func(event) {})
	assert.Equal(t, 2, *installs)
}

func TestTopicDispatchOrder(t *testing.T) {
	tp := newTopic[event](nil, nil)

	var order []int
	tp.add(func(event) { order = append(order, 1) })
	tp.add(func(event) { order = append(order, 2) })
	tp.add(func(event) { order = append(order, 3) })

	tp.dispatch(event{})
	assert.Equal(t, []int{1, 2, 3}, order, "listeners run in registration order")
}

func TestTopicDispatchPassesEvent(t *testing.T) {
	tp := newTopic[event](nil, nil)

	var got event
	tp.add(func(ev event) { got = ev })
	tp.dispatch(event{n: 42})
	assert.Equal(t, 42, got.n)
}

func TestTopicRemoveUnknownHandle(t *testing.T) {
	tp, _, uninstalls := countingTopic(t)

	h := tp.add(func(event) {})
	assert.False(t, tp.remove(h+100), "unknown handle must report false")
	assert.Equal(t, 0, *uninstalls, "a failed removal must not touch native state")
	assert.False(t, tp.empty(), "the registered listener must survive")

	require.True(t, tp.remove(h))
	assert.False(t, tp.remove(h), "a handle must not be removable twice")
	assert.Equal(t, 1, *uninstalls)
}

func TestTopicDuplicateListenerFiresTwice(t *testing.T) {
	tp := newTopic[event](nil, nil)

	calls := 0
	fn := func(event) { calls++ }
	h1 := tp.add(fn)
	h2 := tp.add(fn)
	require.NotEqual(t, h1, h2, "each registration owns a distinct handle")

	tp.dispatch(event{})
	assert.Equal(t, 2, calls)

	require.True(t, tp.remove(h1))
	tp.dispatch(event{})
	assert.Equal(t, 3, calls, "the second registration must survive removal of the first")
}

func TestTopicReentrantSelfRemoval(t *testing.T) {
	tp := newTopic[event](nil, nil)

	var order []int
	var h1 ListenerHandle
	h1 = tp.add(func(event) {
		order = append(order, 1)
		tp.remove(h1)
	})
	tp.add(func(event) { order = append(order, 2) })

	tp.dispatch(event{})
	assert.Equal(t, []int{1, 2}, order, "removal mid-dispatch must not skip later listeners")

	tp.dispatch(event{})
	assert.Equal(t, []int{1, 2, 2}, order, "the removed listener must not fire again")
}

func TestTopicReentrantAdd(t *testing.T) {
	tp := newTopic[event](nil, nil)

	calls := 0
	tp.add(func(event) {
		if calls == 0 {
			tp.add(func(event) { calls += 100 })
		}
		calls++
	})

	tp.dispatch(event{})
	assert.Equal(t, 1, calls, "a listener added mid-dispatch must not run for the current event")

	tp.dispatch(event{})
	assert.Equal(t, 102, calls, "it must run for subsequent events")
}

func TestTopicClear(t *testing.T) {
	tp, _, uninstalls := countingTopic(t)

	tp.add(func(event) {})
	tp.add(func(event) {})
	tp.clear()
	assert.True(t, tp.empty())
	assert.Equal(t, 1, *uninstalls, "clear uninstalls exactly once")

	tp.clear()
	assert.Equal(t, 1, *uninstalls, "clearing an empty topic is a no-op")
}

func TestTopicDispatchEmpty(t *testing.T) {
	tp := newTopic[event](nil, nil)
	assert.NotPanics(t, func() { tp.dispatch(event{}) })
}

func TestCallbackSlotRefcount(t *testing.T) {
	installs, uninstalls := 0, 0
	slot := &callbackSlot{
		install:   func() { installs++ },
		uninstall: func() { uninstalls++ },
	}

	slot.acquire()
	slot.acquire()
	assert.Equal(t, 1, installs, "only the first acquire installs")

	slot.release()
	assert.Equal(t, 0, uninstalls, "a remaining reference keeps the slot installed")

	slot.release()
	assert.Equal(t, 1, uninstalls, "the last release uninstalls")

	slot.release()
	assert.Equal(t, 1, uninstalls, "releasing an idle slot is a no-op")

	slot.acquire()
	assert.Equal(t, 2, installs, "the slot reinstalls after going idle")
}
