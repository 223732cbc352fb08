//go:build !ios && !android && (amd64 || arm64)

// Package state provides typed retention tables mapping native handles to the
// Go-side objects attached to them.
//
// GLFW gives every window, monitor and joystick exactly one opaque user
// pointer. Go objects cannot be stored behind a C void* directly, so instead
// of pinning Go memory through that slot, each handle kind gets an explicit
// process-wide table keyed by the handle value. Entries are inserted when the
// attached object is first needed and removed when the handle is destroyed or
// disconnects, which also makes the object collectable again.
package state

import (
	"sync"
)

// Table maps native handle values to their attached Go objects.
// The zero value is not usable; create tables with NewTable.
type Table[T any] struct {
	mu      sync.RWMutex
	entries map[uintptr]*T
}

// NewTable returns an empty handle table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		entries: make(map[uintptr]*T),
	}
}

// GetOrCreate returns the object attached to handle, creating it with mk on
// first access. Successive calls without an intervening Delete return the
// same pointer.
//
// Thread-safe.
func (t *Table[T]) GetOrCreate(handle uintptr, mk func() *T) *T {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.entries[handle]; ok {
		return v
	}
	v := mk()
	t.entries[handle] = v
	return v
}

// Lookup returns the object attached to handle, or nil if none is attached.
//
// Thread-safe.
func (t *Table[T]) Lookup(handle uintptr) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[handle]
}

// Delete removes the entry for handle, allowing the attached object to be
// garbage collected. Deleting an absent handle is a no-op.
//
// Thread-safe.
func (t *Table[T]) Delete(handle uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, handle)
}

// Handles returns the handle values currently present in the table.
// Used at teardown to release every attached object.
//
// Thread-safe.
func (t *Table[T]) Handles() []uintptr {
	t.mu.RLock()
	defer t.mu.RUnlock()
	hs := make([]uintptr, 0, len(t.entries))
	for h := range t.entries {
		hs = append(hs, h)
	}
	return hs
}

// Count returns the number of attached objects.
// Useful for debugging and testing teardown leaks.
//
// Thread-safe.
func (t *Table[T]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
