//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// KeyEvent reports a key press, release or repeat.
type KeyEvent struct {
	Window   Window
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// CharEvent reports a Unicode character of generated text input.
type CharEvent struct {
	Window Window
	Char   rune
}

// CharModsEvent reports a Unicode character together with the modifier keys
// held when it was generated.
type CharModsEvent struct {
	Window Window
	Char   rune
	Mods   ModifierKey
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Window Window
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// CursorPosEvent reports cursor movement over the window's content area, in
// screen coordinates relative to its upper-left corner.
type CursorPosEvent struct {
	Window Window
	X, Y   float64
}

// CursorEnterEvent reports the cursor entering or leaving the window's
// content area.
type CursorEnterEvent struct {
	Window  Window
	Entered bool
}

// ScrollEvent reports scroll wheel or touchpad scroll input.
type ScrollEvent struct {
	Window         Window
	XOffset, YOffset float64
}

// DropEvent reports files or directories dropped onto the window.
// The Paths slice is owned by the listener and survives the dispatch.
type DropEvent struct {
	Window Window
	Paths  []string
}

var (
	keyCB         uintptr
	charCB        uintptr
	charModsCB    uintptr
	mouseButtonCB uintptr
	cursorPosCB   uintptr
	cursorEnterCB uintptr
	scrollCB      uintptr
	dropCB        uintptr
)

func dispatchKey(h uintptr, key, scancode, action, mods int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.key.dispatch(KeyEvent{
			Window:   Window{handle: h},
			Key:      Key(key),
			Scancode: int(scancode),
			Action:   Action(action),
			Mods:     ModifierKey(mods),
		})
	}
}

func dispatchChar(h uintptr, codepoint uint32) {
	if d := windowTable.Lookup(h); d != nil {
		d.char.dispatch(CharEvent{Window: Window{handle: h}, Char: rune(codepoint)})
	}
}

func dispatchCharMods(h uintptr, codepoint uint32, mods int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.charMods.dispatch(CharModsEvent{
			Window: Window{handle: h},
			Char:   rune(codepoint),
			Mods:   ModifierKey(mods),
		})
	}
}

func dispatchMouseButton(h uintptr, button, action, mods int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.mouseButton.dispatch(MouseButtonEvent{
			Window: Window{handle: h},
			Button: MouseButton(button),
			Action: Action(action),
			Mods:   ModifierKey(mods),
		})
	}
}

func dispatchCursorPos(h uintptr, x, y float64) {
	if d := windowTable.Lookup(h); d != nil {
		d.cursorPos.dispatch(CursorPosEvent{Window: Window{handle: h}, X: x, Y: y})
	}
}

func dispatchCursorEnter(h uintptr, entered int32) {
	if d := windowTable.Lookup(h); d != nil {
		d.cursorEnter.dispatch(CursorEnterEvent{Window: Window{handle: h}, Entered: entered == True})
	}
}

func dispatchScroll(h uintptr, xoff, yoff float64) {
	if d := windowTable.Lookup(h); d != nil {
		d.scroll.dispatch(ScrollEvent{Window: Window{handle: h}, XOffset: xoff, YOffset: yoff})
	}
}

func dispatchDrop(h uintptr, count int32, paths uintptr) {
	d := windowTable.Lookup(h)
	if d == nil {
		return
	}
	// The C string array is only valid during the callback; copy now.
	out := make([]string, 0, count)
	if paths != 0 {
		raw := unsafe.Slice((**byte)(unsafe.Pointer(paths)), int(count))
		for _, p := range raw {
			out = append(out, goString(p))
		}
	}
	d.drop.dispatch(DropEvent{Window: Window{handle: h}, Paths: out})
}

func keyTrampoline() uintptr {
	if keyCB == 0 {
		keyCB = purego.NewCallback(dispatchKey)
	}
	return keyCB
}

func charTrampoline() uintptr {
	if charCB == 0 {
		charCB = purego.NewCallback(dispatchChar)
	}
	return charCB
}

func charModsTrampoline() uintptr {
	if charModsCB == 0 {
		charModsCB = purego.NewCallback(dispatchCharMods)
	}
	return charModsCB
}

func mouseButtonTrampoline() uintptr {
	if mouseButtonCB == 0 {
		mouseButtonCB = purego.NewCallback(dispatchMouseButton)
	}
	return mouseButtonCB
}

func cursorPosTrampoline() uintptr {
	if cursorPosCB == 0 {
		cursorPosCB = purego.NewCallback(dispatchCursorPos)
	}
	return cursorPosCB
}

func cursorEnterTrampoline() uintptr {
	if cursorEnterCB == 0 {
		cursorEnterCB = purego.NewCallback(dispatchCursorEnter)
	}
	return cursorEnterCB
}

func scrollTrampoline() uintptr {
	if scrollCB == 0 {
		scrollCB = purego.NewCallback(dispatchScroll)
	}
	return scrollCB
}

func dropTrampoline() uintptr {
	if dropCB == 0 {
		dropCB = purego.NewCallback(dispatchDrop)
	}
	return dropCB
}

// OnKey registers a listener for key events.
func (w Window) OnKey(fn func(KeyEvent)) ListenerHandle {
	return windowDataFor(w.handle).key.add(fn)
}

// RemoveKeyListener removes a listener registered with OnKey.
func (w Window) RemoveKeyListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.key.remove(h)
}

// OnChar registers a listener for Unicode text input.
func (w Window) OnChar(fn func(CharEvent)) ListenerHandle {
	return windowDataFor(w.handle).char.add(fn)
}

// RemoveCharListener removes a listener registered with OnChar.
func (w Window) RemoveCharListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.char.remove(h)
}

// OnCharMods registers a listener for text input with modifier state.
func (w Window) OnCharMods(fn func(CharModsEvent)) ListenerHandle {
	return windowDataFor(w.handle).charMods.add(fn)
}

// RemoveCharModsListener removes a listener registered with OnCharMods.
func (w Window) RemoveCharModsListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.charMods.remove(h)
}

// OnMouseButton registers a listener for mouse button events.
func (w Window) OnMouseButton(fn func(MouseButtonEvent)) ListenerHandle {
	return windowDataFor(w.handle).mouseButton.add(fn)
}

// RemoveMouseButtonListener removes a listener registered with OnMouseButton.
func (w Window) RemoveMouseButtonListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.mouseButton.remove(h)
}

// OnCursorPos registers a listener for cursor movement.
func (w Window) OnCursorPos(fn func(CursorPosEvent)) ListenerHandle {
	return windowDataFor(w.handle).cursorPos.add(fn)
}

// RemoveCursorPosListener removes a listener registered with OnCursorPos.
func (w Window) RemoveCursorPosListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.cursorPos.remove(h)
}

// OnCursorEnter registers a listener for the cursor entering or leaving the
// content area.
func (w Window) OnCursorEnter(fn func(CursorEnterEvent)) ListenerHandle {
	return windowDataFor(w.handle).cursorEnter.add(fn)
}

// RemoveCursorEnterListener removes a listener registered with OnCursorEnter.
func (w Window) RemoveCursorEnterListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.cursorEnter.remove(h)
}

// OnScroll registers a listener for scroll input.
func (w Window) OnScroll(fn func(ScrollEvent)) ListenerHandle {
	return windowDataFor(w.handle).scroll.add(fn)
}

// RemoveScrollListener removes a listener registered with OnScroll.
func (w Window) RemoveScrollListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.scroll.remove(h)
}

// OnDrop registers a listener for path drop events.
func (w Window) OnDrop(fn func(DropEvent)) ListenerHandle {
	return windowDataFor(w.handle).drop.add(fn)
}

// RemoveDropListener removes a listener registered with OnDrop.
func (w Window) RemoveDropListener(h ListenerHandle) bool {
	d := windowTable.Lookup(w.handle)
	if d == nil {
		return false
	}
	return d.drop.remove(h)
}
