//go:build !ios && !android && (amd64 || arm64)

package glfwgo

// Action is a key or button state transition.
type Action int32

// Key and button actions.
const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// String returns the name of the action.
func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// ModifierKey is a bitmask of modifier keys held during an input event.
type ModifierKey int32

// Modifier key bits.
const (
	ModShift    ModifierKey = 0x0001
	ModControl  ModifierKey = 0x0002
	ModAlt      ModifierKey = 0x0004
	ModSuper    ModifierKey = 0x0008
	ModCapsLock ModifierKey = 0x0010
	ModNumLock  ModifierKey = 0x0020
)

// Has reports whether all bits of m2 are set in m.
func (m ModifierKey) Has(m2 ModifierKey) bool {
	return m&m2 == m2
}

// Key is a keyboard key, named after its function in the standard US layout.
type Key int32

// Keyboard keys.
const (
	KeyUnknown Key = -1

	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96
	KeyWorld1       Key = 161
	KeyWorld2       Key = 162

	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyF13          Key = 302
	KeyF14          Key = 303
	KeyF15          Key = 304
	KeyF16          Key = 305
	KeyF17          Key = 306
	KeyF18          Key = 307
	KeyF19          Key = 308
	KeyF20          Key = 309
	KeyF21          Key = 310
	KeyF22          Key = 311
	KeyF23          Key = 312
	KeyF24          Key = 313
	KeyF25          Key = 314
	KeyKP0          Key = 320
	KeyKP1          Key = 321
	KeyKP2          Key = 322
	KeyKP3          Key = 323
	KeyKP4          Key = 324
	KeyKP5          Key = 325
	KeyKP6          Key = 326
	KeyKP7          Key = 327
	KeyKP8          Key = 328
	KeyKP9          Key = 329
	KeyKPDecimal    Key = 330
	KeyKPDivide     Key = 331
	KeyKPMultiply   Key = 332
	KeyKPSubtract   Key = 333
	KeyKPAdd        Key = 334
	KeyKPEnter      Key = 335
	KeyKPEqual      Key = 336
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348

	KeyLast Key = KeyMenu
)

// MouseButton is a mouse button index.
type MouseButton int32

// Mouse buttons.
const (
	MouseButton1 MouseButton = 0
	MouseButton2 MouseButton = 1
	MouseButton3 MouseButton = 2
	MouseButton4 MouseButton = 3
	MouseButton5 MouseButton = 4
	MouseButton6 MouseButton = 5
	MouseButton7 MouseButton = 6
	MouseButton8 MouseButton = 7

	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
	MouseButtonLast   = MouseButton8
)

// InputMode selects a per-window input option.
type InputMode int32

// Input modes.
const (
	CursorMode         InputMode = 0x00033001
	StickyKeysMode     InputMode = 0x00033002
	StickyMouseButtons InputMode = 0x00033003
	LockKeyMods        InputMode = 0x00033004
	RawMouseMotion     InputMode = 0x00033005
)

// Values for CursorMode.
const (
	CursorNormal   int32 = 0x00034001
	CursorHidden   int32 = 0x00034002
	CursorDisabled int32 = 0x00034003
)

// GetKeyName returns the layout-specific name of a printable key. Pass
// KeyUnknown together with a scancode to name keys this package has no
// constant for. Returns "" for non-printable keys.
func GetKeyName(key Key, scancode int) string {
	if glfwGetKeyName == nil {
		return ""
	}
	return glfwGetKeyName(int32(key), int32(scancode))
}

// GetKeyScancode returns the platform-specific scancode of key, or -1 if the
// key is not supported on this platform.
func GetKeyScancode(key Key) int {
	if glfwGetKeyScancode == nil {
		return -1
	}
	return int(glfwGetKeyScancode(int32(key)))
}

// RawMouseMotionSupported reports whether raw mouse motion is available on
// the current system.
func RawMouseMotionSupported() bool {
	if glfwRawMouseMotionSupported == nil {
		return false
	}
	return glfwRawMouseMotionSupported() == True
}

// GetKey returns the last reported state of a keyboard key: Press or
// Release (sticky keys can also report Press once after release).
func (w Window) GetKey(key Key) Action {
	if glfwGetKey == nil {
		return Release
	}
	return Action(glfwGetKey(w.handle, int32(key)))
}

// GetMouseButton returns the last reported state of a mouse button.
func (w Window) GetMouseButton(button MouseButton) Action {
	if glfwGetMouseButton == nil {
		return Release
	}
	return Action(glfwGetMouseButton(w.handle, int32(button)))
}

// CursorPos returns the cursor position in screen coordinates, relative to
// the upper-left corner of the window's content area.
func (w Window) CursorPos() (x, y float64) {
	if glfwGetCursorPos == nil {
		return 0, 0
	}
	glfwGetCursorPos(w.handle, &x, &y)
	return x, y
}

// SetCursorPos moves the cursor to the given position relative to the
// upper-left corner of the window's content area. The window must be focused.
func (w Window) SetCursorPos(x, y float64) {
	if glfwSetCursorPos == nil {
		return
	}
	glfwSetCursorPos(w.handle, x, y)
}

// InputMode returns the current value of the given input mode.
func (w Window) InputMode(mode InputMode) int32 {
	if glfwGetInputMode == nil {
		return 0
	}
	return glfwGetInputMode(w.handle, int32(mode))
}

// SetInputMode sets an input option for the window, e.g. CursorMode to
// CursorDisabled for mouse-look.
func (w Window) SetInputMode(mode InputMode, value int32) {
	if glfwSetInputMode == nil {
		return
	}
	glfwSetInputMode(w.handle, int32(mode), value)
}

// ClipboardString returns the contents of the system clipboard, if it
// contains a UTF-8 string.
func (w Window) ClipboardString() string {
	if glfwGetClipboardString == nil {
		return ""
	}
	return glfwGetClipboardString(w.handle)
}

// SetClipboardString sets the system clipboard to the given UTF-8 string.
func (w Window) SetClipboardString(s string) {
	if glfwSetClipboardString == nil {
		return
	}
	glfwSetClipboardString(w.handle, s)
}
