//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Joystick identifies one of GLFW's sixteen joystick slots. Unlike windows
// and monitors, joysticks are identified by a small integer rather than an
// opaque pointer.
type Joystick int32

// Joystick slots.
const (
	Joystick1  Joystick = 0
	Joystick2  Joystick = 1
	Joystick3  Joystick = 2
	Joystick4  Joystick = 3
	Joystick5  Joystick = 4
	Joystick6  Joystick = 5
	Joystick7  Joystick = 6
	Joystick8  Joystick = 7
	Joystick9  Joystick = 8
	Joystick10 Joystick = 9
	Joystick11 Joystick = 10
	Joystick12 Joystick = 11
	Joystick13 Joystick = 12
	Joystick14 Joystick = 13
	Joystick15 Joystick = 14
	Joystick16 Joystick = 15

	JoystickLast = Joystick16
)

// JoystickHatState is the state of a joystick hat.
type JoystickHatState uint8

// Hat states; diagonal positions are combinations of the cardinal bits.
const (
	HatCentered  JoystickHatState = 0
	HatUp        JoystickHatState = 1
	HatRight     JoystickHatState = 2
	HatDown      JoystickHatState = 4
	HatLeft      JoystickHatState = 8
	HatRightUp   = HatRight | HatUp
	HatRightDown = HatRight | HatDown
	HatLeftUp    = HatLeft | HatUp
	HatLeftDown  = HatLeft | HatDown
)

// GamepadButton indexes GamepadState.Buttons.
type GamepadButton int

// Gamepad buttons, following the Xbox-style layout SDL mappings use.
const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonGuide
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonDpadUp
	GamepadButtonDpadRight
	GamepadButtonDpadDown
	GamepadButtonDpadLeft

	GamepadButtonLast = GamepadButtonDpadLeft
)

// GamepadAxis indexes GamepadState.Axes.
type GamepadAxis int

// Gamepad axes.
const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger

	GamepadAxisLast = GamepadAxisRightTrigger
)

// GamepadState is the input state of a gamepad, remapped through the SDL
// game controller database. Field layout matches GLFWgamepadstate so it can
// be filled in place by the native call.
type GamepadState struct {
	Buttons [15]uint8
	_       uint8 // C struct padding before the float array
	Axes    [6]float32
}

// Button returns the state of a gamepad button as an Action.
func (s *GamepadState) Button(b GamepadButton) Action {
	return Action(s.Buttons[b])
}

// Axis returns the value of a gamepad axis, in [-1, 1] (triggers in [0, 1]).
func (s *GamepadState) Axis(a GamepadAxis) float32 {
	return s.Axes[a]
}

// Present reports whether a joystick is connected in this slot.
func (j Joystick) Present() bool {
	if glfwJoystickPresent == nil {
		return false
	}
	return glfwJoystickPresent(int32(j)) == True
}

// Axes returns the values of all axes of the joystick, each in [-1, 1], or
// nil if the joystick is not present. The returned slice is a copy.
func (j Joystick) Axes() []float32 {
	if glfwGetJoystickAxes == nil {
		return nil
	}
	var count int32
	p := glfwGetJoystickAxes(int32(j), &count)
	if p == 0 || count == 0 {
		return nil
	}
	out := make([]float32, count)
	copy(out, unsafe.Slice((*float32)(unsafe.Pointer(p)), int(count)))
	return out
}

// Buttons returns the press state of all buttons of the joystick, or nil if
// it is not present. The returned slice is a copy.
func (j Joystick) Buttons() []Action {
	if glfwGetJoystickButtons == nil {
		return nil
	}
	var count int32
	p := glfwGetJoystickButtons(int32(j), &count)
	if p == 0 || count == 0 {
		return nil
	}
	raw := unsafe.Slice((*uint8)(unsafe.Pointer(p)), int(count))
	out := make([]Action, count)
	for i, b := range raw {
		out[i] = Action(b)
	}
	return out
}

// Hats returns the state of all hats of the joystick, or nil if it is not
// present. The returned slice is a copy.
func (j Joystick) Hats() []JoystickHatState {
	if glfwGetJoystickHats == nil {
		return nil
	}
	var count int32
	p := glfwGetJoystickHats(int32(j), &count)
	if p == 0 || count == 0 {
		return nil
	}
	raw := unsafe.Slice((*uint8)(unsafe.Pointer(p)), int(count))
	out := make([]JoystickHatState, count)
	for i, b := range raw {
		out[i] = JoystickHatState(b)
	}
	return out
}

// Name returns a human-readable name for the joystick, or "" if it is not
// present.
func (j Joystick) Name() string {
	if glfwGetJoystickName == nil {
		return ""
	}
	return glfwGetJoystickName(int32(j))
}

// GUID returns the SDL-compatible GUID of the joystick, or "" if it is not
// present.
func (j Joystick) GUID() string {
	if glfwGetJoystickGUID == nil {
		return ""
	}
	return glfwGetJoystickGUID(int32(j))
}

// IsGamepad reports whether the joystick has a gamepad mapping.
func (j Joystick) IsGamepad() bool {
	if glfwJoystickIsGamepad == nil {
		return false
	}
	return glfwJoystickIsGamepad(int32(j)) == True
}

// GamepadName returns the name from the joystick's gamepad mapping, or ""
// if it has none.
func (j Joystick) GamepadName() string {
	if glfwGetGamepadName == nil {
		return ""
	}
	return glfwGetGamepadName(int32(j))
}

// GamepadState returns the joystick's remapped gamepad input state. ok is
// false when the joystick is not present or has no gamepad mapping.
func (j Joystick) GamepadState() (state GamepadState, ok bool) {
	if glfwGetGamepadState == nil {
		return GamepadState{}, false
	}
	if glfwGetGamepadState(int32(j), &state) != True {
		return GamepadState{}, false
	}
	return state, true
}

// UpdateGamepadMappings adds SDL_GameControllerDB-format mappings to the
// internal database.
func UpdateGamepadMappings(mappings string) bool {
	if glfwUpdateGamepadMappings == nil {
		return false
	}
	return glfwUpdateGamepadMappings(mappings) == True
}

// SetUserPointer attaches an arbitrary value to the joystick slot,
// retrievable with UserPointer. The value lives until the joystick
// disconnects.
func (j Joystick) SetUserPointer(v any) {
	joystickDataFor(int32(j)).userPtr = v
}

// UserPointer returns the value attached with SetUserPointer, or nil.
func (j Joystick) UserPointer() any {
	d := joystickTable.Lookup(uintptr(j))
	if d == nil {
		return nil
	}
	return d.userPtr
}

// JoystickConnectEvent reports a joystick appearing in a slot. Class-scoped:
// there is no instance to listen on before the joystick exists.
type JoystickConnectEvent struct {
	Joystick Joystick
}

// JoystickDisconnectEvent reports a joystick leaving its slot.
type JoystickDisconnectEvent struct {
	Joystick Joystick
}

var joystickCBHandle uintptr

// joystickSlot refcounts GLFW's single joystick callback across the class
// topics and every per-joystick disconnect topic.
var joystickSlot = &callbackSlot{
	install: func() {
		if glfwSetJoystickCallback == nil {
			return
		}
		if joystickCBHandle == 0 {
			joystickCBHandle = purego.NewCallback(joystickTrampoline)
		}
		glfwSetJoystickCallback(joystickCBHandle)
	},
	uninstall: func() {
		if glfwSetJoystickCallback != nil {
			glfwSetJoystickCallback(0)
		}
	},
}

var (
	joystickConnectTopic    *topic[JoystickConnectEvent]
	joystickDisconnectTopic *topic[JoystickDisconnectEvent]
)

// Assigned in init to break the initializer cycle through joystickTrampoline.
func init() {
	joystickConnectTopic = newTopic[JoystickConnectEvent](joystickSlot.acquire, joystickSlot.release)
	joystickDisconnectTopic = newTopic[JoystickDisconnectEvent](joystickSlot.acquire, joystickSlot.release)
}

// joystickTrampoline handles both connection directions; see
// monitorTrampoline for the disconnect teardown ordering.
func joystickTrampoline(jid, event int32) {
	switch event {
	case connected:
		joystickConnectTopic.dispatch(JoystickConnectEvent{Joystick: Joystick(jid)})
	case disconnected:
		if d := joystickTable.Lookup(uintptr(jid)); d != nil {
			d.disconnect.dispatch(JoystickDisconnectEvent{Joystick: Joystick(jid)})
		}
		joystickDisconnectTopic.dispatch(JoystickDisconnectEvent{Joystick: Joystick(jid)})
		dropJoystickData(jid)
	}
}

// OnJoystickConnect registers a class-scoped listener for joystick
// connection.
func OnJoystickConnect(fn func(JoystickConnectEvent)) ListenerHandle {
	return joystickConnectTopic.add(fn)
}

// RemoveJoystickConnectListener removes a listener registered with
// OnJoystickConnect.
func RemoveJoystickConnectListener(h ListenerHandle) bool {
	return joystickConnectTopic.remove(h)
}

// OnJoystickDisconnect registers a class-scoped listener for joystick
// disconnection.
func OnJoystickDisconnect(fn func(JoystickDisconnectEvent)) ListenerHandle {
	return joystickDisconnectTopic.add(fn)
}

// RemoveJoystickDisconnectListener removes a listener registered with
// OnJoystickDisconnect.
func RemoveJoystickDisconnectListener(h ListenerHandle) bool {
	return joystickDisconnectTopic.remove(h)
}

// OnDisconnect registers a listener for this joystick slot's disconnection.
// The listener list dies with the joystick.
func (j Joystick) OnDisconnect(fn func(JoystickDisconnectEvent)) ListenerHandle {
	return joystickDataFor(int32(j)).disconnect.add(fn)
}

// RemoveDisconnectListener removes a listener registered with OnDisconnect.
func (j Joystick) RemoveDisconnectListener(h ListenerHandle) bool {
	d := joystickTable.Lookup(uintptr(j))
	if d == nil {
		return false
	}
	return d.disconnect.remove(h)
}
