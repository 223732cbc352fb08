//go:build !ios && !android && (amd64 || arm64)

package glfwgo

// GLFW booleans.
const (
	True  int32 = 1
	False int32 = 0
)

// Hint is a window, framebuffer or context creation hint.
type Hint int32

// Window-related hints.
const (
	HintFocused                Hint = 0x00020001
	HintIconified              Hint = 0x00020002
	HintResizable              Hint = 0x00020003
	HintVisible                Hint = 0x00020004
	HintDecorated              Hint = 0x00020005
	HintAutoIconify            Hint = 0x00020006
	HintFloating               Hint = 0x00020007
	HintMaximized              Hint = 0x00020008
	HintCenterCursor           Hint = 0x00020009
	HintTransparentFramebuffer Hint = 0x0002000A
	HintFocusOnShow            Hint = 0x0002000C
	HintScaleToMonitor         Hint = 0x0002200C
)

// Framebuffer-related hints.
const (
	HintRedBits        Hint = 0x00021001
	HintGreenBits      Hint = 0x00021002
	HintBlueBits       Hint = 0x00021003
	HintAlphaBits      Hint = 0x00021004
	HintDepthBits      Hint = 0x00021005
	HintStencilBits    Hint = 0x00021006
	HintAccumRedBits   Hint = 0x00021007
	HintAccumGreenBits Hint = 0x00021008
	HintAccumBlueBits  Hint = 0x00021009
	HintAccumAlphaBits Hint = 0x0002100A
	HintAuxBuffers     Hint = 0x0002100B
	HintStereo         Hint = 0x0002100C
	HintSamples        Hint = 0x0002100D
	HintSRGBCapable    Hint = 0x0002100E
	HintRefreshRate    Hint = 0x0002100F
	HintDoubleBuffer   Hint = 0x00021010
)

// Context-related hints.
const (
	HintClientAPI              Hint = 0x00022001
	HintContextVersionMajor    Hint = 0x00022002
	HintContextVersionMinor    Hint = 0x00022003
	HintContextRevision        Hint = 0x00022004
	HintContextRobustness      Hint = 0x00022005
	HintOpenGLForwardCompat    Hint = 0x00022006
	HintOpenGLDebugContext     Hint = 0x00022007
	HintOpenGLProfile          Hint = 0x00022008
	HintContextReleaseBehavior Hint = 0x00022009
	HintContextNoError         Hint = 0x0002200A
	HintContextCreationAPI     Hint = 0x0002200B
)

// Values for HintClientAPI.
const (
	NoAPI       int32 = 0
	OpenGLAPI   int32 = 0x00030001
	OpenGLESAPI int32 = 0x00030002
)

// Values for HintOpenGLProfile.
const (
	OpenGLAnyProfile    int32 = 0
	OpenGLCoreProfile   int32 = 0x00032001
	OpenGLCompatProfile int32 = 0x00032002
)

// Values for HintContextRobustness.
const (
	NoRobustness        int32 = 0
	NoResetNotification int32 = 0x00031001
	LoseContextOnReset  int32 = 0x00031002
)

// Values for HintContextReleaseBehavior.
const (
	AnyReleaseBehavior   int32 = 0
	ReleaseBehaviorFlush int32 = 0x00035001
	ReleaseBehaviorNone  int32 = 0x00035002
)

// Values for HintContextCreationAPI.
const (
	NativeContextAPI int32 = 0x00036001
	EGLContextAPI    int32 = 0x00036002
	OSMesaContextAPI int32 = 0x00036003
)

// DontCare may be passed to size limits, aspect ratios and several hints.
const DontCare int32 = -1

// InitHint selects pre-initialization behavior; set with InitHint before Init.
type InitHintName int32

const (
	JoystickHatButtons  InitHintName = 0x00050001
	CocoaChdirResources InitHintName = 0x00051001
	CocoaMenubar        InitHintName = 0x00051002
)

// InitHint sets an init hint for the next call to Init. Hints set after a
// successful Init apply to the next Init after a Terminate. Loads the shared
// library if needed; returns an error only when that load fails.
func InitHint(hint InitHintName, value int32) error {
	if err := registerBindings(); err != nil {
		return err
	}
	glfwInitHint(int32(hint), value)
	return nil
}

// WindowHint sets a hint for the next call to CreateWindow. Hints persist
// until changed or reset with DefaultWindowHints.
func WindowHint(hint Hint, value int32) {
	if glfwWindowHint == nil {
		return
	}
	glfwWindowHint(int32(hint), value)
}

// WindowHintString sets a string-valued creation hint (e.g. the Cocoa frame
// name or X11 class hints).
func WindowHintString(hint Hint, value string) {
	if glfwWindowHintString == nil {
		return
	}
	glfwWindowHintString(int32(hint), value)
}

// DefaultWindowHints resets all window creation hints to their defaults.
func DefaultWindowHints() {
	if glfwDefaultWindowHints == nil {
		return
	}
	glfwDefaultWindowHints()
}
