//go:build !ios && !android && (amd64 || arm64)

package glfwgo

// Attrib is a queryable window or context attribute.
type Attrib int32

// Window attributes. Several share values with the corresponding creation
// hints.
const (
	AttribFocused                Attrib = 0x00020001
	AttribIconified              Attrib = 0x00020002
	AttribResizable              Attrib = 0x00020003
	AttribVisible                Attrib = 0x00020004
	AttribDecorated              Attrib = 0x00020005
	AttribAutoIconify            Attrib = 0x00020006
	AttribFloating               Attrib = 0x00020007
	AttribMaximized              Attrib = 0x00020008
	AttribTransparentFramebuffer Attrib = 0x0002000A
	AttribHovered                Attrib = 0x0002000B
	AttribFocusOnShow            Attrib = 0x0002000C
)

// Context attributes.
const (
	AttribClientAPI           Attrib = 0x00022001
	AttribContextVersionMajor Attrib = 0x00022002
	AttribContextVersionMinor Attrib = 0x00022003
	AttribContextRevision     Attrib = 0x00022004
	AttribContextRobustness   Attrib = 0x00022005
	AttribOpenGLForwardCompat Attrib = 0x00022006
	AttribOpenGLDebugContext  Attrib = 0x00022007
	AttribOpenGLProfile       Attrib = 0x00022008
)

// attribIsBool drives decoding in the generic accessors: attributes listed
// here report GLFW booleans, everything else reports plain integers.
var attribIsBool = map[Attrib]bool{
	AttribFocused:                true,
	AttribIconified:              true,
	AttribResizable:              true,
	AttribVisible:                true,
	AttribDecorated:              true,
	AttribAutoIconify:            true,
	AttribFloating:               true,
	AttribMaximized:              true,
	AttribTransparentFramebuffer: true,
	AttribHovered:                true,
	AttribFocusOnShow:            true,
	AttribOpenGLForwardCompat:    true,
	AttribOpenGLDebugContext:     true,
}

// settableAttribs lists the attributes GLFW allows changing after creation.
var settableAttribs = map[Attrib]bool{
	AttribResizable:   true,
	AttribDecorated:   true,
	AttribAutoIconify: true,
	AttribFloating:    true,
	AttribFocusOnShow: true,
}

// Attrib returns the raw value of a window or context attribute.
func (w Window) Attrib(a Attrib) int32 {
	if glfwGetWindowAttrib == nil {
		return 0
	}
	return glfwGetWindowAttrib(w.handle, int32(a))
}

// AttribBool returns a boolean attribute. For integer attributes it reports
// whether the value is non-zero.
func (w Window) AttribBool(a Attrib) bool {
	v := w.Attrib(a)
	if attribIsBool[a] {
		return v == True
	}
	return v != 0
}

// SetAttrib changes a settable window attribute. Attempts to set a read-only
// attribute are rejected here rather than passed to GLFW.
func (w Window) SetAttrib(a Attrib, value int32) error {
	if glfwSetWindowAttrib == nil {
		return ErrNotLoaded
	}
	if !settableAttribs[a] {
		return &Error{Code: InvalidEnum, Description: "attribute is not settable", Op: "glfwSetWindowAttrib"}
	}
	glfwSetWindowAttrib(w.handle, int32(a), value)
	return nil
}

// SetAttribBool changes a settable boolean window attribute.
func (w Window) SetAttribBool(a Attrib, value bool) error {
	return w.SetAttrib(a, boolToInt(value))
}

// Typed conveniences over the generic accessors.

// Focused reports whether the window has input focus.
func (w Window) Focused() bool { return w.AttribBool(AttribFocused) }

// Iconified reports whether the window is minimized.
func (w Window) Iconified() bool { return w.AttribBool(AttribIconified) }

// Maximized reports whether the window is maximized.
func (w Window) Maximized() bool { return w.AttribBool(AttribMaximized) }

// Visible reports whether the window is visible.
func (w Window) Visible() bool { return w.AttribBool(AttribVisible) }

// Hovered reports whether the cursor is over the window's content area.
func (w Window) Hovered() bool { return w.AttribBool(AttribHovered) }

// Resizable reports whether the window can be resized by the user.
func (w Window) Resizable() bool { return w.AttribBool(AttribResizable) }

// SetResizable changes whether the window can be resized by the user.
func (w Window) SetResizable(v bool) error { return w.SetAttribBool(AttribResizable, v) }

// Decorated reports whether the window has frame decorations.
func (w Window) Decorated() bool { return w.AttribBool(AttribDecorated) }

// SetDecorated changes whether the window has frame decorations.
func (w Window) SetDecorated(v bool) error { return w.SetAttribBool(AttribDecorated, v) }

// Floating reports whether the window is always on top.
func (w Window) Floating() bool { return w.AttribBool(AttribFloating) }

// SetFloating changes whether the window is always on top.
func (w Window) SetFloating(v bool) error { return w.SetAttribBool(AttribFloating, v) }
