//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"image"
	"image/draw"
	"runtime"
)

// Cursor is a non-owning reference to a cursor object. The zero Cursor
// refers to the default arrow cursor when passed to Window.SetCursor.
type Cursor struct {
	handle uintptr
}

// Handle returns the raw native cursor handle.
func (c Cursor) Handle() uintptr {
	return c.handle
}

// IsNil reports whether c refers to no cursor object.
func (c Cursor) IsNil() bool {
	return c.handle == 0
}

// StandardCursorShape selects one of the platform's standard cursor images.
type StandardCursorShape int32

// Standard cursor shapes.
const (
	ArrowCursor     StandardCursorShape = 0x00036001
	IBeamCursor     StandardCursorShape = 0x00036002
	CrosshairCursor StandardCursorShape = 0x00036003
	HandCursor      StandardCursorShape = 0x00036004
	HResizeCursor   StandardCursorShape = 0x00036005
	VResizeCursor   StandardCursorShape = 0x00036006
)

// Image matches GLFWimage: dimensions plus a pointer to 32-bit RGBA pixels,
// rows packed top to bottom.
type Image struct {
	Width  int32
	Height int32
	Pixels *uint8
}

// newImage flattens an image.Image into GLFW's RGBA layout. The returned
// pixel slice must be kept alive for the duration of the native call.
func newImage(img image.Image) (Image, []uint8) {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	var px *uint8
	if len(rgba.Pix) > 0 {
		px = &rgba.Pix[0]
	}
	return Image{Width: int32(b.Dx()), Height: int32(b.Dy()), Pixels: px}, rgba.Pix
}

// CreateStandardCursor creates a cursor with one of the platform's standard
// shapes.
func CreateStandardCursor(shape StandardCursorShape) (Cursor, error) {
	if glfwCreateStandardCursor == nil {
		return Cursor{}, ErrNotLoaded
	}
	clearLastError()
	h := glfwCreateStandardCursor(int32(shape))
	if h == 0 {
		if err := consumeLastError("glfwCreateStandardCursor"); err != nil {
			return Cursor{}, err
		}
		return Cursor{}, &Error{Code: PlatformError, Description: "cursor creation failed", Op: "glfwCreateStandardCursor"}
	}
	return Cursor{handle: h}, nil
}

// CreateCursor creates a cursor from an image, with the hotspot at (xhot,
// yhot) from its upper-left corner. The image is copied by GLFW.
func CreateCursor(img image.Image, xhot, yhot int) (Cursor, error) {
	if glfwCreateCursor == nil {
		return Cursor{}, ErrNotLoaded
	}
	native, pix := newImage(img)
	clearLastError()
	h := glfwCreateCursor(&native, int32(xhot), int32(yhot))
	runtime.KeepAlive(pix)
	if h == 0 {
		if err := consumeLastError("glfwCreateCursor"); err != nil {
			return Cursor{}, err
		}
		return Cursor{}, &Error{Code: PlatformError, Description: "cursor creation failed", Op: "glfwCreateCursor"}
	}
	return Cursor{handle: h}, nil
}

// Destroy destroys the cursor object. Windows using it revert to the default
// arrow.
func (c Cursor) Destroy() {
	if glfwDestroyCursor == nil {
		return
	}
	glfwDestroyCursor(c.handle)
}
