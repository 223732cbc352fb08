//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles locating and loading the GLFW shared library with
// purego. Function registration lives with the package that owns the wrappers;
// this package only finds the library and hands out its handle.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/glfwgo/internal/platform"
)

// ErrNotLoaded is returned when GLFW functions are called before Load().
var ErrNotLoaded = errors.New("glfwgo: GLFW library not loaded; call glfwgo.Init() first")

// ErrLibraryNotFound is returned when the GLFW shared library cannot be found.
var ErrLibraryNotFound = errors.New("glfwgo: GLFW library not found")

// soVersions lists the shared-object versions to probe, newest first.
// GLFW 3.x ships as libglfw.so.3 on every supported platform.
var soVersions = []int{3}

var (
	libGLFW uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if the GLFW library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load loads the GLFW shared library.
// It is safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error
	libGLFW, err = loadLibrary("glfw", soVersions)
	if err != nil {
		return fmt.Errorf("loading libglfw: %w", err)
	}
	return nil
}

// loadLibrary attempts to load a library by trying versioned names in each
// search path, then letting the system resolver have a go.
func loadLibrary(name string, versions []int) (uintptr, error) {
	for _, searchPath := range platform.LibrarySearchPaths() {
		for _, ver := range versions {
			libName := platform.FormatLibraryName(name, ver)
			fullPath := filepath.Join(searchPath, libName)

			lib, err := tryOpen(fullPath)
			if err == nil {
				return lib, nil
			}
		}

		libName := platform.FormatLibraryName(name, 0)
		fullPath := filepath.Join(searchPath, libName)
		lib, err := tryOpen(fullPath)
		if err == nil {
			return lib, nil
		}
	}

	// Bare names let the system loader search its own paths.
	for _, ver := range versions {
		libName := platform.FormatLibraryName(name, ver)
		lib, err := tryOpen(libName)
		if err == nil {
			return lib, nil
		}
	}

	libName := platform.FormatLibraryName(name, 0)
	lib, err := tryOpen(libName)
	if err == nil {
		return lib, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for the GLFW library and returns its full path.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	for _, searchPath := range platform.LibrarySearchPaths() {
		for _, ver := range soVersions {
			libName := platform.FormatLibraryName("glfw", ver)
			fullPath := filepath.Join(searchPath, libName)
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		libName := platform.FormatLibraryName("glfw", 0)
		fullPath := filepath.Join(searchPath, libName)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: glfw", ErrLibraryNotFound)
}

// LibGLFW returns the GLFW library handle, or 0 if not loaded.
func LibGLFW() uintptr {
	return libGLFW
}
