//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestIs64Bit(t *testing.T) {
	// We only support 64-bit platforms
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		goos    string
		want    string
	}{
		{"glfw", 3, "linux", "libglfw.so.3"},
		{"glfw", 0, "linux", "libglfw.so"},
		{"glfw", 3, "darwin", "libglfw.3.dylib"},
		{"glfw", 0, "darwin", "libglfw.dylib"},
		{"glfw", 3, "windows", "glfw3.dll"},
		{"glfw", 0, "windows", "glfw.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			got := FormatLibraryName(tt.name, tt.version)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tt.name, tt.version, got, tt.want)
			}
		})
	}
}

func TestLibrarySearchPathsNotEmpty(t *testing.T) {
	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Error("expected at least one library search path")
	}
}

func TestLibrarySearchPathsEnvOverride(t *testing.T) {
	t.Setenv("GLFWGO_LIBRARY_PATH", "/nonexistent/glfw")
	paths := LibrarySearchPaths()
	if len(paths) == 0 || paths[0] != "/nonexistent/glfw" {
		t.Errorf("GLFWGO_LIBRARY_PATH should be searched first, got %v", paths)
	}
}
