//go:build !ios && !android && (amd64 || arm64)

package glfwgo

import (
	"os"

	"github.com/charmbracelet/log"
)

// pkgLogger receives GLFW errors that no OnError listener handles, plus
// library-load diagnostics. Defaults to stderr at the warn level.
var pkgLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "glfw",
	Level:  log.WarnLevel,
})

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		pkgLogger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "glfw",
			Level:  log.WarnLevel,
		})
		return
	}
	pkgLogger = l
}

func logger() *log.Logger {
	return pkgLogger
}
