// Package platform holds the OS specific behavior of the application behind a
// single interface that is selected once at startup.
package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Platform is the OS specific behavior needed by the rest of the application.
type Platform interface {
	// Name is the GOOS value the platform was selected for.
	Name() string
	// FileManagerCommand is the executable used to reveal a path in a file manager.
	FileManagerCommand() string
	// NormalizePath rewrites a canonicalized path into the form shown to users.
	NormalizePath(path string) string
}

// LookPathFunc searches for an executable, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// UnsupportedError is returned for operating systems without a Platform.
type UnsupportedError struct {
	GOOS string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported operating system: %s", e.GOOS)
}

// Current selects the Platform of the running process.
func Current() (Platform, error) {
	return Detect(runtime.GOOS, exec.LookPath)
}

// Detect selects the Platform for goos. lookPath is only consulted on
// platforms that probe for installed programs.
func Detect(goos string, lookPath LookPathFunc) (Platform, error) {
	switch goos {
	case "windows":
		return &Windows{}, nil
	case "darwin":
		return &Darwin{}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return NewUnix(goos, lookPath), nil
	default:
		return nil, &UnsupportedError{GOOS: goos}
	}
}

// Windows is the Platform for Windows.
type Windows struct{}

// extendedLengthPrefix is added to canonicalized paths by some Windows APIs.
const extendedLengthPrefix = `\\?\`

func (Windows) Name() string               { return "windows" }
func (Windows) FileManagerCommand() string { return "explorer" }

func (Windows) NormalizePath(path string) string {
	return strings.TrimPrefix(path, extendedLengthPrefix)
}

// Darwin is the Platform for macOS.
type Darwin struct{}

func (Darwin) Name() string                     { return "darwin" }
func (Darwin) FileManagerCommand() string       { return "open" }
func (Darwin) NormalizePath(path string) string { return path }

// unixFileManagers are probed in order; the first one installed wins.
var unixFileManagers = []string{"nautilus", "dolphin", "nemo", "thunar"}

// unixFallbackFileManager is used when no known file manager is installed.
const unixFallbackFileManager = "xdg-open"

// Unix is the Platform for Linux and the BSDs.
type Unix struct {
	goos        string
	fileManager string
}

// NewUnix probes for an installed file manager once.
func NewUnix(goos string, lookPath LookPathFunc) *Unix {
	fileManager := unixFallbackFileManager
	for _, candidate := range unixFileManagers {
		if _, err := lookPath(candidate); err == nil {
			fileManager = candidate
			break
		}
	}
	return &Unix{goos: goos, fileManager: fileManager}
}

func (u *Unix) Name() string                   { return u.goos }
func (u *Unix) FileManagerCommand() string     { return u.fileManager }
func (*Unix) NormalizePath(path string) string { return path }
