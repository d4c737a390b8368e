package platform

import "runtime"

// OS represents an operating system with a known way to open URLs.
type OS string

const (
	MacOS   OS = "darwin"
	Linux   OS = "linux"
	Windows OS = "windows"
	Unknown OS = "unknown"
)

// Detect returns the current operating system.
func Detect() OS {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to an OS.
func FromGOOS(goos string) OS {
	switch goos {
	case "darwin":
		return MacOS
	case "linux", "freebsd", "openbsd", "netbsd":
		// The BSDs ship xdg-open through the same desktop stack as Linux.
		return Linux
	case "windows":
		return Windows
	default:
		return Unknown
	}
}
