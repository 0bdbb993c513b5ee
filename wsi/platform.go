// Package wsi turns a locked native drawing surface into a Vulkan
// presentation surface.
//
// A Factory is picked once per process for the host window system. Each
// variant feeds the native handles of a drawsurf.Descriptor to the matching
// platform surface entry point of the Vulkan loader.
package wsi

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/perlw/vksurface/drawsurf"
)

type Platform int

const (
	Unsupported Platform = iota
	Windows
	X11
	MacOS
)

func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case X11:
		return "x11"
	case MacOS:
		return "macos"
	default:
		return "unsupported"
	}
}

// Detect returns the window system of the running host.
func Detect() Platform {
	return platformFor(runtime.GOOS)
}

// platformFor maps X11 to the hosts GLFW exposes Xlib handles on.
func platformFor(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux", "freebsd":
		return X11
	default:
		return Unsupported
	}
}

// ParsePlatform accepts the names printed by Platform.String. "auto" and
// the empty string mean Detect.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Detect(), nil
	case "windows", "win32":
		return Windows, nil
	case "x11", "xlib":
		return X11, nil
	case "macos", "darwin", "metal":
		return MacOS, nil
	}
	return Unsupported, errors.Errorf("unknown platform %q", s)
}

// VersionFor is the bridge API version each platform needs. Requesting the
// wrong one is undefined behaviour in the bridge and is not detected.
func VersionFor(p Platform) drawsurf.Version {
	switch p {
	case MacOS:
		return drawsurf.Version1_7 | drawsurf.MacOSXUseCALayer
	default:
		return drawsurf.Version1_4
	}
}
