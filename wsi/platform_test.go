package wsi

import (
	"testing"

	"github.com/perlw/vksurface/drawsurf"
)

func TestPlatformFor(t *testing.T) {
	tests := map[string]Platform{
		"windows": Windows,
		"darwin":  MacOS,
		"linux":   X11,
		"freebsd": X11,
		"openbsd": Unsupported,
		"netbsd":  Unsupported,
		"solaris": Unsupported,
		"plan9":   Unsupported,
	}
	for goos, want := range tests {
		if got := platformFor(goos); got != want {
			t.Errorf("%s: got %v, want %v", goos, got, want)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	for in, want := range map[string]Platform{"Win32": Windows, " x11 ": X11, "metal": MacOS} {
		got, err := ParsePlatform(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v %v, want %v", in, got, err, want)
		}
	}
	if got, err := ParsePlatform("auto"); err != nil || got != Detect() {
		t.Errorf("auto: got %v %v", got, err)
	}
	if _, err := ParsePlatform("wayland"); err == nil {
		t.Error("wayland accepted")
	}
}

func TestVersionFor(t *testing.T) {
	if got := VersionFor(Windows); got != drawsurf.Version1_4 {
		t.Errorf("windows: %#x", uint32(got))
	}
	if got := VersionFor(X11); got != drawsurf.Version1_4 {
		t.Errorf("x11: %#x", uint32(got))
	}
	if got := VersionFor(MacOS); got != drawsurf.Version1_7|drawsurf.MacOSXUseCALayer {
		t.Errorf("macos: %#x", uint32(got))
	}
}

func TestCorrectBounds(t *testing.T) {
	raw := drawsurf.Rect{X: 300, Y: 200, Width: 64, Height: 48}

	if got := CorrectBounds(struct{}{}, raw); got != raw {
		t.Errorf("top level: got %v", got)
	}
	want := drawsurf.Rect{X: 12, Y: 34, Width: 64, Height: 48}
	if got := CorrectBounds(embeddedWindow{x: 12, y: 34}, raw); got != want {
		t.Errorf("embedded: got %v, want %v", got, want)
	}
}
