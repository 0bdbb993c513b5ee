package drawsurf

import "fmt"

type Rect struct {
	X, Y          int32
	Width, Height int32
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// PlatformInfo is the platform-specific part of a locked surface. It is
// one of Win32Info, X11Info or CocoaInfo.
type PlatformInfo interface {
	// IsZero reports the null sentinel.
	IsZero() bool
	platformInfo()
}

type Win32Info struct {
	HWND      uintptr
	HDC       uintptr
	HInstance uintptr
}

func (i Win32Info) IsZero() bool { return i.HWND == 0 }
func (Win32Info) platformInfo()  {}

type X11Info struct {
	Display  uintptr
	Drawable uint64
	VisualID uint64
}

func (i X11Info) IsZero() bool { return i.Display == 0 || i.Drawable == 0 }
func (X11Info) platformInfo()  {}

// CocoaInfo carries the object that accepts a compositor layer for the
// window (a layer host or an NSView).
type CocoaInfo struct {
	SurfaceLayers uintptr
}

func (i CocoaInfo) IsZero() bool { return i.SurfaceLayers == 0 }
func (CocoaInfo) platformInfo()  {}

// Info is what a bridge reports for a locked drawing surface.
type Info struct {
	Platform PlatformInfo
	// Bounds is the window region in root space.
	Bounds Rect
	Clip   []Rect
}

// Descriptor is a snapshot of Info taken while the lock is held.
//
// Bounds may be wrong for windows inside a repositioning container; callers
// correct it before use.
type Descriptor struct {
	Platform PlatformInfo
	Bounds   Rect
	Clip     []Rect
}
