// Package drawsurf acquires the native drawing surface of a toolkit window.
//
// A Lock holds the toolkit's drawing-surface lock for as long as the native
// descriptor is in use. Everything handed out by a Lock is only valid until
// Release.
package drawsurf

// Window is a realized, on-screen toolkit window. It is borrowed for the
// duration of one acquisition and never retained.
type Window interface{}

// Embedded is implemented by windows placed inside a container that can
// reposition them. The root-space bounds a bridge reports for such windows
// are not trustworthy.
type Embedded interface {
	Embedded() bool
	// OriginInRoot converts the window's (0,0) into the coordinate space of
	// its root container.
	OriginInRoot() (x, y int32)
}

// Version selects the bridge API revision requested at Init.
type Version uint32

const (
	Version1_4 Version = 0x00010004
	Version1_7 Version = 0x00010007
	Version9   Version = 0x00090000

	// MacOSXUseCALayer asks the macOS bridge for a layer-backed surface.
	MacOSXUseCALayer Version = 0x80000000
)

// LockFlags is the bit set returned by DrawingSurface.Lock.
type LockFlags uint32

const (
	LockError      LockFlags = 0x1
	ClipChanged    LockFlags = 0x2
	BoundsChanged  LockFlags = 0x4
	SurfaceChanged LockFlags = 0x8
)

func (f LockFlags) Failed() bool {
	return f&LockError != 0
}

// Bridge is the toolkit's native interface.
type Bridge interface {
	// Init prepares the bridge at the given API version.
	Init(version Version) error
	// DrawingSurface returns the drawing surface of w, or nil.
	DrawingSurface(w Window) DrawingSurface
	FreeDrawingSurface(ds DrawingSurface)
}

// DrawingSurface is a lockable view of a window's renderable region.
type DrawingSurface interface {
	Lock() LockFlags
	// Info returns the locked surface's description, or nil.
	Info() *Info
	FreeInfo(info *Info)
	Unlock()
}
