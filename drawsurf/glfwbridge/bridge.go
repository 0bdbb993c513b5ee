// Package glfwbridge exposes GLFW windows as drawsurf drawing surfaces.
//
// GLFW has no drawing-surface lock of its own. The bridge keeps one lock per
// window; locking a window that is already locked, or that is closing,
// reports drawsurf.LockError.
package glfwbridge

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/vulkan-go/glfw/v3.3/glfw"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

// Supported lists the bridge versions accepted by Init.
var Supported = []drawsurf.Version{
	drawsurf.Version1_4,
	drawsurf.Version1_7,
	drawsurf.Version1_7 | drawsurf.MacOSXUseCALayer,
	drawsurf.Version9,
}

type Bridge struct {
	log logger.Logger

	mu     sync.Mutex
	locked map[window]bool
	last   map[window]drawsurf.Rect
	native native
}

// window is the part of *glfw.Window the lock reads.
type window interface {
	ShouldClose() bool
	GetPos() (x, y int)
	GetSize() (width, height int)
}

func New(log logger.Logger) *Bridge {
	return &Bridge{
		log:    log,
		locked: map[window]bool{},
		last:   map[window]drawsurf.Rect{},
	}
}

// Init checks the version and opens the platform connection the bridge
// needs to describe windows. GLFW itself must already be initialized.
func (b *Bridge) Init(version drawsurf.Version) error {
	supported := false
	for _, v := range Supported {
		if v == version {
			supported = true
			break
		}
	}
	if !supported {
		return errors.Errorf("unsupported bridge version %#x", uint32(version))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.native != nil {
		return nil
	}
	n, err := openNative(b.log)
	if err != nil {
		return errors.Wrap(err, "open native connection")
	}
	b.native = n
	return nil
}

// Close drops the platform connection opened by Init.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.native != nil {
		b.native.close()
		b.native = nil
	}
}

func (b *Bridge) DrawingSurface(w drawsurf.Window) drawsurf.DrawingSurface {
	win, ok := w.(window)
	if !ok {
		return nil
	}
	if gw, ok := win.(*glfw.Window); ok && gw == nil {
		return nil
	}
	return &surface{b: b, win: win}
}

func (b *Bridge) FreeDrawingSurface(ds drawsurf.DrawingSurface) {
	if s, ok := ds.(*surface); ok {
		s.win = nil
	}
}

type surface struct {
	b   *Bridge
	win window
}

func (s *surface) Lock() drawsurf.LockFlags {
	if s.win == nil || s.win.ShouldClose() {
		return drawsurf.LockError
	}

	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if s.b.locked[s.win] {
		s.b.log.Warn("window %p is already locked", s.win)
		return drawsurf.LockError
	}
	s.b.locked[s.win] = true

	var flags drawsurf.LockFlags
	bounds := windowBounds(s.win)
	prev, seen := s.b.last[s.win]
	if !seen {
		flags |= drawsurf.SurfaceChanged
	}
	if !seen || prev != bounds {
		flags |= drawsurf.BoundsChanged | drawsurf.ClipChanged
		s.b.last[s.win] = bounds
	}
	return flags
}

func (s *surface) Info() *drawsurf.Info {
	s.b.mu.Lock()
	n := s.b.native
	s.b.mu.Unlock()
	if n == nil {
		return nil
	}

	pi, bounds := n.describe(s.win)
	if pi == nil {
		return nil
	}
	return &drawsurf.Info{
		Platform: pi,
		Bounds:   bounds,
		Clip:     []drawsurf.Rect{{Width: bounds.Width, Height: bounds.Height}},
	}
}

func (s *surface) FreeInfo(info *drawsurf.Info) {}

func (s *surface) Unlock() {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	delete(s.b.locked, s.win)
}

// windowBounds is the client area in screen coordinates as GLFW sees it.
func windowBounds(w window) drawsurf.Rect {
	x, y := w.GetPos()
	width, height := w.GetSize()
	return drawsurf.Rect{X: int32(x), Y: int32(y), Width: int32(width), Height: int32(height)}
}

// native describes a window with the handles of the host window system.
type native interface {
	describe(w window) (drawsurf.PlatformInfo, drawsurf.Rect)
	close()
}
