package wsi

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

// CorrectBounds returns the bounds to use for w. Windows inside a container
// that repositions them report a wrong root-space origin, so their origin is
// re-derived through the toolkit; the size is kept.
func CorrectBounds(w drawsurf.Window, raw drawsurf.Rect) drawsurf.Rect {
	e, ok := w.(drawsurf.Embedded)
	if !ok || !e.Embedded() {
		return raw
	}
	x, y := e.OriginInRoot()
	return drawsurf.Rect{X: x, Y: y, Width: raw.Width, Height: raw.Height}
}

// CreateSurface locks the drawing surface of w, creates a presentation
// surface for it with f and releases the lock before returning. The caller
// owns the returned surface.
func CreateSurface(f Factory, b drawsurf.Bridge, w drawsurf.Window, instance vk.Instance, opts ...drawsurf.Option) (vk.Surface, error) {
	surface := vk.NullSurface
	err := drawsurf.With(b, w, VersionFor(f.Platform()), func(l *drawsurf.Lock) error {
		desc, err := l.Descriptor()
		if err != nil {
			return err
		}
		surface, err = f.Create(Request{
			Descriptor: desc,
			Bounds:     CorrectBounds(w, desc.Bounds),
			Instance:   instance,
		})
		return err
	}, opts...)
	if err != nil {
		return vk.NullSurface, err
	}
	return surface, nil
}

// SurfaceConfig bundles the arguments of CreateSurface.
type SurfaceConfig struct {
	Factory  Factory
	Bridge   drawsurf.Bridge
	Window   drawsurf.Window
	Instance vk.Instance
	Log      logger.Logger
}

// CreateSurfaceFromConfig forwards to CreateSurface.
//
// Deprecated: call CreateSurface.
func CreateSurfaceFromConfig(cfg *SurfaceConfig) (vk.Surface, error) {
	return CreateSurface(cfg.Factory, cfg.Bridge, cfg.Window, cfg.Instance, drawsurf.WithLogger(cfg.Log))
}
