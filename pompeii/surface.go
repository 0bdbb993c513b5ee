package pompeii

import (
	vk "github.com/vulkan-go/vulkan"
)

type Surface interface {
	Handle() vk.Surface
	Destroy()
}

type windowSurfaceVk struct {
	surface vk.Surface
}

// WindowSurface takes ownership of a presentation surface created for a
// native window.
type WindowSurface struct {
	instance *Instance

	vk *windowSurfaceVk
}

func NewWindowSurface(instance *Instance, surface vk.Surface) *WindowSurface {
	return &WindowSurface{
		instance: instance,
		vk: &windowSurfaceVk{
			surface: surface,
		},
	}
}

func (w *WindowSurface) Destroy() {
	if w.vk.surface != vk.NullSurface {
		vk.DestroySurface(w.instance.Handle(), w.vk.surface, nil)
		w.vk.surface = vk.NullSurface
	}
}

func (w *WindowSurface) Handle() vk.Surface {
	return w.vk.surface
}
