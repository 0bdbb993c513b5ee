package wsi

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

type x11Factory struct {
	log    logger.Logger
	driver Driver

	// Xlib presentation support is per display and visual; they are taken
	// from the last surface created.
	display uintptr
	visual  uint64
}

func (f *x11Factory) Platform() Platform {
	return X11
}

func (f *x11Factory) Create(req Request) (vk.Surface, error) {
	info, ok := req.Descriptor.Platform.(drawsurf.X11Info)
	if !ok {
		return vk.NullSurface, nativeMismatch(X11, req.Descriptor.Platform)
	}

	surface, err := surfaceResult(f.driver.CreateXlibSurface(req.Instance, info.Display, info.Drawable))
	if err != nil {
		f.log.Err(err, "xlib surface for drawable %#x", info.Drawable)
		return vk.NullSurface, err
	}
	f.display = info.Display
	f.visual = info.VisualID
	return surface, nil
}

func (f *x11Factory) CheckSupport(gpu vk.PhysicalDevice, queueFamily int) bool {
	if queueFamily < 0 {
		return false
	}
	if f.display == 0 {
		f.log.Warn("presentation support queried before any surface was created")
		return false
	}
	return f.driver.XlibPresentationSupport(gpu, uint32(queueFamily), f.display, f.visual)
}
