package wsi

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

type macFactory struct {
	log        logger.Logger
	driver     Driver
	compositor Compositor
}

func (f *macFactory) Platform() Platform {
	return MacOS
}

// Create makes a metal layer at req.Bounds, commits it and only then
// creates the surface. A surface created from an uncommitted layer sees it
// zero-sized or unparented.
func (f *macFactory) Create(req Request) (vk.Surface, error) {
	info, ok := req.Descriptor.Platform.(drawsurf.CocoaInfo)
	if !ok {
		return vk.NullSurface, nativeMismatch(MacOS, req.Descriptor.Platform)
	}

	layer, err := f.compositor.CreateLayer(info.SurfaceLayers, req.Bounds)
	if err != nil {
		return vk.NullSurface, errors.Wrap(err, "create metal layer")
	}
	if layer == 0 {
		return vk.NullSurface, errors.New("create metal layer: null layer")
	}
	f.log.Trace("metal layer %#x at %v", layer, req.Bounds)

	f.compositor.Flush()

	surface, err := surfaceResult(f.driver.CreateMetalSurface(req.Instance, layer))
	if err != nil {
		f.log.Err(err, "metal surface for layer %#x", layer)
		return vk.NullSurface, err
	}
	return surface, nil
}

// CheckSupport is always true: every device and queue can present through
// any metal layer.
func (f *macFactory) CheckSupport(gpu vk.PhysicalDevice, queueFamily int) bool {
	return true
}
