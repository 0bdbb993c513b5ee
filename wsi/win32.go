package wsi

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

type win32Factory struct {
	log    logger.Logger
	driver Driver
}

func (f *win32Factory) Platform() Platform {
	return Windows
}

func (f *win32Factory) Create(req Request) (vk.Surface, error) {
	info, ok := req.Descriptor.Platform.(drawsurf.Win32Info)
	if !ok {
		return vk.NullSurface, nativeMismatch(Windows, req.Descriptor.Platform)
	}

	surface, err := surfaceResult(f.driver.CreateWin32Surface(req.Instance, info.HInstance, info.HWND))
	if err != nil {
		f.log.Err(err, "win32 surface for hwnd %#x", info.HWND)
		return vk.NullSurface, err
	}
	return surface, nil
}

func (f *win32Factory) CheckSupport(gpu vk.PhysicalDevice, queueFamily int) bool {
	if queueFamily < 0 {
		return false
	}
	return f.driver.Win32PresentationSupport(gpu, uint32(queueFamily))
}
