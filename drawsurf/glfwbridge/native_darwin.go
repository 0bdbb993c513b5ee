//go:build darwin

package glfwbridge

import (
	"github.com/vulkan-go/glfw/v3.3/glfw"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

type cocoaNative struct{}

func openNative(log logger.Logger) (native, error) {
	return cocoaNative{}, nil
}

// describe hands out the NSWindow; the layer goes on its content view, so
// the bounds are the content area at the view's origin.
func (cocoaNative) describe(w window) (drawsurf.PlatformInfo, drawsurf.Rect) {
	gw, ok := w.(*glfw.Window)
	if !ok {
		return nil, drawsurf.Rect{}
	}
	nsWindow := gw.GetCocoaWindow()
	if nsWindow == 0 {
		return nil, drawsurf.Rect{}
	}
	width, height := w.GetSize()
	return drawsurf.CocoaInfo{SurfaceLayers: nsWindow}, drawsurf.Rect{Width: int32(width), Height: int32(height)}
}

func (cocoaNative) close() {}
