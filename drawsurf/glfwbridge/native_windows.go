//go:build windows

package glfwbridge

import (
	"unsafe"

	"github.com/vulkan-go/glfw/v3.3/glfw"
	"golang.org/x/sys/windows"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

type win32Native struct {
	hinstance uintptr
}

func openNative(log logger.Logger) (native, error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return nil, err
	}
	return &win32Native{hinstance: uintptr(module)}, nil
}

func (n *win32Native) describe(w window) (drawsurf.PlatformInfo, drawsurf.Rect) {
	gw, ok := w.(*glfw.Window)
	if !ok {
		return nil, drawsurf.Rect{}
	}
	hwnd := uintptr(unsafe.Pointer(gw.GetWin32Window()))
	if hwnd == 0 {
		return nil, drawsurf.Rect{}
	}
	return drawsurf.Win32Info{HWND: hwnd, HInstance: n.hinstance}, windowBounds(w)
}

func (n *win32Native) close() {}
