//go:build linux || freebsd

package glfwbridge

import (
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/vulkan-go/glfw/v3.3/glfw"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

// x11Native reads geometry and visuals over its own X connection; the Xlib
// display handed to Vulkan is GLFW's.
type x11Native struct {
	log  logger.Logger
	xu   *xgbutil.XUtil
	root xproto.Window
}

func openNative(log logger.Logger) (native, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	return &x11Native{
		log:  log,
		xu:   xu,
		root: xu.RootWin(),
	}, nil
}

func (n *x11Native) describe(w window) (drawsurf.PlatformInfo, drawsurf.Rect) {
	gw, ok := w.(*glfw.Window)
	if !ok {
		return nil, drawsurf.Rect{}
	}
	display := uintptr(unsafe.Pointer(glfw.GetX11Display()))
	drawable := uint64(gw.GetX11Window())
	if display == 0 || drawable == 0 {
		return nil, drawsurf.Rect{}
	}

	info := drawsurf.X11Info{
		Display:  display,
		Drawable: drawable,
	}
	xwin := xproto.Window(drawable)
	info.VisualID = n.visual(xwin)

	bounds, err := n.rootBounds(xwin)
	if err != nil {
		n.log.Trace("root bounds of %#x: %v", drawable, err)
		bounds = windowBounds(w)
	}
	return info, bounds
}

// visual is the window's visual id, or 0 when it cannot be read. Vulkan
// presentation checks against visual 0 fail.
func (n *x11Native) visual(win xproto.Window) uint64 {
	attrs, err := xproto.GetWindowAttributes(n.xu.Conn(), win).Reply()
	if err != nil {
		n.log.Warn("no visual for window %#x, presentation checks will fail: %v", uint32(win), err)
		return 0
	}
	return uint64(attrs.Visual)
}

// rootBounds is the window's area translated into root coordinates.
func (n *x11Native) rootBounds(win xproto.Window) (drawsurf.Rect, error) {
	geom, err := xproto.GetGeometry(n.xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return drawsurf.Rect{}, err
	}
	translate, err := xproto.TranslateCoordinates(n.xu.Conn(), win, n.root, 0, 0).Reply()
	if err != nil {
		return drawsurf.Rect{}, err
	}
	return drawsurf.Rect{
		X:      int32(translate.DstX),
		Y:      int32(translate.DstY),
		Width:  int32(geom.Width),
		Height: int32(geom.Height),
	}, nil
}

func (n *x11Native) close() {
	n.xu.Conn().Close()
}
