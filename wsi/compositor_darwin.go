//go:build darwin

package wsi

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Cocoa -framework QuartzCore -framework Metal

#import <Cocoa/Cocoa.h>
#import <QuartzCore/QuartzCore.h>
#import <Metal/Metal.h>

// createMetalLayer attaches a new CAMetalLayer to host, which is an NSWindow,
// an NSView or any object taking a layer through setLayer:. The host owns
// the layer; the returned pointer is borrowed.
static uintptr_t createMetalLayer(uintptr_t host, int32_t x, int32_t y, int32_t w, int32_t h) {
	@autoreleasepool {
		id obj = (__bridge id)(void*)host;
		if (obj == nil) {
			return 0;
		}

		CAMetalLayer* layer = [CAMetalLayer layer];
		layer.device = MTLCreateSystemDefaultDevice();
		layer.pixelFormat = MTLPixelFormatBGRA8Unorm;
		layer.frame = CGRectMake(x, y, w, h);

		if ([obj isKindOfClass:[NSWindow class]]) {
			obj = [(NSWindow*)obj contentView];
		}
		if ([obj isKindOfClass:[NSView class]]) {
			NSView* view = (NSView*)obj;
			[view setWantsLayer:YES];
			[view setLayer:layer];
			if (view.window != nil) {
				layer.contentsScale = view.window.backingScaleFactor;
			}
		} else if ([obj respondsToSelector:@selector(setLayer:)]) {
			[obj setLayer:layer];
		} else {
			return 0;
		}
		return (uintptr_t)(__bridge void*)layer;
	}
}

static void flushTransactions(void) {
	[CATransaction flush];
}

// layerOutlivesHost attaches a layer to a detached view, drops the view and
// reports whether the layer is still alive.
static int layerOutlivesHost(void) {
	__weak CAMetalLayer* weak = nil;
	@autoreleasepool {
		NSView* view = [[NSView alloc] initWithFrame:NSMakeRect(0, 0, 64, 64)];
		uintptr_t layer = createMetalLayer((uintptr_t)(__bridge void*)view, 0, 0, 64, 64);
		if (layer == 0) {
			return -1;
		}
		weak = (__bridge CAMetalLayer*)(void*)layer;
		view = nil;
	}
	return weak != nil;
}
*/
import "C"

import (
	"github.com/pkg/errors"

	"github.com/perlw/vksurface/drawsurf"
)

type cocoaCompositor struct{}

func (cocoaCompositor) CreateLayer(platformInfo uintptr, frame drawsurf.Rect) (uintptr, error) {
	layer := C.createMetalLayer(C.uintptr_t(platformInfo), C.int32_t(frame.X), C.int32_t(frame.Y), C.int32_t(frame.Width), C.int32_t(frame.Height))
	if layer == 0 {
		return 0, errors.Errorf("host %#x does not accept a layer", platformInfo)
	}
	return uintptr(layer), nil
}

func (cocoaCompositor) Flush() {
	C.flushTransactions()
}

// DefaultCompositor returns the Core Animation compositor.
func DefaultCompositor() Compositor {
	return cocoaCompositor{}
}

func layerOutlivesHost() (bool, error) {
	switch C.layerOutlivesHost() {
	case -1:
		return false, errors.New("view did not accept a layer")
	case 0:
		return false, nil
	}
	return true, nil
}
