package wsi

import (
	"sync"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/logger"
)

// Request is built per Create call and must not be kept after it.
type Request struct {
	Descriptor drawsurf.Descriptor
	// Bounds is the descriptor's bounds after correction, see CorrectBounds.
	Bounds   drawsurf.Rect
	Instance vk.Instance
}

// Factory creates presentation surfaces for one window system.
type Factory interface {
	Platform() Platform
	Create(req Request) (vk.Surface, error)
	// CheckSupport reports whether queueFamily of gpu can present to
	// surfaces made by this factory.
	CheckSupport(gpu vk.PhysicalDevice, queueFamily int) bool
}

// Driver is the set of Vulkan platform entry points the variants call.
type Driver interface {
	CreateWin32Surface(inst vk.Instance, hinstance, hwnd uintptr) (vk.Surface, vk.Result)
	CreateXlibSurface(inst vk.Instance, display uintptr, window uint64) (vk.Surface, vk.Result)
	CreateMetalSurface(inst vk.Instance, layer uintptr) (vk.Surface, vk.Result)
	Win32PresentationSupport(gpu vk.PhysicalDevice, queueFamily uint32) bool
	XlibPresentationSupport(gpu vk.PhysicalDevice, queueFamily uint32, display uintptr, visual uint64) bool
}

// Compositor creates the layer a surface is presented through on
// compositor-backed window systems.
//
// Layer changes are batched into an implicit transaction that commits on a
// later run-loop turn. Flush commits it synchronously; a surface must not be
// created from a layer before Flush returns.
type Compositor interface {
	// CreateLayer creates a layer, attaches it to platformInfo and gives it
	// the frame.
	CreateLayer(platformInfo uintptr, frame drawsurf.Rect) (uintptr, error)
	Flush()
}

var ErrUnsupportedPlatform = errors.New("no surface factory for this platform")

type Option func(*options)

type options struct {
	log logger.Logger
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New returns the factory variant for p. MacOS needs a Compositor.
func New(p Platform, d Driver, c Compositor, opts ...Option) (Factory, error) {
	o := options{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if d == nil {
		return nil, errors.New("nil driver")
	}

	switch p {
	case Windows:
		return &win32Factory{log: o.log, driver: d}, nil
	case X11:
		return &x11Factory{log: o.log, driver: d}, nil
	case MacOS:
		if c == nil {
			return nil, errors.Wrap(ErrUnsupportedPlatform, "macos without compositor")
		}
		return &macFactory{log: o.log, driver: d, compositor: c}, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedPlatform, "%s", p)
}

var host struct {
	once    sync.Once
	factory Factory
	err     error
}

// Host returns the factory for the detected platform, built on the first
// call. Later calls ignore their arguments.
func Host(d Driver, opts ...Option) (Factory, error) {
	host.once.Do(func() {
		host.factory, host.err = New(Detect(), d, DefaultCompositor(), opts...)
	})
	return host.factory, host.err
}

func nativeMismatch(p Platform, info drawsurf.PlatformInfo) error {
	return errors.Errorf("%s factory got %T platform info", p, info)
}
