package wsi

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/vksurface/drawsurf"
)

// fakeSurfaceHandle is an address below any Go heap arena.
const fakeSurfaceHandle = 0x4000

type recorder struct {
	calls []string
}

func (r *recorder) add(c string) {
	r.calls = append(r.calls, c)
}

type fakeDriver struct {
	rec    *recorder
	result vk.Result
	null   bool

	hwnd, hinstance uintptr
	display         uintptr
	window          uint64
	layer           uintptr
	supportQueries  int
}

func (d *fakeDriver) surface() (vk.Surface, vk.Result) {
	if d.result != vk.Success || d.null {
		return vk.NullSurface, d.result
	}
	return vk.SurfaceFromPointer(fakeSurfaceHandle), d.result
}

func (d *fakeDriver) CreateWin32Surface(inst vk.Instance, hinstance, hwnd uintptr) (vk.Surface, vk.Result) {
	d.rec.add("createSurface")
	d.hinstance, d.hwnd = hinstance, hwnd
	return d.surface()
}

func (d *fakeDriver) CreateXlibSurface(inst vk.Instance, display uintptr, window uint64) (vk.Surface, vk.Result) {
	d.rec.add("createSurface")
	d.display, d.window = display, window
	return d.surface()
}

func (d *fakeDriver) CreateMetalSurface(inst vk.Instance, layer uintptr) (vk.Surface, vk.Result) {
	d.rec.add("createSurface")
	d.layer = layer
	return d.surface()
}

func (d *fakeDriver) Win32PresentationSupport(gpu vk.PhysicalDevice, queueFamily uint32) bool {
	d.supportQueries++
	return queueFamily == 0
}

func (d *fakeDriver) XlibPresentationSupport(gpu vk.PhysicalDevice, queueFamily uint32, display uintptr, visual uint64) bool {
	d.supportQueries++
	return display == d.display && queueFamily == 0
}

type fakeCompositor struct {
	rec   *recorder
	fail  bool
	host  uintptr
	frame drawsurf.Rect
}

func (c *fakeCompositor) CreateLayer(platformInfo uintptr, frame drawsurf.Rect) (uintptr, error) {
	c.rec.add("mutate")
	if c.fail {
		return 0, errors.New("host rejected layer")
	}
	c.host, c.frame = platformInfo, frame
	return 0xca1a, nil
}

func (c *fakeCompositor) Flush() {
	c.rec.add("flush")
}

type fakeBridge struct {
	rec      *recorder
	info     *drawsurf.Info
	lockFail bool
}

type fakeDrawingSurface struct {
	b *fakeBridge
}

func (b *fakeBridge) Init(version drawsurf.Version) error {
	b.rec.add("init")
	return nil
}

func (b *fakeBridge) DrawingSurface(w drawsurf.Window) drawsurf.DrawingSurface {
	b.rec.add("get")
	return &fakeDrawingSurface{b: b}
}

func (b *fakeBridge) FreeDrawingSurface(ds drawsurf.DrawingSurface) {
	b.rec.add("free")
}

func (s *fakeDrawingSurface) Lock() drawsurf.LockFlags {
	s.b.rec.add("lock")
	if s.b.lockFail {
		return drawsurf.LockError
	}
	return 0
}

func (s *fakeDrawingSurface) Info() *drawsurf.Info {
	s.b.rec.add("info")
	return s.b.info
}

func (s *fakeDrawingSurface) FreeInfo(info *drawsurf.Info) {
	s.b.rec.add("freeinfo")
}

func (s *fakeDrawingSurface) Unlock() {
	s.b.rec.add("unlock")
}

type embeddedWindow struct {
	x, y int32
}

func (w embeddedWindow) Embedded() bool              { return true }
func (w embeddedWindow) OriginInRoot() (int32, int32) { return w.x, w.y }
