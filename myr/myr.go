// Package myr opens a window and brings Vulkan up on it: instance,
// presentation surface, GPU and device.
package myr

import (
	"github.com/pkg/errors"
	"github.com/vulkan-go/glfw/v3.3/glfw"

	"github.com/perlw/vksurface/config"
	"github.com/perlw/vksurface/drawsurf"
	"github.com/perlw/vksurface/drawsurf/glfwbridge"
	"github.com/perlw/vksurface/logger"
	"github.com/perlw/vksurface/pompeii"
	"github.com/perlw/vksurface/wsi"
)

const engineName = "MYR"

// Report summarizes what New picked.
type Report struct {
	Platform      wsi.Platform
	Bounds        drawsurf.Rect
	GPUs          []string
	GPU           string
	GraphicsIndex int
	PresentIndex  int
}

type Myr struct {
	log logger.Logger

	window   *glfw.Window
	bridge   *glfwbridge.Bridge
	instance *pompeii.Instance
	factory  wsi.Factory
	surface  pompeii.Surface
	device   *pompeii.Device

	report Report
}

// New must be called from the thread that owns the window.
func New(cfg *config.Config, log logger.Logger) (*Myr, error) {
	m := Myr{
		log: log,
	}

	platform, err := wsi.ParsePlatform(cfg.Platform)
	if err != nil {
		return nil, err
	}
	m.report.Platform = platform

	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "init glfw")
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, errors.New("no vulkan loader found")
	}
	pompeii.SetLoader(glfw.GetVulkanGetInstanceProcAddress())
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	m.window, err = glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	if err := m.setup(cfg, platform); err != nil {
		m.Destroy()
		return nil, err
	}
	return &m, nil
}

func (m *Myr) setup(cfg *config.Config, platform wsi.Platform) error {
	if err := pompeii.Init(); err != nil {
		return err
	}

	var err error
	m.instance, err = pompeii.NewInstance(pompeii.InstanceConfig{
		AppName:    cfg.Window.Title,
		EngineName: engineName,
		Layers:     cfg.Layers,
		Extensions: append(pompeii.SurfaceExtensions(platform.String()), cfg.Extensions...),
		Log:        m.log,
	})
	if err != nil {
		return err
	}

	driver := pompeii.NativeDriver{Instance: m.instance}
	if platform == wsi.Detect() {
		m.factory, err = wsi.Host(driver, wsi.WithLogger(m.log))
	} else {
		m.factory, err = wsi.New(platform, driver, wsi.DefaultCompositor(), wsi.WithLogger(m.log))
	}
	if err != nil {
		return err
	}

	m.bridge = glfwbridge.New(m.log)
	handle, err := wsi.CreateSurface(m.factory, m.bridge, m.window, m.instance.Handle(), drawsurf.WithLogger(m.log))
	if err != nil {
		return errors.Wrap(err, "create surface")
	}
	m.surface = pompeii.NewWindowSurface(m.instance, handle)
	x, y := m.window.GetPos()
	w, h := m.window.GetSize()
	m.report.Bounds = drawsurf.Rect{X: int32(x), Y: int32(y), Width: int32(w), Height: int32(h)}

	return m.pickDevice(uint32(w), uint32(h))
}

func (m *Myr) pickDevice(resWidth, resHeight uint32) error {
	gpus, err := m.instance.EnumerateGPUs()
	if err != nil {
		return err
	}

	for t := range gpus {
		gpu := &gpus[t]
		m.report.GPUs = append(m.report.GPUs, gpu.String())
		if !gpu.Fits(resWidth, resHeight) {
			m.log.Trace("skipping %s: viewport too small", gpu.Name)
			continue
		}

		queues, err := gpu.SelectQueues(m.factory, m.surface)
		if err != nil {
			m.log.Warn("skipping %s: %v", gpu.Name, err)
			continue
		}

		m.device, err = pompeii.NewDevice(gpu, queues)
		if err != nil {
			return err
		}
		m.report.GPU = gpu.Name
		m.report.GraphicsIndex = queues.Graphics
		m.report.PresentIndex = queues.Present
		m.log.Log("picked %s, graphics family %d, present family %d", gpu.Name, queues.Graphics, queues.Present)
		return nil
	}
	return errors.New("no matching GPU")
}

func (m *Myr) Destroy() {
	if m.device != nil {
		m.device.Destroy()
	}
	if m.surface != nil {
		m.surface.Destroy()
	}
	if m.instance != nil {
		m.instance.Destroy()
	}
	if m.bridge != nil {
		m.bridge.Close()
	}
	if m.window != nil {
		m.window.Destroy()
	}

	glfw.Terminate()
}

func (m *Myr) ShouldClose() bool {
	return m.window.ShouldClose()
}

func (m *Myr) Report() Report {
	return m.report
}

func (m *Myr) PollEvents() {
	glfw.PollEvents()
}
