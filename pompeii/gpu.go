package pompeii

import (
	"fmt"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

type GPUType uint32

const (
	GPUTypeOther      GPUType = GPUType(vk.PhysicalDeviceTypeOther)
	GPUTypeIntegrated         = GPUType(vk.PhysicalDeviceTypeIntegratedGpu)
	GPUTypeDiscrete           = GPUType(vk.PhysicalDeviceTypeDiscreteGpu)
	GPUTypeVirtual            = GPUType(vk.PhysicalDeviceTypeVirtualGpu)
	GPUTypeCPU                = GPUType(vk.PhysicalDeviceTypeCpu)
)

func (g GPUType) String() string {
	switch g {
	case GPUTypeOther:
		return "Other"
	case GPUTypeIntegrated:
		return "Integrated"
	case GPUTypeDiscrete:
		return "Discrete"
	case GPUTypeVirtual:
		return "Virtual"
	case GPUTypeCPU:
		return "CPU"
	default:
		return fmt.Sprintf("GPUType(%d)", uint32(g))
	}
}

// PresentChecker is the window system's own presentation query, asked
// before the surface query. wsi.Factory implements it.
type PresentChecker interface {
	CheckSupport(gpu vk.PhysicalDevice, queueFamily int) bool
}

type QueueFamily struct {
	Index    int
	Graphics bool

	physicalDevice vk.PhysicalDevice
}

// CanPresent reports whether the family can present to surface. Both the
// window system and the surface have to agree.
func (q *QueueFamily) CanPresent(pc PresentChecker, surface Surface) bool {
	if !pc.CheckSupport(q.physicalDevice, q.Index) {
		return false
	}
	var supported vk.Bool32
	if result := vk.GetPhysicalDeviceSurfaceSupport(q.physicalDevice, uint32(q.Index), surface.Handle(), &supported); result != vk.Success {
		return false
	}
	return supported == vk.True
}

// QueueSelection is the pair of families a device is created with; they
// are equal when one family does both.
type QueueSelection struct {
	Graphics int
	Present  int
}

func (s QueueSelection) Shared() bool {
	return s.Graphics == s.Present
}

// selectQueues prefers one family doing both graphics and presentation,
// then the first of each.
func selectQueues(families []QueueFamily, canPresent func(*QueueFamily) bool) (QueueSelection, error) {
	sel := QueueSelection{Graphics: -1, Present: -1}
	for t := range families {
		family := &families[t]
		present := canPresent(family)
		if family.Graphics && present {
			return QueueSelection{Graphics: family.Index, Present: family.Index}, nil
		}
		if family.Graphics && sel.Graphics < 0 {
			sel.Graphics = family.Index
		}
		if present && sel.Present < 0 {
			sel.Present = family.Index
		}
	}
	if sel.Graphics < 0 || sel.Present < 0 {
		return sel, errors.Errorf("graphics family %d, present family %d", sel.Graphics, sel.Present)
	}
	return sel, nil
}

type GPU struct {
	Name       string
	Type       GPUType
	APIVersion string

	physicalDevice vk.PhysicalDevice
	maxViewport    [2]uint32
}

func newGPU(physicalDevice vk.PhysicalDevice) GPU {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(physicalDevice, &props)
	props.Deref()
	props.Limits.Deref()

	return GPU{
		Name: vk.ToString(props.DeviceName[:]),
		Type: GPUType(props.DeviceType),
		APIVersion: fmt.Sprintf("%d.%d.%d",
			(props.ApiVersion>>22)&0x3ff,
			(props.ApiVersion>>12)&0x3ff,
			props.ApiVersion&0xfff,
		),
		physicalDevice: physicalDevice,
		maxViewport:    props.Limits.MaxViewportDimensions,
	}
}

func (g *GPU) String() string {
	return fmt.Sprintf("%s (%s, Vulkan %s)", g.Name, g.Type, g.APIVersion)
}

// Fits reports whether the GPU can render a viewport covering bounds.
func (g *GPU) Fits(width, height uint32) bool {
	return g.maxViewport[0] >= width && g.maxViewport[1] >= height
}

func (g *GPU) QueueFamilies() ([]QueueFamily, error) {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(g.physicalDevice, &count, nil)
	if count == 0 {
		return nil, errors.New("no queue families")
	}

	props := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(g.physicalDevice, &count, props)
	families := make([]QueueFamily, 0, count)
	for i, family := range props {
		family.Deref()
		families = append(families, QueueFamily{
			Index:          i,
			Graphics:       family.QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			physicalDevice: g.physicalDevice,
		})
	}
	return families, nil
}

// SelectQueues picks the graphics and present families for surface.
func (g *GPU) SelectQueues(pc PresentChecker, surface Surface) (QueueSelection, error) {
	families, err := g.QueueFamilies()
	if err != nil {
		return QueueSelection{}, err
	}
	return selectQueues(families, func(q *QueueFamily) bool {
		return q.CanPresent(pc, surface)
	})
}

func (g *GPU) Handle() vk.PhysicalDevice {
	return g.physicalDevice
}
