package pompeii

import (
	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

type Device struct {
	Queues QueueSelection

	logicalDevice vk.Device
}

// NewDevice creates a logical device with one queue from the graphics
// family and, when it differs, one from the present family.
func NewDevice(g *GPU, queues QueueSelection) (*Device, error) {
	if queues.Graphics < 0 || queues.Present < 0 {
		return nil, errors.Errorf("invalid queue families graphics=%d present=%d", queues.Graphics, queues.Present)
	}

	d := Device{
		Queues: queues,
	}

	queuePriorities := []float32{1.0}
	queueInfos := []vk.DeviceQueueCreateInfo{
		{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: uint32(queues.Graphics),
			QueueCount:       uint32(len(queuePriorities)),
			PQueuePriorities: queuePriorities,
		},
	}
	if !queues.Shared() {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: uint32(queues.Present),
			QueueCount:       uint32(len(queuePriorities)),
			PQueuePriorities: queuePriorities,
		})
	}

	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   1,
		PpEnabledExtensionNames: []string{vkString("VK_KHR_swapchain")},
	}
	if result := vk.CreateDevice(g.Handle(), &deviceCreateInfo, nil, &d.logicalDevice); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "create device")
	}

	return &d, nil
}

func (d *Device) Destroy() {
	d.WaitIdle()
	vk.DestroyDevice(d.logicalDevice, nil)
}

func (d *Device) WaitIdle() {
	vk.DeviceWaitIdle(d.logicalDevice)
}

func (d *Device) Handle() vk.Device {
	return d.logicalDevice
}
