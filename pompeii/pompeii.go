// Package pompeii wraps the parts of Vulkan needed to get a window on
// screen: instance, physical devices, logical device and surfaces.
package pompeii

import (
	"unsafe"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

// ErrNoLoader is returned by Init before SetLoader.
var ErrNoLoader = errors.New("vulkan loader not set")

// getInstanceProcAddr is the vkGetInstanceProcAddr of the loader in use.
// The native surface entry points are resolved through it as well.
var getInstanceProcAddr unsafe.Pointer

func inStringSlice(slice []string, val string) bool {
	for _, v := range slice {
		if v == val {
			return true
		}
	}
	return false
}

func vkString(str string) string {
	if len(str) == 0 {
		return "\x00"
	} else if str[len(str)-1] != '\x00' {
		return str + "\x00"
	}
	return str
}

// SetLoader installs the vkGetInstanceProcAddr all Vulkan calls go through,
// usually glfw.GetVulkanGetInstanceProcAddress(). It must precede Init.
func SetLoader(procAddr unsafe.Pointer) {
	getInstanceProcAddr = procAddr
	if procAddr != nil {
		vk.SetGetInstanceProcAddr(procAddr)
	}
}

func Init() error {
	if getInstanceProcAddr == nil {
		return ErrNoLoader
	}
	if err := vk.Init(); err != nil {
		return errors.Wrap(err, "could not initialize vulkan")
	}
	return nil
}

// SurfaceExtensions lists the instance extensions needed to create a
// presentation surface on platform ("windows", "x11" or "macos").
func SurfaceExtensions(platform string) []string {
	exts := []string{"VK_KHR_surface"}
	switch platform {
	case "windows":
		exts = append(exts, "VK_KHR_win32_surface")
	case "x11":
		exts = append(exts, "VK_KHR_xlib_surface")
	case "macos":
		exts = append(exts, "VK_EXT_metal_surface", "VK_KHR_portability_enumeration")
	}
	return exts
}

func getAvailableInstanceExtensions() ([]string, error) {
	var count uint32
	if result := vk.EnumerateInstanceExtensionProperties("", &count, nil); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "could not count instance extensions")
	}
	extensions := make([]vk.ExtensionProperties, count)
	if result := vk.EnumerateInstanceExtensionProperties("", &count, extensions); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "could not get instance extensions")
	}

	names := make([]string, count)
	for t, ext := range extensions {
		ext.Deref()
		names[t] = vk.ToString(ext.ExtensionName[:])
	}
	return names, nil
}

func getAvailableInstanceLayers() ([]string, error) {
	var count uint32
	if result := vk.EnumerateInstanceLayerProperties(&count, nil); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "could not count instance layers")
	}
	layers := make([]vk.LayerProperties, count)
	if result := vk.EnumerateInstanceLayerProperties(&count, layers); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "could not get instance layers")
	}

	names := make([]string, count)
	for t, layer := range layers {
		layer.Deref()
		names[t] = vk.ToString(layer.LayerName[:])
	}
	return names, nil
}
