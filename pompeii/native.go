package pompeii

/*
#include <stdint.h>
#include <string.h>
#include <vulkan/vulkan_core.h>

// Platform create-info layouts, declared here so no window-system headers
// are needed to build on any host.
typedef struct {
	VkStructureType sType;
	const void*     pNext;
	VkFlags         flags;
	void*           hinstance;
	void*           hwnd;
} win32SurfaceCreateInfo;

typedef struct {
	VkStructureType sType;
	const void*     pNext;
	VkFlags         flags;
	void*           dpy;
	unsigned long   window;
} xlibSurfaceCreateInfo;

typedef struct {
	VkStructureType sType;
	const void*     pNext;
	VkFlags         flags;
	const void*     pLayer;
} metalSurfaceCreateInfo;

typedef VkResult (VKAPI_PTR *createSurfaceFn)(VkInstance, const void*, const VkAllocationCallbacks*, VkSurfaceKHR*);
typedef VkBool32 (VKAPI_PTR *win32SupportFn)(VkPhysicalDevice, uint32_t);
typedef VkBool32 (VKAPI_PTR *xlibSupportFn)(VkPhysicalDevice, uint32_t, void*, unsigned long);

static PFN_vkVoidFunction lookup(void* gipa, VkInstance inst, const char* name) {
	if (gipa == NULL) {
		return NULL;
	}
	return ((PFN_vkGetInstanceProcAddr)gipa)(inst, name);
}

static VkResult createSurface(void* gipa, VkInstance inst, const char* name, const void* info, uint64_t* out) {
	*out = 0;
	createSurfaceFn fn = (createSurfaceFn)lookup(gipa, inst, name);
	if (fn == NULL) {
		return VK_ERROR_EXTENSION_NOT_PRESENT;
	}
	VkSurfaceKHR surface = VK_NULL_HANDLE;
	VkResult res = fn(inst, info, NULL, &surface);
	memcpy(out, &surface, sizeof(surface));
	return res;
}

static VkResult createWin32Surface(void* gipa, VkInstance inst, uintptr_t hinstance, uintptr_t hwnd, uint64_t* out) {
	win32SurfaceCreateInfo info;
	memset(&info, 0, sizeof(info));
	info.sType = (VkStructureType)1000009000;
	info.hinstance = (void*)hinstance;
	info.hwnd = (void*)hwnd;
	return createSurface(gipa, inst, "vkCreateWin32SurfaceKHR", &info, out);
}

static VkResult createXlibSurface(void* gipa, VkInstance inst, uintptr_t dpy, uint64_t window, uint64_t* out) {
	xlibSurfaceCreateInfo info;
	memset(&info, 0, sizeof(info));
	info.sType = (VkStructureType)1000004000;
	info.dpy = (void*)dpy;
	info.window = (unsigned long)window;
	return createSurface(gipa, inst, "vkCreateXlibSurfaceKHR", &info, out);
}

static VkResult createMetalSurface(void* gipa, VkInstance inst, uintptr_t layer, uint64_t* out) {
	metalSurfaceCreateInfo info;
	memset(&info, 0, sizeof(info));
	info.sType = (VkStructureType)1000217000;
	info.pLayer = (const void*)layer;
	return createSurface(gipa, inst, "vkCreateMetalSurfaceEXT", &info, out);
}

static VkBool32 win32PresentationSupport(void* gipa, VkInstance inst, VkPhysicalDevice gpu, uint32_t family) {
	win32SupportFn fn = (win32SupportFn)lookup(gipa, inst, "vkGetPhysicalDeviceWin32PresentationSupportKHR");
	if (fn == NULL) {
		return VK_FALSE;
	}
	return fn(gpu, family);
}

static VkBool32 xlibPresentationSupport(void* gipa, VkInstance inst, VkPhysicalDevice gpu, uint32_t family, uintptr_t dpy, uint64_t visual) {
	xlibSupportFn fn = (xlibSupportFn)lookup(gipa, inst, "vkGetPhysicalDeviceXlibPresentationSupportKHR");
	if (fn == NULL) {
		return VK_FALSE;
	}
	return fn(gpu, family, (void*)dpy, (unsigned long)visual);
}
*/
import "C"

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// NativeDriver calls the platform surface entry points of the loader set
// with SetLoader. The matching surface extension must be enabled on the
// instance; a missing entry point reports vk.ErrorExtensionNotPresent.
type NativeDriver struct {
	// Instance resolves the presentation support queries, which take no
	// instance argument of their own.
	Instance *Instance
}

func cInstance(inst vk.Instance) C.VkInstance {
	return C.VkInstance(unsafe.Pointer(inst))
}

func cPhysicalDevice(gpu vk.PhysicalDevice) C.VkPhysicalDevice {
	return C.VkPhysicalDevice(unsafe.Pointer(gpu))
}

func toSurface(raw C.uint64_t) vk.Surface {
	if raw == 0 {
		return vk.NullSurface
	}
	return vk.SurfaceFromPointer(uintptr(raw))
}

func (NativeDriver) CreateWin32Surface(inst vk.Instance, hinstance, hwnd uintptr) (vk.Surface, vk.Result) {
	var raw C.uint64_t
	res := C.createWin32Surface(getInstanceProcAddr, cInstance(inst), C.uintptr_t(hinstance), C.uintptr_t(hwnd), &raw)
	return toSurface(raw), vk.Result(int32(res))
}

func (NativeDriver) CreateXlibSurface(inst vk.Instance, display uintptr, window uint64) (vk.Surface, vk.Result) {
	var raw C.uint64_t
	res := C.createXlibSurface(getInstanceProcAddr, cInstance(inst), C.uintptr_t(display), C.uint64_t(window), &raw)
	return toSurface(raw), vk.Result(int32(res))
}

func (NativeDriver) CreateMetalSurface(inst vk.Instance, layer uintptr) (vk.Surface, vk.Result) {
	var raw C.uint64_t
	res := C.createMetalSurface(getInstanceProcAddr, cInstance(inst), C.uintptr_t(layer), &raw)
	return toSurface(raw), vk.Result(int32(res))
}

func (d NativeDriver) Win32PresentationSupport(gpu vk.PhysicalDevice, queueFamily uint32) bool {
	if d.Instance == nil {
		return false
	}
	return C.win32PresentationSupport(getInstanceProcAddr, cInstance(d.Instance.Handle()), cPhysicalDevice(gpu), C.uint32_t(queueFamily)) == C.VK_TRUE
}

func (d NativeDriver) XlibPresentationSupport(gpu vk.PhysicalDevice, queueFamily uint32, display uintptr, visual uint64) bool {
	if d.Instance == nil {
		return false
	}
	return C.xlibPresentationSupport(getInstanceProcAddr, cInstance(d.Instance.Handle()), cPhysicalDevice(gpu), C.uint32_t(queueFamily), C.uintptr_t(display), C.uint64_t(visual)) == C.VK_TRUE
}
