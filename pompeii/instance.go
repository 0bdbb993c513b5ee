package pompeii

import (
	"unsafe"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/vksurface/logger"
)

const portabilityEnumeration = "VK_KHR_portability_enumeration"

// instanceCreateEnumeratePortability is VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR.
const instanceCreateEnumeratePortability = vk.InstanceCreateFlags(0x1)

type InstanceConfig struct {
	AppName    string
	EngineName string
	Layers     []string
	Extensions []string
	Log        logger.Logger
}

type Instance struct {
	log logger.Logger

	instance vk.Instance
	dbg      vk.DebugReportCallback
	exts     []string
}

// NewInstance creates an instance with the requested layers and extensions
// that are actually available. Missing ones are logged and skipped.
func NewInstance(cfg InstanceConfig) (*Instance, error) {
	i := Instance{
		log: cfg.Log,
		dbg: vk.NullDebugReportCallback,
	}

	activeLayers := []string{}
	if len(cfg.Layers) > 0 {
		available, err := getAvailableInstanceLayers()
		if err != nil {
			return nil, errors.Wrap(err, "could not get layers")
		}
		for _, name := range cfg.Layers {
			if inStringSlice(available, name) {
				activeLayers = append(activeLayers, vkString(name))
			} else {
				i.log.Warn("missing layer %s", name)
			}
		}
	}

	debug := false
	var flags vk.InstanceCreateFlags
	activeExtensions := make([]string, 0, len(cfg.Extensions))
	if len(cfg.Extensions) > 0 {
		available, err := getAvailableInstanceExtensions()
		if err != nil {
			return nil, errors.Wrap(err, "could not get instance extensions")
		}
		for _, name := range cfg.Extensions {
			if !inStringSlice(available, name) {
				i.log.Warn("missing extension %s", name)
				continue
			}
			switch name {
			case "VK_EXT_debug_report":
				debug = true
			case portabilityEnumeration:
				flags |= instanceCreateEnumeratePortability
			}
			activeExtensions = append(activeExtensions, vkString(name))
			i.exts = append(i.exts, name)
		}
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		Flags: flags,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   vkString(cfg.AppName),
			ApplicationVersion: vk.MakeVersion(1, 0, 0),
			PEngineName:        vkString(cfg.EngineName),
			EngineVersion:      vk.MakeVersion(0, 0, 1),
			ApiVersion:         vk.ApiVersion11,
		},
		EnabledLayerCount:       uint32(len(activeLayers)),
		PpEnabledLayerNames:     activeLayers,
		EnabledExtensionCount:   uint32(len(activeExtensions)),
		PpEnabledExtensionNames: activeExtensions,
	}

	if result := vk.CreateInstance(&instanceInfo, nil, &i.instance); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "could not create instance")
	}

	if err := vk.InitInstance(i.instance); err != nil {
		vk.DestroyInstance(i.instance, nil)
		return nil, errors.Wrap(err, "could not load instance functions")
	}

	i.log.Log("instance created; layers: %v exts: %v", activeLayers, i.exts)

	if debug {
		debugCreateInfo := vk.DebugReportCallbackCreateInfo{
			SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
			Flags:       vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit),
			PfnCallback: i.debugReportCallback,
		}
		if result := vk.CreateDebugReportCallback(i.instance, &debugCreateInfo, nil, &i.dbg); result != vk.Success {
			vk.DestroyInstance(i.instance, nil)
			return nil, errors.Wrap(vk.Error(result), "creating debug report")
		}
	}

	return &i, nil
}

func (i *Instance) Destroy() {
	if i.dbg != vk.NullDebugReportCallback {
		vk.DestroyDebugReportCallback(i.instance, i.dbg, nil)
	}

	vk.DestroyInstance(i.instance, nil)
}

func (i *Instance) debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, pLayerPrefix string,
	pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		i.log.Err(nil, "[VK %d] %s on layer %s", messageCode, pMessage, pLayerPrefix)
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		i.log.Warn("[VK %d] %s on layer %s", messageCode, pMessage, pLayerPrefix)
	default:
		i.log.Trace("[VK %d] %s on layer %s", messageCode, pMessage, pLayerPrefix)
	}
	return vk.Bool32(vk.False)
}

func (i *Instance) EnumerateGPUs() ([]GPU, error) {
	var gpuCount uint32
	if result := vk.EnumeratePhysicalDevices(i.instance, &gpuCount, nil); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "could not count gpus")
	}
	if gpuCount == 0 {
		return nil, errors.New("no valid gpus")
	}
	vkGPUs := make([]vk.PhysicalDevice, gpuCount)
	if result := vk.EnumeratePhysicalDevices(i.instance, &gpuCount, vkGPUs); result != vk.Success {
		return nil, errors.Wrap(vk.Error(result), "could not enumerate gpus")
	}

	gpus := make([]GPU, gpuCount)
	for t, gpu := range vkGPUs {
		gpus[t] = newGPU(gpu)
	}

	return gpus, nil
}

func (i *Instance) Handle() vk.Instance {
	return i.instance
}
