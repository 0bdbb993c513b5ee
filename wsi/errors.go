package wsi

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// resultErrorUnknown is VK_ERROR_UNKNOWN.
const resultErrorUnknown = vk.Result(-13)

// Kind classifies a failed surface creation.
type Kind int

const (
	Other Kind = iota
	OutOfHostMemory
	OutOfDeviceMemory
	NativeWindowInUse
	Unknown
)

func (k Kind) String() string {
	switch k {
	case OutOfHostMemory:
		return "out of host memory"
	case OutOfDeviceMemory:
		return "out of device memory"
	case NativeWindowInUse:
		return "native window already in use"
	case Unknown:
		return "unknown error"
	default:
		return "surface creation failed"
	}
}

// CreateError is returned when the graphics API refused to create a
// surface. Code is the raw status.
type CreateError struct {
	Kind Kind
	Code vk.Result
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create surface: %s (status %d)", e.Kind, int32(e.Code))
}

// Is matches another *CreateError of the same Kind, so callers can test
// with errors.Is(err, &wsi.CreateError{Kind: wsi.OutOfHostMemory}).
func (e *CreateError) Is(target error) bool {
	t, ok := target.(*CreateError)
	return ok && t.Kind == e.Kind
}

// checkResult maps a surface-creation status. It never panics; statuses it
// does not know are reported as Other with the raw code.
func checkResult(code vk.Result) error {
	switch code {
	case vk.Success:
		return nil
	case vk.ErrorOutOfHostMemory:
		return &CreateError{Kind: OutOfHostMemory, Code: code}
	case vk.ErrorOutOfDeviceMemory:
		return &CreateError{Kind: OutOfDeviceMemory, Code: code}
	case vk.ErrorNativeWindowInUse:
		return &CreateError{Kind: NativeWindowInUse, Code: code}
	case resultErrorUnknown:
		return &CreateError{Kind: Unknown, Code: code}
	default:
		return &CreateError{Kind: Other, Code: code}
	}
}

// surfaceResult checks code and rejects a null handle behind a success
// status.
func surfaceResult(surface vk.Surface, code vk.Result) (vk.Surface, error) {
	if err := checkResult(code); err != nil {
		return vk.NullSurface, err
	}
	if surface == vk.NullSurface {
		return vk.NullSurface, &CreateError{Kind: Unknown, Code: code}
	}
	return surface, nil
}
