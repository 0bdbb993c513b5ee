package wsi

import (
	"testing"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"
)

func TestCheckResult(t *testing.T) {
	tests := []struct {
		code vk.Result
		kind Kind
		ok   bool
	}{
		{vk.Success, 0, true},
		{vk.ErrorOutOfHostMemory, OutOfHostMemory, false},
		{vk.ErrorOutOfDeviceMemory, OutOfDeviceMemory, false},
		{vk.ErrorNativeWindowInUse, NativeWindowInUse, false},
		{vk.Result(-13), Unknown, false},
		{vk.Result(9999), Other, false},
	}

	for _, tt := range tests {
		err := checkResult(tt.code)
		if tt.ok {
			if err != nil {
				t.Errorf("%d: unexpected error %v", tt.code, err)
			}
			continue
		}

		var ce *CreateError
		if !errors.As(err, &ce) {
			t.Errorf("%d: got %v, want *CreateError", tt.code, err)
			continue
		}
		if ce.Kind != tt.kind || ce.Code != tt.code {
			t.Errorf("%d: got kind %v code %d, want %v %d", tt.code, ce.Kind, ce.Code, tt.kind, tt.code)
		}
	}
}

func TestUnlistedCodeKeepsRawValue(t *testing.T) {
	err := checkResult(vk.Result(9999))
	if !errors.Is(err, &CreateError{Kind: Other}) {
		t.Fatalf("got %v, want Other", err)
	}
	if got, want := err.Error(), "create surface: surface creation failed (status 9999)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSuccessWithNullSurface(t *testing.T) {
	_, err := surfaceResult(vk.NullSurface, vk.Success)
	if !errors.Is(err, &CreateError{Kind: Unknown}) {
		t.Fatalf("got %v, want Unknown", err)
	}
}
