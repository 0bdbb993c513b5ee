//go:build darwin

package wsi

import (
	"testing"

	"github.com/perlw/vksurface/drawsurf"
)

func TestCocoaLayerRequiresHost(t *testing.T) {
	if _, err := (cocoaCompositor{}).CreateLayer(0, drawsurf.Rect{Width: 1, Height: 1}); err == nil {
		t.Fatal("layer created without a host")
	}
}

func TestCocoaLayerOwnedByHost(t *testing.T) {
	alive, err := layerOutlivesHost()
	if err != nil {
		t.Skip(err)
	}
	if alive {
		t.Fatal("layer still alive after its host view was released")
	}
}
