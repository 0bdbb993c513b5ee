//go:build linux || freebsd

package glfwbridge

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/perlw/vksurface/logger"
)

func TestMissingVisualIsLogged(t *testing.T) {
	var out bytes.Buffer
	n, err := openNative(logger.NewWithWriters("test", &out, &out))
	if err != nil {
		t.Skipf("no X server: %v", err)
	}
	defer n.close()

	x := n.(*x11Native)
	if got := x.visual(xproto.Window(0)); got != 0 {
		t.Fatalf("got visual %#x for window 0", got)
	}
	if !strings.Contains(out.String(), "no visual for window 0x0") {
		t.Fatalf("missing warning, log was %q", out.String())
	}
}

func TestX11DescribeIgnoresForeignWindows(t *testing.T) {
	n, err := openNative(logger.Discard())
	if err != nil {
		t.Skipf("no X server: %v", err)
	}
	defer n.close()

	if pi, _ := n.describe(&fakeWindow{width: 1, height: 1}); pi != nil {
		t.Fatalf("got %#v for a non-GLFW window", pi)
	}
}
