//go:build !windows && !darwin && !linux && !freebsd

package glfwbridge

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/perlw/vksurface/logger"
)

func openNative(log logger.Logger) (native, error) {
	return nil, errors.Errorf("no native window handles on %s", runtime.GOOS)
}
