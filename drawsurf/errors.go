package drawsurf

import (
	"fmt"

	"github.com/pkg/errors"
)

// Phase names the acquisition step that failed.
type Phase int

const (
	BridgeInitFailed Phase = iota + 1
	SurfaceUnavailable
	LockFailed
	InfoUnavailable
	PlatformInfoMissing
)

func (p Phase) String() string {
	switch p {
	case BridgeInitFailed:
		return "BridgeInitFailed"
	case SurfaceUnavailable:
		return "SurfaceUnavailable"
	case LockFailed:
		return "LockFailed"
	case InfoUnavailable:
		return "InfoUnavailable"
	case PlatformInfoMissing:
		return "PlatformInfoMissing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	ErrBridgeInit          = errors.New("native bridge could not be initialized")
	ErrSurfaceUnavailable  = errors.New("no drawing surface for window")
	ErrLockFailed          = errors.New("drawing surface lock failed")
	ErrInfoUnavailable     = errors.New("drawing surface info unavailable")
	ErrPlatformInfoMissing = errors.New("drawing surface info has no platform info")

	// ErrLockReleased is returned when a descriptor is requested outside
	// the window between a successful Acquire and Release.
	ErrLockReleased = errors.New("drawing surface lock is not held")
)

func (p Phase) sentinel() error {
	switch p {
	case BridgeInitFailed:
		return ErrBridgeInit
	case SurfaceUnavailable:
		return ErrSurfaceUnavailable
	case LockFailed:
		return ErrLockFailed
	case InfoUnavailable:
		return ErrInfoUnavailable
	case PlatformInfoMissing:
		return ErrPlatformInfoMissing
	}
	return nil
}

// AcquireError reports a failed acquisition. Err carries the bridge's own
// error when it gave one.
type AcquireError struct {
	Phase Phase
	Err   error
}

func (e *AcquireError) Error() string {
	msg := e.Phase.String()
	if s := e.Phase.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *AcquireError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the failed phase.
func (e *AcquireError) Is(target error) bool {
	return target != nil && target == e.Phase.sentinel()
}
