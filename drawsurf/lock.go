package drawsurf

import (
	"fmt"

	"github.com/perlw/vksurface/logger"
)

// State is the lifecycle of a Lock. Transitions only move forward.
type State int

const (
	Unlocked State = iota
	Locked
	InfoRetrieved
	Released
)

func (s State) String() string {
	switch s {
	case Unlocked:
		return "Unlocked"
	case Locked:
		return "Locked"
	case InfoRetrieved:
		return "InfoRetrieved"
	case Released:
		return "Released"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Lock is a held drawing-surface lock of one window.
type Lock struct {
	log logger.Logger

	bridge Bridge
	ds     DrawingSurface
	info   *Info
	flags  LockFlags
	state  State

	locked bool
}

type Option func(*Lock)

func WithLogger(l logger.Logger) Option {
	return func(lk *Lock) {
		lk.log = l
	}
}

// Acquire initializes the bridge at version, obtains and locks the drawing
// surface of w and retrieves its info. On failure everything acquired so
// far has been given back and the returned error is an *AcquireError.
// On success the caller must call Release.
func Acquire(b Bridge, w Window, version Version, opts ...Option) (*Lock, error) {
	l := Lock{
		log:    logger.Discard(),
		bridge: b,
		state:  Unlocked,
	}
	for _, opt := range opts {
		opt(&l)
	}

	if err := b.Init(version); err != nil {
		l.state = Released
		return nil, &AcquireError{Phase: BridgeInitFailed, Err: err}
	}
	l.log.Trace("bridge initialized at version %#x", uint32(version))

	l.ds = b.DrawingSurface(w)
	if l.ds == nil {
		l.state = Released
		return nil, &AcquireError{Phase: SurfaceUnavailable}
	}

	l.flags = l.ds.Lock()
	if l.flags.Failed() {
		l.log.Trace("lock reported %#x", uint32(l.flags))
		l.Release()
		return nil, &AcquireError{Phase: LockFailed}
	}
	l.locked = true
	l.state = Locked

	l.info = l.ds.Info()
	if l.info == nil {
		l.Release()
		return nil, &AcquireError{Phase: InfoUnavailable}
	}

	if l.info.Platform == nil || l.info.Platform.IsZero() {
		l.Release()
		return nil, &AcquireError{Phase: PlatformInfoMissing}
	}
	l.state = InfoRetrieved
	l.log.Trace("drawing surface locked, bounds %v", l.info.Bounds)

	return &l, nil
}

// With acquires a lock for w, runs fn and releases the lock on every exit
// path, including a panic in fn.
func With(b Bridge, w Window, version Version, fn func(*Lock) error, opts ...Option) error {
	l, err := Acquire(b, w, version, opts...)
	if err != nil {
		return err
	}
	defer l.Release()

	return fn(l)
}

// Release frees the info, unlocks and frees the drawing surface, in that
// order, skipping whatever was never acquired. Calling it again is a no-op.
func (l *Lock) Release() {
	if l.state == Released {
		return
	}

	if l.info != nil {
		l.ds.FreeInfo(l.info)
		l.info = nil
	}
	if l.locked {
		l.ds.Unlock()
		l.locked = false
	}
	if l.ds != nil {
		l.bridge.FreeDrawingSurface(l.ds)
		l.ds = nil
	}
	l.state = Released
	l.log.Trace("drawing surface released")
}

func (l *Lock) State() State {
	return l.state
}

// Flags returns the bits reported by the lock call.
func (l *Lock) Flags() LockFlags {
	return l.flags
}

func (l *Lock) PlatformInfo() (PlatformInfo, error) {
	if l.state != InfoRetrieved {
		return nil, ErrLockReleased
	}
	return l.info.Platform, nil
}

func (l *Lock) Descriptor() (Descriptor, error) {
	if l.state != InfoRetrieved {
		return Descriptor{}, ErrLockReleased
	}

	clip := make([]Rect, len(l.info.Clip))
	copy(clip, l.info.Clip)
	return Descriptor{
		Platform: l.info.Platform,
		Bounds:   l.info.Bounds,
		Clip:     clip,
	}, nil
}
