package drawsurf

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

// fakeBridge records every call so tests can check what was acquired and
// what was given back.
type fakeBridge struct {
	failAt int

	calls []string
	ds    *fakeSurface
}

type fakeSurface struct {
	b *fakeBridge
}

func (b *fakeBridge) Init(version Version) error {
	b.calls = append(b.calls, "init")
	if b.failAt == 1 {
		return errors.New("no bridge library")
	}
	return nil
}

func (b *fakeBridge) DrawingSurface(w Window) DrawingSurface {
	b.calls = append(b.calls, "get")
	if b.failAt == 2 {
		return nil
	}
	b.ds = &fakeSurface{b: b}
	return b.ds
}

func (b *fakeBridge) FreeDrawingSurface(ds DrawingSurface) {
	b.calls = append(b.calls, "free")
}

func (s *fakeSurface) Lock() LockFlags {
	s.b.calls = append(s.b.calls, "lock")
	if s.b.failAt == 3 {
		return LockError
	}
	return BoundsChanged
}

func (s *fakeSurface) Info() *Info {
	s.b.calls = append(s.b.calls, "info")
	switch s.b.failAt {
	case 4:
		return nil
	case 5:
		return &Info{Platform: Win32Info{}}
	}
	return &Info{
		Platform: Win32Info{HWND: 0x1234, HInstance: 0x10},
		Bounds:   Rect{X: 10, Y: 20, Width: 640, Height: 480},
		Clip:     []Rect{{Width: 640, Height: 480}},
	}
}

func (s *fakeSurface) FreeInfo(info *Info) {
	s.b.calls = append(s.b.calls, "freeinfo")
}

func (s *fakeSurface) Unlock() {
	s.b.calls = append(s.b.calls, "unlock")
}

func TestAcquireRollback(t *testing.T) {
	tests := []struct {
		failAt int
		err    error
		calls  []string
	}{
		{1, ErrBridgeInit, []string{"init"}},
		{2, ErrSurfaceUnavailable, []string{"init", "get"}},
		{3, ErrLockFailed, []string{"init", "get", "lock", "free"}},
		{4, ErrInfoUnavailable, []string{"init", "get", "lock", "info", "unlock", "free"}},
		{5, ErrPlatformInfoMissing, []string{"init", "get", "lock", "info", "freeinfo", "unlock", "free"}},
	}

	for _, tt := range tests {
		b := &fakeBridge{failAt: tt.failAt}
		l, err := Acquire(b, struct{}{}, Version1_4)
		if l != nil {
			t.Errorf("step %d: got lock on failure", tt.failAt)
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("step %d: got %v, want %v", tt.failAt, err, tt.err)
		}
		var ae *AcquireError
		if !errors.As(err, &ae) || ae.Phase != Phase(tt.failAt) {
			t.Errorf("step %d: got %#v, want phase %v", tt.failAt, err, Phase(tt.failAt))
		}
		if !reflect.DeepEqual(b.calls, tt.calls) {
			t.Errorf("step %d: calls %v, want %v", tt.failAt, b.calls, tt.calls)
		}
	}
}

func TestLockFailedFreesSurfaceOnce(t *testing.T) {
	b := &fakeBridge{failAt: 3}
	_, err := Acquire(b, struct{}{}, Version1_4)
	if !errors.Is(err, ErrLockFailed) {
		t.Fatalf("got %v, want ErrLockFailed", err)
	}

	frees := 0
	for _, c := range b.calls {
		if c == "free" {
			frees++
		}
		if c == "unlock" {
			t.Fatalf("unlock called for a lock that was never taken")
		}
	}
	if frees != 1 {
		t.Fatalf("drawing surface freed %d times", frees)
	}
}

func TestReleaseOrderAndIdempotence(t *testing.T) {
	b := &fakeBridge{}
	l, err := Acquire(b, struct{}{}, Version1_4)
	if err != nil {
		t.Fatal(err)
	}
	if l.State() != InfoRetrieved {
		t.Fatalf("state %v, want InfoRetrieved", l.State())
	}
	if l.Flags()&BoundsChanged == 0 {
		t.Fatalf("lock flags not kept: %#x", l.Flags())
	}

	l.Release()
	l.Release()

	want := []string{"init", "get", "lock", "info", "freeinfo", "unlock", "free"}
	if !reflect.DeepEqual(b.calls, want) {
		t.Fatalf("calls %v, want %v", b.calls, want)
	}
	if l.State() != Released {
		t.Fatalf("state %v, want Released", l.State())
	}
}

func TestDescriptorOnlyWhileHeld(t *testing.T) {
	b := &fakeBridge{}
	l, err := Acquire(b, struct{}{}, Version1_4)
	if err != nil {
		t.Fatal(err)
	}

	pi, err := l.PlatformInfo()
	if err != nil {
		t.Fatal(err)
	}
	if w, ok := pi.(Win32Info); !ok || w.HWND != 0x1234 {
		t.Fatalf("unexpected platform info %#v", pi)
	}
	d, err := l.Descriptor()
	if err != nil {
		t.Fatal(err)
	}
	if d.Bounds != (Rect{X: 10, Y: 20, Width: 640, Height: 480}) {
		t.Fatalf("bounds %v", d.Bounds)
	}

	l.Release()

	if _, err := l.PlatformInfo(); err != ErrLockReleased {
		t.Fatalf("PlatformInfo after release: %v", err)
	}
	if _, err := l.Descriptor(); err != ErrLockReleased {
		t.Fatalf("Descriptor after release: %v", err)
	}
}

func TestWithReleasesOnPanic(t *testing.T) {
	b := &fakeBridge{}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("panic swallowed")
			}
		}()
		_ = With(b, struct{}{}, Version1_4, func(l *Lock) error {
			panic("caller failed")
		})
	}()

	if got := b.calls[len(b.calls)-1]; got != "free" {
		t.Fatalf("lock not released after panic, calls %v", b.calls)
	}
}

func TestWithReturnsCallerError(t *testing.T) {
	b := &fakeBridge{}
	want := errors.New("use failed")

	err := With(b, struct{}{}, Version1_4, func(l *Lock) error {
		return want
	})
	if err != want {
		t.Fatalf("got %v, want %v", err, want)
	}
	if got := b.calls[len(b.calls)-1]; got != "free" {
		t.Fatalf("lock not released, calls %v", b.calls)
	}
}

func TestAcquireErrorMessage(t *testing.T) {
	err := &AcquireError{Phase: BridgeInitFailed, Err: errors.New("bridge library not found")}
	if got, want := err.Error(), "native bridge could not be initialized: bridge library not found"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if errors.Is(err, ErrLockFailed) {
		t.Fatal("matched the wrong phase")
	}
}
