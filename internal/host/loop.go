package host

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/olivierh59500/particle-field-go/internal/field"
)

// ErrStopped is returned by Run when the handle was closed
var ErrStopped = errors.New("host: field detached")

// Handle ties a field to a window. Close releases the listeners and stops any loop driving the field.
type Handle struct {
	field   *field.Field
	release []func()
	stopped atomic.Bool
}

// Attach sizes f to the window and subscribes it to resize and pointer-move notifications.
func Attach(w *Window, f *field.Field) *Handle {
	h := &Handle{field: f}
	if width, height := w.Size(); width != f.Width || height != f.Height {
		f.Resize(width, height)
	}
	h.release = append(h.release,
		w.OnResize(func() {
			if !h.Stopped() {
				f.Resize(w.Size())
			}
		}),
		w.OnPointerMove(func(x, y float64) {
			if !h.Stopped() {
				f.SetPointer(x, y)
			}
		}),
	)
	return h
}

// Field returns the attached field
func (h *Handle) Field() *field.Field {
	return h.field
}

// Stopped reports whether Close was called
func (h *Handle) Stopped() bool {
	return h.stopped.Load()
}

// Close unregisters the listeners and stops the loop. It may be called more than once
// and from any goroutine.
func (h *Handle) Close() {
	if h.stopped.Swap(true) {
		return
	}
	for _, fn := range h.release {
		fn()
	}
	h.release = nil
}

// Loop drives the frame steps of an attached field
type Loop struct {
	handle *Handle
	paused bool
	frames uint64
}

// NewLoop creates a loop for h
func NewLoop(h *Handle) *Loop {
	return &Loop{handle: h}
}

// Tick advances the simulation one frame without drawing.
// It reports false once the handle is closed.
func (l *Loop) Tick() bool {
	if l.handle.Stopped() {
		return false
	}
	if !l.paused {
		l.handle.field.Update()
	}
	l.frames++
	return true
}

// Frame runs one frame step: update then render onto s.
func (l *Loop) Frame(s field.Surface) bool {
	if !l.Tick() {
		return false
	}
	l.handle.field.Render(s)
	return true
}

// TogglePause freezes or resumes the simulation. Rendering continues while paused.
func (l *Loop) TogglePause() bool {
	l.paused = !l.paused
	return l.paused
}

// Paused reports whether updates are frozen
func (l *Loop) Paused() bool {
	return l.paused
}

// Frames returns how many frames were stepped
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run steps one frame per tick at fps until ctx is done or the handle is closed.
// surfaceFn supplies the surface for each frame.
func (l *Loop) Run(ctx context.Context, fps int, surfaceFn func() field.Surface) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !l.Frame(surfaceFn()) {
				return ErrStopped
			}
		}
	}
}
