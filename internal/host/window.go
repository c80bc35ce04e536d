package host

import "sync"

// Window delivers viewport notifications to subscribers.
// Subscribing and unsubscribing may happen from any goroutine; handlers run
// on the goroutine that calls Resize or PointerMove.
type Window struct {
	mu            sync.Mutex
	width, height float64

	nextID  int
	resize  map[int]func()
	pointer map[int]func(x, y float64)
}

// NewWindow creates a window with the given viewport size
func NewWindow(width, height float64) *Window {
	return &Window{
		width:   width,
		height:  height,
		resize:  make(map[int]func()),
		pointer: make(map[int]func(x, y float64)),
	}
}

// Size returns the current viewport size
func (w *Window) Size() (float64, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// OnResize registers fn for resize notifications. Handlers read the new size
// with Size. The returned func unregisters fn.
func (w *Window) OnResize(fn func()) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.resize[id] = fn
	return func() {
		w.mu.Lock()
		delete(w.resize, id)
		w.mu.Unlock()
	}
}

// OnPointerMove registers fn for pointer positions. The returned func unregisters fn.
func (w *Window) OnPointerMove(fn func(x, y float64)) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.pointer[id] = fn
	return func() {
		w.mu.Lock()
		delete(w.pointer, id)
		w.mu.Unlock()
	}
}

// Resize updates the viewport and notifies subscribers
func (w *Window) Resize(width, height float64) {
	w.mu.Lock()
	w.width, w.height = width, height
	handlers := make([]func(), 0, len(w.resize))
	for _, fn := range w.resize {
		handlers = append(handlers, fn)
	}
	w.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// PointerMove reports a pointer position relative to the viewport
func (w *Window) PointerMove(x, y float64) {
	w.mu.Lock()
	handlers := make([]func(x, y float64), 0, len(w.pointer))
	for _, fn := range w.pointer {
		handlers = append(handlers, fn)
	}
	w.mu.Unlock()

	for _, fn := range handlers {
		fn(x, y)
	}
}

// Listeners returns how many handlers are registered
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.resize) + len(w.pointer)
}
