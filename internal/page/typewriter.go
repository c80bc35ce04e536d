package page

import "time"

const DefaultTypeSpeed = 80 * time.Millisecond

// TypeWriter reveals a text one rune at a time
type TypeWriter struct {
	Speed time.Duration

	text    []rune
	index   int
	started bool
	acc     time.Duration
}

// NewTypeWriter creates a typewriter for text. A zero speed uses DefaultTypeSpeed.
func NewTypeWriter(text string, speed time.Duration) *TypeWriter {
	if speed <= 0 {
		speed = DefaultTypeSpeed
	}
	return &TypeWriter{Speed: speed, text: []rune(text)}
}

// Start types the first rune immediately
func (tw *TypeWriter) Start() {
	if tw.started {
		return
	}
	tw.started = true
	tw.typeOne()
}

// Advance types one rune for every elapsed Speed interval
func (tw *TypeWriter) Advance(dt time.Duration) {
	if !tw.started || tw.Done() {
		return
	}
	tw.acc += dt
	for tw.acc >= tw.Speed && !tw.Done() {
		tw.acc -= tw.Speed
		tw.typeOne()
	}
}

func (tw *TypeWriter) typeOne() {
	if tw.index < len(tw.text) {
		tw.index++
	}
}

// Text returns what has been typed so far
func (tw *TypeWriter) Text() string {
	return string(tw.text[:tw.index])
}

// Done reports whether the whole text is shown
func (tw *TypeWriter) Done() bool {
	return tw.index >= len(tw.text)
}
