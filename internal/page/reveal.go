package page

import "time"

// Reveal defaults
const (
	RevealThreshold    = 0.1
	RevealBottomMargin = 50.0
	RevealStagger      = 100 * time.Millisecond
)

// Card is an element revealed once it scrolls into view
type Card struct {
	Title    string
	Top      float64
	Height   float64
	Index    int // position among its siblings, sets the reveal delay
	Revealed bool

	pending bool
	due     time.Duration
}

// Reveal observes cards against the viewport. Every card is observed until it first intersects.
type Reveal struct {
	Cards        []*Card
	Threshold    float64
	BottomMargin float64
	Stagger      time.Duration

	elapsed time.Duration
}

// NewReveal creates a reveal observer with the site defaults
func NewReveal(cards ...*Card) *Reveal {
	return &Reveal{
		Cards:        cards,
		Threshold:    RevealThreshold,
		BottomMargin: RevealBottomMargin,
		Stagger:      RevealStagger,
	}
}

// Observe checks the unobserved cards against the viewport [scrollY, scrollY+viewportH).
func (r *Reveal) Observe(scrollY, viewportH float64) {
	top := scrollY
	bottom := scrollY + viewportH - r.BottomMargin
	for _, c := range r.Cards {
		if c.Revealed || c.pending {
			continue
		}
		if intersectRatio(c.Top, c.Top+c.Height, top, bottom) >= r.Threshold && bottom > top {
			c.pending = true
			c.due = r.elapsed + time.Duration(c.Index)*r.Stagger
		}
	}
	r.flush()
}

// Advance moves the reveal clock and reveals cards whose delay has passed.
func (r *Reveal) Advance(dt time.Duration) {
	r.elapsed += dt
	r.flush()
}

func (r *Reveal) flush() {
	for _, c := range r.Cards {
		if c.pending && r.elapsed >= c.due {
			c.pending = false
			c.Revealed = true
		}
	}
}

func intersectRatio(elTop, elBottom, viewTop, viewBottom float64) float64 {
	h := elBottom - elTop
	lo := max(elTop, viewTop)
	hi := min(elBottom, viewBottom)
	if h <= 0 {
		if elTop >= viewTop && elTop <= viewBottom {
			return 1
		}
		return 0
	}
	if hi <= lo {
		return 0
	}
	return (hi - lo) / h
}
