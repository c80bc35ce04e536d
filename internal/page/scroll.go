package page

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning for anchor scrolling
const (
	ScrollFrequency = 6.0
	ScrollDamping   = 1.0 // critically damped, no overshoot
)

// SmoothScroll animates the scroll position toward a target
type SmoothScroll struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// NewSmoothScroll creates a scroller stepped fps times a second
func NewSmoothScroll(fps int) *SmoothScroll {
	return &SmoothScroll{spring: harmonica.NewSpring(harmonica.FPS(fps), ScrollFrequency, ScrollDamping)}
}

// To starts an animation from the current position to target
func (s *SmoothScroll) To(from, target float64) {
	if !s.active {
		s.pos = from
		s.vel = 0
	}
	s.target = target
	s.active = true
}

// Cancel stops the animation where it is
func (s *SmoothScroll) Cancel() {
	s.active = false
}

// Active reports whether an animation is running
func (s *SmoothScroll) Active() bool {
	return s.active
}

// Step advances one frame and returns the new scroll position
func (s *SmoothScroll) Step() float64 {
	if !s.active {
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.target-s.pos) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel = s.target, 0
		s.active = false
	}
	return s.pos
}
