package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen draws onto an ebiten image. A nil Background clears to transparent.
type Screen struct {
	Image      *ebiten.Image
	Background color.Color
}

// NewScreen wraps img for the duration of one Draw call
func NewScreen(img *ebiten.Image, bg color.Color) *Screen {
	return &Screen{Image: img, Background: bg}
}

// Clear fills the image with Background
func (s *Screen) Clear() {
	if s.Background == nil {
		s.Image.Clear()
		return
	}
	s.Image.Fill(s.Background)
}

// FillCircle draws an anti-aliased disc
func (s *Screen) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.Image, float32(x), float32(y), float32(r), c, true)
}

// StrokeLine draws an anti-aliased segment
func (s *Screen) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.Image, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}
