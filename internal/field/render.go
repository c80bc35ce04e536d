package field

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Surface is what a field draws onto
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// Saturation/lightness pairs used when drawing
const (
	LineHue        = 261.0
	LineSaturation = 0.60
	LineLightness  = 0.55
	DotSaturation  = 0.70
	DotLightness   = 0.65
)

// Render clears the surface, draws the connections and then the particles on top.
func (f *Field) Render(s Surface) {
	s.Clear()

	prm := f.Params
	f.Connections(func(l Link) {
		a, b := f.Particles[l.I], f.Particles[l.J]
		opacity := (1 - l.Dist/prm.ConnectionRadius) * prm.ConnectionOpacity
		s.StrokeLine(a.X, a.Y, b.X, b.Y, prm.LineWidth, HSLA(LineHue, LineSaturation, LineLightness, opacity))
	})

	for _, p := range f.Particles {
		s.FillCircle(p.X, p.Y, p.Radius, HSLA(p.Hue, DotSaturation, DotLightness, p.Opacity))
	}
}

// HSLA converts a hue in degrees plus saturation, lightness and alpha in [0,1]
// to a non-premultiplied color.
func HSLA(h, s, l, a float64) color.NRGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}
