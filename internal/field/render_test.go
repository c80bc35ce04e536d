package field_test

import (
	"image/color"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/olivierh59500/particle-field-go/internal/field"
	"github.com/olivierh59500/particle-field-go/internal/surface"
)

func TestConnectionsPairsOnce(t *testing.T) {
	g := NewWithT(t)
	f := field.New(800, 600, field.DefaultParams(), rand.New(rand.NewSource(3)))

	seen := make(map[[2]int]bool)
	f.Connections(func(l field.Link) {
		g.Expect(l.I).To(BeNumerically("<", l.J))
		g.Expect(seen).NotTo(HaveKey([2]int{l.I, l.J}))
		g.Expect(l.Dist).To(BeNumerically("<", field.ConnectionRadius))
		seen[[2]int{l.I, l.J}] = true
	})
	g.Expect(seen).NotTo(BeEmpty())
}

func TestBinnedConnectionsMatchAllPairs(t *testing.T) {
	g := NewWithT(t)
	prm := field.DefaultParams()
	prm.MaxParticles = 400
	prm.AreaPerParticle = 2000
	f := field.New(1200, 700, prm, rand.New(rand.NewSource(11)))
	g.Expect(len(f.Particles)).To(BeNumerically(">", field.BruteForceLimit))

	binned := make(map[[2]int]float64)
	f.Connections(func(l field.Link) {
		g.Expect(binned).NotTo(HaveKey([2]int{l.I, l.J}))
		binned[[2]int{l.I, l.J}] = l.Dist
	})

	expected := make(map[[2]int]float64)
	for i := range f.Particles {
		for j := i + 1; j < len(f.Particles); j++ {
			a, b := f.Particles[i], f.Particles[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			if d := dx*dx + dy*dy; d < field.ConnectionRadius*field.ConnectionRadius {
				expected[[2]int{i, j}] = 0
			}
		}
	}
	g.Expect(binned).To(HaveLen(len(expected)))
	for k := range expected {
		g.Expect(binned).To(HaveKey(k))
	}
}

func TestRenderFrame(t *testing.T) {
	g := NewWithT(t)
	f := field.New(400, 300, field.DefaultParams(), rand.New(rand.NewSource(5)))
	rec := &surface.Recorder{}

	f.Particles = []field.Particle{
		{X: 10, Y: 10, Radius: 1, Opacity: 0.2, Hue: field.HueViolet},
		{X: 70, Y: 10, Radius: 2, Opacity: 0.4, Hue: field.HuePurple},
		{X: 300, Y: 200, Radius: 1.5, Opacity: 0.3, Hue: field.HueViolet},
	}
	f.Render(rec)

	g.Expect(rec.Clears).To(Equal(1))
	g.Expect(rec.Circles).To(HaveLen(3))
	g.Expect(rec.Lines).To(HaveLen(1))

	line := rec.Lines[0]
	g.Expect(line.Width).To(Equal(field.LineWidth))
	g.Expect([]float64{line.X1, line.Y1, line.X2, line.Y2}).To(Equal([]float64{10, 10, 70, 10}))
	// d = 60: (1 - 60/120) * 0.15
	g.Expect(line.Color).To(Equal(field.HSLA(field.LineHue, field.LineSaturation, field.LineLightness, 0.075)))

	g.Expect(rec.Circles[1].R).To(Equal(2.0))
	g.Expect(rec.Circles[1].Color).To(Equal(field.HSLA(field.HuePurple, 0.70, 0.65, 0.4)))

	f.Render(rec)
	g.Expect(rec.Clears).To(Equal(2))
	g.Expect(rec.Circles).To(HaveLen(3))
}

func TestStepUpdatesBeforeRender(t *testing.T) {
	g := NewWithT(t)
	f := field.New(400, 300, field.DefaultParams(), rand.New(rand.NewSource(5)))
	f.Particles = []field.Particle{{X: 100, Y: 100, VX: 0.5, VY: 0, Radius: 1, Opacity: 0.2, Hue: field.HueViolet}}
	rec := &surface.Recorder{}

	f.Step(rec)
	g.Expect(rec.Circles).To(HaveLen(1))
	g.Expect(rec.Circles[0].X).To(Equal(100.5))
}

func TestHSLA(t *testing.T) {
	tests := []struct {
		h, s, l, a float64
		expected   color.NRGBA
	}{
		{0, 1, 0.5, 1, color.NRGBA{255, 0, 0, 255}},
		{120, 1, 0.5, 0, color.NRGBA{0, 255, 0, 0}},
		{240, 1, 0.5, 2, color.NRGBA{0, 0, 255, 255}},
		{0, 0, 1, 0.5, color.NRGBA{255, 255, 255, 128}},
	}

	for _, tt := range tests {
		if got := field.HSLA(tt.h, tt.s, tt.l, tt.a); got != tt.expected {
			t.Errorf("HSLA(%v, %v, %v, %v) = %v, expected %v", tt.h, tt.s, tt.l, tt.a, got, tt.expected)
		}
	}
}
