package field

import (
	"math"
	"math/rand"
)

// Default tuning of the field
const (
	MaxParticles      = 80
	AreaPerParticle   = 15000.0
	InfluenceRadius   = 150.0
	PointerForce      = 0.02
	MaxSpeed          = 1.0
	ConnectionRadius  = 120.0
	ConnectionOpacity = 0.15
	LineWidth         = 0.5
	InitialSpeed      = 0.3
	BruteForceLimit   = 120 // above this the connection pass uses spatial bins
)

// Hues a particle may take, chosen with equal probability
const (
	HueViolet = 261.0
	HuePurple = 270.0
)

// Particle is a single body of the field. Radius, Opacity and Hue are fixed at creation.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity
	Radius  float64
	Opacity float64
	Hue     float64
}

// Params tunes a Field. The zero value is not usable, start from DefaultParams.
type Params struct {
	MaxParticles      int
	AreaPerParticle   float64
	InfluenceRadius   float64
	PointerForce      float64
	MaxSpeed          float64
	ConnectionRadius  float64
	ConnectionOpacity float64
	LineWidth         float64
}

// DefaultParams returns the tuning used by the website background.
func DefaultParams() Params {
	return Params{
		MaxParticles:      MaxParticles,
		AreaPerParticle:   AreaPerParticle,
		InfluenceRadius:   InfluenceRadius,
		PointerForce:      PointerForce,
		MaxSpeed:          MaxSpeed,
		ConnectionRadius:  ConnectionRadius,
		ConnectionOpacity: ConnectionOpacity,
		LineWidth:         LineWidth,
	}
}

// Count returns how many particles a surface of the given size holds.
func (p Params) Count(width, height float64) int {
	area := width * height
	if area <= 0 || p.AreaPerParticle <= 0 {
		return 0
	}
	n := int(math.Floor(area / p.AreaPerParticle))
	if n > p.MaxParticles {
		n = p.MaxParticles
	}
	return n
}

// Field holds the particle set and the state it is simulated against
type Field struct {
	Width, Height float64
	Particles     []Particle
	Params        Params

	pointerX, pointerY float64
	hasPointer         bool
	rng                *rand.Rand
	bins               map[int][]int
}

// New creates a field sized width x height with no pointer influence.
func New(width, height float64, params Params, rng *rand.Rand) *Field {
	f := &Field{
		Params: params,
		rng:    rng,
		bins:   make(map[int][]int),
	}
	f.Resize(width, height)
	return f
}

// Resize sets the surface dimensions and regenerates every particle.
// Identical dimensions still produce a fresh set.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
	f.populate()
}

func (f *Field) populate() {
	n := f.Params.Count(f.Width, f.Height)
	f.Particles = make([]Particle, n)
	for i := range f.Particles {
		hue := HuePurple
		if f.rng.Float64() > 0.5 {
			hue = HueViolet
		}
		f.Particles[i] = Particle{
			X:       f.rng.Float64() * f.Width,
			Y:       f.rng.Float64() * f.Height,
			VX:      (f.rng.Float64() - 0.5) * InitialSpeed,
			VY:      (f.rng.Float64() - 0.5) * InitialSpeed,
			Radius:  f.rng.Float64()*2 + 0.5,
			Opacity: f.rng.Float64()*0.4 + 0.1,
			Hue:     hue,
		}
	}
}

// SetPointer records the latest pointer position. It stays in effect until the next call.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// ClearPointer removes pointer influence.
func (f *Field) ClearPointer() {
	f.hasPointer = false
}

// Pointer returns the pointer position and whether one is set.
func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Update advances every particle by one frame.
// Per particle: integrate, pointer force, speed clamp, reflect, clamp.
func (f *Field) Update() {
	prm := f.Params
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		if f.hasPointer {
			dx := p.X - f.pointerX
			dy := p.Y - f.pointerY
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < prm.InfluenceRadius && dist > 0 {
				force := (prm.InfluenceRadius - dist) / prm.InfluenceRadius
				p.VX += (dx / dist) * force * prm.PointerForce
				p.VY += (dy / dist) * force * prm.PointerForce
			}
		}

		speed := math.Sqrt(p.VX*p.VX + p.VY*p.VY)
		if speed > prm.MaxSpeed {
			p.VX = (p.VX / speed) * prm.MaxSpeed
			p.VY = (p.VY / speed) * prm.MaxSpeed
		}

		// Reflection looks at the unclamped position
		if p.X < 0 || p.X > f.Width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > f.Height {
			p.VY = -p.VY
		}

		p.X = math.Max(0, math.Min(f.Width, p.X))
		p.Y = math.Max(0, math.Min(f.Height, p.Y))
	}
}

// Step runs one frame: update then render.
func (f *Field) Step(s Surface) {
	f.Update()
	f.Render(s)
}
