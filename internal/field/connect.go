package field

import "math"

// Link is an unordered pair of particles closer than the connection radius. I < J always.
type Link struct {
	I, J int
	Dist float64
}

// Connections calls visit once for every pair of distinct particles within
// the connection radius. Small fields are checked pair by pair; larger ones
// go through spatial bins sized to the radius.
func (f *Field) Connections(visit func(Link)) {
	if len(f.Particles) <= BruteForceLimit {
		f.connectAll(visit)
		return
	}
	f.connectBinned(visit)
}

func (f *Field) connectAll(visit func(Link)) {
	maxDist := f.Params.ConnectionRadius
	for i := 0; i < len(f.Particles); i++ {
		for j := i + 1; j < len(f.Particles); j++ {
			if d, ok := f.near(i, j, maxDist); ok {
				visit(Link{I: i, J: j, Dist: d})
			}
		}
	}
}

// buildBins assigns particle indices to grid cells of the connection radius
func (f *Field) buildBins(stride int) {
	for k := range f.bins {
		delete(f.bins, k)
	}
	cell := f.Params.ConnectionRadius
	for i, p := range f.Particles {
		key := int(p.X/cell)*stride + int(p.Y/cell)
		f.bins[key] = append(f.bins[key], i)
	}
}

func (f *Field) connectBinned(visit func(Link)) {
	maxDist := f.Params.ConnectionRadius
	rows := int(math.Ceil(f.Height/maxDist)) + 1
	// one spare row keeps neighbour keys from aliasing into the next column
	stride := rows + 1
	f.buildBins(stride)

	for i, p := range f.Particles {
		binX := int(p.X / maxDist)
		binY := int(p.Y / maxDist)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if binY+dy < 0 || binX+dx < 0 {
					continue
				}
				for _, j := range f.bins[(binX+dx)*stride+binY+dy] {
					if j <= i {
						continue
					}
					if d, ok := f.near(i, j, maxDist); ok {
						visit(Link{I: i, J: j, Dist: d})
					}
				}
			}
		}
	}
}

func (f *Field) near(i, j int, maxDist float64) (float64, bool) {
	dx := f.Particles[i].X - f.Particles[j].X
	dy := f.Particles[i].Y - f.Particles[j].Y
	d := math.Sqrt(dx*dx + dy*dy)
	return d, d < maxDist
}
