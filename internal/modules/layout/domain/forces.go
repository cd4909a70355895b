package domain

import "math"

const distanceMin2 = 1

// ManyBody applies a pairwise charge between every two bodies. Negative
// strength repels.
type ManyBody struct {
	Strength float64
	jiggle   Jiggle
}

func (f *ManyBody) Initialize(_ []Body, jiggle Jiggle) { f.jiggle = jiggle }

func (f *ManyBody) Apply(bodies []Body, alpha float64) {
	for i := range bodies {
		b := &bodies[i]
		for j := range bodies {
			if i == j {
				continue
			}
			x := bodies[j].X - b.X
			y := bodies[j].Y - b.Y
			l := x*x + y*y
			if x == 0 {
				x = f.jiggle()
				l += x * x
			}
			if y == 0 {
				y = f.jiggle()
				l += y * y
			}
			if l < distanceMin2 {
				l = math.Sqrt(distanceMin2 * l)
			}
			w := f.Strength * alpha / l
			b.VX += x * w
			b.VY += y * w
		}
	}
}

// PositionX pulls every body toward the vertical line at X.
type PositionX struct {
	X        float64
	Strength float64
}

func (f *PositionX) Initialize([]Body, Jiggle) {}

func (f *PositionX) Apply(bodies []Body, alpha float64) {
	for i := range bodies {
		bodies[i].VX += (f.X - bodies[i].X) * f.Strength * alpha
	}
}

// PositionY pulls every body toward the horizontal line at Y.
type PositionY struct {
	Y        float64
	Strength float64
}

func (f *PositionY) Initialize([]Body, Jiggle) {}

func (f *PositionY) Apply(bodies []Body, alpha float64) {
	for i := range bodies {
		bodies[i].VY += (f.Y - bodies[i].Y) * f.Strength * alpha
	}
}

// Collide treats bodies as circles and pushes overlapping pairs apart,
// sharing the correction by squared radius. It ignores alpha.
type Collide struct {
	Radii      []float64
	Strength   float64
	Iterations int
	jiggle     Jiggle
}

func (f *Collide) Initialize(_ []Body, jiggle Jiggle) {
	f.jiggle = jiggle
	if f.Iterations < 1 {
		f.Iterations = 1
	}
}

func (f *Collide) Apply(bodies []Body, _ float64) {
	for k := 0; k < f.Iterations; k++ {
		for i := range bodies {
			b := &bodies[i]
			ri := f.radius(i)
			ri2 := ri * ri
			xi := b.X + b.VX
			yi := b.Y + b.VY
			for j := i + 1; j < len(bodies); j++ {
				d := &bodies[j]
				rj := f.radius(j)
				r := ri + rj
				x := xi - d.X - d.VX
				y := yi - d.Y - d.VY
				l := x*x + y*y
				if l >= r*r {
					continue
				}
				if x == 0 {
					x = f.jiggle()
					l += x * x
				}
				if y == 0 {
					y = f.jiggle()
					l += y * y
				}
				l = math.Sqrt(l)
				l = (r - l) / l * f.Strength
				x *= l
				y *= l
				rj2 := rj * rj
				share := rj2 / (ri2 + rj2)
				b.VX += x * share
				b.VY += y * share
				d.VX -= x * (1 - share)
				d.VY -= y * (1 - share)
			}
		}
	}
}

func (f *Collide) radius(i int) float64 {
	if i < len(f.Radii) {
		return f.Radii[i]
	}
	return 0
}

// Spring is a link between two bodies with its similarity weight.
type Spring struct {
	Source int
	Target int
	Weight float64
}

// LinkForce pulls linked bodies toward a rest distance. Strength defaults to
// 1/min(degree) of the endpoints and the correction is split by degree, as in
// d3-force.
type LinkForce struct {
	Springs    []Spring
	Distance   func(Spring) float64
	Iterations int

	jiggle    Jiggle
	distances []float64
	strengths []float64
	bias      []float64
}

func (f *LinkForce) Initialize(bodies []Body, jiggle Jiggle) {
	f.jiggle = jiggle
	if f.Iterations < 1 {
		f.Iterations = 1
	}
	count := make([]int, len(bodies))
	for _, s := range f.Springs {
		count[s.Source]++
		count[s.Target]++
	}
	f.distances = make([]float64, len(f.Springs))
	f.strengths = make([]float64, len(f.Springs))
	f.bias = make([]float64, len(f.Springs))
	for i, s := range f.Springs {
		cs, ct := float64(count[s.Source]), float64(count[s.Target])
		f.bias[i] = cs / (cs + ct)
		f.strengths[i] = 1 / math.Min(cs, ct)
		d := f.Distance(s)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			d = BaseDistance
		}
		f.distances[i] = d
	}
}

func (f *LinkForce) Apply(bodies []Body, alpha float64) {
	for k := 0; k < f.Iterations; k++ {
		for i, s := range f.Springs {
			source := &bodies[s.Source]
			target := &bodies[s.Target]
			x := target.X + target.VX - source.X - source.VX
			if x == 0 {
				x = f.jiggle()
			}
			y := target.Y + target.VY - source.Y - source.VY
			if y == 0 {
				y = f.jiggle()
			}
			l := math.Sqrt(x*x + y*y)
			l = (l - f.distances[i]) / l * alpha * f.strengths[i]
			x *= l
			y *= l
			b := f.bias[i]
			target.VX -= x * b
			target.VY -= y * b
			source.VX += x * (1 - b)
			source.VY += y * (1 - b)
		}
	}
}

type DistanceMode string

const (
	DistanceAdditive DistanceMode = "additive"
	DistanceInverse  DistanceMode = "inverse"

	BaseDistance = 200.0
	MinDistance  = 30.0
)

// LinkDistance returns the rest length of a link. Additive keeps 200+weight,
// so more similar pairs sit slightly farther apart. Inverse shortens the rest
// length as similarity grows, never below MinDistance.
func LinkDistance(mode DistanceMode, weight float64) float64 {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return BaseDistance
	}
	if mode == DistanceInverse {
		return math.Max(MinDistance, BaseDistance*(1-weight))
	}
	return BaseDistance + weight
}
