package domain

import (
	"math"
	"math/rand/v2"
)

const (
	DefaultAlphaMin      = 0.001
	DefaultVelocityDecay = 0.4
	DragAlphaTarget      = 0.3
)

// Body is one simulated node. A pinned body is held at (FX, FY) and its
// velocity is discarded on every tick.
type Body struct {
	X, Y   float64
	VX, VY float64
	FX, FY float64
	Pinned bool
}

// Jiggle returns a tiny random offset used to separate coincident bodies.
type Jiggle func() float64

type Force interface {
	Initialize(bodies []Body, jiggle Jiggle)
	Apply(bodies []Body, alpha float64)
}

// Simulation is a velocity Verlet integrator with alpha cooling, compatible
// with d3-force: alpha decays toward alphaTarget and the simulation stops once
// alpha falls below alphaMin.
type Simulation struct {
	bodies        []Body
	forces        []Force
	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	alphaTarget   float64
	velocityDecay float64
	jiggle        Jiggle
	ticks         int
	stopped       bool
}

// NewSimulation places every body at (x, y) and initializes the forces in
// order.
func NewSimulation(n int, x, y float64, seed uint64, forces ...Force) *Simulation {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := &Simulation{
		bodies:        make([]Body, n),
		forces:        forces,
		alpha:         1,
		alphaMin:      DefaultAlphaMin,
		alphaDecay:    1 - math.Pow(DefaultAlphaMin, 1.0/300),
		velocityDecay: 1 - DefaultVelocityDecay,
		jiggle:        func() float64 { return (rng.Float64() - 0.5) * 1e-6 },
	}
	for i := range s.bodies {
		s.bodies[i].X = x
		s.bodies[i].Y = y
	}
	for _, f := range s.forces {
		f.Initialize(s.bodies, s.jiggle)
	}
	return s
}

// Step advances the simulation by one tick. A stopped simulation does not
// move until Restart.
func (s *Simulation) Step() {
	if s.stopped {
		return
	}
	s.alpha += (s.alphaTarget - s.alpha) * s.alphaDecay
	for _, f := range s.forces {
		f.Apply(s.bodies, s.alpha)
	}
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Pinned {
			b.X, b.Y = b.FX, b.FY
			b.VX, b.VY = 0, 0
			continue
		}
		b.VX *= s.velocityDecay
		b.VY *= s.velocityDecay
		b.X += b.VX
		b.Y += b.VY
	}
	s.ticks++
	if s.alpha < s.alphaMin {
		s.stopped = true
	}
}

func (s *Simulation) Restart() { s.stopped = false }

func (s *Simulation) Running() bool { return !s.stopped }

func (s *Simulation) Alpha() float64 { return s.alpha }

func (s *Simulation) Ticks() int { return s.ticks }

func (s *Simulation) SetAlphaTarget(v float64) { s.alphaTarget = v }

func (s *Simulation) AlphaTarget() float64 { return s.alphaTarget }

func (s *Simulation) Len() int { return len(s.bodies) }

func (s *Simulation) Body(i int) Body { return s.bodies[i] }

func (s *Simulation) Pin(i int, x, y float64) {
	b := &s.bodies[i]
	b.FX, b.FY, b.Pinned = x, y, true
}

func (s *Simulation) Unpin(i int) {
	b := &s.bodies[i]
	b.FX, b.FY, b.Pinned = 0, 0, false
}

// Cooled reports whether alpha has dropped below alphaMin.
func (s *Simulation) Cooled() bool { return s.alpha < s.alphaMin }
