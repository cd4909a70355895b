package domain

import (
	"fmt"
	"math"

	apperrors "wordgraph/internal/platform/errors"
)

const (
	ChargeStrength   = -40.0
	PositionStrength = 0.4

	FocusedOpacity  = 1.0
	DimmedOpacity   = 0.1
	NodeRestOpacity = 1.0
	LinkRestOpacity = 0.6

	NoNode = -1
)

// Graph is the resolved graph a session lays out. Springs refer to Names by
// index.
type Graph struct {
	Names   []string
	Weights []int
	Springs []Spring
}

type Config struct {
	Width     float64
	Height    float64
	MarginTop float64
	Distance  DistanceMode
	Seed      uint64
}

// Center is where every node starts.
func (c Config) Center() (float64, float64) {
	return c.Width / 2, (c.Height - c.MarginTop) / 2
}

// Anchor is the point the positioning forces pull toward.
func (c Config) Anchor() (float64, float64) {
	return c.Width / 2, c.MarginTop + (c.Height-c.MarginTop)/2
}

type NodeFrame struct {
	Name    string
	Weight  int
	X, Y    float64
	Pinned  bool
	Opacity float64
	Focused bool
}

type LinkFrame struct {
	Source  int
	Target  int
	Weight  float64
	Opacity float64
}

// Frame is a snapshot of the layout after a tick.
type Frame struct {
	Tick    int
	Alpha   float64
	Running bool
	Focus   int
	Nodes   []NodeFrame
	Links   []LinkFrame
}

// Session owns a simulation for one resolved graph together with the
// interaction state on top of it: the node being dragged and the hover
// focus.
type Session struct {
	sim       *Simulation
	graph     Graph
	adjacency map[[2]int]struct{}
	focus     int
	dragging  int
}

func NewSession(g Graph, cfg Config) (*Session, error) {
	if len(g.Names) != len(g.Weights) {
		return nil, fmt.Errorf("%w: %d names for %d weights", apperrors.ErrInvalidInput, len(g.Names), len(g.Weights))
	}
	if cfg.Width <= 0 || cfg.Height <= cfg.MarginTop {
		return nil, fmt.Errorf("%w: canvas %gx%g with top margin %g", apperrors.ErrInvalidInput, cfg.Width, cfg.Height, cfg.MarginTop)
	}
	n := len(g.Names)
	adjacency := make(map[[2]int]struct{}, len(g.Springs))
	for _, s := range g.Springs {
		if s.Source < 0 || s.Source >= n || s.Target < 0 || s.Target >= n {
			return nil, fmt.Errorf("%w: link %d-%d outside %d nodes", apperrors.ErrDanglingReference, s.Source, s.Target, n)
		}
		adjacency[[2]int{s.Source, s.Target}] = struct{}{}
	}

	radii := make([]float64, n)
	for i, w := range g.Weights {
		radii[i] = float64(w)
	}
	mode := cfg.Distance
	ax, ay := cfg.Anchor()
	cx, cy := cfg.Center()
	sim := NewSimulation(n, cx, cy, cfg.Seed,
		&ManyBody{Strength: ChargeStrength},
		&PositionX{X: ax, Strength: PositionStrength},
		&PositionY{Y: ay, Strength: PositionStrength},
		&Collide{Radii: radii, Strength: 1, Iterations: 1},
		&LinkForce{Springs: g.Springs, Distance: func(s Spring) float64 { return LinkDistance(mode, s.Weight) }},
	)
	return &Session{
		sim:       sim,
		graph:     g,
		adjacency: adjacency,
		focus:     NoNode,
		dragging:  NoNode,
	}, nil
}

func (s *Session) Len() int { return len(s.graph.Names) }

func (s *Session) Running() bool { return s.sim.Running() }

func (s *Session) Alpha() float64 { return s.sim.Alpha() }

func (s *Session) Focus() int { return s.focus }

func (s *Session) Dragging() int { return s.dragging }

// Index returns the node index for a term.
func (s *Session) Index(name string) (int, bool) {
	for i, n := range s.graph.Names {
		if n == name {
			return i, true
		}
	}
	return NoNode, false
}

// Tick advances the simulation once and returns the new frame.
func (s *Session) Tick() Frame {
	s.sim.Step()
	return s.Frame()
}

func (s *Session) Frame() Frame {
	nodeOpacity, linkOpacity := s.Opacity()
	f := Frame{
		Tick:    s.sim.Ticks(),
		Alpha:   s.sim.Alpha(),
		Running: s.sim.Running(),
		Focus:   s.focus,
		Nodes:   make([]NodeFrame, s.Len()),
		Links:   make([]LinkFrame, len(s.graph.Springs)),
	}
	for i := range f.Nodes {
		b := s.sim.Body(i)
		f.Nodes[i] = NodeFrame{
			Name:    s.graph.Names[i],
			Weight:  s.graph.Weights[i],
			X:       b.X,
			Y:       b.Y,
			Pinned:  b.Pinned,
			Opacity: nodeOpacity[i],
			Focused: i == s.focus,
		}
	}
	for i, sp := range s.graph.Springs {
		f.Links[i] = LinkFrame{Source: sp.Source, Target: sp.Target, Weight: sp.Weight, Opacity: linkOpacity[i]}
	}
	return f
}

// DragStart pins node i where it stands and reheats the simulation.
func (s *Session) DragStart(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.sim.SetAlphaTarget(DragAlphaTarget)
	s.sim.Restart()
	b := s.sim.Body(i)
	s.sim.Pin(i, b.X, b.Y)
	s.dragging = i
	return nil
}

// Drag moves the pin of node i to (x, y).
func (s *Session) Drag(i int, x, y float64) error {
	if err := s.check(i); err != nil {
		return err
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return fmt.Errorf("%w: drag to NaN", apperrors.ErrInvalidInput)
	}
	s.sim.Pin(i, x, y)
	return nil
}

// DragEnd releases node i and lets the simulation cool again.
func (s *Session) DragEnd(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.sim.SetAlphaTarget(0)
	s.sim.Unpin(i)
	s.dragging = NoNode
	return nil
}

func (s *Session) HoverEnter(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.focus = i
	return nil
}

func (s *Session) HoverLeave() { s.focus = NoNode }

// Neighbors reports whether a and b are the same node or joined by a link in
// either direction.
func (s *Session) Neighbors(a, b int) bool {
	if a == b {
		return true
	}
	if _, ok := s.adjacency[[2]int{a, b}]; ok {
		return true
	}
	_, ok := s.adjacency[[2]int{b, a}]
	return ok
}

// Opacity returns the display opacity of every node and every link under the
// current hover focus.
func (s *Session) Opacity() ([]float64, []float64) {
	nodes := make([]float64, s.Len())
	links := make([]float64, len(s.graph.Springs))
	if s.focus == NoNode {
		for i := range nodes {
			nodes[i] = NodeRestOpacity
		}
		for i := range links {
			links[i] = LinkRestOpacity
		}
		return nodes, links
	}
	for i := range nodes {
		nodes[i] = DimmedOpacity
		if s.Neighbors(s.focus, i) {
			nodes[i] = FocusedOpacity
		}
	}
	for i, sp := range s.graph.Springs {
		links[i] = DimmedOpacity
		if sp.Source == s.focus || sp.Target == s.focus {
			links[i] = FocusedOpacity
		}
	}
	return nodes, links
}

// DisplayRadius doubles the base radius of the focused node.
func (s *Session) DisplayRadius(i int, base float64) float64 {
	if i == s.focus {
		return base * 2
	}
	return base
}

// NodeAt returns the node under (x, y), the nearest one when discs overlap.
// radius gives the base display radius of a node weight.
func (s *Session) NodeAt(x, y float64, radius func(weight int) float64) (int, bool) {
	best, bestDist := NoNode, math.Inf(1)
	for i := 0; i < s.Len(); i++ {
		b := s.sim.Body(i)
		d := math.Hypot(b.X-x, b.Y-y)
		r := s.DisplayRadius(i, radius(s.graph.Weights[i]))
		if d <= r && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best != NoNode
}

func (s *Session) check(i int) error {
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: node %d outside %d nodes", apperrors.ErrNotFound, i, s.Len())
	}
	return nil
}
