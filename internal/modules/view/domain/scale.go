package domain

// Linear maps a domain interval onto a range interval without clamping. A
// degenerate domain maps every input to the middle of the range.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

func (l Linear) At(x float64) float64 {
	if l.D0 == l.D1 {
		return (l.R0 + l.R1) / 2
	}
	return l.R0 + (x-l.D0)/(l.D1-l.D0)*(l.R1-l.R0)
}

// RadiusScale sizes nodes from their weight: [1, maxWeight] onto [2, 10].
func RadiusScale(maxWeight int) Linear {
	return Linear{D0: 1, D1: float64(maxWeight), R0: 2, R1: 10}
}

// ColorScale maps a radius onto the position in the theme ramp.
func ColorScale() Linear {
	return Linear{D0: 1, D1: 10, R0: 0, R1: 0.8}
}

// NodeStyle is the display radius and fill of a node.
type NodeStyle struct {
	Radius float64
	Fill   string
}

func StyleNode(t Theme, weight, maxWeight int) NodeStyle {
	r := RadiusScale(maxWeight).At(float64(weight))
	return NodeStyle{
		Radius: r,
		Fill:   t.Ramp().At(ColorScale().At(r)).Hex(),
	}
}
