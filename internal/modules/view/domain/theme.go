package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	apperrors "wordgraph/internal/platform/errors"
)

type Theme int

const (
	Galaxy Theme = iota
	Classic
)

var themeNames = map[Theme]string{
	Galaxy:  "Galaxy",
	Classic: "Classic",
}

func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// Themes lists the known themes in cycling order.
func Themes() []Theme { return []Theme{Galaxy, Classic} }

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	all := Themes()
	for i, candidate := range all {
		if candidate == t {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ParseTheme matches a theme name case-insensitively.
func ParseTheme(name string) (Theme, error) {
	trimmed := strings.TrimSpace(name)
	for _, t := range Themes() {
		if strings.EqualFold(trimmed, t.String()) {
			return t, nil
		}
	}
	return Galaxy, fmt.Errorf("%w: %q", apperrors.ErrUnknownTheme, name)
}

// Palette is the fixed colour set of a theme.
type Palette struct {
	Background string
	Text       string
	Link       string
	Stroke     string
}

var (
	purples = mustRamp("#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8", "#807dba", "#6a51a3", "#54278f", "#3f007d")
	blues   = mustRamp("#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b")
)

func (t Theme) Palette() Palette {
	if t == Classic {
		return Palette{Background: "#ffffff", Text: "#000000", Link: "#aaaaaa", Stroke: "#090909"}
	}
	return Palette{Background: "#000000", Text: "#ffffff", Link: "#aaaaaa", Stroke: "#090909"}
}

func (t Theme) Ramp() Ramp {
	if t == Classic {
		return blues
	}
	return purples
}

// Ramp is a sequential colour scheme sampled on [0,1].
type Ramp []colorful.Color

func mustRamp(hexes ...string) Ramp {
	r := make(Ramp, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		r = append(r, c)
	}
	return r
}

// At samples the ramp with a uniform B-spline through the stops in RGB,
// the way d3's sequential interpolators do. t is clamped to [0,1].
func (r Ramp) At(t float64) colorful.Color {
	switch {
	case len(r) == 0:
		return colorful.Color{}
	case len(r) == 1:
		return r[0]
	case math.IsNaN(t) || t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	n := len(r) - 1
	i := min(int(t*float64(n)), n-1)
	u := (t - float64(i)/float64(n)) * float64(n)
	channel := func(get func(colorful.Color) float64) float64 {
		v1, v2 := get(r[i]), get(r[i+1])
		v0, v3 := 2*v1-v2, 2*v2-v1
		if i > 0 {
			v0 = get(r[i-1])
		}
		if i < n-1 {
			v3 = get(r[i+2])
		}
		return basis(u, v0, v1, v2, v3)
	}
	return colorful.Color{
		R: channel(func(c colorful.Color) float64 { return c.R }),
		G: channel(func(c colorful.Color) float64 { return c.G }),
		B: channel(func(c colorful.Color) float64 { return c.B }),
	}.Clamped()
}

func basis(t, v0, v1, v2, v3 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return ((1-3*t+3*t2-t3)*v0 + (4-6*t2+3*t3)*v1 + (1+3*t+3*t2-3*t3)*v2 + t3*v3) / 6
}
