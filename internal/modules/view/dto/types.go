package dto

import (
	"strconv"

	graphdto "wordgraph/internal/modules/graph/dto"
	layoutin "wordgraph/internal/modules/layout/port/in"
)

type PaletteOutput struct {
	Background string
	Text       string
	Link       string
	Stroke     string
}

type NodeStyle struct {
	Radius float64
	Fill   string
}

// Scene is everything the render surface needs for one view state. A new
// Generation means the previous Session was torn down.
type Scene struct {
	Generation int
	Source     string
	Threshold  float64
	Theme      string
	MaxWeight  int
	Title      string
	Subtitle   string
	Palette    PaletteOutput
	Styles     []NodeStyle
	Radii      map[int]float64
	Graph      graphdto.GraphOutput
	Session    layoutin.Session
}

// Tooltip is the hover text of node i.
func (s Scene) Tooltip(i int) string {
	if i < 0 || i >= len(s.Graph.Nodes) {
		return ""
	}
	n := s.Graph.Nodes[i]
	return n.Name + " (weight: " + strconv.Itoa(n.Weight) + ")"
}

// Radius returns the base display radius for a node weight.
func (s Scene) Radius(weight int) float64 { return s.Radii[weight] }
