package domain

import (
	"fmt"

	apperrors "wordgraph/internal/platform/errors"
)

const (
	GroupWord = "word"
	Title     = "Force-Directed Words Graph"
)

// Matrix is the read side of a similarity matrix the reducer needs.
type Matrix interface {
	Size() int
	Term(i int) string
	Value(i int, term string) float64
}

type Node struct {
	Name   string
	Group  string
	Weight int
}

type Link struct {
	Source string
	Target string
	Weight float64
}

type Reduction struct {
	Threshold float64
	Nodes     []Node
	Links     []Link
	MaxWeight int
}

// Reduce scans every ordered pair of distinct terms and keeps the cells whose
// weight reaches the threshold. Both (i,j) and (j,i) are visited, so a
// symmetric matrix yields two directed links per pair and each endpoint's
// incidence weight counts both. NaN cells never qualify.
func Reduce(m Matrix, threshold float64) Reduction {
	r := Reduction{Threshold: threshold, Nodes: []Node{}, Links: []Link{}}
	size := m.Size()
	index := make(map[string]int)
	upsert := func(name string) {
		pos, ok := index[name]
		if !ok {
			index[name] = len(r.Nodes)
			r.Nodes = append(r.Nodes, Node{Name: name, Group: GroupWord, Weight: 1})
			pos = len(r.Nodes) - 1
		} else {
			r.Nodes[pos].Weight++
		}
		if r.Nodes[pos].Weight > r.MaxWeight {
			r.MaxWeight = r.Nodes[pos].Weight
		}
	}

	for j := 0; j < size; j++ {
		target := m.Term(j)
		for i := 0; i < size; i++ {
			if i == j {
				continue
			}
			w := m.Value(i, target)
			if !(w >= threshold) {
				continue
			}
			source := m.Term(i)
			r.Links = append(r.Links, Link{Source: source, Target: target, Weight: w})
			upsert(source)
			upsert(target)
		}
	}
	return r
}

type ResolvedLink struct {
	Source int
	Target int
	Weight float64
}

// Graph is a reduction whose links point at node positions instead of names.
type Graph struct {
	Threshold float64
	Nodes     []Node
	Links     []ResolvedLink
	MaxWeight int
}

// Resolve binds link endpoints to nodes through a name index built once.
func Resolve(r Reduction) (Graph, error) {
	index := make(map[string]int, len(r.Nodes))
	for i, node := range r.Nodes {
		index[node.Name] = i
	}
	g := Graph{
		Threshold: r.Threshold,
		Nodes:     append([]Node(nil), r.Nodes...),
		Links:     make([]ResolvedLink, 0, len(r.Links)),
		MaxWeight: r.MaxWeight,
	}
	for _, link := range r.Links {
		source, ok := index[link.Source]
		if !ok {
			return Graph{}, fmt.Errorf("%w: source %q", apperrors.ErrDanglingReference, link.Source)
		}
		target, ok := index[link.Target]
		if !ok {
			return Graph{}, fmt.Errorf("%w: target %q", apperrors.ErrDanglingReference, link.Target)
		}
		g.Links = append(g.Links, ResolvedLink{Source: source, Target: target, Weight: link.Weight})
	}
	return g, nil
}

func Subtitle(nodes, links int) string {
	return fmt.Sprintf("%d nodes and %d edges", nodes, links)
}
