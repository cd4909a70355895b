package domain_test

import (
	"errors"
	"math"
	"testing"

	"wordgraph/internal/modules/graph/domain"
	apperrors "wordgraph/internal/platform/errors"
)

type grid struct {
	terms []string
	rows  [][]float64
}

func (g grid) Size() int         { return len(g.terms) }
func (g grid) Term(i int) string { return g.terms[i] }
func (g grid) Value(i int, term string) float64 {
	for j, t := range g.terms {
		if t == term {
			return g.rows[i][j]
		}
	}
	return math.NaN()
}

func abcMatrix() grid {
	return grid{
		terms: []string{"a", "b", "c"},
		rows: [][]float64{
			{1, 0.99, 0.5},
			{0.99, 1, 0.5},
			{0.5, 0.5, 1},
		},
	}
}

func nodeWeights(r domain.Reduction) map[string]int {
	out := map[string]int{}
	for _, n := range r.Nodes {
		out[n.Name] = n.Weight
	}
	return out
}

func TestReduceHighThresholdKeepsOnlyStrongPair(t *testing.T) {
	t.Parallel()
	r := domain.Reduce(abcMatrix(), 0.98)
	if len(r.Links) != 2 {
		t.Fatalf("expected 2 links, got %d: %+v", len(r.Links), r.Links)
	}
	seen := map[[2]string]float64{}
	for _, l := range r.Links {
		seen[[2]string{l.Source, l.Target}] = l.Weight
	}
	if seen[[2]string{"a", "b"}] != 0.99 || seen[[2]string{"b", "a"}] != 0.99 {
		t.Fatalf("expected a->b and b->a at 0.99, got %+v", r.Links)
	}
	weights := nodeWeights(r)
	if len(weights) != 2 || weights["a"] != 2 || weights["b"] != 2 {
		t.Fatalf("expected {a:2, b:2}, got %v", weights)
	}
	if _, ok := weights["c"]; ok {
		t.Fatalf("node c must be absent")
	}
	if r.MaxWeight != 2 {
		t.Fatalf("expected max weight 2, got %d", r.MaxWeight)
	}
}

func TestReduceLowThresholdKeepsEveryDirectedPair(t *testing.T) {
	t.Parallel()
	r := domain.Reduce(abcMatrix(), 0.4)
	if len(r.Links) != 6 {
		t.Fatalf("expected 6 directed links, got %d", len(r.Links))
	}
	for name, w := range nodeWeights(r) {
		if w != 4 {
			t.Fatalf("expected weight 4 for %s, got %d", name, w)
		}
	}
	if r.MaxWeight != 4 {
		t.Fatalf("expected max weight 4, got %d", r.MaxWeight)
	}
}

func TestReduceFollowsColumnMajorScan(t *testing.T) {
	t.Parallel()
	r := domain.Reduce(abcMatrix(), 0.98)
	if r.Links[0].Source != "b" || r.Links[0].Target != "a" {
		t.Fatalf("expected first link b->a from the column-major scan, got %+v", r.Links[0])
	}
	if r.Nodes[0].Name != "b" || r.Nodes[1].Name != "a" {
		t.Fatalf("expected nodes in first-insertion order, got %+v", r.Nodes)
	}
}

func TestReduceEdgeSetShrinksAsThresholdRises(t *testing.T) {
	t.Parallel()
	m := grid{
		terms: []string{"w", "x", "y", "z"},
		rows: [][]float64{
			{1, 0.1, 0.7, 0.35},
			{0.2, 1, 0.9, 0.55},
			{0.7, 0.85, 1, 0.05},
			{0.3, 0.6, 0.01, 1},
		},
	}
	thresholds := []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1}
	for k := 0; k+1 < len(thresholds); k++ {
		low := linkSet(domain.Reduce(m, thresholds[k]))
		high := linkSet(domain.Reduce(m, thresholds[k+1]))
		for key := range high {
			if _, ok := low[key]; !ok {
				t.Fatalf("link %v at %v missing at %v", key, thresholds[k+1], thresholds[k])
			}
		}
	}
}

func TestReduceInvariantsHoldOnEveryThreshold(t *testing.T) {
	t.Parallel()
	m := abcMatrix()
	m.rows[2][0] = 1
	for _, threshold := range []float64{0, 0.25, 0.5, 0.98, 1} {
		r := domain.Reduce(m, threshold)
		names := map[string]int{}
		maxWeight := 0
		for _, n := range r.Nodes {
			names[n.Name]++
			if n.Group != domain.GroupWord {
				t.Fatalf("unexpected group %q", n.Group)
			}
			if n.Weight > maxWeight {
				maxWeight = n.Weight
			}
		}
		for name, count := range names {
			if count != 1 {
				t.Fatalf("node %s appears %d times at %v", name, count, threshold)
			}
		}
		for _, l := range r.Links {
			if l.Source == l.Target {
				t.Fatalf("self loop %s at %v", l.Source, threshold)
			}
			if names[l.Source] != 1 || names[l.Target] != 1 {
				t.Fatalf("link %+v references missing node", l)
			}
		}
		if r.MaxWeight != maxWeight {
			t.Fatalf("max weight %d, expected %d", r.MaxWeight, maxWeight)
		}
	}
}

func TestReduceThresholdExtremes(t *testing.T) {
	t.Parallel()
	if r := domain.Reduce(abcMatrix(), 0); len(r.Links) != 6 {
		t.Fatalf("threshold 0 must keep all non-self pairs, got %d", len(r.Links))
	}
	if r := domain.Reduce(abcMatrix(), 1); len(r.Links) != 0 {
		t.Fatalf("threshold 1 with no off-diagonal 1.0 cells must be empty, got %d", len(r.Links))
	}
	m := abcMatrix()
	m.rows[0][2] = 1
	if r := domain.Reduce(m, 1); len(r.Links) != 1 || r.Links[0].Source != "a" || r.Links[0].Target != "c" {
		t.Fatalf("expected only the exact 1.0 cell, got %+v", r.Links)
	}
}

func TestReduceBelowThresholdIsEmpty(t *testing.T) {
	t.Parallel()
	m := grid{terms: []string{"a", "b"}, rows: [][]float64{{0.9, 0.01}, {0.02, 0.9}}}
	r := domain.Reduce(m, 0.5)
	if len(r.Nodes) != 0 || len(r.Links) != 0 || r.MaxWeight != 0 {
		t.Fatalf("expected empty reduction, got %+v", r)
	}
	if r.Nodes == nil || r.Links == nil {
		t.Fatalf("empty reduction must carry empty, non-nil slices")
	}
}

func TestReduceSkipsNaNCells(t *testing.T) {
	t.Parallel()
	m := abcMatrix()
	m.rows[0][1] = math.NaN()
	r := domain.Reduce(m, 0.98)
	if len(r.Links) != 1 || r.Links[0].Source != "b" {
		t.Fatalf("NaN cell must not qualify, got %+v", r.Links)
	}
	if r := domain.Reduce(m, 0); len(r.Links) != 5 {
		t.Fatalf("NaN cell must not qualify even at 0, got %d", len(r.Links))
	}
}

func TestResolveBindsLinksToNodePositions(t *testing.T) {
	t.Parallel()
	g, err := domain.Resolve(domain.Reduce(abcMatrix(), 0.98))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, l := range g.Links {
		if g.Nodes[l.Source].Name == g.Nodes[l.Target].Name {
			t.Fatalf("resolved self loop: %+v", l)
		}
		if l.Weight != 0.99 {
			t.Fatalf("weight lost in resolution: %+v", l)
		}
	}
	if g.MaxWeight != 2 || g.Threshold != 0.98 {
		t.Fatalf("metadata lost: %+v", g)
	}
}

func TestResolveFailsFastOnDanglingName(t *testing.T) {
	t.Parallel()
	r := domain.Reduction{
		Nodes: []domain.Node{{Name: "a", Group: domain.GroupWord, Weight: 1}},
		Links: []domain.Link{{Source: "a", Target: "ghost", Weight: 0.9}},
	}
	if _, err := domain.Resolve(r); !errors.Is(err, apperrors.ErrDanglingReference) {
		t.Fatalf("expected dangling reference, got %v", err)
	}
}

func TestSubtitle(t *testing.T) {
	t.Parallel()
	if got := domain.Subtitle(0, 0); got != "0 nodes and 0 edges" {
		t.Fatalf("unexpected subtitle %q", got)
	}
}

func linkSet(r domain.Reduction) map[[2]string]struct{} {
	out := map[[2]string]struct{}{}
	for _, l := range r.Links {
		out[[2]string{l.Source, l.Target}] = struct{}{}
	}
	return out
}
