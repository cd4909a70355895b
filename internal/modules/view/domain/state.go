package domain

import (
	"fmt"
	"math"

	apperrors "wordgraph/internal/platform/errors"
)

// ViewState is what the rendered scene is a function of. Values are
// immutable; every change produces a new one.
type ViewState struct {
	Threshold float64
	Theme     Theme
	MaxWeight int
}

func NewViewState(threshold float64, theme Theme) (ViewState, error) {
	return ViewState{Theme: theme}.WithThreshold(threshold)
}

func (s ViewState) WithThreshold(v float64) (ViewState, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return s, fmt.Errorf("%w: threshold %v outside [0,1]", apperrors.ErrInvalidInput, v)
	}
	s.Threshold = v
	return s, nil
}

func (s ViewState) WithTheme(t Theme) ViewState {
	s.Theme = t
	return s
}

func (s ViewState) WithMaxWeight(w int) ViewState {
	s.MaxWeight = w
	return s
}

// Step moves the threshold by delta, clamped to [0,1] and rounded to the
// step's precision.
func (s ViewState) Step(delta float64) ViewState {
	v := math.Round((s.Threshold+delta)*1e6) / 1e6
	s.Threshold = math.Min(1, math.Max(0, v))
	return s
}
