package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	graphdto "wordgraph/internal/modules/graph/dto"
	layoutin "wordgraph/internal/modules/layout/port/in"
	"wordgraph/internal/modules/view/domain"
	viewout "wordgraph/internal/modules/view/port/out"
	apperrors "wordgraph/internal/platform/errors"
)

// Scene is the rendered product of one ViewState.
type Scene struct {
	Generation int
	State      domain.ViewState
	Graph      graphdto.GraphOutput
	Session    layoutin.Session
}

// Controller turns view state changes into scenes. Every accepted change
// tears down the previous layout session and starts a fresh one.
type Controller struct {
	mu       sync.Mutex
	source   string
	step     float64
	initial  domain.ViewState
	state    domain.ViewState
	scene    Scene
	reported map[string]struct{}

	loader   viewout.MatrixLoader
	reducer  viewout.Reducer
	layouts  viewout.Layouts
	observer viewout.Observer
}

type Deps struct {
	Loader   viewout.MatrixLoader
	Reducer  viewout.Reducer
	Layouts  viewout.Layouts
	Observer viewout.Observer
}

func NewController(source string, initial domain.ViewState, step float64, deps Deps) (*Controller, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: source is required", apperrors.ErrInvalidInput)
	}
	if step <= 0 || step > 1 {
		return nil, fmt.Errorf("%w: threshold step %v", apperrors.ErrInvalidInput, step)
	}
	if _, err := initial.WithThreshold(initial.Threshold); err != nil {
		return nil, err
	}
	return &Controller{
		source:   source,
		step:     step,
		initial:  initial,
		state:    initial,
		scene:    Scene{State: initial},
		reported: map[string]struct{}{},
		loader:   deps.Loader,
		reducer:  deps.Reducer,
		layouts:  deps.Layouts,
		observer: deps.Observer,
	}, nil
}

func (c *Controller) Source() string { return c.source }

func (c *Controller) Current() Scene {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scene
}

// Load fetches the matrix and builds the first scene. On failure the current
// scene is replaced by an empty one so nothing stale stays on screen.
func (c *Controller) Load(ctx context.Context) (Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.loader.Load(ctx, c.source); err != nil {
		c.observer.LoadFailed(ctx, c.source, err)
		c.scene = Scene{Generation: c.scene.Generation + 1, State: c.state}
		return c.scene, err
	}
	return c.build(ctx, c.state)
}

func (c *Controller) SetThreshold(ctx context.Context, threshold float64) (Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.state.WithThreshold(threshold)
	if err != nil {
		return c.scene, err
	}
	return c.build(ctx, next)
}

// StepThreshold moves the threshold by a number of configured steps.
func (c *Controller) StepThreshold(ctx context.Context, steps int) (Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.state.Step(float64(steps) * c.step)
	if next.Threshold == c.state.Threshold {
		return c.scene, nil
	}
	return c.build(ctx, next)
}

// SetTheme switches to a named theme. An unknown name keeps the current
// scene and is reported to the observer the first time it is seen.
func (c *Controller) SetTheme(ctx context.Context, name string) (Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, err := domain.ParseTheme(name)
	if err != nil {
		if _, seen := c.reported[name]; !seen {
			c.reported[name] = struct{}{}
			c.observer.UnknownTheme(ctx, name, err)
		}
		return c.scene, err
	}
	return c.build(ctx, c.state.WithTheme(t))
}

func (c *Controller) NextTheme(ctx context.Context) (Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.build(ctx, c.state.WithTheme(c.state.Theme.Next()))
}

// Reset returns to the initial threshold and theme.
func (c *Controller) Reset(ctx context.Context) (Scene, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.build(ctx, c.initial)
}

func (c *Controller) build(ctx context.Context, next domain.ViewState) (Scene, error) {
	graph, err := c.reducer.Reduce(ctx, next.Threshold)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoMatrix) {
			c.state = next
			c.scene.State = next
		}
		return c.scene, err
	}
	session, err := c.layouts.Start(ctx, graph)
	if err != nil {
		return c.scene, fmt.Errorf("start layout: %w", err)
	}
	next = next.WithMaxWeight(graph.MaxWeight)
	c.state = next
	c.scene = Scene{
		Generation: c.scene.Generation + 1,
		State:      next,
		Graph:      graph,
		Session:    session,
	}
	c.observer.SceneBuilt(ctx, c.scene.Generation, next.Threshold, next.Theme.String(), len(graph.Nodes), len(graph.Links))
	return c.scene, nil
}
