package service_test

import (
	"context"
	"errors"
	"testing"

	graphdto "wordgraph/internal/modules/graph/dto"
	layoutin "wordgraph/internal/modules/layout/port/in"
	"wordgraph/internal/modules/view/domain"
	"wordgraph/internal/modules/view/service"
	apperrors "wordgraph/internal/platform/errors"
)

type fakeLoader struct {
	err   error
	calls int
}

func (f *fakeLoader) Load(context.Context, string) error {
	f.calls++
	return f.err
}

type fakeReducer struct {
	thresholds []float64
	err        error
}

func (f *fakeReducer) Reduce(_ context.Context, threshold float64) (graphdto.GraphOutput, error) {
	f.thresholds = append(f.thresholds, threshold)
	if f.err != nil {
		return graphdto.GraphOutput{}, f.err
	}
	return graphdto.GraphOutput{
		Threshold: threshold,
		MaxWeight: 1,
		Nodes:     []graphdto.NodeOutput{{Name: "a", Weight: 1}},
	}, nil
}

type fakeLayouts struct {
	started int
}

func (f *fakeLayouts) Start(context.Context, graphdto.GraphOutput) (layoutin.Session, error) {
	f.started++
	return nil, nil
}

type fakeObserver struct {
	unknown    []string
	loadFailed int
	built      int
}

func (f *fakeObserver) LoadFailed(context.Context, string, error) { f.loadFailed++ }
func (f *fakeObserver) UnknownTheme(_ context.Context, name string, _ error) {
	f.unknown = append(f.unknown, name)
}
func (f *fakeObserver) SceneBuilt(context.Context, int, float64, string, int, int) { f.built++ }

type fixture struct {
	loader   *fakeLoader
	reducer  *fakeReducer
	layouts  *fakeLayouts
	observer *fakeObserver
	ctrl     *service.Controller
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		loader:   &fakeLoader{},
		reducer:  &fakeReducer{},
		layouts:  &fakeLayouts{},
		observer: &fakeObserver{},
	}
	state, err := domain.NewViewState(0.98, domain.Galaxy)
	if err != nil {
		t.Fatalf("view state: %v", err)
	}
	f.ctrl, err = service.NewController("file:///m.csv", state, 0.01, service.Deps{
		Loader:   f.loader,
		Reducer:  f.reducer,
		Layouts:  f.layouts,
		Observer: f.observer,
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return f
}

func TestLoadBuildsFirstScene(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	scene, err := f.ctrl.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if scene.Generation != 1 || scene.State.MaxWeight != 1 || f.layouts.started != 1 {
		t.Fatalf("unexpected first scene %+v", scene)
	}
}

func TestLoadFailureClearsSceneAndReports(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.loader.err = apperrors.ErrLoadFailure
	scene, err := f.ctrl.Load(context.Background())
	if !errors.Is(err, apperrors.ErrLoadFailure) {
		t.Fatalf("expected ErrLoadFailure, got %v", err)
	}
	if f.observer.loadFailed != 1 || len(scene.Graph.Nodes) != 0 || f.layouts.started != 0 {
		t.Fatalf("expected empty scene and one report, got %+v", scene)
	}
}

func TestThresholdChangeTearsDownSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.ctrl.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	scene, err := f.ctrl.SetThreshold(ctx, 0.5)
	if err != nil {
		t.Fatalf("set threshold: %v", err)
	}
	if scene.Generation != 2 || scene.State.Threshold != 0.5 || f.layouts.started != 2 {
		t.Fatalf("expected a second session at 0.5, got %+v", scene)
	}
	if _, err := f.ctrl.SetThreshold(ctx, 2); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := f.ctrl.Current().State.Threshold; got != 0.5 {
		t.Fatalf("rejected threshold must keep state, got %v", got)
	}
}

func TestStepThresholdStopsAtBounds(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.ctrl.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	scene, err := f.ctrl.StepThreshold(ctx, 2)
	if err != nil || scene.State.Threshold != 1 {
		t.Fatalf("expected threshold 1, got %v (%v)", scene.State.Threshold, err)
	}
	before := f.layouts.started
	if _, err := f.ctrl.StepThreshold(ctx, 1); err != nil {
		t.Fatalf("step: %v", err)
	}
	if f.layouts.started != before {
		t.Fatalf("a clamped step must not rebuild the scene")
	}
}

func TestUnknownThemeIsReportedOnceAndKeepsState(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.ctrl.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := 0; i < 3; i++ {
		scene, err := f.ctrl.SetTheme(ctx, "Neon")
		if !errors.Is(err, apperrors.ErrUnknownTheme) {
			t.Fatalf("expected ErrUnknownTheme, got %v", err)
		}
		if scene.State.Theme != domain.Galaxy || scene.Generation != 1 {
			t.Fatalf("expected previous scene kept, got %+v", scene)
		}
	}
	if _, err := f.ctrl.SetTheme(ctx, "Sepia"); err == nil {
		t.Fatalf("expected error for Sepia")
	}
	if len(f.observer.unknown) != 2 || f.observer.unknown[0] != "Neon" || f.observer.unknown[1] != "Sepia" {
		t.Fatalf("expected one report per distinct name, got %v", f.observer.unknown)
	}
}

func TestThemeChangesAndReset(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.ctrl.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	scene, err := f.ctrl.SetTheme(ctx, "Classic")
	if err != nil || scene.State.Theme != domain.Classic {
		t.Fatalf("expected classic, got %v (%v)", scene.State.Theme, err)
	}
	if scene, _ = f.ctrl.NextTheme(ctx); scene.State.Theme != domain.Galaxy {
		t.Fatalf("expected galaxy after cycling, got %v", scene.State.Theme)
	}
	if _, err := f.ctrl.SetThreshold(ctx, 0.3); err != nil {
		t.Fatalf("set threshold: %v", err)
	}
	scene, err = f.ctrl.Reset(ctx)
	if err != nil || scene.State.Threshold != 0.98 || scene.State.Theme != domain.Galaxy {
		t.Fatalf("expected initial state after reset, got %+v (%v)", scene.State, err)
	}
}

func TestThresholdBeforeLoadRecordsState(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.reducer.err = apperrors.ErrNoMatrix
	scene, err := f.ctrl.SetThreshold(context.Background(), 0.4)
	if !errors.Is(err, apperrors.ErrNoMatrix) {
		t.Fatalf("expected ErrNoMatrix, got %v", err)
	}
	if scene.State.Threshold != 0.4 {
		t.Fatalf("expected threshold remembered for the first load, got %v", scene.State.Threshold)
	}
}

func TestNewControllerValidates(t *testing.T) {
	t.Parallel()
	state, _ := domain.NewViewState(0.5, domain.Galaxy)
	if _, err := service.NewController("", state, 0.01, service.Deps{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank source, got %v", err)
	}
	if _, err := service.NewController("x", state, 0, service.Deps{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero step, got %v", err)
	}
}
