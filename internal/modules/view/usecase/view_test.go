package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	graphoutadapter "wordgraph/internal/modules/graph/adapter/out"
	graphservice "wordgraph/internal/modules/graph/service"
	graphusecase "wordgraph/internal/modules/graph/usecase"
	layoutservice "wordgraph/internal/modules/layout/service"
	layoutusecase "wordgraph/internal/modules/layout/usecase"
	matrixoutadapter "wordgraph/internal/modules/matrix/adapter/out"
	matrixservice "wordgraph/internal/modules/matrix/service"
	matrixusecase "wordgraph/internal/modules/matrix/usecase"
	viewoutadapter "wordgraph/internal/modules/view/adapter/out"
	"wordgraph/internal/modules/view/domain"
	viewin "wordgraph/internal/modules/view/port/in"
	"wordgraph/internal/modules/view/service"
	"wordgraph/internal/modules/view/usecase"
	"wordgraph/internal/platform/clock"
	apperrors "wordgraph/internal/platform/errors"
)

const matrixCSV = "a,b,c\n1,0.99,0.5\n0.99,1,0.5\n0.5,0.5,1\n"

func newView(t *testing.T, source string) viewin.Usecase {
	t.Helper()
	reader := matrixoutadapter.NewRouter(matrixoutadapter.NewHTTPSource(nil), matrixoutadapter.NewFileSource(), matrixoutadapter.NewSQLiteSource())
	matrices := matrixusecase.NewInteractor(matrixservice.NewMatrixService(clock.SystemClock{}, reader, matrixoutadapter.NewZapObserver(nil)))
	graphs := graphusecase.NewInteractor(graphservice.NewGraphService(graphoutadapter.NewMatrixProvider(matrices)))
	layouts := layoutusecase.NewInteractor(layoutservice.NewLayoutService(nil))

	state, err := domain.NewViewState(0.98, domain.Galaxy)
	if err != nil {
		t.Fatalf("view state: %v", err)
	}
	ctrl, err := service.NewController(source, state, 0.01, service.Deps{
		Loader:   viewoutadapter.NewMatrixLoader(matrices),
		Reducer:  viewoutadapter.NewReducer(graphs),
		Layouts:  viewoutadapter.NewLayouts(layouts, viewoutadapter.Geometry{Width: 1000, Height: 800, MarginTop: 30, Seed: 1}),
		Observer: viewoutadapter.NewZapObserver(nil),
	})
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	return usecase.NewInteractor(ctrl)
}

func writeMatrix(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.csv")
	if err := os.WriteFile(path, []byte(matrixCSV), 0o644); err != nil {
		t.Fatalf("write matrix: %v", err)
	}
	return path
}

func TestLoadProducesRenderableScene(t *testing.T) {
	t.Parallel()
	uc := newView(t, writeMatrix(t))
	scene, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if scene.Title != "Force-Directed Words Graph" || scene.Subtitle != "2 nodes and 2 edges" {
		t.Fatalf("unexpected titles %q / %q", scene.Title, scene.Subtitle)
	}
	if scene.Palette.Background != "#000000" || scene.Theme != "Galaxy" {
		t.Fatalf("unexpected palette %+v", scene.Palette)
	}
	if len(scene.Styles) != 2 || scene.Styles[0].Radius != 10 || scene.MaxWeight != 2 {
		t.Fatalf("expected the heaviest nodes at the top of the radius range, got %+v", scene.Styles)
	}
	if scene.Session == nil {
		t.Fatalf("expected a layout session")
	}
	frame := scene.Session.Tick()
	if frame.Tick != 1 || len(frame.Nodes) != 2 {
		t.Fatalf("unexpected first frame %+v", frame)
	}
	if got := scene.Tooltip(0); got != scene.Graph.Nodes[0].Name+" (weight: 2)" {
		t.Fatalf("unexpected tooltip %q", got)
	}
	if got := scene.Radius(2); got != 10 {
		t.Fatalf("expected radius lookup 10, got %v", got)
	}
}

func TestThresholdDropGrowsScene(t *testing.T) {
	t.Parallel()
	uc := newView(t, writeMatrix(t))
	ctx := context.Background()
	first, err := uc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	second, err := uc.SetThreshold(ctx, 0.4)
	if err != nil {
		t.Fatalf("set threshold: %v", err)
	}
	if second.Generation <= first.Generation || second.Subtitle != "3 nodes and 6 edges" {
		t.Fatalf("unexpected rebuilt scene %d %q", second.Generation, second.Subtitle)
	}
	if second.Session == first.Session {
		t.Fatalf("expected a fresh session")
	}
}

func TestLoadFailureLeavesEmptyScene(t *testing.T) {
	t.Parallel()
	uc := newView(t, filepath.Join(t.TempDir(), "missing.csv"))
	scene, err := uc.Load(context.Background())
	if !errors.Is(err, apperrors.ErrLoadFailure) {
		t.Fatalf("expected ErrLoadFailure, got %v", err)
	}
	if scene.Session != nil || len(scene.Graph.Nodes) != 0 {
		t.Fatalf("expected empty scene, got %+v", scene)
	}
}

func TestThemesListed(t *testing.T) {
	t.Parallel()
	got := newView(t, "x.csv").Themes()
	if len(got) != 2 || got[0] != "Galaxy" || got[1] != "Classic" {
		t.Fatalf("unexpected themes %v", got)
	}
}
