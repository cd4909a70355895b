package usecase_test

import (
	"context"
	"errors"
	"testing"

	graphoutadapter "wordgraph/internal/modules/graph/adapter/out"
	"wordgraph/internal/modules/graph/dto"
	graphin "wordgraph/internal/modules/graph/port/in"
	"wordgraph/internal/modules/graph/service"
	"wordgraph/internal/modules/graph/usecase"
	matrixdto "wordgraph/internal/modules/matrix/dto"
	apperrors "wordgraph/internal/platform/errors"
)

type fakeMatrices struct {
	out matrixdto.MatrixOutput
	err error
}

func (f *fakeMatrices) Load(context.Context, matrixdto.LoadInput) (matrixdto.MatrixOutput, error) {
	return f.out, f.err
}

func (f *fakeMatrices) Current(context.Context) (matrixdto.MatrixOutput, error) {
	return f.out, f.err
}

func newUsecase(m *fakeMatrices) graphin.Usecase {
	return usecase.NewInteractor(service.NewGraphService(graphoutadapter.NewMatrixProvider(m)))
}

func TestReduceMapsResolvedGraph(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&fakeMatrices{out: matrixdto.MatrixOutput{
		Terms: []string{"a", "b", "c"},
		Rows:  [][]float64{{1, 0.99, 0.5}, {0.99, 1, 0.5}, {0.5, 0.5, 1}},
	}})
	out, err := uc.Reduce(context.Background(), dto.ReduceInput{Threshold: 0.98})
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if out.Title != "Force-Directed Words Graph" || out.Subtitle != "2 nodes and 2 edges" {
		t.Fatalf("unexpected titles: %q / %q", out.Title, out.Subtitle)
	}
	for _, l := range out.Links {
		if out.Nodes[l.Source].Name != l.SourceName || out.Nodes[l.Target].Name != l.TargetName {
			t.Fatalf("link indices disagree with names: %+v", l)
		}
	}
	if out.MaxWeight != 2 {
		t.Fatalf("expected max weight 2, got %d", out.MaxWeight)
	}
}

func TestReduceRejectsOutOfRangeThreshold(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&fakeMatrices{out: matrixdto.MatrixOutput{Terms: []string{"a"}, Rows: [][]float64{{1}}}})
	for _, v := range []float64{-0.01, 1.01} {
		if _, err := uc.Reduce(context.Background(), dto.ReduceInput{Threshold: v}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %v, got %v", v, err)
		}
	}
}

func TestReducePropagatesMissingMatrix(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&fakeMatrices{err: apperrors.ErrNoMatrix})
	if _, err := uc.Reduce(context.Background(), dto.ReduceInput{Threshold: 0.5}); !errors.Is(err, apperrors.ErrNoMatrix) {
		t.Fatalf("expected no matrix error, got %v", err)
	}
}

func TestReduceOfEmptyGraphIsNotAnError(t *testing.T) {
	t.Parallel()
	uc := newUsecase(&fakeMatrices{out: matrixdto.MatrixOutput{
		Terms: []string{"a", "b"},
		Rows:  [][]float64{{1, 0.1}, {0.1, 1}},
	}})
	out, err := uc.Reduce(context.Background(), dto.ReduceInput{Threshold: 0.9})
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if len(out.Nodes) != 0 || len(out.Links) != 0 || out.Subtitle != "0 nodes and 0 edges" {
		t.Fatalf("expected empty graph, got %+v", out)
	}
}
