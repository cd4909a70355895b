package out

import (
	"context"

	graphdto "wordgraph/internal/modules/graph/dto"
	graphin "wordgraph/internal/modules/graph/port/in"
	layoutdto "wordgraph/internal/modules/layout/dto"
	layoutin "wordgraph/internal/modules/layout/port/in"
	matrixdto "wordgraph/internal/modules/matrix/dto"
	matrixin "wordgraph/internal/modules/matrix/port/in"
	viewout "wordgraph/internal/modules/view/port/out"
)

type matrixLoader struct {
	usecase matrixin.Usecase
}

func NewMatrixLoader(usecase matrixin.Usecase) viewout.MatrixLoader {
	return matrixLoader{usecase: usecase}
}

func (l matrixLoader) Load(ctx context.Context, uri string) error {
	_, err := l.usecase.Load(ctx, matrixdto.LoadInput{URI: uri})
	return err
}

type reducer struct {
	usecase graphin.Usecase
}

func NewReducer(usecase graphin.Usecase) viewout.Reducer {
	return reducer{usecase: usecase}
}

func (r reducer) Reduce(ctx context.Context, threshold float64) (graphdto.GraphOutput, error) {
	return r.usecase.Reduce(ctx, graphdto.ReduceInput{Threshold: threshold})
}

// Geometry is the canvas every layout session of the view runs on.
type Geometry struct {
	Width     float64
	Height    float64
	MarginTop float64
	Distance  string
	Seed      uint64
}

type layouts struct {
	usecase layoutin.Usecase
	geo     Geometry
}

func NewLayouts(usecase layoutin.Usecase, geo Geometry) viewout.Layouts {
	return layouts{usecase: usecase, geo: geo}
}

func (l layouts) Start(ctx context.Context, graph graphdto.GraphOutput) (layoutin.Session, error) {
	return l.usecase.Start(ctx, layoutdto.StartInput{
		Graph:     graph,
		Width:     l.geo.Width,
		Height:    l.geo.Height,
		MarginTop: l.geo.MarginTop,
		Distance:  l.geo.Distance,
		Seed:      l.geo.Seed,
	})
}
