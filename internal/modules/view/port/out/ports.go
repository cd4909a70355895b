package out

import (
	"context"

	graphdto "wordgraph/internal/modules/graph/dto"
	layoutin "wordgraph/internal/modules/layout/port/in"
)

type MatrixLoader interface {
	Load(ctx context.Context, uri string) error
}

type Reducer interface {
	Reduce(ctx context.Context, threshold float64) (graphdto.GraphOutput, error)
}

type Layouts interface {
	Start(ctx context.Context, graph graphdto.GraphOutput) (layoutin.Session, error)
}

// Observer is the sink for conditions the user should hear about without
// the view failing.
type Observer interface {
	LoadFailed(ctx context.Context, uri string, err error)
	UnknownTheme(ctx context.Context, name string, err error)
	SceneBuilt(ctx context.Context, generation int, threshold float64, theme string, nodes, links int)
}
