package out

import (
	"context"

	"wordgraph/internal/modules/graph/domain"
)

type MatrixProvider interface {
	Current(ctx context.Context) (domain.Matrix, error)
}
