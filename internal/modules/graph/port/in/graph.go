package in

import (
	"context"

	"wordgraph/internal/modules/graph/dto"
)

type Usecase interface {
	Reduce(ctx context.Context, input dto.ReduceInput) (dto.GraphOutput, error)
}
