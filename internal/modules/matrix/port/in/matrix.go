package in

import (
	"context"

	"wordgraph/internal/modules/matrix/dto"
)

type Usecase interface {
	Load(ctx context.Context, input dto.LoadInput) (dto.MatrixOutput, error)
	Current(ctx context.Context) (dto.MatrixOutput, error)
}
