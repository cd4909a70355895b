package in

import (
	"context"

	"wordgraph/internal/modules/graph/dto"
	graphin "wordgraph/internal/modules/graph/port/in"
)

type CLIHandler struct {
	usecase graphin.Usecase
}

func NewCLIHandler(usecase graphin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Reduce(ctx context.Context, threshold float64) (dto.GraphOutput, error) {
	return h.usecase.Reduce(ctx, dto.ReduceInput{Threshold: threshold})
}
