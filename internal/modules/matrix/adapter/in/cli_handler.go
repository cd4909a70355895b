package in

import (
	"context"

	"wordgraph/internal/modules/matrix/dto"
	matrixin "wordgraph/internal/modules/matrix/port/in"
)

type CLIHandler struct {
	usecase matrixin.Usecase
}

func NewCLIHandler(usecase matrixin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context, uri string) (dto.MatrixOutput, error) {
	return h.usecase.Load(ctx, dto.LoadInput{URI: uri})
}

func (h CLIHandler) Current(ctx context.Context) (dto.MatrixOutput, error) {
	return h.usecase.Current(ctx)
}
