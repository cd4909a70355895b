package service

import (
	"context"
	"fmt"
	"math"

	"wordgraph/internal/modules/graph/domain"
	graphout "wordgraph/internal/modules/graph/port/out"
	apperrors "wordgraph/internal/platform/errors"
)

type GraphService struct {
	matrices graphout.MatrixProvider
}

func NewGraphService(matrices graphout.MatrixProvider) *GraphService {
	return &GraphService{matrices: matrices}
}

func (s *GraphService) Reduce(ctx context.Context, threshold float64) (domain.Graph, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return domain.Graph{}, fmt.Errorf("%w: threshold %v outside [0,1]", apperrors.ErrInvalidInput, threshold)
	}
	m, err := s.matrices.Current(ctx)
	if err != nil {
		return domain.Graph{}, err
	}
	return domain.Resolve(domain.Reduce(m, threshold))
}
