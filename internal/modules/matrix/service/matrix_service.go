package service

import (
	"context"
	"fmt"
	"strings"

	"wordgraph/internal/modules/matrix/domain"
	matrixout "wordgraph/internal/modules/matrix/port/out"
	"wordgraph/internal/platform/clock"
	apperrors "wordgraph/internal/platform/errors"
)

type MatrixService struct {
	clock    clock.Clock
	reader   matrixout.Reader
	observer matrixout.Observer
}

func NewMatrixService(clock clock.Clock, reader matrixout.Reader, observer matrixout.Observer) *MatrixService {
	return &MatrixService{clock: clock, reader: reader, observer: observer}
}

// Load fetches and parses the matrix once. Failures are reported to the
// observer and returned wrapped in ErrLoadFailure; there is no retry.
func (s *MatrixService) Load(ctx context.Context, uri string) (domain.SimilarityMatrix, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return domain.SimilarityMatrix{}, fmt.Errorf("%w: source uri is required", apperrors.ErrInvalidInput)
	}
	started := s.clock.Now()
	m, err := s.reader.Read(ctx, uri)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", apperrors.ErrLoadFailure, uri, err)
		if s.observer != nil {
			s.observer.LoadFailed(ctx, uri, err)
		}
		return domain.SimilarityMatrix{}, err
	}
	if s.observer != nil {
		s.observer.Loaded(ctx, uri, m.Size(), s.clock.Now().Sub(started))
	}
	return m, nil
}
