package usecase

import (
	"context"
	"sync"

	"wordgraph/internal/modules/matrix/domain"
	"wordgraph/internal/modules/matrix/dto"
	matrixin "wordgraph/internal/modules/matrix/port/in"
	"wordgraph/internal/modules/matrix/service"
	apperrors "wordgraph/internal/platform/errors"
)

// Interactor keeps the one matrix of the current session. A failed load
// leaves no matrix available.
type Interactor struct {
	svc *service.MatrixService

	mu      sync.RWMutex
	source  string
	current *domain.SimilarityMatrix
}

func NewInteractor(svc *service.MatrixService) matrixin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context, input dto.LoadInput) (dto.MatrixOutput, error) {
	m, err := i.svc.Load(ctx, input.URI)
	i.mu.Lock()
	defer i.mu.Unlock()
	if err != nil {
		i.current = nil
		i.source = ""
		return dto.MatrixOutput{}, err
	}
	i.current = &m
	i.source = input.URI
	return toOutput(input.URI, m), nil
}

func (i *Interactor) Current(_ context.Context) (dto.MatrixOutput, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.current == nil {
		return dto.MatrixOutput{}, apperrors.ErrNoMatrix
	}
	return toOutput(i.source, *i.current), nil
}

func toOutput(source string, m domain.SimilarityMatrix) dto.MatrixOutput {
	return dto.MatrixOutput{
		Source:   source,
		Terms:    m.Terms(),
		Rows:     m.Rows(),
		NaNCells: m.NaNCells(),
	}
}
