package out

import (
	"context"
	"math"

	"wordgraph/internal/modules/graph/domain"
	graphout "wordgraph/internal/modules/graph/port/out"
	matrixdto "wordgraph/internal/modules/matrix/dto"
	matrixin "wordgraph/internal/modules/matrix/port/in"
)

// MatrixProvider reads the loaded matrix from the matrix module.
type MatrixProvider struct {
	matrices matrixin.Usecase
}

func NewMatrixProvider(matrices matrixin.Usecase) graphout.MatrixProvider {
	return &MatrixProvider{matrices: matrices}
}

func (p *MatrixProvider) Current(ctx context.Context) (domain.Matrix, error) {
	out, err := p.matrices.Current(ctx)
	if err != nil {
		return nil, err
	}
	return newMatrixView(out), nil
}

type matrixView struct {
	terms  []string
	rows   [][]float64
	column map[string]int
}

func newMatrixView(out matrixdto.MatrixOutput) matrixView {
	v := matrixView{terms: out.Terms, rows: out.Rows, column: make(map[string]int, len(out.Terms))}
	for j, term := range out.Terms {
		v.column[term] = j
	}
	return v
}

func (v matrixView) Size() int { return len(v.terms) }

func (v matrixView) Term(i int) string { return v.terms[i] }

func (v matrixView) Value(i int, term string) float64 {
	j, ok := v.column[term]
	if !ok || i < 0 || i >= len(v.rows) || j >= len(v.rows[i]) {
		return math.NaN()
	}
	return v.rows[i][j]
}
