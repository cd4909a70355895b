package domain

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	apperrors "wordgraph/internal/platform/errors"
)

// SimilarityMatrix is a term-by-term table of similarity scores. Row i belongs
// to Terms[i]; columns are addressed by term name. It is never mutated after
// construction.
type SimilarityMatrix struct {
	terms  []string
	rows   [][]float64
	column map[string]int
}

// New copies terms and rows into a matrix. Rows shorter than the vocabulary
// are padded with NaN, missing rows read as all NaN, surplus rows are dropped.
func New(terms []string, rows [][]float64) (SimilarityMatrix, error) {
	if len(terms) == 0 {
		return SimilarityMatrix{}, fmt.Errorf("%w: matrix has no terms", apperrors.ErrInvalidInput)
	}
	m := SimilarityMatrix{
		terms:  append([]string(nil), terms...),
		rows:   make([][]float64, len(terms)),
		column: make(map[string]int, len(terms)),
	}
	// Later duplicates win, matching keyed row objects.
	for j, term := range m.terms {
		m.column[term] = j
	}
	for i := range m.rows {
		row := make([]float64, len(terms))
		for j := range row {
			row[j] = math.NaN()
		}
		if i < len(rows) {
			copy(row, rows[i])
		}
		m.rows[i] = row
	}
	return m, nil
}

func (m SimilarityMatrix) Size() int { return len(m.terms) }

func (m SimilarityMatrix) Term(i int) string { return m.terms[i] }

func (m SimilarityMatrix) Terms() []string { return append([]string(nil), m.terms...) }

// Value reads row i at the column named term, NaN when the column is absent.
func (m SimilarityMatrix) Value(i int, term string) float64 {
	j, ok := m.column[term]
	if !ok || i < 0 || i >= len(m.rows) {
		return math.NaN()
	}
	return m.rows[i][j]
}

func (m SimilarityMatrix) At(i, j int) float64 {
	return m.rows[i][j]
}

func (m SimilarityMatrix) Index(term string) (int, bool) {
	j, ok := m.column[term]
	return j, ok
}

// Rows returns a deep copy of the cell values.
func (m SimilarityMatrix) Rows() [][]float64 {
	out := make([][]float64, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// NaNCells counts cells that failed numeric coercion or were never supplied.
func (m SimilarityMatrix) NaNCells() int {
	n := 0
	for _, row := range m.rows {
		for _, v := range row {
			if math.IsNaN(v) {
				n++
			}
		}
	}
	return n
}

// ParseCSV reads a header row of terms followed by one data row per term.
// Cells that do not parse as numbers become NaN; blank cells read as 0.
func ParseCSV(r io.Reader) (SimilarityMatrix, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return SimilarityMatrix{}, fmt.Errorf("%w: empty matrix", apperrors.ErrInvalidInput)
		}
		return SimilarityMatrix{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([][]float64, 0, len(header))
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return SimilarityMatrix{}, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make([]float64, len(header))
		for j := range row {
			cell := ""
			if j < len(record) {
				cell = record[j]
			}
			row[j] = coerce(cell)
		}
		rows = append(rows, row)
	}
	return New(header, rows)
}

func coerce(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}
	// Hex and infinite forms are not similarity values.
	if strings.ContainsAny(cell, "xX") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
