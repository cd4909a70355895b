package out

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"

	"wordgraph/internal/modules/matrix/domain"
	matrixout "wordgraph/internal/modules/matrix/port/out"
	apperrors "wordgraph/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const defaultSQLiteTable = "similarities"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads a long-form table of (source, target, weight) rows and
// pivots it into a matrix. The vocabulary follows first appearance; pairs
// with no row read as NaN.
type SQLiteSource struct{}

func NewSQLiteSource() matrixout.Reader {
	return SQLiteSource{}
}

func (SQLiteSource) Read(ctx context.Context, uri string) (domain.SimilarityMatrix, error) {
	path, table, err := parseSQLiteURI(uri)
	if err != nil {
		return domain.SimilarityMatrix{}, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return domain.SimilarityMatrix{}, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT source, target, weight FROM %s ORDER BY rowid`, table))
	if err != nil {
		return domain.SimilarityMatrix{}, fmt.Errorf("query similarities: %w", err)
	}
	defer rows.Close()

	type cell struct {
		source, target int
		weight         float64
	}
	index := map[string]int{}
	terms := make([]string, 0)
	intern := func(term string) int {
		if i, ok := index[term]; ok {
			return i
		}
		index[term] = len(terms)
		terms = append(terms, term)
		return len(terms) - 1
	}
	cells := make([]cell, 0)
	for rows.Next() {
		var source, target string
		var weight sql.NullFloat64
		if err := rows.Scan(&source, &target, &weight); err != nil {
			return domain.SimilarityMatrix{}, fmt.Errorf("scan similarity row: %w", err)
		}
		c := cell{source: intern(source), target: intern(target), weight: math.NaN()}
		if weight.Valid {
			c.weight = weight.Float64
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return domain.SimilarityMatrix{}, fmt.Errorf("iterate similarity rows: %w", err)
	}
	if len(terms) == 0 {
		return domain.SimilarityMatrix{}, fmt.Errorf("%w: table %s is empty", apperrors.ErrInvalidInput, table)
	}

	grid := make([][]float64, len(terms))
	for i := range grid {
		grid[i] = make([]float64, len(terms))
		for j := range grid[i] {
			grid[i][j] = math.NaN()
		}
	}
	for _, c := range cells {
		grid[c.source][c.target] = c.weight
	}
	return domain.New(terms, grid)
}

func parseSQLiteURI(uri string) (string, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("%w: sqlite uri: %v", apperrors.ErrInvalidInput, err)
	}
	path := u.Host + u.Path
	if strings.TrimSpace(path) == "" {
		return "", "", fmt.Errorf("%w: sqlite uri has no database path", apperrors.ErrInvalidInput)
	}
	table := u.Query().Get("table")
	if table == "" {
		table = defaultSQLiteTable
	}
	if !tableName.MatchString(table) {
		return "", "", fmt.Errorf("%w: table name %q", apperrors.ErrInvalidInput, table)
	}
	return path, table, nil
}
