package out

import (
	"context"
	"fmt"
	"strings"

	"wordgraph/internal/modules/matrix/domain"
	matrixout "wordgraph/internal/modules/matrix/port/out"
)

// Router dispatches a URI to the matching source by scheme. Delimited sources
// are parsed as CSV; sqlite:// URIs are pivoted by the SQLite reader.
type Router struct {
	http   matrixout.Source
	file   matrixout.Source
	sqlite matrixout.Reader
}

func NewRouter(http, file matrixout.Source, sqlite matrixout.Reader) matrixout.Reader {
	return &Router{http: http, file: file, sqlite: sqlite}
}

func (r *Router) Read(ctx context.Context, uri string) (domain.SimilarityMatrix, error) {
	lower := strings.ToLower(uri)
	switch {
	case strings.HasPrefix(lower, "sqlite://"):
		return r.sqlite.Read(ctx, uri)
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return r.parse(ctx, r.http, uri)
	default:
		return r.parse(ctx, r.file, uri)
	}
}

func (r *Router) parse(ctx context.Context, source matrixout.Source, uri string) (domain.SimilarityMatrix, error) {
	body, err := source.Open(ctx, uri)
	if err != nil {
		return domain.SimilarityMatrix{}, err
	}
	defer body.Close()
	m, err := domain.ParseCSV(body)
	if err != nil {
		return domain.SimilarityMatrix{}, fmt.Errorf("parse matrix: %w", err)
	}
	return m, nil
}
