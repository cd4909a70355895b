package out

import (
	"context"
	"io"
	"time"

	"wordgraph/internal/modules/matrix/domain"
)

// Source opens the raw delimited bytes behind a URI.
type Source interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// Reader produces a parsed matrix for a URI.
type Reader interface {
	Read(ctx context.Context, uri string) (domain.SimilarityMatrix, error)
}

type Observer interface {
	Loaded(ctx context.Context, uri string, terms int, elapsed time.Duration)
	LoadFailed(ctx context.Context, uri string, err error)
}
