package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	matrixout "wordgraph/internal/modules/matrix/port/out"
)

type FileSource struct{}

func NewFileSource() matrixout.Source {
	return FileSource{}
}

func (FileSource) Open(_ context.Context, uri string) (io.ReadCloser, error) {
	path := strings.TrimPrefix(uri, "file://")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix file: %w", err)
	}
	return f, nil
}
