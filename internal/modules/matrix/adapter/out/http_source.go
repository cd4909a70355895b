package out

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	matrixout "wordgraph/internal/modules/matrix/port/out"
)

type HTTPSource struct {
	client *http.Client
}

func NewHTTPSource(client *http.Client) matrixout.Source {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSource{client: client}
}

func (s *HTTPSource) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch matrix: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch matrix: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
