package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/justinpbarnett/skillcat/internal/catalog"
)

// HTTPSource reads a catalog published under a base URL.
type HTTPSource struct {
	baseURL    string
	indexFile  string
	httpClient *http.Client
}

func NewHTTP(baseURL, indexFile string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		indexFile:  indexFile,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) String() string { return s.baseURL }

func (s *HTTPSource) Index(ctx context.Context) (catalog.Index, error) {
	body, err := s.get(ctx, s.indexFile)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeIndex(body)
}

func (s *HTTPSource) Document(ctx context.Context, location string) (string, error) {
	body, err := s.get(ctx, location)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (s *HTTPSource) get(ctx context.Context, rel string) ([]byte, error) {
	target, err := url.JoinPath(s.baseURL, rel)
	if err != nil {
		return nil, fmt.Errorf("building URL for %s: %w", rel, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: target, Code: resp.StatusCode}
	}
	return body, nil
}
