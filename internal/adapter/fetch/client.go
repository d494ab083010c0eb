// Package fetch downloads the case-study datasets over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ds4stats/case-studies/internal/observability"
)

// Client downloads dataset files from a base URL. Metrics may be nil.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a dataset fetcher rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		metrics: metrics,
	}
}

// Fetch downloads one named dataset into destDir and returns the local
// path. An existing file is kept unless force is set. The download goes to
// a temporary file first and is renamed into place, so a failed transfer
// never leaves a truncated dataset behind.
func (c *Client) Fetch(ctx context.Context, name, destDir string, force bool) (string, error) {
	dest := filepath.Join(destDir, name)
	if !force {
		if _, err := os.Stat(dest); err == nil {
			c.logger.Info("dataset present, skipping", "name", name, "path", dest)
			return dest, nil
		}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}

	fullURL := c.baseURL + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("fetch %s: status %d: %s", name, resp.StatusCode, body)
	}

	tmp := filepath.Join(destDir, "."+name+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("move %s into place: %w", name, err)
	}

	if c.metrics != nil {
		c.metrics.FetchBytes.Add(float64(n))
	}
	c.logger.Info("dataset downloaded", "name", name, "bytes", n, "path", dest)
	return dest, nil
}

// FetchAll downloads every named dataset, stopping at the first failure.
func (c *Client) FetchAll(ctx context.Context, names []string, destDir string, force bool) error {
	for _, name := range names {
		if _, err := c.Fetch(ctx, name, destDir, force); err != nil {
			return err
		}
	}
	return nil
}
