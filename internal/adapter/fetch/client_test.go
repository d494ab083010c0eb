package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds4stats/case-studies/internal/observability"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetch_DownloadsFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tx_tornadoes.csv", r.URL.Path)
		w.Write([]byte("om,date,time\n"))
	}))
	defer server.Close()

	dest := t.TempDir()
	client := NewClient(server.URL, 5*time.Second, testLogger(), observability.NewMetricsForTesting())

	path, err := client.Fetch(context.Background(), "tx_tornadoes.csv", dest, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "tx_tornadoes.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "om,date,time\n", string(data))
}

func TestFetch_SkipsExistingFile(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("fresh"))
	}))
	defer server.Close()

	dest := t.TempDir()
	existing := filepath.Join(dest, "cpi.csv")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))

	client := NewClient(server.URL, 5*time.Second, testLogger(), nil)

	path, err := client.Fetch(context.Background(), "cpi.csv", dest, false)
	require.NoError(t, err)
	assert.Equal(t, existing, path)
	assert.Equal(t, int32(0), calls.Load(), "existing file must not trigger a download")

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestFetch_ForceOverwrites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fresh"))
	}))
	defer server.Close()

	dest := t.TempDir()
	existing := filepath.Join(dest, "cpi.csv")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))

	client := NewClient(server.URL, 5*time.Second, testLogger(), nil)

	_, err := client.Fetch(context.Background(), "cpi.csv", dest, true)
	require.NoError(t, err)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusInternalServerError)
	}))
	defer server.Close()

	dest := t.TempDir()
	client := NewClient(server.URL, 5*time.Second, testLogger(), nil)

	_, err := client.Fetch(context.Background(), "lahman.sqlite", dest, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "gone fishing")

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries, "a failed fetch must not leave files behind")
}

func TestFetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("data"))
	}))
	defer server.Close()

	dest := t.TempDir()
	client := NewClient(server.URL, 5*time.Second, testLogger(), nil)

	require.NoError(t, client.FetchAll(context.Background(), []string{"a.csv", "b.csv"}, dest, false))
	assert.FileExists(t, filepath.Join(dest, "a.csv"))
	assert.FileExists(t, filepath.Join(dest, "b.csv"))

	err := client.FetchAll(context.Background(), []string{"c.csv", "missing.csv"}, dest, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}
