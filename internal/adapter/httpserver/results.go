package httpserver

import (
	"context"
	"errors"
	"sync"

	"github.com/ds4stats/case-studies/internal/baseball"
	"github.com/ds4stats/case-studies/internal/tornado"
)

// Results holds the latest analysis output for serving. The analysis
// goroutine publishes into it once at startup; handlers read concurrently.
type Results struct {
	mu       sync.RWMutex
	tornado  *tornado.Summary
	baseball *baseball.Summary
}

// SetTornado publishes the tornado summary.
func (r *Results) SetTornado(s *tornado.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tornado = s
}

// Tornado returns the published tornado summary, or nil.
func (r *Results) Tornado() *tornado.Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tornado
}

// SetBaseball publishes the baseball summary.
func (r *Results) SetBaseball(s *baseball.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseball = s
}

// Baseball returns the published baseball summary, or nil.
func (r *Results) Baseball() *baseball.Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.baseball
}

// CheckReadiness reports ready once at least one analysis has published.
func (r *Results) CheckReadiness(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.tornado == nil && r.baseball == nil {
		return errors.New("analysis has not completed")
	}
	return nil
}
