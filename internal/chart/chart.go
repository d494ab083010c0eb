// Package chart renders the case-study figures as image files via gonum/plot.
package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/ds4stats/case-studies/internal/observability"
)

// Point is one chart coordinate.
type Point struct {
	X float64
	Y float64
}

// TeamSeries is one team's payroll over time, X holding the season year.
type TeamSeries struct {
	Team   string
	Points []Point
}

// palette is applied in order to multi-series charts.
var palette = []color.Color{
	color.RGBA{R: 70, G: 130, B: 180, A: 255},  // steel blue
	color.RGBA{R: 178, G: 34, B: 34, A: 255},   // firebrick
	color.RGBA{R: 34, G: 139, B: 34, A: 255},   // forest green
	color.RGBA{R: 218, G: 165, B: 32, A: 255},  // goldenrod
	color.RGBA{R: 72, G: 61, B: 139, A: 255},   // dark slate blue
	color.RGBA{R: 205, G: 92, B: 92, A: 255},   // indian red
	color.RGBA{R: 0, G: 139, B: 139, A: 255},   // dark cyan
	color.RGBA{R: 105, G: 105, B: 105, A: 255}, // dim gray
}

// Renderer writes charts into a directory. Metrics may be nil.
type Renderer struct {
	dir     string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRenderer creates a renderer targeting dir.
func NewRenderer(dir string, logger *slog.Logger, metrics *observability.Metrics) *Renderer {
	return &Renderer{dir: dir, logger: logger, metrics: metrics}
}

// Dir returns the directory charts are written into.
func (r *Renderer) Dir() string {
	return r.dir
}

func (r *Renderer) save(p *plot.Plot, w, h vg.Length, name string) (string, error) {
	start := time.Now()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}
	path := filepath.Join(r.dir, name)
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}

	if r.metrics != nil {
		label := strings.TrimSuffix(name, filepath.Ext(name))
		r.metrics.ChartsRendered.WithLabelValues(label).Inc()
		r.metrics.ChartRenderDuration.Observe(time.Since(start).Seconds())
	}
	r.logger.Info("chart rendered", "chart", name, "path", path)
	return path, nil
}
