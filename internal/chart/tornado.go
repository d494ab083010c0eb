package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ds4stats/case-studies/internal/tornado"
)

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyBar renders tornado counts per calendar month.
func (r *Renderer) MonthlyBar(counts [12]int) (string, error) {
	p := plot.New()
	p.Title.Text = "Texas Tornadoes by Month"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Tornadoes"

	values := make(plotter.Values, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return "", fmt.Errorf("month bars: %w", err)
	}
	bars.Color = palette[0]
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(monthLabels...)

	return r.save(p, 10*vg.Inch, 6*vg.Inch, "tornado_months.png")
}

// ScaleBar renders tornado counts per EF rating, unknown ratings last.
func (r *Renderer) ScaleBar(counts map[int]int) (string, error) {
	p := plot.New()
	p.Title.Text = "Texas Tornadoes by EF Rating"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Rating"
	p.Y.Label.Text = "Tornadoes"

	labels := []string{"EF0", "EF1", "EF2", "EF3", "EF4", "EF5", "Unknown"}
	values := make(plotter.Values, len(labels))
	for scale := 0; scale <= 5; scale++ {
		values[scale] = float64(counts[scale])
	}
	values[6] = float64(counts[tornado.ScaleUnknown])

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", fmt.Errorf("scale bars: %w", err)
	}
	bars.Color = palette[1]
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	return r.save(p, 8*vg.Inch, 6*vg.Inch, "tornado_scales.png")
}

// HourBar renders tornado counts per touchdown hour. Records without a
// usable time are absent from the input by construction.
func (r *Renderer) HourBar(counts [24]int) (string, error) {
	p := plot.New()
	p.Title.Text = "Texas Tornadoes by Hour of Day"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Hour"
	p.Y.Label.Text = "Tornadoes"

	labels := make([]string, len(counts))
	values := make(plotter.Values, len(counts))
	for h, c := range counts {
		labels[h] = fmt.Sprintf("%02d", h)
		values[h] = float64(c)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return "", fmt.Errorf("hour bars: %w", err)
	}
	bars.Color = palette[2]
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return r.save(p, 12*vg.Inch, 6*vg.Inch, "tornado_hours.png")
}

// TrackMap plots touchdown points in lon/lat space with the state outline
// drawn underneath.
func (r *Renderer) TrackMap(points, outline []tornado.Coord) (string, error) {
	if len(points) == 0 {
		return "", errors.New("track map: no points")
	}
	p := plot.New()
	p.Title.Text = "Texas Tornado Touchdowns"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	if len(outline) > 0 {
		ring := make(plotter.XYs, len(outline))
		for i, c := range outline {
			ring[i] = plotter.XY{X: c.Lon, Y: c.Lat}
		}
		border, err := plotter.NewLine(ring)
		if err != nil {
			return "", fmt.Errorf("state outline: %w", err)
		}
		border.Color = palette[7]
		border.Width = vg.Points(1)
		p.Add(border)
	}

	xys := make(plotter.XYs, len(points))
	for i, c := range points {
		xys[i] = plotter.XY{X: c.Lon, Y: c.Lat}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return "", fmt.Errorf("touchdown points: %w", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 160}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(scatter)

	return r.save(p, 8*vg.Inch, 8*vg.Inch, "tornado_map.png")
}
