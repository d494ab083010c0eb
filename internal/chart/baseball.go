package chart

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ds4stats/case-studies/internal/baseball"
)

// TimelineSeries picks the biggest spenders by total adjusted payroll and
// builds one line of (year, adjusted $M) points per team, ready for
// PayrollLines. Rows are expected in year order, as Assemble produces them.
func TimelineSeries(rows []baseball.PayrollSeason, limit int) []TeamSeries {
	totals := map[string]float64{}
	points := map[string][]Point{}
	for _, row := range rows {
		totals[row.TeamID] += row.AdjPayroll
		points[row.TeamID] = append(points[row.TeamID], Point{
			X: float64(row.Year),
			Y: row.AdjPayroll / 1e6,
		})
	}

	teams := make([]string, 0, len(totals))
	for team := range totals {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool {
		if totals[teams[i]] != totals[teams[j]] {
			return totals[teams[i]] > totals[teams[j]]
		}
		return teams[i] < teams[j]
	})

	series := make([]TeamSeries, 0, min(limit, len(teams)))
	for _, team := range teams[:min(limit, len(teams))] {
		series = append(series, TeamSeries{Team: team, Points: points[team]})
	}
	return series
}

// PayrollLines renders one line per team of adjusted payroll over seasons.
func (r *Renderer) PayrollLines(series []TeamSeries) (string, error) {
	if len(series) == 0 {
		return "", errors.New("payroll lines: no series")
	}
	p := plot.New()
	p.Title.Text = "Team Payroll Over Time"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Season"
	p.Y.Label.Text = "Payroll (2016 $M)"
	p.Add(plotter.NewGrid())

	for i, ts := range series {
		xys := make(plotter.XYs, len(ts.Points))
		for j, pt := range ts.Points {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return "", fmt.Errorf("payroll line %s: %w", ts.Team, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(ts.Team, line)
	}
	p.Legend.Top = true

	return r.save(p, 12*vg.Inch, 6*vg.Inch, "payroll_timeline.png")
}

// WinsScatter plots wins against adjusted payroll with the least-squares
// line drawn across the observed payroll range.
func (r *Renderer) WinsScatter(points []Point, fit baseball.Fit) (string, error) {
	if len(points) == 0 {
		return "", errors.New("wins scatter: no points")
	}
	p := plot.New()
	p.Title.Text = "Wins vs Adjusted Payroll"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Payroll (2016 $M)"
	p.Y.Label.Text = "Wins"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return "", fmt.Errorf("wins points: %w", err)
	}
	scatter.GlyphStyle.Color = palette[0]
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	minX, maxX := points[0].X, points[0].X
	for _, pt := range points[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
	}
	fitLine, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: fit.Alpha + fit.Beta*minX},
		{X: maxX, Y: fit.Alpha + fit.Beta*maxX},
	})
	if err != nil {
		return "", fmt.Errorf("fit line: %w", err)
	}
	fitLine.Color = palette[1]
	fitLine.Width = vg.Points(2)
	fitLine.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(fitLine)
	p.Legend.Add(fmt.Sprintf("fit: %.1f + %.2f wins per $M (R2 %.2f)", fit.Alpha, fit.Beta, fit.R2), fitLine)
	p.Legend.Top = true

	return r.save(p, 10*vg.Inch, 7*vg.Inch, "wins_vs_payroll.png")
}

// PlayoffBox renders side-by-side boxplots of wins for teams that missed
// the postseason and teams that made it.
func (r *Renderer) PlayoffBox(missed, made []float64) (string, error) {
	if len(missed) == 0 || len(made) == 0 {
		return "", errors.New("playoff box: both groups need data")
	}
	p := plot.New()
	p.Title.Text = "Wins by Postseason Result"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Y.Label.Text = "Wins"

	for i, group := range []plotter.Values{plotter.Values(missed), plotter.Values(made)} {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), group)
		if err != nil {
			return "", fmt.Errorf("box %d: %w", i, err)
		}
		p.Add(box)
	}
	p.NominalX("Missed", "Made playoffs")

	return r.save(p, 6*vg.Inch, 6*vg.Inch, "wins_by_playoffs.png")
}
