// Command baseball runs the payroll case study against a Lahman-style SQLite
// database: it sums salaries into team payrolls, left-joins season records,
// adjusts dollars to constant 2016 value, marks World Series winners, fits
// wins against payroll, and renders the timeline, scatter, and boxplot charts.
//
// Usage:
//
//	go run ./cmd/baseball \
//	  -db data/lahman.sqlite \
//	  -charts charts \
//	  -xlsx reports/payroll.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ds4stats/case-studies/internal/adapter/sqlite"
	"github.com/ds4stats/case-studies/internal/baseball"
	"github.com/ds4stats/case-studies/internal/chart"
	"github.com/ds4stats/case-studies/internal/export"
	"github.com/ds4stats/case-studies/internal/observability"
	"github.com/ds4stats/case-studies/internal/report"
)

// timelineTeams caps how many team lines the payroll chart draws.
const timelineTeams = 6

func main() {
	dbPath := flag.String("db", "", "path to the Lahman-style SQLite database")
	chartDir := flag.String("charts", "charts", "directory for rendered charts; empty disables rendering")
	jsonOut := flag.String("json", "", "optional output path for the JSON report")
	xlsxOut := flag.String("xlsx", "", "optional output path for the payroll workbook")
	inflPath := flag.String("inflation", "", "optional year,multiplier CSV; defaults to the built-in table")
	since := flag.Int("since", 1985, "first season to include (salary data starts in 1985)")
	flag.Parse()

	if *dbPath == "" {
		flag.Usage()
		log.Fatal("missing required flag: -db")
	}

	if err := run(*dbPath, *chartDir, *jsonOut, *xlsxOut, *inflPath, *since); err != nil {
		log.Fatal(err)
	}
}

func run(dbPath, chartDir, jsonOut, xlsxOut, inflPath string, since int) error {
	store, err := sqlite.Open(dbPath, nil)
	if err != nil {
		return err
	}
	defer store.Close()

	infl := baseball.DefaultInflation()
	if inflPath != "" {
		infl, err = loadInflation(inflPath)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	payrolls, err := store.TeamPayrolls(ctx, since)
	if err != nil {
		return err
	}
	seasons, err := store.TeamSeasons(ctx, since)
	if err != nil {
		return err
	}
	series, err := store.PostseasonSeries(ctx, since)
	if err != nil {
		return err
	}
	log.Printf("%s: %d payroll rows, %d seasons, %d postseason series", dbPath, len(payrolls), len(seasons), len(series))

	rows := baseball.Assemble(payrolls, seasons, series, infl)
	champs := baseball.Champions(series)
	summary := baseball.Summarize(rows, champs)
	printSummary(summary)

	var charts []string
	if chartDir != "" {
		charts, err = renderCharts(chartDir, rows, summary.Fit)
		if err != nil {
			return err
		}
	}

	if xlsxOut != "" {
		if err := export.WritePayrollWorkbook(xlsxOut, rows, summary.Champions); err != nil {
			return err
		}
		log.Printf("wrote workbook: %s", xlsxOut)
	}

	if jsonOut != "" {
		doc := reportDoc{
			Meta:    report.NewMeta("baseball", dbPath, summary.Rows),
			Summary: summary,
			Charts:  charts,
		}
		if err := report.WriteJSON(jsonOut, doc); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Printf("wrote report: %s", jsonOut)
	}

	return nil
}

// reportDoc is the JSON report envelope.
type reportDoc struct {
	Meta    report.Meta      `json:"meta"`
	Summary baseball.Summary `json:"summary"`
	Charts  []string         `json:"charts,omitempty"`
}

func loadInflation(path string) (*baseball.Inflation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inflation table: %w", err)
	}
	defer f.Close()
	return baseball.LoadInflationCSV(f)
}

func renderCharts(dir string, rows []baseball.PayrollSeason, fit baseball.Fit) ([]string, error) {
	logger := observability.NewLogger("info", "text")
	r := chart.NewRenderer(dir, logger, nil)

	var paths []string

	path, err := r.PayrollLines(chart.TimelineSeries(rows, timelineTeams))
	if err != nil {
		return nil, err
	}
	paths = append(paths, path)

	var points []chart.Point
	var missed, made []float64
	for _, row := range rows {
		if !row.Matched {
			continue
		}
		points = append(points, chart.Point{X: row.AdjPayroll / 1e6, Y: float64(row.Wins)})
		if row.MadePlayoffs {
			made = append(made, float64(row.Wins))
		} else {
			missed = append(missed, float64(row.Wins))
		}
	}

	path, err = r.WinsScatter(points, fit)
	if err != nil {
		return nil, err
	}
	paths = append(paths, path)

	path, err = r.PlayoffBox(missed, made)
	if err != nil {
		return nil, err
	}
	paths = append(paths, path)

	return paths, nil
}

func printSummary(s baseball.Summary) {
	fmt.Println("\n=== Baseball Payroll Case Study ===")
	fmt.Printf("Seasons %d-%d: %d team-seasons across %d teams (%d without a season line)\n",
		s.FirstYear, s.LastYear, s.Rows, s.Teams, s.Unmatched)
	fmt.Printf("Adjusted payroll: total $%.1fM, mean $%.1fM per team-season\n",
		s.TotalAdjPayroll/1e6, s.MeanAdjPayroll/1e6)
	fmt.Printf("Playoff seasons: %d\n", s.PlayoffSeasons)
	if s.Fit.N > 0 {
		fmt.Printf("Fit: wins = %.1f + %.3f per adjusted $M (R2=%.3f, n=%d)\n",
			s.Fit.Alpha, s.Fit.Beta, s.Fit.R2, s.Fit.N)
	}

	if len(s.Champions) > 0 {
		fmt.Println("\nWorld Series winners:")
		for _, c := range s.Champions {
			if c.PayrollRank == 0 {
				fmt.Printf("  %d %-3s (no payroll row)\n", c.Year, c.TeamID)
				continue
			}
			fmt.Printf("  %d %-3s $%.1fM, payroll rank %d of %d\n",
				c.Year, c.TeamID, c.AdjPayroll/1e6, c.PayrollRank, c.Teams)
		}
	}
}
