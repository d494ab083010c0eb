// Command tornado runs the Texas tornado case study against an SPC-style CSV
// export: it loads records with the time column pinned to text, derives
// timestamps and severity counts, prints the aggregate report, and renders
// the month, rating, hour, and touchdown-map charts.
//
// Usage:
//
//	go run ./cmd/tornado \
//	  -csv data/tx_tornadoes.csv \
//	  -charts charts \
//	  -json reports/tornado.json
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/ds4stats/case-studies/internal/chart"
	"github.com/ds4stats/case-studies/internal/observability"
	"github.com/ds4stats/case-studies/internal/report"
	"github.com/ds4stats/case-studies/internal/tornado"
)

func main() {
	csvPath := flag.String("csv", "", "path to the tornado CSV export")
	chartDir := flag.String("charts", "charts", "directory for rendered charts; empty disables rendering")
	jsonOut := flag.String("json", "", "optional output path for the JSON report")
	cutoffStr := flag.String("cutoff", "2000-01-01", "cutoff date for the recency share (YYYY-MM-DD)")
	state := flag.String("state", "TX", "state code to keep")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		log.Fatal("missing required flag: -csv")
	}
	cutoff, err := time.Parse("2006-01-02", *cutoffStr)
	if err != nil {
		log.Fatalf("invalid -cutoff: %v", err)
	}

	if err := run(*csvPath, *chartDir, *jsonOut, *state, cutoff); err != nil {
		log.Fatal(err)
	}
}

func run(csvPath, chartDir, jsonOut, state string, cutoff time.Time) error {
	recs, stats, err := tornado.LoadFile(csvPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", csvPath, err)
	}

	kept := tornado.FilterState(recs, state)
	log.Printf("%s: %d rows, %d in %s, %d field problems", csvPath, stats.Rows, len(kept), state, stats.Failures())

	summary := tornado.Summarize(kept, cutoff)
	printSummary(summary, stats)

	var charts []string
	if chartDir != "" {
		charts, err = renderCharts(chartDir, summary, kept)
		if err != nil {
			return err
		}
	}

	if jsonOut != "" {
		doc := reportDoc{
			Meta:    report.NewMeta("tornado", csvPath, summary.Total),
			Stats:   stats,
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
	Meta    report.Meta       `json:"meta"`
	Stats   tornado.LoadStats `json:"load_stats"`
	Summary tornado.Summary   `json:"summary"`
	Charts  []string          `json:"charts,omitempty"`
}

func renderCharts(dir string, summary tornado.Summary, recs []tornado.Record) ([]string, error) {
	logger := observability.NewLogger("info", "text")
	r := chart.NewRenderer(dir, logger, nil)

	var paths []string

	path, err := r.MonthlyBar(summary.MonthCounts)
	if err != nil {
		return nil, err
	}
	paths = append(paths, path)

	path, err = r.ScaleBar(summary.ScaleCounts)
	if err != nil {
		return nil, err
	}
	paths = append(paths, path)

	path, err = r.HourBar(summary.HourCounts)
	if err != nil {
		return nil, err
	}
	paths = append(paths, path)

	path, err = r.TrackMap(tornado.MapPoints(recs), tornado.TexasOutline())
	if err != nil {
		return nil, err
	}
	paths = append(paths, path)

	return paths, nil
}

func printSummary(s tornado.Summary, stats tornado.LoadStats) {
	fmt.Println("\n=== Texas Tornado Case Study ===")
	fmt.Printf("Records: %d (%d with a usable time)\n", s.Total, s.WithTime)
	fmt.Printf("Load problems: %d bad dates, %d missing times, %d unknown ratings\n",
		stats.BadDates, stats.NoTime, stats.UnknownScale)
	fmt.Printf("Casualties: %d injuries, %d fatalities\n", s.Injuries, s.Fatalities)
	if s.Strongest >= 0 {
		fmt.Printf("Strongest rating: EF%d\n", s.Strongest)
	}

	fmt.Printf("\nBy month:")
	peak := 0
	for i, c := range s.MonthCounts {
		fmt.Printf(" %s=%d", time.Month(i+1).String()[:3], c)
		if c > s.MonthCounts[peak] {
			peak = i
		}
	}
	fmt.Printf("\nPeak month: %s (%d)\n", time.Month(peak+1), s.MonthCounts[peak])

	fmt.Printf("\nBy rating:")
	for scale := 0; scale <= 5; scale++ {
		fmt.Printf(" EF%d=%d", scale, s.ScaleCounts[scale])
	}
	fmt.Printf(" unknown=%d\n", s.ScaleCounts[tornado.ScaleUnknown])

	fmt.Printf("By day part: overnight=%d morning=%d afternoon=%d evening=%d\n",
		s.DayPartCounts[tornado.DayPartOvernight], s.DayPartCounts[tornado.DayPartMorning],
		s.DayPartCounts[tornado.DayPartAfternoon], s.DayPartCounts[tornado.DayPartEvening])

	printSourceCodes(s.SourceCodeCounts)

	fmt.Printf("\nSince %s: %d of %d (%.1f%%)\n",
		s.Cutoff.Format("2006-01-02"), s.AfterCutoff, s.Total, 100*s.ShareAfterCutoff)
}

type codeCount struct {
	code  string
	count int
}

func printSourceCodes(counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	cc := make([]codeCount, 0, len(counts))
	for code, count := range counts {
		cc = append(cc, codeCount{code, count})
	}
	sort.Slice(cc, func(i, j int) bool {
		if cc[i].count != cc[j].count {
			return cc[i].count > cc[j].count
		}
		return cc[i].code < cc[j].code
	})

	fmt.Printf("Reporting offices (%d):", len(cc))
	for _, c := range cc[:min(8, len(cc))] {
		fmt.Printf(" %s=%d", c.code, c.count)
	}
	fmt.Println()
}
