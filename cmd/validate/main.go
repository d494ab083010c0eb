// Command validate checks a tornado CSV export before analysis. It inspects
// the raw text the way a spreadsheet round-trip would have left it: schema
// and row shape, time-field integrity (including leading zeros lost to
// numeric coercion), date and rating values, and coordinate ranges.
//
// Usage:
//
//	go run ./cmd/validate -csv data/tx_tornadoes.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/ds4stats/case-studies/internal/tornado"
)

// requiredColumns must be present in the header for the loader to accept the file.
var requiredColumns = []string{"om", "date", "time", "st", "mag", "slat", "slon", "source"}

var dateLayouts = []string{"2006-01-02", "1/2/2006"}

// firstYear is the start of the SPC tornado record.
const firstYear = 1950

// validRatings are the accepted raw values of the mag column.
var validRatings = map[string]bool{
	"": true, "UNK": true, "-9": true,
	"0": true, "1": true, "2": true, "3": true, "4": true, "5": true,
	"EF0": true, "EF1": true, "EF2": true, "EF3": true, "EF4": true, "EF5": true,
	"F0": true, "F1": true, "F2": true, "F3": true, "F4": true, "F5": true,
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "path to the tornado CSV export")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	// ── Load the raw CSV ──
	fmt.Println("=== Tornado CSV Integrity Validation ===")
	fmt.Println()

	header, rows, err := loadCSV(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	// ── Run validation phases ──
	phases := []*phase{
		validateSchema(header, rows),
		validateTimes(rows),
		validateDatesAndRatings(rows),
		validateGeography(rows),
	}

	// ── Report results ──
	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d rows, %d columns\n", len(rows), len(header))

	// Print detailed errors.
	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

// csvRow is a raw row with field values keyed by header name.
type csvRow struct {
	lineNum int
	width   int
	fields  map[string]string
}

func loadCSV(path string) ([]string, []csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are findings, not fatal
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) < 2 {
		return nil, nil, fmt.Errorf("no data rows in %s", path)
	}

	header := all[0]
	rows := make([]csvRow, 0, len(all)-1)
	for i, raw := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(raw) {
				fields[h] = strings.TrimSpace(raw[j])
			}
		}
		rows = append(rows, csvRow{lineNum: i + 2, width: len(raw), fields: fields})
	}
	return header, rows, nil
}

// ── Phase 1: Schema ──
// Required columns, row shape, and id uniqueness.

func validateSchema(header []string, rows []csvRow) *phase {
	p := &phase{name: "Phase 1: Schema (columns and ids)"}

	have := map[string]bool{}
	for _, h := range header {
		if have[h] {
			p.errorf("duplicate column %q in header", h)
		}
		have[h] = true
	}
	for _, name := range requiredColumns {
		if !have[name] {
			p.errorf("missing required column %q", name)
		}
	}

	for _, row := range rows {
		if row.width != len(header) {
			p.errorf("line %d: %d fields, header has %d", row.lineNum, row.width, len(header))
		}
	}

	// om repeats across years in SPC data, so uniqueness is per om+date.
	seen := map[string]int{}
	for _, row := range rows {
		if row.fields["om"] == "" {
			p.errorf("line %d: empty om id", row.lineNum)
			continue
		}
		key := row.fields["om"] + "|" + row.fields["date"]
		if first, ok := seen[key]; ok {
			p.errorf("line %d: duplicate om %q for date %q (first on line %d)",
				row.lineNum, row.fields["om"], row.fields["date"], first)
			continue
		}
		seen[key] = row.lineNum
	}
	return p
}

// ── Phase 2: Time integrity ──
// The time column is HHMM text. A spreadsheet round-trip that coerced it to
// numbers strips leading zeros, silently moving early-morning touchdowns.

func validateTimes(rows []csvRow) *phase {
	p := &phase{name: "Phase 2: Time integrity (HHMM text)"}

	var short, padded int
	var shortExample string
	for _, row := range rows {
		raw := row.fields["time"]
		if raw == "" {
			continue
		}
		if len(raw) > 4 {
			p.errorf("line %d: time %q longer than HHMM", row.lineNum, raw)
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			p.errorf("line %d: time %q is not HHMM digits", row.lineNum, raw)
			continue
		}

		if len(raw) < 4 {
			short++
			if shortExample == "" {
				shortExample = raw
			}
		} else if raw[0] == '0' {
			padded++
		}

		if hour := n / 100; hour > 23 {
			p.errorf("line %d: time %q has hour %d", row.lineNum, raw, hour)
		}
		if minute := n % 100; minute > 59 {
			p.errorf("line %d: time %q has minute %d", row.lineNum, raw, minute)
		}
	}

	if short > 0 && padded == 0 {
		p.errorf("times look numerically coerced: %d values shorter than 4 digits (e.g. %q) and none zero-padded; re-export the column as text",
			short, shortExample)
	}
	return p
}

// ── Phase 3: Dates and ratings ──

func validateDatesAndRatings(rows []csvRow) *phase {
	p := &phase{name: "Phase 3: Dates and ratings"}

	maxYear := time.Now().UTC().Year()
	for _, row := range rows {
		raw := row.fields["date"]
		date, ok := parseDate(raw)
		if !ok {
			p.errorf("line %d: unparseable date %q", row.lineNum, raw)
		} else if y := date.Year(); y < firstYear || y > maxYear {
			p.errorf("line %d: date %q outside %d-%d", row.lineNum, raw, firstYear, maxYear)
		}

		if mag := row.fields["mag"]; !validRatings[strings.ToUpper(mag)] {
			p.errorf("line %d: rating %q not an EF value", row.lineNum, mag)
		}
	}
	return p
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// ── Phase 4: Geography ──

func validateGeography(rows []csvRow) *phase {
	p := &phase{name: "Phase 4: Geography (coordinates)"}

	for _, row := range rows {
		if st := row.fields["st"]; len(st) != 2 || st != strings.ToUpper(st) {
			p.errorf("line %d: state %q is not a 2-letter code", row.lineNum, st)
		}

		lat, latErr := strconv.ParseFloat(row.fields["slat"], 64)
		lon, lonErr := strconv.ParseFloat(row.fields["slon"], 64)
		if latErr != nil || lonErr != nil {
			p.errorf("line %d: unparseable begin coordinates (%q, %q)",
				row.lineNum, row.fields["slat"], row.fields["slon"])
			continue
		}
		if lat == 0 && lon == 0 {
			p.errorf("line %d: begin coordinates are both zero", row.lineNum)
			continue
		}
		if !tornado.ContinentalBound.Contains(orb.Point{lon, lat}) {
			p.errorf("line %d: begin point (%.2f, %.2f) outside the continental US", row.lineNum, lat, lon)
		}
	}
	return p
}
