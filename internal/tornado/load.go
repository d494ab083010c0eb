package tornado

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// requiredColumns must all be present in the header. The remaining columns
// (inj, fat, elat, elon, len, wid) are optional and default to zero.
var requiredColumns = []string{"om", "date", "time", "st", "mag", "slat", "slon", "source"}

// LoadStats counts load-time oddities that do not abort the read.
type LoadStats struct {
	Rows         int `json:"rows"`
	BadDates     int `json:"bad_dates"`
	NoTime       int `json:"no_time"`
	UnknownScale int `json:"unknown_scale"`
}

// Failures is the number of rows with at least one field that failed to parse.
func (s LoadStats) Failures() int {
	return s.BadDates + s.NoTime + s.UnknownScale
}

// LoadCSV reads tornado records from SPC-style delimited text.
//
// Every column is loaded as text. The time column in particular must never
// pass through numeric type detection: "0014" (12:14 AM) read as the number
// 14 silently loses its leading zeros. DetectTypes is disabled and the column
// pinned to series.String so the raw digits reach parseHHMM intact.
//
// Field-level problems are lenient: a row with an unparseable time or scale
// is kept with the sentinel value and counted in LoadStats. Only a row whose
// date cannot be read is dropped, since every derivation hangs off the date.
func LoadCSV(r io.Reader) ([]Record, LoadStats, error) {
	var stats LoadStats

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{"time": series.String}),
	)
	if df.Err != nil {
		return nil, stats, fmt.Errorf("read csv: %w", df.Err)
	}

	have := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, name := range requiredColumns {
		if !have[name] {
			return nil, stats, fmt.Errorf("missing column %q", name)
		}
	}

	n := df.Nrow()
	var (
		ids     = df.Col("om").Records()
		dates   = df.Col("date").Records()
		times   = df.Col("time").Records()
		states  = df.Col("st").Records()
		mags    = df.Col("mag").Records()
		slats   = df.Col("slat").Records()
		slons   = df.Col("slon").Records()
		sources = df.Col("source").Records()

		injs  = columnOrEmpty(df, have, "inj", n)
		fats  = columnOrEmpty(df, have, "fat", n)
		elats = columnOrEmpty(df, have, "elat", n)
		elons = columnOrEmpty(df, have, "elon", n)
		lens  = columnOrEmpty(df, have, "len", n)
		wids  = columnOrEmpty(df, have, "wid", n)
	)

	recs := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		date, err := parseDate(dates[i])
		if err != nil {
			stats.BadDates++
			continue
		}

		beginTime, hasTime := parseHHMM(date, times[i])
		if !hasTime {
			stats.NoTime++
		}

		scale := parseScale(mags[i])
		if scale == ScaleUnknown {
			stats.UnknownScale++
		}

		source := strings.TrimSpace(sources[i])
		recs = append(recs, Record{
			ID:         strings.TrimSpace(ids[i]),
			Date:       date,
			TimeRaw:    strings.TrimSpace(times[i]),
			BeginTime:  beginTime,
			HasTime:    hasTime,
			State:      strings.ToUpper(strings.TrimSpace(states[i])),
			Scale:      scale,
			Injuries:   parseIntOrZero(injs[i]),
			Fatalities: parseIntOrZero(fats[i]),
			Begin:      Coord{Lat: parseFloatOrZero(slats[i]), Lon: parseFloatOrZero(slons[i])},
			End:        Coord{Lat: parseFloatOrZero(elats[i]), Lon: parseFloatOrZero(elons[i])},
			LengthMi:   parseFloatOrZero(lens[i]),
			WidthYd:    parseFloatOrZero(wids[i]),
			Source:     source,
			SourceCode: extractSourceCode(source),
		})
	}
	stats.Rows = len(recs)

	return recs, stats, nil
}

// LoadFile opens path and loads it via LoadCSV.
func LoadFile(path string) ([]Record, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return LoadCSV(f)
}

func columnOrEmpty(df dataframe.DataFrame, have map[string]bool, name string, n int) []string {
	if have[name] {
		return df.Col(name).Records()
	}
	return make([]string, n)
}
