package tornado

import (
	"strings"
	"time"
)

// Day-part labels for the four six-hour bins of the day.
const (
	DayPartOvernight = "overnight" // 00:00-05:59
	DayPartMorning   = "morning"   // 06:00-11:59
	DayPartAfternoon = "afternoon" // 12:00-17:59
	DayPartEvening   = "evening"   // 18:00-23:59
)

// DayPart buckets an hour of day (0-23) into one of the four labels.
func DayPart(hour int) string {
	switch {
	case hour < 6:
		return DayPartOvernight
	case hour < 12:
		return DayPartMorning
	case hour < 18:
		return DayPartAfternoon
	default:
		return DayPartEvening
	}
}

// Summary aggregates a set of tornado records.
//
// MonthCounts is indexed by month-1 (January at 0). Hour-of-day counts only
// cover records that carried a usable time; WithTime says how many did.
// AfterCutoff counts records whose begin time is on or after the cutoff.
type Summary struct {
	Total    int `json:"total"`
	WithTime int `json:"with_time"`

	MonthCounts   [12]int        `json:"month_counts"`
	HourCounts    [24]int        `json:"hour_counts"`
	DayPartCounts map[string]int `json:"day_part_counts"`

	ScaleCounts      map[int]int    `json:"scale_counts"`
	SourceCodeCounts map[string]int `json:"source_code_counts"`

	Injuries   int `json:"injuries"`
	Fatalities int `json:"fatalities"`
	Strongest  int `json:"strongest"`

	Cutoff           time.Time `json:"cutoff"`
	AfterCutoff      int       `json:"after_cutoff"`
	ShareAfterCutoff float64   `json:"share_after_cutoff"`
}

// Summarize derives the aggregate view of recs against the given cutoff.
func Summarize(recs []Record, cutoff time.Time) Summary {
	s := Summary{
		DayPartCounts:    map[string]int{},
		ScaleCounts:      map[int]int{},
		SourceCodeCounts: map[string]int{},
		Strongest:        ScaleUnknown,
		Cutoff:           cutoff,
	}

	for _, rec := range recs {
		s.Total++
		s.MonthCounts[int(rec.Date.Month())-1]++

		if rec.HasTime {
			s.WithTime++
			hour := rec.BeginTime.UTC().Hour()
			s.HourCounts[hour]++
			s.DayPartCounts[DayPart(hour)]++
		}

		s.ScaleCounts[rec.Scale]++
		if rec.Scale > s.Strongest {
			s.Strongest = rec.Scale
		}

		if rec.SourceCode != "" {
			s.SourceCodeCounts[rec.SourceCode]++
		}

		s.Injuries += rec.Injuries
		s.Fatalities += rec.Fatalities

		if !rec.BeginTime.Before(cutoff) {
			s.AfterCutoff++
		}
	}

	if s.Total > 0 {
		s.ShareAfterCutoff = float64(s.AfterCutoff) / float64(s.Total)
	}

	return s
}

// FilterState returns the records whose state code matches (case-insensitive).
func FilterState(recs []Record, code string) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if strings.EqualFold(rec.State, code) {
			out = append(out, rec)
		}
	}
	return out
}
