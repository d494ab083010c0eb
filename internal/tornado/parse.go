package tornado

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// sourceCodeRe matches a 3-5 letter NWS office code in parentheses at the
// end of a report source, e.g. "Public via spotter network (FWD)" -> "FWD".
var sourceCodeRe = regexp.MustCompile(`\(([A-Z]{3,5})\)\s*$`)

// dateLayouts are tried in order by parseDate. SPC exports use ISO dates;
// older extracts use US slash dates.
var dateLayouts = []string{"2006-01-02", "1/2/2006"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseHHMM combines a base date with an HHMM time string (e.g. "1510" is
// 15:10). Values shorter than four digits are zero-padded, so "930" reads as
// 09:30 and a "14" left behind by a numeric read of "0014" is recovered as
// 00:14. The second return reports whether the string carried a usable time;
// on failure the base date comes back unchanged.
func parseHHMM(baseDate time.Time, hhmm string) (time.Time, bool) {
	hhmm = strings.TrimSpace(hhmm)
	if hhmm == "" || len(hhmm) > 4 {
		return baseDate, false
	}
	for len(hhmm) < 4 {
		hhmm = "0" + hhmm
	}

	hour, errH := strconv.Atoi(hhmm[:2])
	mins, errM := strconv.Atoi(hhmm[2:])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || mins < 0 || mins > 59 {
		return baseDate, false
	}

	return time.Date(
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
		hour, mins, 0, 0, time.UTC,
	), true
}

// parseScale normalizes the Fujita magnitude column. Accepts bare integers
// ("3") and prefixed forms ("EF3", "F3"). The NOAA unknown sentinels ("UNK",
// "-9", empty) map to ScaleUnknown rather than 0, because EF0 is a real
// rating.
func parseScale(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "UNK") {
		return ScaleUnknown
	}
	s = strings.TrimPrefix(s, "EF")
	s = strings.TrimPrefix(s, "F")

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 5 {
		return ScaleUnknown
	}
	return n
}

// extractSourceCode pulls the NWS Weather Forecast Office (WFO) code from the
// end of a report source string, e.g. "Storm survey team (OUN)" -> "OUN".
func extractSourceCode(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}

	matches := sourceCodeRe.FindStringSubmatch(source)
	if len(matches) == 2 {
		return matches[1]
	}

	return ""
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseIntOrZero parses a string as int, returning 0 on failure.
func parseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
