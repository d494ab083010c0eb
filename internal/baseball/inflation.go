package baseball

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Inflation converts nominal dollars to constant dollars via per-year
// multipliers. The default table is expressed in 2016 dollars.
type Inflation struct {
	multipliers map[int]float64
	years       []int // sorted, for nearest-year fallback
}

// NewInflation builds a table from year to multiplier. Non-positive
// multipliers are dropped rather than allowed to zero out payrolls.
func NewInflation(multipliers map[int]float64) *Inflation {
	infl := &Inflation{multipliers: make(map[int]float64, len(multipliers))}
	for year, m := range multipliers {
		if m <= 0 {
			continue
		}
		infl.multipliers[year] = m
		infl.years = append(infl.years, year)
	}
	sort.Ints(infl.years)
	return infl
}

// Adjust converts dollars from the given year to constant dollars. A year
// missing from the table borrows the nearest known year's multiplier; with
// an empty table the nominal value comes back unchanged.
func (infl *Inflation) Adjust(year int, dollars float64) float64 {
	if len(infl.years) == 0 {
		return dollars
	}
	if m, ok := infl.multipliers[year]; ok {
		return dollars * m
	}
	return dollars * infl.multipliers[infl.nearestYear(year)]
}

func (infl *Inflation) nearestYear(year int) int {
	best := infl.years[0]
	for _, y := range infl.years[1:] {
		if abs(y-year) < abs(best-year) {
			best = y
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// LoadInflationCSV reads a year,multiplier table such as the cpi.csv shipped
// alongside the datasets. Later rows win on duplicate years.
func LoadInflationCSV(r io.Reader) (*Inflation, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read inflation csv: %w", df.Err)
	}

	have := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, name := range []string{"year", "multiplier"} {
		if !have[name] {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	years := df.Col("year").Records()
	mults := df.Col("multiplier").Records()

	table := make(map[int]float64, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		year, errY := strconv.Atoi(strings.TrimSpace(years[i]))
		mult, errM := strconv.ParseFloat(strings.TrimSpace(mults[i]), 64)
		if errY != nil || errM != nil {
			return nil, fmt.Errorf("inflation row %d: bad year or multiplier", i+1)
		}
		table[year] = mult
	}

	return NewInflation(table), nil
}

// DefaultInflation returns the built-in CPI-derived table converting
// 1985-2016 payrolls to 2016 dollars.
func DefaultInflation() *Inflation {
	return NewInflation(map[int]float64{
		1985: 2.23, 1986: 2.19, 1987: 2.11, 1988: 2.03,
		1989: 1.94, 1990: 1.84, 1991: 1.76, 1992: 1.71,
		1993: 1.66, 1994: 1.62, 1995: 1.58, 1996: 1.53,
		1997: 1.50, 1998: 1.47, 1999: 1.44, 2000: 1.39,
		2001: 1.36, 2002: 1.34, 2003: 1.31, 2004: 1.27,
		2005: 1.23, 2006: 1.19, 2007: 1.16, 2008: 1.12,
		2009: 1.12, 2010: 1.10, 2011: 1.07, 2012: 1.05,
		2013: 1.03, 2014: 1.02, 2015: 1.01, 2016: 1.00,
	})
}
