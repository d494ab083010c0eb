package baseball

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Fit holds the least-squares line of wins against adjusted payroll.
type Fit struct {
	Alpha float64 `json:"alpha"` // intercept: expected wins at zero payroll
	Beta  float64 `json:"beta"`  // slope: wins per million constant dollars
	R2    float64 `json:"r2"`
	N     int     `json:"n"`
}

// FitWinsVsPayroll regresses wins on adjusted payroll, in millions of
// dollars, over the matched rows. At least two matched rows are required.
func FitWinsVsPayroll(rows []PayrollSeason) (Fit, error) {
	var xs, ys []float64
	for _, row := range rows {
		if !row.Matched {
			continue
		}
		xs = append(xs, row.AdjPayroll/1e6)
		ys = append(ys, float64(row.Wins))
	}
	if len(xs) < 2 {
		return Fit{}, fmt.Errorf("fit needs at least 2 matched rows, have %d", len(xs))
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Fit{
		Alpha: alpha,
		Beta:  beta,
		R2:    stat.RSquared(xs, ys, nil, alpha, beta),
		N:     len(xs),
	}, nil
}
