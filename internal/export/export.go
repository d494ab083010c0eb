// Package export writes analysis results to spreadsheet workbooks.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ds4stats/case-studies/internal/baseball"
)

const (
	payrollSheet   = "Payroll"
	measuresSheet  = "Measures"
	championsSheet = "Champions"
)

// WritePayrollWorkbook writes the joined payroll table, its long
// (team-year-measure) reshape, and the champion payroll ranks to an xlsx
// workbook at path.
func WritePayrollWorkbook(path string, rows []baseball.PayrollSeason, champions []baseball.ChampionRank) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", payrollSheet)

	headers := []string{
		"Team", "Year", "League", "Name", "Payroll ($)", "Adjusted ($2016)",
		"Wins", "Losses", "Win Pct", "Playoffs", "Won WS",
	}
	for i, header := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(payrollSheet, col+"1", header)
		f.SetColWidth(payrollSheet, col, col, 14)
	}
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(payrollSheet, fmt.Sprintf("A%d", row), r.TeamID)
		f.SetCellValue(payrollSheet, fmt.Sprintf("B%d", row), r.Year)
		f.SetCellValue(payrollSheet, fmt.Sprintf("C%d", row), r.League)
		f.SetCellValue(payrollSheet, fmt.Sprintf("D%d", row), r.Name)
		f.SetCellValue(payrollSheet, fmt.Sprintf("E%d", row), r.Payroll)
		f.SetCellValue(payrollSheet, fmt.Sprintf("F%d", row), r.AdjPayroll)
		f.SetCellValue(payrollSheet, fmt.Sprintf("G%d", row), r.Wins)
		f.SetCellValue(payrollSheet, fmt.Sprintf("H%d", row), r.Losses)
		f.SetCellValue(payrollSheet, fmt.Sprintf("I%d", row), fmt.Sprintf("%.3f", r.WinPct))
		f.SetCellValue(payrollSheet, fmt.Sprintf("J%d", row), yn(r.MadePlayoffs))
		f.SetCellValue(payrollSheet, fmt.Sprintf("K%d", row), yn(r.WonSeries))
	}

	f.NewSheet(measuresSheet)
	measureHeaders := []string{"Team", "Year", "Measure", "Dollars"}
	for i, header := range measureHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(measuresSheet, col+"1", header)
		f.SetColWidth(measuresSheet, col, col, 14)
	}
	for i, m := range baseball.PivotMeasures(rows) {
		row := i + 2
		f.SetCellValue(measuresSheet, fmt.Sprintf("A%d", row), m.TeamID)
		f.SetCellValue(measuresSheet, fmt.Sprintf("B%d", row), m.Year)
		f.SetCellValue(measuresSheet, fmt.Sprintf("C%d", row), m.Measure)
		f.SetCellValue(measuresSheet, fmt.Sprintf("D%d", row), m.Dollars)
	}

	f.NewSheet(championsSheet)
	champHeaders := []string{"Year", "Team", "Adjusted Payroll ($)", "Payroll Rank", "Teams"}
	for i, header := range champHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(championsSheet, col+"1", header)
		f.SetColWidth(championsSheet, col, col, 18)
	}
	for i, c := range champions {
		row := i + 2
		f.SetCellValue(championsSheet, fmt.Sprintf("A%d", row), c.Year)
		f.SetCellValue(championsSheet, fmt.Sprintf("B%d", row), c.TeamID)
		f.SetCellValue(championsSheet, fmt.Sprintf("C%d", row), c.AdjPayroll)
		f.SetCellValue(championsSheet, fmt.Sprintf("D%d", row), c.PayrollRank)
		f.SetCellValue(championsSheet, fmt.Sprintf("E%d", row), c.Teams)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
