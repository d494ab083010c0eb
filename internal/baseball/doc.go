// Package baseball derives the payroll-versus-wins case study from a
// Lahman-style baseball database.
//
// Inputs are three tables: per-player salaries (summed into team-season
// payrolls by the store), team season lines with win/loss records and the
// four postseason flags, and postseason series outcomes. Payrolls are
// left-joined onto seasons by the composite team+year key, converted to
// constant dollars with an inflation table, and marked with each year's
// World Series winner. On top of the joined table the package computes the
// wide-to-long payroll reshape, a least-squares fit of wins against
// adjusted payroll, and a summary with champion payroll rankings.
package baseball
