// Package tornado models tornado records from SPC-style CSV exports and
// derives the aggregate views behind the Texas tornado case study.
//
// # Data Source
//
// Records originate from the NOAA Storm Prediction Center severe weather
// database (https://www.spc.noaa.gov/wcm/), one row per tornado with the
// record number, date, begin time, state, Fujita rating, casualty counts,
// begin/end coordinates, track length and width, and a free-text reporting
// source.
//
// # CSV Conventions
//
// Time format:
//
//	HHMM in 24-hour notation, e.g. "1510" = 15:10. Values are zero-padded
//	text: "0014" means 12:14 AM. A numeric read destroys the padding
//	("0014" becomes 14), so LoadCSV pins the column to string and
//	parseHHMM re-pads short values. The date column carries no time of
//	day; the two combine into BeginTime.
//
// Fujita rating ("mag" column):
//
//	Integer 0-5, occasionally prefixed ("EF3", "F3"). The prefixes are
//	stripped during parsing. "UNK", "-9", and empty mean unknown and map
//	to ScaleUnknown (-1); 0 is a real rating and must not absorb them.
//
// Reporting source:
//
//	Free text, often ending in a parenthesized NWS Weather Forecast
//	Office code: "Storm survey team (FWD)" -> office code "FWD".
//	Codes are 3-5 uppercase letters. Extracted by [extractSourceCode].
//
// # Derivations
//
// Summarize produces per-month and per-hour counts, four six-hour day-part
// bins, rating and office-code distributions, casualty totals, and the share
// of records on or after a cutoff date. Hour-of-day views only cover records
// whose time field parsed; WithTime reports how many did.
//
// Geographic helpers screen begin points against a Texas bounding box and
// expose a simplified border ring for the point map.
package tornado
