package tornado

import "github.com/paulmach/orb"

// texasBound is a screen box around Texas, slightly generous on every side
// so border-county tracks survive the filter. Orb points are lon/lat ordered.
var texasBound = orb.Bound{
	Min: orb.Point{-106.65, 25.84},
	Max: orb.Point{-93.51, 36.50},
}

// ContinentalBound covers the lower 48 states. The validator uses it to
// range-check coordinates.
var ContinentalBound = orb.Bound{
	Min: orb.Point{-125.0, 24.5},
	Max: orb.Point{-66.9, 49.4},
}

// texasOutline is a simplified border ring, traced clockwise from the
// northwest corner of the panhandle. Enough vertices to be recognizable
// under a point map, few enough to stay out of the data's way.
var texasOutline = orb.Ring{
	{-103.04, 36.50}, {-100.00, 36.50}, {-100.00, 34.56}, {-99.21, 34.21},
	{-98.10, 34.15}, {-96.92, 33.96}, {-95.79, 33.87}, {-94.48, 33.64},
	{-94.04, 33.55}, {-94.04, 31.99}, {-93.84, 31.80}, {-93.72, 31.51},
	{-93.60, 31.17}, {-93.68, 30.92}, {-93.70, 30.40}, {-93.76, 29.98},
	{-93.87, 29.74}, {-94.70, 29.55}, {-95.30, 28.93}, {-96.30, 28.42},
	{-97.00, 27.90}, {-97.38, 27.40}, {-97.30, 26.60}, {-97.15, 25.95},
	{-97.17, 25.84}, {-98.08, 26.06}, {-99.10, 26.40}, {-99.45, 27.02},
	{-99.51, 27.56}, {-100.30, 28.28}, {-100.65, 28.94}, {-101.40, 29.77},
	{-102.30, 29.88}, {-102.84, 29.35}, {-103.26, 28.98}, {-104.00, 29.32},
	{-104.53, 29.68}, {-104.90, 30.22}, {-105.39, 30.85}, {-106.00, 31.40},
	{-106.51, 31.75}, {-106.65, 31.90}, {-106.62, 32.00}, {-103.06, 32.00},
	{-103.04, 36.50},
}

// InTexas reports whether the coordinate falls inside the Texas screen box.
func InTexas(c Coord) bool {
	return texasBound.Contains(orb.Point{c.Lon, c.Lat})
}

// FilterBound returns the records whose begin point falls inside b.
// Records with a zero begin coordinate are dropped.
func FilterBound(recs []Record, b orb.Bound) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if rec.Begin.Lat == 0 && rec.Begin.Lon == 0 {
			continue
		}
		if b.Contains(orb.Point{rec.Begin.Lon, rec.Begin.Lat}) {
			out = append(out, rec)
		}
	}
	return out
}

// MapPoints returns the begin coordinates suitable for the point map:
// records without a begin coordinate or outside the Texas box are skipped,
// everything else stays in the aggregates regardless.
func MapPoints(recs []Record) []Coord {
	points := make([]Coord, 0, len(recs))
	for _, rec := range FilterBound(recs, texasBound) {
		points = append(points, rec.Begin)
	}
	return points
}

// TexasOutline returns the border ring as lat/lon coordinates for drawing
// under the point map.
func TexasOutline() []Coord {
	out := make([]Coord, len(texasOutline))
	for i, p := range texasOutline {
		out[i] = Coord{Lat: p.Lat(), Lon: p.Lon()}
	}
	return out
}
