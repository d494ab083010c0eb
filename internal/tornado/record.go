package tornado

import "time"

// ScaleUnknown marks records whose Fujita rating is missing or unparseable.
// 0 is a real rating (EF0), so unknown needs its own sentinel.
const ScaleUnknown = -1

// Coord is a WGS-84 latitude/longitude pair.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Record is one tornado report row after parsing.
type Record struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	TimeRaw    string    `json:"time_raw,omitempty"`
	BeginTime  time.Time `json:"begin_time"`
	HasTime    bool      `json:"has_time"`
	State      string    `json:"state"`
	Scale      int       `json:"scale"`
	Injuries   int       `json:"injuries"`
	Fatalities int       `json:"fatalities"`
	Begin      Coord     `json:"begin"`
	End        Coord     `json:"end"`
	LengthMi   float64   `json:"length_mi"`
	WidthYd    float64   `json:"width_yd"`
	Source     string    `json:"source,omitempty"`
	SourceCode string    `json:"source_code,omitempty"`
}
