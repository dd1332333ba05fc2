// Package geo holds the fixed-point location a watch face computes against.
package geo

import "fmt"

// Location is a point on Earth in 1e-6 degree units with the fixed UTC
// offset observed there. No DST rules are attached.
type Location struct {
	LatE6       int32 `json:"lat_e6"`
	LonE6       int32 `json:"lon_e6"`
	TZOffsetMin int32 `json:"tz_offset_min"`
	Valid       bool  `json:"valid"`
}

// NewLocation converts plain degrees to a valid Location.
func NewLocation(latDeg, lonDeg float64, tzOffsetMin int32) Location {
	return Location{
		LatE6:       DegreesToE6(latDeg),
		LonE6:       DegreesToE6(lonDeg),
		TZOffsetMin: tzOffsetMin,
		Valid:       true,
	}
}

// DegreesToE6 scales degrees by 1e6, rounding half away from zero.
func DegreesToE6(deg float64) int32 {
	if deg >= 0 {
		return int32(deg*1000000.0 + 0.5)
	}
	return int32(deg*1000000.0 - 0.5)
}

// LatDegrees returns the latitude in plain degrees.
func (l Location) LatDegrees() float64 {
	return float64(l.LatE6) / 1000000.0
}

// LonDegrees returns the longitude in plain degrees.
func (l Location) LonDegrees() float64 {
	return float64(l.LonE6) / 1000000.0
}

func (l Location) String() string {
	if !l.Valid {
		return "LAT/LON --"
	}
	return fmt.Sprintf("LAT %s  LON %s  TZ %s", FormatE6(l.LatE6), FormatE6(l.LonE6), FormatOffset(l.TZOffsetMin))
}

// FormatE6 renders a 1e-6 degree value as a signed degree with two
// truncated decimals, e.g. +37.32 or -122.03.
func FormatE6(e6 int32) string {
	v := int64(e6)
	sign := '+'
	if v < 0 {
		sign = '-'
		v = -v
	}
	whole := v / 1000000
	frac := (v % 1000000) / 10000
	return fmt.Sprintf("%c%d.%02d", sign, whole, frac)
}

// FormatOffset renders a UTC offset in minutes as ±hh:mm.
func FormatOffset(minutes int32) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
