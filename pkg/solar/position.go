package solar

import (
	"math"

	"github.com/chrissnell/yeswatch/pkg/trig"
)

const (
	minutesPerDay = 1440
	secondsPerDay = 86400
	daysPerYear   = 365
)

// SinAltitude returns sin(solar altitude) scaled by trig.MaxRatio for the
// given day of year (1-based) and clock-local minute of day. Latitude and
// longitude are in 1e-6 degrees, east positive; tzOffsetMin is the clock's
// offset from UTC.
//
// Equation of time and declination come from the NOAA Fourier series in the
// fractional-year angle. All intermediates are 64-bit; only the result narrows.
func SinAltitude(dayOfYear, minuteOfDay int, latE6, lonE6, tzOffsetMin int32) int32 {
	// gamma = 2π/365 * (N-1 + (minute-720)/1440)
	a := int64(trig.MaxAngle) * int64(dayOfYear-1) / daysPerYear
	b := int64(trig.MaxAngle) * int64(minuteOfDay-720) / (daysPerYear * minutesPerDay)
	gamma := trig.Angle(a + b)

	sin1, cos1 := int64(trig.Sin(gamma)), int64(trig.Cos(gamma))
	sin2, cos2 := int64(trig.Sin(gamma*2)), int64(trig.Cos(gamma*2))
	sin3, cos3 := int64(trig.Sin(gamma*3)), int64(trig.Cos(gamma*3))

	eqTimeSec := equationOfTime(sin1, cos1, sin2, cos2)
	decl := declination(sin1, cos1, sin2, cos2, sin3, cos3)

	// tst = minute*60 + eqtime + 240*lon - tz*60, in seconds
	lonSec := 240 * int64(lonE6) / 1000000
	tst := int64(minuteOfDay)*60 + eqTimeSec + lonSec - int64(tzOffsetMin)*60
	tst %= secondsPerDay
	if tst < 0 {
		tst += secondsPerDay
	}

	hourAngle := trig.Angle(int64(trig.MaxAngle) * (tst - secondsPerDay/2) / secondsPerDay)
	lat := trig.FromDegreesE6(latE6)

	// sin(alt) = sinφ sinδ + cosφ cosδ cosH, rescaled after every product
	term1 := int64(trig.Sin(lat)) * int64(trig.Sin(decl)) / trig.MaxRatio
	term2 := int64(trig.Cos(lat)) * int64(trig.Cos(decl)) / trig.MaxRatio
	term2 = term2 * int64(trig.Cos(hourAngle)) / trig.MaxRatio

	return clampInt32(term1 + term2)
}

// equationOfTime returns the equation of time in seconds. The bracket is
// summed in parts per million; 13750800 is 229.18 min * 60 s scaled by 1e3,
// so the product comes back to seconds after dividing by 1e9. The original
// firmware divides by 1e6, which overstates the result a thousandfold.
func equationOfTime(sin1, cos1, sin2, cos2 int64) int64 {
	sumE6 := int64(75)
	sumE6 += 1868 * cos1 / trig.MaxRatio
	sumE6 += -32077 * sin1 / trig.MaxRatio
	sumE6 += -14615 * cos2 / trig.MaxRatio
	sumE6 += -40849 * sin2 / trig.MaxRatio
	return 13750800 * sumE6 / 1000000000
}

// declination returns the solar declination as a native angle.
func declination(sin1, cos1, sin2, cos2, sin3, cos3 int64) trig.Angle {
	declE6 := int64(6918)
	declE6 += -399912 * cos1 / trig.MaxRatio
	declE6 += 70257 * sin1 / trig.MaxRatio
	declE6 += -6758 * cos2 / trig.MaxRatio
	declE6 += 907 * sin2 / trig.MaxRatio
	declE6 += -2697 * cos3 / trig.MaxRatio
	declE6 += 1480 * sin3 / trig.MaxRatio
	return trig.FromRadiansE6(int32(declE6))
}

func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
