// Package solar computes clock-local sunrise and sunset minutes with integer
// arithmetic and table-driven trigonometry.
package solar

import (
	"fmt"

	"github.com/chrissnell/yeswatch/pkg/geo"
	"github.com/chrissnell/yeswatch/pkg/localtime"
	"github.com/chrissnell/yeswatch/pkg/trig"
)

const (
	// horizonE6 is the altitude of the sun's center at rise and set:
	// refraction plus solar radius, in 1e-6 degrees.
	horizonE6 = -833000

	sampleStep      = 10 // minutes
	bisectionRounds = 10
)

// sinHorizon is sin(-0.833°) scaled by trig.MaxRatio.
var sinHorizon = trig.Sin(trig.FromDegreesE6(horizonE6))

// SunTimes is the outcome of a sunrise/sunset search for one local day.
// When AlwaysDay or AlwaysNight is set the minute fields carry no meaning.
type SunTimes struct {
	Valid       bool `json:"valid"`
	AlwaysDay   bool `json:"always_day"`
	AlwaysNight bool `json:"always_night"`
	SunriseMin  int  `json:"sunrise_min"` // local minutes since midnight
	SunsetMin   int  `json:"sunset_min"`  // local minutes since midnight
}

// CalculateSunriseSunsetLocal returns the clock-local sunrise and sunset for
// a calendar date at the given coordinates (plain degrees, east positive) and
// fixed UTC offset. It always succeeds; polar day and night are reported
// through the AlwaysDay and AlwaysNight flags.
func CalculateSunriseSunsetLocal(year, month, day int, latDeg, lonDeg float64, tzOffsetMin int32) SunTimes {
	n := localtime.Date{Year: year, Month: month, Day: day}.DayOfYear()
	return solve(n, geo.DegreesToE6(latDeg), geo.DegreesToE6(lonDeg), tzOffsetMin, sampleStep)
}

// ForLocation is CalculateSunriseSunsetLocal for an already-converted
// location.
func ForLocation(date localtime.Date, loc geo.Location) SunTimes {
	return solve(date.DayOfYear(), loc.LatE6, loc.LonE6, loc.TZOffsetMin, sampleStep)
}

// solve samples the day every step minutes, refines each threshold crossing
// by bisection and keeps the first rise and the first set.
func solve(n int, latE6, lonE6, tzOffsetMin int32, step int) SunTimes {
	out := SunTimes{Valid: true}

	above := func(minute int) bool {
		return SinAltitude(n, minute, latE6, lonE6, tzOffsetMin) > sinHorizon
	}

	rise, set := -1, -1
	aboveCount := 0

	prevAbove := above(0)
	if prevAbove {
		aboveCount++
	}

	for m := step; m <= minutesPerDay; m += step {
		mm := m
		if mm == minutesPerDay {
			mm = minutesPerDay - 1
		}
		isAbove := above(mm)
		if isAbove {
			aboveCount++
		}

		if isAbove != prevAbove {
			lo, hi := m-step, m
			for i := 0; i < bisectionRounds; i++ {
				mid := (lo + hi) / 2
				if above(mid) == prevAbove {
					lo = mid
				} else {
					hi = mid
				}
			}
			if isAbove && rise < 0 {
				rise = hi
			} else if !isAbove && set < 0 {
				set = hi
			}
		}

		prevAbove = isAbove
	}

	if rise < 0 && set < 0 {
		samples := minutesPerDay / step
		if aboveCount > samples/2 {
			out.AlwaysDay = true
		} else {
			out.AlwaysNight = true
		}
		return out
	}

	// A side that never crossed stays at midnight.
	if rise < 0 {
		rise = 0
	}
	if set < 0 {
		set = 0
	}
	out.SunriseMin = clampMinute(rise)
	out.SunsetMin = clampMinute(set)
	return out
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	if m > minutesPerDay-1 {
		return minutesPerDay - 1
	}
	return m
}

func (s SunTimes) String() string {
	switch {
	case !s.Valid:
		return "SUN: --"
	case s.AlwaysDay:
		return "SUN: ALWAYS DAY"
	case s.AlwaysNight:
		return "SUN: ALWAYS NIGHT"
	}
	return fmt.Sprintf("SR %02d:%02d  SS %02d:%02d",
		s.SunriseMin/60, s.SunriseMin%60,
		s.SunsetMin/60, s.SunsetMin%60)
}

// DayLength returns the minutes between sunrise and sunset, wrapping past
// midnight. It is 1440 for polar day and 0 for polar night.
func (s SunTimes) DayLength() int {
	switch {
	case s.AlwaysDay:
		return minutesPerDay
	case s.AlwaysNight, !s.Valid:
		return 0
	}
	return ((s.SunsetMin-s.SunriseMin)%minutesPerDay + minutesPerDay) % minutesPerDay
}

// EventKind names the next solar event shown on the face.
type EventKind int

const (
	EventNone EventKind = iota
	EventSunrise
	EventSunset
	EventAlwaysDay
	EventAlwaysNight
)

// Event is the next sunrise or sunset relative to a local minute of day.
type Event struct {
	Kind         EventKind `json:"kind"`
	MinutesUntil int       `json:"minutes_until"`
}

// NextEvent returns the upcoming sunrise or sunset as seen at nowMin local
// minutes after midnight.
func (s SunTimes) NextEvent(nowMin int) Event {
	switch {
	case !s.Valid || nowMin < 0:
		return Event{Kind: EventNone}
	case s.AlwaysDay:
		return Event{Kind: EventAlwaysDay}
	case s.AlwaysNight:
		return Event{Kind: EventAlwaysNight}
	}

	sr, ss := s.SunriseMin, s.SunsetMin
	var ev Event
	if nowMin < sr || nowMin >= ss {
		ev.Kind = EventSunrise
		if nowMin < sr {
			ev.MinutesUntil = sr - nowMin
		} else {
			ev.MinutesUntil = minutesPerDay - nowMin + sr
		}
	} else {
		ev.Kind = EventSunset
		ev.MinutesUntil = ss - nowMin
	}
	if ev.MinutesUntil < 0 {
		ev.MinutesUntil = 0
	}
	return ev
}

func (e Event) String() string {
	switch e.Kind {
	case EventSunrise:
		return fmt.Sprintf("SR in %d:%02d", e.MinutesUntil/60, e.MinutesUntil%60)
	case EventSunset:
		return fmt.Sprintf("SS in %d:%02d", e.MinutesUntil/60, e.MinutesUntil%60)
	case EventAlwaysDay:
		return "SUN DAY"
	case EventAlwaysNight:
		return "SUN NITE"
	}
	return ""
}
