// Package lunar carries moonrise and moonset results computed elsewhere.
// Values share the minute-of-day shape of solar.SunTimes so a face can render
// both the same way.
package lunar

import (
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 1440

// MoonTimes holds local moonrise and moonset for one day. When AlwaysUp or
// AlwaysDown is set the minute fields carry no meaning.
type MoonTimes struct {
	Valid       bool `json:"valid"`
	AlwaysUp    bool `json:"always_up"`
	AlwaysDown  bool `json:"always_down"`
	MoonriseMin int  `json:"moonrise_min"` // local minutes since midnight
	MoonsetMin  int  `json:"moonset_min"`  // local minutes since midnight
}

// ErrInvalidMoonTimes is returned by Parse for input it cannot represent.
var ErrInvalidMoonTimes = errors.New("invalid moon times")

// Parse builds MoonTimes from the companion's text form: state is "up",
// "down" or empty, rise and set are HH:MM local. Empty input yields an
// invalid MoonTimes and no error.
func Parse(state, rise, set string) (MoonTimes, error) {
	switch state {
	case "up":
		return MoonTimes{Valid: true, AlwaysUp: true}, nil
	case "down":
		return MoonTimes{Valid: true, AlwaysDown: true}, nil
	case "":
	default:
		return MoonTimes{}, fmt.Errorf("%w: state %q", ErrInvalidMoonTimes, state)
	}

	if rise == "" && set == "" {
		return MoonTimes{}, nil
	}
	riseMin, err := parseClock(rise)
	if err != nil {
		return MoonTimes{}, fmt.Errorf("%w: moonrise %q", ErrInvalidMoonTimes, rise)
	}
	setMin, err := parseClock(set)
	if err != nil {
		return MoonTimes{}, fmt.Errorf("%w: moonset %q", ErrInvalidMoonTimes, set)
	}
	return MoonTimes{Valid: true, MoonriseMin: riseMin, MoonsetMin: setMin}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (m MoonTimes) String() string {
	switch {
	case !m.Valid:
		return "MOON: --"
	case m.AlwaysUp:
		return "MOON: ALWAYS UP"
	case m.AlwaysDown:
		return "MOON: ALWAYS DOWN"
	}
	return fmt.Sprintf("MR %02d:%02d  MS %02d:%02d",
		m.MoonriseMin/60, m.MoonriseMin%60,
		m.MoonsetMin/60, m.MoonsetMin%60)
}

// EventKind names the next lunar event shown on the face.
type EventKind int

const (
	EventNone EventKind = iota
	EventMoonrise
	EventMoonset
	EventAlwaysUp
	EventAlwaysDown
)

// Event is the next moonrise or moonset relative to a local minute of day.
type Event struct {
	Kind         EventKind `json:"kind"`
	MinutesUntil int       `json:"minutes_until"`
}

// NextEvent picks whichever of moonrise and moonset comes first after nowMin,
// wrapping into the next day. Ties go to moonrise.
func (m MoonTimes) NextEvent(nowMin int) Event {
	switch {
	case !m.Valid || nowMin < 0:
		return Event{Kind: EventNone}
	case m.AlwaysUp:
		return Event{Kind: EventAlwaysUp}
	case m.AlwaysDown:
		return Event{Kind: EventAlwaysDown}
	}

	untilRise := until(m.MoonriseMin, nowMin)
	untilSet := until(m.MoonsetMin, nowMin)
	if untilRise <= untilSet {
		return Event{Kind: EventMoonrise, MinutesUntil: untilRise}
	}
	return Event{Kind: EventMoonset, MinutesUntil: untilSet}
}

func until(target, now int) int {
	if target >= now {
		return target - now
	}
	return minutesPerDay - now + target
}

func (e Event) String() string {
	switch e.Kind {
	case EventMoonrise:
		return fmt.Sprintf("MR in %d:%02d", e.MinutesUntil/60, e.MinutesUntil%60)
	case EventMoonset:
		return fmt.Sprintf("MS in %d:%02d", e.MinutesUntil/60, e.MinutesUntil%60)
	case EventAlwaysUp:
		return "MOON UP"
	case EventAlwaysDown:
		return "MOON DN"
	}
	return ""
}
