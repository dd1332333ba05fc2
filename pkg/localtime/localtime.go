// Package localtime derives a location's wall-clock date and time by shifting
// UTC with the location's fixed offset. There is no timezone database and no
// DST handling.
package localtime

import (
	"errors"
	"fmt"
	"time"

	"github.com/chrissnell/yeswatch/pkg/geo"
)

var (
	ErrInvalidLocation  = errors.New("location is missing or invalid")
	ErrClockUnavailable = errors.New("platform clock unavailable")
)

// Clock reads the current UTC time.
type Clock interface {
	Now() (time.Time, error)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() (time.Time, error)

func (f ClockFunc) Now() (time.Time, error) { return f() }

// SystemClock reads the host wall clock.
var SystemClock Clock = ClockFunc(func() (time.Time, error) {
	return time.Now().UTC(), nil
})

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() (time.Time, error) { return t.UTC(), nil })
}

// LocationLocalTime returns the current wall-clock time at loc and the
// minutes elapsed since local midnight.
func LocationLocalTime(clock Clock, loc *geo.Location) (time.Time, int, error) {
	if loc == nil || !loc.Valid {
		return time.Time{}, 0, ErrInvalidLocation
	}
	if clock == nil {
		clock = SystemClock
	}

	now, err := clock.Now()
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %v", ErrClockUnavailable, err)
	}

	local := now.In(time.FixedZone("", int(loc.TZOffsetMin)*60))
	return local, local.Hour()*60 + local.Minute(), nil
}

// YMDForLocationNow returns the current calendar date at loc and the same
// date packed as YYYYMMDD.
func YMDForLocationNow(clock Clock, loc *geo.Location) (Date, int, error) {
	local, _, err := LocationLocalTime(clock, loc)
	if err != nil {
		return Date{}, 0, err
	}

	d := DateOf(local)
	return d, d.Packed(), nil
}
