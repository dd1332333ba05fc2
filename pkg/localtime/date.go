package localtime

import (
	"fmt"
	"time"
)

var daysBeforeMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// Date is a proleptic Gregorian calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
	Day   int `json:"day"`   // 1-31
}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DayOfYear returns the 1-based ordinal of d within its year. Months outside
// 1-12 are clamped; the day is not validated against the month length.
func (d Date) DayOfYear() int {
	m := d.Month
	if m < 1 {
		m = 1
	}
	if m > 12 {
		m = 12
	}
	doy := daysBeforeMonth[m] + d.Day
	if IsLeapYear(d.Year) && m > 2 {
		doy++
	}
	return doy
}

// Packed returns the date as a YYYYMMDD integer.
func (d Date) Packed() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses a YYYY-MM-DD string. The whole string must match and the
// day must exist in its month.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}
