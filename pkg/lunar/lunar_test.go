package lunar

import (
	"errors"
	"testing"
)

func TestMoonTimesString(t *testing.T) {
	tests := []struct {
		mt   MoonTimes
		want string
	}{
		{MoonTimes{Valid: true, MoonriseMin: 1290, MoonsetMin: 545}, "MR 21:30  MS 09:05"},
		{MoonTimes{Valid: true, AlwaysUp: true}, "MOON: ALWAYS UP"},
		{MoonTimes{Valid: true, AlwaysDown: true}, "MOON: ALWAYS DOWN"},
		{MoonTimes{}, "MOON: --"},
	}

	for _, tt := range tests {
		if got := tt.mt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNextEvent(t *testing.T) {
	mt := MoonTimes{Valid: true, MoonriseMin: 1290, MoonsetMin: 545}

	tests := []struct {
		name string
		mt   MoonTimes
		now  int
		want string
	}{
		{"morning before set", mt, 500, "MS in 0:45"},
		{"afternoon before rise", mt, 600, "MR in 11:30"},
		{"late night wraps to set", mt, 1300, "MS in 11:25"},
		{"exact rise", mt, 1290, "MR in 0:00"},
		{"always up", MoonTimes{Valid: true, AlwaysUp: true}, 10, "MOON UP"},
		{"always down", MoonTimes{Valid: true, AlwaysDown: true}, 10, "MOON DN"},
		{"no data", MoonTimes{}, 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mt.NextEvent(tt.now).String(); got != tt.want {
				t.Errorf("NextEvent(%d) = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		state string
		rise  string
		set   string
		want  MoonTimes
	}{
		{"empty", "", "", "", MoonTimes{}},
		{"rise and set", "", "21:30", "09:05", MoonTimes{Valid: true, MoonriseMin: 1290, MoonsetMin: 545}},
		{"midnight", "", "00:00", "23:59", MoonTimes{Valid: true, MoonriseMin: 0, MoonsetMin: 1439}},
		{"always up", "up", "", "", MoonTimes{Valid: true, AlwaysUp: true}},
		{"always down ignores times", "down", "01:00", "02:00", MoonTimes{Valid: true, AlwaysDown: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.state, tt.rise, tt.set)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		state string
		rise  string
		set   string
	}{
		{"unknown state", "full", "", ""},
		{"rise only", "", "21:30", ""},
		{"set only", "", "", "09:05"},
		{"hour out of range", "", "24:00", "09:05"},
		{"trailing junk", "", "21:30x", "09:05"},
		{"minutes", "", "1290", "545"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.state, tt.rise, tt.set); !errors.Is(err, ErrInvalidMoonTimes) {
				t.Errorf("Parse() error = %v, want ErrInvalidMoonTimes", err)
			}
		})
	}
}
