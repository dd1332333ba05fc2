package solar

import (
	"testing"
	"time"

	"github.com/chrissnell/yeswatch/pkg/geo"
	"github.com/chrissnell/yeswatch/pkg/localtime"
	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
)

type place struct {
	name  string
	date  localtime.Date
	lat   float64
	lon   float64
	tzMin int32
	rise  int
	set   int
}

var referencePlaces = []place{
	{"Cupertino new year", day(2024, 1, 1), 37.3229978, -122.0321823, -480, 442, 1021},
	{"Equator at equinox", day(2024, 3, 20), 0, 0, 0, 365, 1092},
	{"Seattle summer solstice", day(2024, 6, 20), 47.6, -122.3, -420, 311, 1271},
	{"London winter solstice", day(2024, 12, 21), 51.5, -0.1, 0, 484, 954},
	{"Tokyo summer", day(2024, 6, 20), 35.6762, 139.6503, 540, 266, 1141},
	{"Sydney winter", day(2023, 7, 4), -33.8688, 151.2093, 600, 421, 1018},
	{"Madrid autumn equinox", day(2024, 9, 22), 40.4168, -3.7038, 120, 482, 1212},
	{"Buenos Aires autumn", day(2024, 3, 10), -34.6037, -58.3816, -180, 409, 1159},
	{"Moscow november", day(2024, 11, 5), 55.7558, 37.6173, 180, 465, 1002},
}

func TestCalculateSunriseSunsetLocal(t *testing.T) {
	for _, tt := range referencePlaces {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSunriseSunsetLocal(tt.date.Year, tt.date.Month, tt.date.Day, tt.lat, tt.lon, tt.tzMin)
			if !got.Valid || got.AlwaysDay || got.AlwaysNight {
				t.Fatalf("expected a normal day, got %+v", got)
			}
			if got.SunriseMin != tt.rise || got.SunsetMin != tt.set {
				t.Errorf("got rise=%d set=%d, want rise=%d set=%d", got.SunriseMin, got.SunsetMin, tt.rise, tt.set)
			}
		})
	}
}

func TestAgainstFloatingPointReference(t *testing.T) {
	const tolerance = 5.0 // minutes

	for _, tt := range referencePlaces {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSunriseSunsetLocal(tt.date.Year, tt.date.Month, tt.date.Day, tt.lat, tt.lon, tt.tzMin)

			rise, set := sunrise.SunriseSunset(tt.lat, tt.lon, tt.date.Year, time.Month(tt.date.Month), tt.date.Day)
			zone := time.FixedZone("", int(tt.tzMin)*60)
			midnight := time.Date(tt.date.Year, time.Month(tt.date.Month), tt.date.Day, 0, 0, 0, 0, zone)
			wantRise := rise.Sub(midnight).Minutes()
			wantSet := set.Sub(midnight).Minutes()

			if d := float64(got.SunriseMin) - wantRise; d > tolerance || d < -tolerance {
				t.Errorf("sunrise %d differs from reference %.1f by %.1f minutes", got.SunriseMin, wantRise, d)
			}
			if d := float64(got.SunsetMin) - wantSet; d > tolerance || d < -tolerance {
				t.Errorf("sunset %d differs from reference %.1f by %.1f minutes", got.SunsetMin, wantSet, d)
			}
		})
	}
}

func TestPolarDayAndNight(t *testing.T) {
	tests := []struct {
		name        string
		date        localtime.Date
		lat         float64
		alwaysDay   bool
		alwaysNight bool
	}{
		{"75N June solstice", day(2024, 6, 20), 75, true, false},
		{"75N December solstice", day(2024, 12, 21), 75, false, true},
		{"75S June solstice", day(2024, 6, 20), -75, false, true},
		{"75S December solstice", day(2024, 12, 21), -75, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSunriseSunsetLocal(tt.date.Year, tt.date.Month, tt.date.Day, tt.lat, 0, 0)
			if !got.Valid {
				t.Fatal("expected result to be valid")
			}
			if got.AlwaysDay != tt.alwaysDay || got.AlwaysNight != tt.alwaysNight {
				t.Errorf("got always_day=%v always_night=%v, want %v/%v", got.AlwaysDay, got.AlwaysNight, tt.alwaysDay, tt.alwaysNight)
			}
			if got.SunriseMin != 0 || got.SunsetMin != 0 {
				t.Errorf("expected unpopulated minutes, got %+v", got)
			}
		})
	}
}

func TestPartialCrossings(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		latE6 int32
		tzMin int32
		rise  int
		set   int
		text  string
	}{
		// Rise near 12:20 local, set falls past midnight and is never seen.
		{"set missing defaults to midnight", 74, 60000000, 360, 740, 0, "SR 12:20  SS 00:00"},
		// Rise falls before local midnight, only the set is seen.
		{"rise missing defaults to midnight", 272, 60000000, -360, 0, 703, "SR 00:00  SS 11:43"},
		// Crossings at 00:01 (set), 11:46 (rise), 23:57 (set); the later set is dropped.
		{"first crossing of each kind wins", 267, 64000000, 360, 706, 1, "SR 11:46  SS 00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solve(tt.n, tt.latE6, 0, tt.tzMin, sampleStep)
			if !got.Valid || got.AlwaysDay || got.AlwaysNight {
				t.Fatalf("expected regular day, got %+v", got)
			}
			if got.SunriseMin != tt.rise || got.SunsetMin != tt.set {
				t.Errorf("got rise=%d set=%d, want rise=%d set=%d", got.SunriseMin, got.SunsetMin, tt.rise, tt.set)
			}
			if s := got.String(); s != tt.text {
				t.Errorf("String() = %q, want %q", s, tt.text)
			}
		})
	}
}

func TestMidLatitudesAlwaysRiseBeforeSet(t *testing.T) {
	for lat := -59; lat < 60; lat += 7 {
		for d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2024; d = d.AddDate(0, 0, 5) {
			got := CalculateSunriseSunsetLocal(d.Year(), int(d.Month()), d.Day(), float64(lat), 0, 0)
			if got.AlwaysDay || got.AlwaysNight {
				t.Errorf("lat %d on %s: unexpected polar result %+v", lat, d.Format("2006-01-02"), got)
				continue
			}
			if !(0 <= got.SunriseMin && got.SunriseMin < got.SunsetMin && got.SunsetMin <= 1439) {
				t.Errorf("lat %d on %s: rise=%d set=%d out of order", lat, d.Format("2006-01-02"), got.SunriseMin, got.SunsetMin)
			}
		}
	}
}

func TestFinerSamplingAgrees(t *testing.T) {
	for _, lat := range []float64{-58, -30, 0, 30, 58} {
		for month := 1; month <= 12; month++ {
			date := localtime.Date{Year: 2024, Month: month, Day: 15}
			loc := geo.NewLocation(lat, 13, 60)

			coarse := solve(date.DayOfYear(), loc.LatE6, loc.LonE6, loc.TZOffsetMin, sampleStep)
			fine := solve(date.DayOfYear(), loc.LatE6, loc.LonE6, loc.TZOffsetMin, 1)

			if abs(coarse.SunriseMin-fine.SunriseMin) >= 10 || abs(coarse.SunsetMin-fine.SunsetMin) >= 10 {
				t.Errorf("lat %v month %d: coarse %+v, fine %+v", lat, month, coarse, fine)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for _, tt := range referencePlaces {
		a := CalculateSunriseSunsetLocal(tt.date.Year, tt.date.Month, tt.date.Day, tt.lat, tt.lon, tt.tzMin)
		b := CalculateSunriseSunsetLocal(tt.date.Year, tt.date.Month, tt.date.Day, tt.lat, tt.lon, tt.tzMin)
		if a != b {
			t.Errorf("%s: %+v != %+v", tt.name, a, b)
		}
	}
}

func TestSolsticeSymmetry(t *testing.T) {
	const tolerance = 5 // minutes

	june := solsticeDate(solstice.June(2024))
	december := solsticeDate(solstice.December(2024))

	for _, lat := range []float64{20, 40, 55, 65} {
		north := CalculateSunriseSunsetLocal(june.Year, june.Month, june.Day, lat, 0, 0)
		south := CalculateSunriseSunsetLocal(december.Year, december.Month, december.Day, -lat, 0, 0)

		if d := north.DayLength() - south.DayLength(); d > tolerance || d < -tolerance {
			t.Errorf("lat %v: June day %d min, mirrored December day %d min", lat, north.DayLength(), south.DayLength())
		}
	}
}

func TestForLocationMatchesDegrees(t *testing.T) {
	tt := referencePlaces[0]
	loc := geo.NewLocation(tt.lat, tt.lon, tt.tzMin)
	if got, want := ForLocation(tt.date, loc), CalculateSunriseSunsetLocal(tt.date.Year, tt.date.Month, tt.date.Day, tt.lat, tt.lon, tt.tzMin); got != want {
		t.Errorf("ForLocation() = %+v, want %+v", got, want)
	}
}

func TestSunTimesString(t *testing.T) {
	tests := []struct {
		st   SunTimes
		want string
	}{
		{SunTimes{Valid: true, SunriseMin: 442, SunsetMin: 1021}, "SR 07:22  SS 17:01"},
		{SunTimes{Valid: true, AlwaysDay: true}, "SUN: ALWAYS DAY"},
		{SunTimes{Valid: true, AlwaysNight: true}, "SUN: ALWAYS NIGHT"},
		{SunTimes{}, "SUN: --"},
	}

	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNextEvent(t *testing.T) {
	st := SunTimes{Valid: true, SunriseMin: 360, SunsetMin: 1080}

	tests := []struct {
		name string
		st   SunTimes
		now  int
		want Event
		text string
	}{
		{"before sunrise", st, 300, Event{EventSunrise, 60}, "SR in 1:00"},
		{"daytime", st, 725, Event{EventSunset, 355}, "SS in 5:55"},
		{"at sunset", st, 1080, Event{EventSunrise, 720}, "SR in 12:00"},
		{"late evening", st, 1430, Event{EventSunrise, 370}, "SR in 6:10"},
		{"polar day", SunTimes{Valid: true, AlwaysDay: true}, 100, Event{Kind: EventAlwaysDay}, "SUN DAY"},
		{"polar night", SunTimes{Valid: true, AlwaysNight: true}, 100, Event{Kind: EventAlwaysNight}, "SUN NITE"},
		{"unknown time", st, -1, Event{Kind: EventNone}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.st.NextEvent(tt.now)
			if got != tt.want {
				t.Errorf("NextEvent(%d) = %+v, want %+v", tt.now, got, tt.want)
			}
			if got.String() != tt.text {
				t.Errorf("String() = %q, want %q", got.String(), tt.text)
			}
		})
	}
}

func TestDayLength(t *testing.T) {
	if got := (SunTimes{Valid: true, SunriseMin: 1300, SunsetMin: 100}).DayLength(); got != 240 {
		t.Errorf("wrapped DayLength() = %d, want 240", got)
	}
	if got := (SunTimes{Valid: true, AlwaysDay: true}).DayLength(); got != 1440 {
		t.Errorf("polar day DayLength() = %d, want 1440", got)
	}
	if got := (SunTimes{Valid: true, AlwaysNight: true}).DayLength(); got != 0 {
		t.Errorf("polar night DayLength() = %d, want 0", got)
	}
}

func solsticeDate(jde float64) localtime.Date {
	y, m, d := julian.JDToCalendar(jde)
	return localtime.Date{Year: y, Month: m, Day: int(d)}
}

func day(y, m, d int) localtime.Date {
	return localtime.Date{Year: y, Month: m, Day: d}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
