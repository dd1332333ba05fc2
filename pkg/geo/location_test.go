package geo

import "testing"

func TestDegreesToE6(t *testing.T) {
	tests := []struct {
		deg  float64
		want int32
	}{
		{0, 0},
		{37.3229978, 37322998},
		{-122.0321823, -122032182},
		{0.0000009, 1},
		{-0.0000009, -1},
		{90, 90000000},
		{-180, -180000000},
	}

	for _, tt := range tests {
		if got := DegreesToE6(tt.deg); got != tt.want {
			t.Errorf("DegreesToE6(%v) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}

func TestNewLocation(t *testing.T) {
	loc := NewLocation(47.6, -122.3, -420)
	if !loc.Valid {
		t.Fatal("expected location to be valid")
	}
	if loc.LatE6 != 47600000 || loc.LonE6 != -122300000 || loc.TZOffsetMin != -420 {
		t.Errorf("unexpected location %+v", loc)
	}
	if got := loc.LatDegrees(); got != 47.6 {
		t.Errorf("LatDegrees() = %v, want 47.6", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"positive", FormatE6(37322998), "+37.32"},
		{"negative", FormatE6(-122032182), "-122.03"},
		{"small negative", FormatE6(-5000), "-0.00"},
		{"zero", FormatE6(0), "+0.00"},
		{"offset west", FormatOffset(-300), "-05:00"},
		{"offset half hour", FormatOffset(330), "+05:30"},
		{"location", NewLocation(37.3229978, -122.0321823, -480).String(), "LAT +37.32  LON -122.03  TZ -08:00"},
		{"invalid location", Location{}.String(), "LAT/LON --"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
