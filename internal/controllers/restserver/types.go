package restserver

import (
	"github.com/chrissnell/yeswatch/pkg/geo"
	"github.com/chrissnell/yeswatch/pkg/lunar"
	"github.com/chrissnell/yeswatch/pkg/solar"
)

// SunResponse is returned by /sun and /locations/{name}/sun
type SunResponse struct {
	Date         string         `json:"date"`
	DayOfYear    int            `json:"day_of_year"`
	Location     geo.Location   `json:"location"`
	Sun          solar.SunTimes `json:"sun"`
	DayLengthMin int            `json:"day_length_min"`
	Summary      string         `json:"summary"`
}

// LocationResponse describes one configured location
type LocationResponse struct {
	Name            string       `json:"name"`
	Latitude        float64      `json:"latitude"`
	Longitude       float64      `json:"longitude"`
	TZOffsetMinutes int32        `json:"tz_offset_minutes"`
	Fixed           geo.Location `json:"fixed"`
	Display         string       `json:"display"`
}

// NowResponse is returned by /locations/{name}/now
type NowResponse struct {
	Name                 string         `json:"name"`
	LocalTime            string         `json:"local_time"`
	Date                 string         `json:"date"`
	YMD                  int            `json:"ymd"`
	MinutesSinceMidnight int            `json:"minutes_since_midnight"`
	Sun                  solar.SunTimes `json:"sun"`
	NextEvent            solar.Event    `json:"next_event"`
	NextEventText        string         `json:"next_event_text"`

	// Moon fields are present only when the request supplies moon times.
	Moon              *lunar.MoonTimes `json:"moon,omitempty"`
	NextMoonEvent     *lunar.Event     `json:"next_moon_event,omitempty"`
	NextMoonEventText string           `json:"next_moon_event_text,omitempty"`
}
