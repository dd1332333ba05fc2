package restserver

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/chrissnell/yeswatch/pkg/config"
	"github.com/chrissnell/yeswatch/pkg/geo"
	"github.com/chrissnell/yeswatch/pkg/localtime"
	"github.com/chrissnell/yeswatch/pkg/lunar"
	"github.com/chrissnell/yeswatch/pkg/responseformat"
	"github.com/chrissnell/yeswatch/pkg/solar"
	"github.com/gorilla/mux"
)

const maxTZOffsetMinutes = 14 * 60

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// GetSun computes sunrise and sunset for ad-hoc coordinates
func (h *Handlers) GetSun(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	lat, err := parseFloatParam(q.Get("lat"), 90)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid lat: "+err.Error())
		return
	}
	lon, err := parseFloatParam(q.Get("lon"), 180)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid lon: "+err.Error())
		return
	}
	tz := int64(0)
	if v := q.Get("tz"); v != "" {
		tz, err = strconv.ParseInt(v, 10, 32)
		if err != nil || tz < -maxTZOffsetMinutes || tz > maxTZOffsetMinutes {
			h.formatter.WriteError(w, req, http.StatusBadRequest, fmt.Sprintf("invalid tz: %q", v))
			return
		}
	}

	h.writeSun(w, req, geo.NewLocation(lat, lon, int32(tz)))
}

// GetLocations lists the configured locations
func (h *Handlers) GetLocations(w http.ResponseWriter, req *http.Request) {
	locations, err := h.controller.configProvider.GetLocations()
	if err != nil {
		h.controller.logger.Errorf("error loading locations: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "error loading locations")
		return
	}

	resp := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		fixed := l.Location()
		resp = append(resp, LocationResponse{
			Name:            l.Name,
			Latitude:        l.Latitude,
			Longitude:       l.Longitude,
			TZOffsetMinutes: l.TZOffsetMinutes,
			Fixed:           fixed,
			Display:         fixed.String(),
		})
	}
	h.formatter.WriteResponse(w, req, resp)
}

// GetLocationSun computes sunrise and sunset for a configured location
func (h *Handlers) GetLocationSun(w http.ResponseWriter, req *http.Request) {
	l, ok := h.lookupLocation(w, req)
	if !ok {
		return
	}
	h.writeSun(w, req, l.Location())
}

// GetLocationNow reports the local date and time at a configured location
// along with the next sun event. Moon times computed elsewhere can be passed
// as moon=up|down or moonrise=HH:MM&moonset=HH:MM.
func (h *Handlers) GetLocationNow(w http.ResponseWriter, req *http.Request) {
	l, ok := h.lookupLocation(w, req)
	if !ok {
		return
	}
	loc := l.Location()

	q := req.URL.Query()
	moon, err := lunar.Parse(q.Get("moon"), q.Get("moonrise"), q.Get("moonset"))
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
		return
	}

	local, minutes, err := localtime.LocationLocalTime(h.controller.clock, &loc)
	if err != nil {
		h.controller.logger.Warnw("local time unavailable", "location", l.Name, "error", err)
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "local time not available yet")
		return
	}
	date := localtime.DateOf(local)

	sun := solar.ForLocation(date, loc)
	next := sun.NextEvent(minutes)
	resp := NowResponse{
		Name:                 l.Name,
		LocalTime:            local.Format(time.RFC3339),
		Date:                 date.String(),
		YMD:                  date.Packed(),
		MinutesSinceMidnight: minutes,
		Sun:                  sun,
		NextEvent:            next,
		NextEventText:        next.String(),
	}
	if moon.Valid {
		moonNext := moon.NextEvent(minutes)
		resp.Moon = &moon
		resp.NextMoonEvent = &moonNext
		resp.NextMoonEventText = moonNext.String()
	}
	h.formatter.WriteResponse(w, req, resp)
}

// writeSun resolves the date (query parameter or local today) and writes a
// SunResponse
func (h *Handlers) writeSun(w http.ResponseWriter, req *http.Request, loc geo.Location) {
	var date localtime.Date
	if v := req.URL.Query().Get("date"); v != "" {
		var err error
		date, err = localtime.ParseDate(v)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		var err error
		date, _, err = localtime.YMDForLocationNow(h.controller.clock, &loc)
		if err != nil {
			h.controller.logger.Warnw("local date unavailable", "error", err)
			h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "local date not available yet")
			return
		}
	}

	sun := solar.ForLocation(date, loc)
	h.formatter.WriteResponse(w, req, SunResponse{
		Date:         date.String(),
		DayOfYear:    date.DayOfYear(),
		Location:     loc,
		Sun:          sun,
		DayLengthMin: sun.DayLength(),
		Summary:      sun.String(),
	})
}

func (h *Handlers) lookupLocation(w http.ResponseWriter, req *http.Request) (*config.LocationData, bool) {
	name := mux.Vars(req)["name"]
	l, err := h.controller.configProvider.GetLocation(name)
	if err != nil {
		if errors.Is(err, config.ErrLocationNotFound) {
			h.formatter.WriteError(w, req, http.StatusNotFound, "location not found: "+name)
		} else {
			h.controller.logger.Errorf("error loading location %s: %v", name, err)
			h.formatter.WriteError(w, req, http.StatusInternalServerError, "error loading location")
		}
		return nil, false
	}
	return l, true
}

func parseFloatParam(v string, limit float64) (float64, error) {
	if v == "" {
		return 0, errors.New("missing")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.Abs(f) > limit {
		return 0, fmt.Errorf("%v out of range", f)
	}
	return f, nil
}
