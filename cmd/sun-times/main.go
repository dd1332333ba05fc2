package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/yeswatch/pkg/config"
	"github.com/chrissnell/yeswatch/pkg/geo"
	"github.com/chrissnell/yeswatch/pkg/localtime"
	"github.com/chrissnell/yeswatch/pkg/solar"
)

func main() {
	var (
		dateStr = flag.String("date", "", "Local date to calculate for (YYYY-MM-DD); defaults to today at the location")
		lat     = flag.Float64("lat", 0, "Latitude in degrees, north positive")
		lon     = flag.Float64("lon", 0, "Longitude in degrees, east positive")
		tz      = flag.Int("tz", 0, "Fixed UTC offset in minutes, e.g. -480 for PST")
		cfgFile = flag.String("config", "", "Optional YAML configuration file with named locations")
		locName = flag.String("location", "", "Named location from -config")
	)
	flag.Parse()

	loc := geo.NewLocation(*lat, *lon, int32(*tz))
	if *cfgFile != "" {
		if *locName == "" {
			fmt.Fprintln(os.Stderr, "Error: -location is required with -config")
			os.Exit(1)
		}
		l, err := config.NewYAMLProvider(*cfgFile).GetLocation(*locName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading location: %v\n", err)
			os.Exit(1)
		}
		loc = l.Location()
	}

	var date localtime.Date
	var err error
	if *dateStr == "" {
		date, _, err = localtime.YMDForLocationNow(localtime.SystemClock, &loc)
	} else {
		date, err = localtime.ParseDate(*dateStr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving date: %v\n", err)
		os.Exit(1)
	}

	sun := solar.ForLocation(date, loc)

	fmt.Printf("Sun Times for %s (day %d)\n", date, date.DayOfYear())
	fmt.Printf("  Location:   %s\n", loc)
	fmt.Printf("  Times:      %s\n", sun)
	fmt.Printf("  Day Length: %d:%02d\n", sun.DayLength()/60, sun.DayLength()%60)

	if *dateStr == "" {
		if _, now, err := localtime.LocationLocalTime(localtime.SystemClock, &loc); err == nil {
			fmt.Printf("  Next:       %s\n", sun.NextEvent(now))
		}
	}
}
