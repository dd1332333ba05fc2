package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/yeswatch/pkg/config"
	"github.com/chrissnell/yeswatch/pkg/localtime"
	"github.com/chrissnell/yeswatch/pkg/solar"
)

func main() {
	yamlFile := flag.String("yaml", "", "Path to YAML configuration file")
	flag.Parse()

	if *yamlFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println("Configuration Test")
	fmt.Println("==================")

	fmt.Printf("Loading YAML configuration: %s\n", *yamlFile)
	provider := config.NewYAMLProvider(*yamlFile)
	cfg, err := provider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nREST server: %s:%d\n", cfg.REST.ListenAddr, cfg.REST.HTTPPort)
	fmt.Printf("Log: debug=%v file=%q\n", cfg.Log.Debug, cfg.Log.File)

	fmt.Printf("\nLocations: %d\n", len(cfg.Locations))
	failed := false
	for _, l := range cfg.Locations {
		loc := l.Location()
		date, _, err := localtime.YMDForLocationNow(localtime.SystemClock, &loc)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", l.Name, err)
			failed = true
			continue
		}
		fmt.Printf("✓ %-16s %s  %s  %s\n", l.Name, loc, date, solar.ForLocation(date, loc))
	}

	if failed {
		os.Exit(1)
	}
}
