package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chrissnell/yeswatch/pkg/geo"
	"github.com/joho/godotenv"
)

// ErrLocationNotFound is returned when a named location is not configured.
var ErrLocationNotFound = errors.New("location not found")

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetLocations() ([]LocationData, error)
	GetLocation(name string) (*LocationData, error)
	GetRESTServerConfig() (*RESTServerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Locations []LocationData `json:"locations"`
	REST      RESTServerData `json:"rest"`
	Log       LogData        `json:"log"`
}

// LocationData holds a named place the face can be pointed at
type LocationData struct {
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	TZOffsetMinutes int32   `json:"tz_offset_minutes"`
}

// RESTServerData holds the preview REST server configuration
type RESTServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	HTTPPort   int    `json:"http_port,omitempty"`
}

// LogData holds logging configuration
type LogData struct {
	Debug bool   `json:"debug,omitempty"`
	File  string `json:"file,omitempty"`
}

const (
	DefaultListenAddr = "0.0.0.0"
	DefaultHTTPPort   = 8080

	maxTZOffsetMinutes = 14 * 60
)

// Location converts the configured place to the engine's fixed-point form.
func (l LocationData) Location() geo.Location {
	return geo.NewLocation(l.Latitude, l.Longitude, l.TZOffsetMinutes)
}

// ApplyDefaults fills in unset server settings
func (c *ConfigData) ApplyDefaults() {
	if c.REST.ListenAddr == "" {
		c.REST.ListenAddr = DefaultListenAddr
	}
	if c.REST.HTTPPort == 0 {
		c.REST.HTTPPort = DefaultHTTPPort
	}
}

// ApplyEnv loads an optional .env file and lets YESWATCH_* environment
// variables override server and logging settings.
func (c *ConfigData) ApplyEnv(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error reading env file: %w", err)
	}

	if v := os.Getenv("YESWATCH_LISTEN_ADDR"); v != "" {
		c.REST.ListenAddr = v
	}
	if v := os.Getenv("YESWATCH_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid YESWATCH_HTTP_PORT %q: %w", v, err)
		}
		c.REST.HTTPPort = port
	}
	if v := os.Getenv("YESWATCH_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid YESWATCH_DEBUG %q: %w", v, err)
		}
		c.Log.Debug = debug
	}
	if v := os.Getenv("YESWATCH_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate checks locations and server settings
func (c *ConfigData) Validate() error {
	seen := make(map[string]bool)
	for i, loc := range c.Locations {
		name := strings.TrimSpace(loc.Name)
		if name == "" {
			return fmt.Errorf("location %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate location name: %s", name)
		}
		seen[name] = true

		if math.IsNaN(loc.Latitude) || math.Abs(loc.Latitude) > 90 {
			return fmt.Errorf("location %s: latitude %v out of range", name, loc.Latitude)
		}
		if math.IsNaN(loc.Longitude) || math.Abs(loc.Longitude) > 180 {
			return fmt.Errorf("location %s: longitude %v out of range", name, loc.Longitude)
		}
		if loc.TZOffsetMinutes < -maxTZOffsetMinutes || loc.TZOffsetMinutes > maxTZOffsetMinutes {
			return fmt.Errorf("location %s: tz offset %d minutes out of range", name, loc.TZOffsetMinutes)
		}
	}

	if c.REST.HTTPPort < 0 || c.REST.HTTPPort > 65535 {
		return fmt.Errorf("invalid rest.http_port: %d", c.REST.HTTPPort)
	}
	return nil
}

// FindLocation returns the named location
func (c *ConfigData) FindLocation(name string) (*LocationData, error) {
	for i := range c.Locations {
		if c.Locations[i].Name == name {
			return &c.Locations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, name)
}
