package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LocationYAML is the on-disk form of a location
type LocationYAML struct {
	Name            string  `yaml:"name"`
	Latitude        float64 `yaml:"latitude"`
	Longitude       float64 `yaml:"longitude"`
	TZOffsetMinutes int32   `yaml:"tz_offset_minutes"`
}

// RESTServerYAML is the on-disk form of the REST server section
type RESTServerYAML struct {
	ListenAddr string `yaml:"listen_addr,omitempty"`
	HTTPPort   int    `yaml:"http_port,omitempty"`
}

// LogYAML is the on-disk form of the logging section
type LogYAML struct {
	Debug bool   `yaml:"debug,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	if y.config != nil {
		return y.config, nil
	}

	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	config, err := parseYAML(cfgFile)
	if err != nil {
		return nil, err
	}

	y.config = config
	return config, nil
}

func parseYAML(data []byte) (*ConfigData, error) {
	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Locations []LocationYAML `yaml:"locations"`
		REST      RESTServerYAML `yaml:"rest,omitempty"`
		Log       LogYAML        `yaml:"log,omitempty"`
	}

	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Locations: make([]LocationData, len(yamlConfig.Locations)),
		REST: RESTServerData{
			ListenAddr: yamlConfig.REST.ListenAddr,
			HTTPPort:   yamlConfig.REST.HTTPPort,
		},
		Log: LogData{
			Debug: yamlConfig.Log.Debug,
			File:  yamlConfig.Log.File,
		},
	}

	for i, loc := range yamlConfig.Locations {
		config.Locations[i] = LocationData{
			Name:            loc.Name,
			Latitude:        loc.Latitude,
			Longitude:       loc.Longitude,
			TZOffsetMinutes: loc.TZOffsetMinutes,
		}
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// GetLocations returns all configured locations
func (y *YAMLProvider) GetLocations() ([]LocationData, error) {
	config, err := y.LoadConfig()
	if err != nil {
		return nil, err
	}
	return config.Locations, nil
}

// GetLocation returns a single location by name
func (y *YAMLProvider) GetLocation(name string) (*LocationData, error) {
	config, err := y.LoadConfig()
	if err != nil {
		return nil, err
	}
	return config.FindLocation(name)
}

// GetRESTServerConfig returns the REST server configuration
func (y *YAMLProvider) GetRESTServerConfig() (*RESTServerData, error) {
	config, err := y.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &config.REST, nil
}

// IsReadOnly returns true since YAML files are treated as read-only
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// StaticProvider serves an in-memory configuration. The one-shot CLI and
// tests use it when no config file is given.
type StaticProvider struct {
	config *ConfigData
}

// NewStaticProvider wraps an already-built configuration
func NewStaticProvider(config *ConfigData) *StaticProvider {
	config.ApplyDefaults()
	return &StaticProvider{config: config}
}

func (s *StaticProvider) LoadConfig() (*ConfigData, error) { return s.config, nil }

func (s *StaticProvider) GetLocations() ([]LocationData, error) { return s.config.Locations, nil }

func (s *StaticProvider) GetLocation(name string) (*LocationData, error) {
	return s.config.FindLocation(name)
}

func (s *StaticProvider) GetRESTServerConfig() (*RESTServerData, error) { return &s.config.REST, nil }

func (s *StaticProvider) IsReadOnly() bool { return true }

func (s *StaticProvider) Close() error { return nil }
