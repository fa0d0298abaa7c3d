package internal

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDatabaseFile is the database created in the working directory
	// when no config or flag overrides it.
	DefaultDatabaseFile = "time-commander.db"
	// DefaultExportFile is the fixed export destination.
	DefaultExportFile = "time-commander.csv"

	configFileName = ".time-commander.yaml"
)

// Config holds the optional user configuration. Empty fields fall back to
// the defaults above.
type Config struct {
	Database   string `yaml:"database"`
	ExportFile string `yaml:"export_file"`
}

// LoadConfig reads ~/.time-commander.yaml if present. A missing home
// directory or config file silently yields the defaults; a malformed file
// is logged and ignored.
func LoadConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFile(filepath.Join(home, configFileName))
}

func loadConfigFile(path string) Config {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		LogDebug("No config file at %s, using defaults", path)
		return defaultConfig()
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		LogWarn("Ignoring malformed config %s: %v", path, err)
		return defaultConfig()
	}
	cfg.applyDefaults()
	return cfg
}

func defaultConfig() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Database == "" {
		c.Database = DefaultDatabaseFile
	}
	if c.ExportFile == "" {
		c.ExportFile = DefaultExportFile
	}
}
