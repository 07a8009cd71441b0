// Package config handles exlog configuration parsing and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by default.
const FileName = "exlog.yaml"

// Config represents the exlog.yaml configuration file.
type Config struct {
	Version  string         `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Entry    EntryConfig    `yaml:"entry"`
	Chart    ChartConfig    `yaml:"chart"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// EntryConfig controls form validation.
type EntryConfig struct {
	// StrictIntensity rejects intensities other than Low, Medium and High.
	StrictIntensity bool `yaml:"strict_intensity"`
}

// ChartConfig controls console chart rendering.
type ChartConfig struct {
	Width int `yaml:"width"` // columns used by the longest bar
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	DefaultPath string `yaml:"default_path"`
}

// LogConfig sends logs to a rotating file instead of stderr when File is set.
type LogConfig struct {
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Database: DatabaseConfig{
			Path: "actividad_fisica.db",
		},
		Chart: ChartConfig{
			Width: 40,
		},
		Export: ExportConfig{
			DefaultPath: "ejercicios.csv",
		},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads and parses the exlog.yaml config file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must be set")
	}

	if c.Chart.Width < 10 {
		return fmt.Errorf("chart.width must be at least 10, got %d", c.Chart.Width)
	}

	if c.Log.File != "" && c.Log.MaxSizeMB < 1 {
		return fmt.Errorf("log.max_size_mb must be at least 1")
	}

	return nil
}

// FindConfigFile searches for exlog.yaml in current and parent directories.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; dir = filepath.Dir(dir) {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		if dir == filepath.Dir(dir) {
			break
		}
	}

	return "", fmt.Errorf("%s not found in %s or parent directories", FileName, cwd)
}
