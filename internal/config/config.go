// Package config loads and saves the catnip.toml project configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "catnip.toml"

// DefaultDatabaseFile is the SQLite database filename next to the config.
const DefaultDatabaseFile = "catnip.db"

// DefaultPort is the port the GraphQL server listens on.
const DefaultPort = 4000

// DefaultColors defines the default color configuration.
var DefaultColors = []ColorConfig{
	{Name: "black", Display: "gray"},
	{Name: "white", Display: "gray"},
	{Name: "ginger", Display: "yellow"},
	{Name: "tabby", Display: "yellow"},
	{Name: "calico", Display: "purple"},
	{Name: "tuxedo", Display: "blue"},
	{Name: "gray", Display: "gray"},
}

// ColorConfig defines a single allowed coat color with its display color
// for CLI output.
type ColorConfig struct {
	Name    string `toml:"name"`
	Display string `toml:"display"`
}

// Config holds the catnip configuration.
type Config struct {
	Cats   CatsConfig    `toml:"cats"`
	Server ServerConfig  `toml:"server"`
	Colors []ColorConfig `toml:"colors"`
}

// CatsConfig defines settings for record creation.
type CatsConfig struct {
	Prefix   string `toml:"prefix"`
	IDLength int    `toml:"id_length"`
}

// ServerConfig defines settings for the GraphQL server.
type ServerConfig struct {
	Port     int    `toml:"port"`
	Database string `toml:"database,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Cats: CatsConfig{
			Prefix:   "",
			IDLength: 8,
		},
		Server: ServerConfig{
			Port:     DefaultPort,
			Database: DefaultDatabaseFile,
		},
		Colors: DefaultColors,
	}
}

// Load reads configuration from the given directory.
// Returns default config if the file doesn't exist.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.Cats.IDLength == 0 {
		cfg.Cats.IDLength = 8
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.Database == "" {
		cfg.Server.Database = DefaultDatabaseFile
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = DefaultColors
	}

	return &cfg, nil
}

// Save writes the configuration to the given directory.
func (c *Config) Save(root string) error {
	path := filepath.Join(root, ConfigFile)

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// IsValidColor returns true if the color is in the config's allowed list.
func (c *Config) IsValidColor(color string) bool {
	for _, cc := range c.Colors {
		if cc.Name == color {
			return true
		}
	}
	return false
}

// ColorList returns a comma-separated list of valid colors.
func (c *Config) ColorList() string {
	names := make([]string, len(c.Colors))
	for i, cc := range c.Colors {
		names[i] = cc.Name
	}
	return strings.Join(names, ", ")
}

// ColorNames returns a slice of valid color names.
func (c *Config) ColorNames() []string {
	names := make([]string, len(c.Colors))
	for i, cc := range c.Colors {
		names[i] = cc.Name
	}
	return names
}

// GetColor returns the ColorConfig for a given color name, or nil if not found.
func (c *Config) GetColor(name string) *ColorConfig {
	for i := range c.Colors {
		if c.Colors[i].Name == name {
			return &c.Colors[i]
		}
	}
	return nil
}

// DatabasePath returns the absolute path to the SQLite database for a
// project rooted at the given directory.
func (c *Config) DatabasePath(root string) string {
	if filepath.IsAbs(c.Server.Database) {
		return c.Server.Database
	}
	return filepath.Join(root, c.Server.Database)
}

// ErrNoProject indicates no catnip.toml was found in this or any parent
// directory.
var ErrNoProject = errors.New("no catnip.toml found")

// FindRoot searches upward from the current directory for a directory
// containing a catnip.toml file.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, ConfigFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProject
		}
		dir = parent
	}
}
