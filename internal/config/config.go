package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ochronus/gogofile/internal/services/gofile"
	"github.com/sirupsen/logrus"
)

// Config represents the main application configuration
type Config struct {
	Loglevel string       `toml:"loglevel"`
	Gofile   GofileConfig `toml:"gofile"`
}

// GofileConfig holds Gofile API configuration
type GofileConfig struct {
	// APIToken may be left empty for anonymous use; authenticated
	// endpoints will then be rejected by the service.
	APIToken string `toml:"api_token"`
	// Region pins uploads to a regional upload host. Empty means the
	// default automatic-routing host.
	Region string `toml:"region"`
	// RootFolder is the default destination folder for uploads and
	// folder creation when no folder id is given on the command line.
	RootFolder string `toml:"root_folder"`
	// APIURL and UploadURL override the well-known endpoints.
	APIURL    string `toml:"api_url"`
	UploadURL string `toml:"upload_url"`
}

var validRegions = map[string]gofile.Region{
	string(gofile.RegionEuropeParis):      gofile.RegionEuropeParis,
	string(gofile.RegionNorthAmericaPhx):  gofile.RegionNorthAmericaPhx,
	string(gofile.RegionAsiaPacificSg):    gofile.RegionAsiaPacificSg,
	string(gofile.RegionAsiaPacificHk):    gofile.RegionAsiaPacificHk,
	string(gofile.RegionAsiaPacificTokyo): gofile.RegionAsiaPacificTokyo,
	string(gofile.RegionSouthAmericaSao):  gofile.RegionSouthAmericaSao,
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Loglevel: "info",
	}
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "gogofile")

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads configuration from a TOML file
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Loglevel); err != nil {
		return fmt.Errorf("loglevel must be one of: panic, fatal, error, warn, info, debug, trace")
	}

	if c.Gofile.Region != "" {
		if _, ok := validRegions[c.Gofile.Region]; !ok {
			return fmt.Errorf("gofile.region must be one of: eu-par, na-phx, ap-sgp, ap-hkg, ap-tyo, sa-sao")
		}
		if c.Gofile.UploadURL != "" {
			return fmt.Errorf("gofile.region and gofile.upload_url are mutually exclusive")
		}
	}

	if c.Gofile.APIURL != "" {
		if _, err := url.ParseRequestURI(c.Gofile.APIURL); err != nil {
			return fmt.Errorf("gofile.api_url is invalid: %v", err)
		}
	}
	if c.Gofile.UploadURL != "" {
		if _, err := url.ParseRequestURI(c.Gofile.UploadURL); err != nil {
			return fmt.Errorf("gofile.upload_url is invalid: %v", err)
		}
	}

	return nil
}

// ClientOptions translates the configuration into Gofile client options
func (c *Config) ClientOptions() []gofile.Option {
	var opts []gofile.Option

	if region, ok := validRegions[c.Gofile.Region]; ok {
		opts = append(opts, gofile.WithRegion(region))
	}
	if c.Gofile.APIURL != "" {
		opts = append(opts, gofile.WithAPIURL(c.Gofile.APIURL))
	}
	if c.Gofile.UploadURL != "" {
		opts = append(opts, gofile.WithUploadURL(c.Gofile.UploadURL))
	}

	return opts
}
