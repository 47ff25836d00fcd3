// Package config provides configuration management for the eofetch tool. It
// handles loading, validating, and saving application settings covering the
// object store credentials, the catalog endpoint and fetch defaults. The
// package supports YAML configuration files and provides sensible defaults
// while allowing overrides through environment variables.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/eofetch/pkg/catalog"
	"github.com/glorpus-work/eofetch/pkg/download"
	"github.com/glorpus-work/eofetch/pkg/errors"
	"github.com/glorpus-work/eofetch/pkg/fsutil"
	"github.com/glorpus-work/eofetch/pkg/resolve"
	"github.com/glorpus-work/eofetch/pkg/store"
)

// Config represents the application configuration.
type Config struct {
	// Object store access
	Store StoreConfig `yaml:"store"`

	// Catalog access
	Catalog CatalogConfig `yaml:"catalog"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// StoreConfig holds the S3 store endpoint and credentials.
type StoreConfig struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Region    string `yaml:"region,omitempty"`
	UseSSL    *bool  `yaml:"use_ssl,omitempty"`
}

// CatalogConfig holds the catalog endpoint settings.
type CatalogConfig struct {
	BaseURL string        `yaml:"base_url,omitempty"`
	Token   string        `yaml:"token,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	// Fetch settings
	DestRoot        string        `yaml:"dest_root,omitempty"`
	Overwrite       bool          `yaml:"overwrite"`
	ResolveWorkers  int           `yaml:"resolve_workers"`
	DownloadWorkers int           `yaml:"download_workers"`
	ItemTimeout     time.Duration `yaml:"item_timeout"`

	// Cache settings
	CacheDir string        `yaml:"cache_dir,omitempty"`
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// Hook settings
	HookDir string `yaml:"hook_dir,omitempty"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
}

// Default configuration values.
const (
	// DefaultCatalogURL is the default catalog search endpoint.
	DefaultCatalogURL = "https://catalogue.dataspace.copernicus.eu/stac"

	// DefaultCacheTTL is the default time-to-live for cached catalog results.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultCatalogTimeout is the default timeout for catalog requests.
	DefaultCatalogTimeout = 30 * time.Second

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = "."
	}

	return &Config{
		Store: StoreConfig{
			Endpoint: store.DefaultEndpoint,
			Region:   store.DefaultRegion,
		},
		Catalog: CatalogConfig{
			BaseURL: DefaultCatalogURL,
			Timeout: DefaultCatalogTimeout,
		},
		Settings: Settings{
			DestRoot:        ".",
			ResolveWorkers:  resolve.DefaultResolveWorkers,
			DownloadWorkers: download.DefaultWorkers,
			CacheDir:        filepath.Join(cacheDir, "eofetch"),
			CacheTTL:        DefaultCacheTTL,
			OutputFormat:    "text",
			LogLevel:        "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(errors.ErrConfigWrite, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigWrite, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigWrite, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigWrite, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigWrite, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	s := c.Settings
	if s.ResolveWorkers < 1 {
		return fmt.Errorf("resolve_workers must be at least 1")
	}
	if s.DownloadWorkers < 1 {
		return fmt.Errorf("download_workers must be at least 1")
	}
	if s.ItemTimeout < 0 {
		return fmt.Errorf("item_timeout cannot be negative")
	}
	if s.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl cannot be negative")
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog timeout cannot be negative")
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[s.OutputFormat] {
		return fmt.Errorf("invalid output format: %s", s.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", s.LogLevel)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "eofetch", "config.yaml"), nil
}

// StoreCredentials converts the store section into client credentials.
func (c *Config) StoreCredentials() store.Credentials {
	creds := store.Credentials{
		Endpoint:  c.Store.Endpoint,
		AccessKey: c.Store.AccessKey,
		SecretKey: c.Store.SecretKey,
		Region:    c.Store.Region,
		UseSSL:    true,
	}
	if c.Store.UseSSL != nil {
		creds.UseSSL = *c.Store.UseSSL
	}
	return creds
}

// CatalogClientConfig converts the catalog section into a client config.
func (c *Config) CatalogClientConfig() catalog.Config {
	return catalog.Config{
		BaseURL:  c.Catalog.BaseURL,
		Token:    c.Catalog.Token,
		Timeout:  c.Catalog.Timeout,
		CacheDir: c.GetCatalogCacheDir(),
		CacheTTL: c.Settings.CacheTTL,
	}
}

// GetCacheDir returns the base cache directory from settings.
func (c *Config) GetCacheDir() string {
	return c.Settings.CacheDir
}

// GetCatalogCacheDir returns the path to the catalog result cache directory.
func (c *Config) GetCatalogCacheDir() string {
	return filepath.Join(c.GetCacheDir(), "catalog")
}

// GetHookDir returns the directory holding hook scripts.
func (c *Config) GetHookDir() string {
	return c.Settings.HookDir
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Store.Endpoint == "" {
		c.Store.Endpoint = defaults.Store.Endpoint
	}
	if c.Store.Region == "" {
		c.Store.Region = defaults.Store.Region
	}
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = defaults.Catalog.BaseURL
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = defaults.Catalog.Timeout
	}
	if c.Settings.DestRoot == "" {
		c.Settings.DestRoot = defaults.Settings.DestRoot
	}
	if c.Settings.ResolveWorkers == 0 {
		c.Settings.ResolveWorkers = defaults.Settings.ResolveWorkers
	}
	if c.Settings.DownloadWorkers == 0 {
		c.Settings.DownloadWorkers = defaults.Settings.DownloadWorkers
	}
	if c.Settings.CacheDir == "" {
		c.Settings.CacheDir = defaults.Settings.CacheDir
	}
	if c.Settings.CacheTTL == 0 {
		c.Settings.CacheTTL = defaults.Settings.CacheTTL
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
