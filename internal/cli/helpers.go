package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/glorpus-work/eofetch/pkg/catalog"
	"github.com/glorpus-work/eofetch/pkg/config"
	"github.com/glorpus-work/eofetch/pkg/logger"
	"github.com/glorpus-work/eofetch/pkg/safename"
	"github.com/sirupsen/logrus"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration from the flag-selected or default path
// and applies .env and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		logger.Warn("Failed to get default config path, using empty path", logrus.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// catalogClient builds the catalog client from the configuration.
func catalogClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(cfg.CatalogClientConfig())
}

// parseBBox parses a "minLon,minLat,maxLon,maxLat" flag value.
func parseBBox(s string) (catalog.BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return catalog.BBox{}, fmt.Errorf("bbox must have four comma-separated values, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return catalog.BBox{}, fmt.Errorf("invalid bbox coordinate %q: %w", p, err)
		}
		vals[i] = v
	}
	return catalog.BBox{MinLon: vals[0], MinLat: vals[1], MaxLon: vals[2], MaxLat: vals[3]}, nil
}

// parseTime parses a flag value as RFC 3339 or as a plain date.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// parseFamily maps a processing level flag to a product family.
func parseFamily(s string) (safename.Family, error) {
	return safename.ParseFamily(strings.ToLower(s))
}

// collectionForFamily maps a product family to its catalog collection.
func collectionForFamily(family safename.Family) string {
	if family == safename.FamilyL2A {
		return catalog.CollectionL2A
	}
	return catalog.CollectionL1C
}
