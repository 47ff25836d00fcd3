package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SetValue sets a configuration value by key.
// Supported keys:
//   - dest_root: string - Base directory downloaded products land under
//   - cache_dir: string - Path to the cache directory
//   - hook_dir: string - Directory holding hook scripts
//   - overwrite: bool - Whether existing files are replaced
//   - resolve_workers: int - Number of parallel product listings
//   - download_workers: int - Number of parallel transfers
//   - item_timeout: duration - Per-object transfer deadline
//   - cache_ttl: duration - Catalog cache lifetime
//   - output_format: string - Output format (text, json)
//   - log_level: string - Logging level (debug, info, warn, error)
//   - store.endpoint: string - Object store endpoint
//   - store.region: string - Object store region
//   - catalog.base_url: string - Catalog search endpoint
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "dest_root":
		c.Settings.DestRoot = value
	case "cache_dir":
		c.Settings.CacheDir = value
	case "hook_dir":
		c.Settings.HookDir = value
	case "overwrite":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.Settings.Overwrite = boolVal
	case "resolve_workers":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		c.Settings.ResolveWorkers = intVal
	case "download_workers":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		c.Settings.DownloadWorkers = intVal
	case "item_timeout":
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.ItemTimeout = dur
	case "cache_ttl":
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.CacheTTL = dur
	case "output_format":
		c.Settings.OutputFormat = value
	case "log_level":
		c.Settings.LogLevel = value
	case "store.endpoint":
		c.Store.Endpoint = value
	case "store.region":
		c.Store.Region = value
	case "catalog.base_url":
		c.Catalog.BaseURL = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// GetValue returns a configuration value by key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "dest_root":
		return c.Settings.DestRoot, nil
	case "cache_dir":
		return c.Settings.CacheDir, nil
	case "hook_dir":
		return c.Settings.HookDir, nil
	case "overwrite":
		return strconv.FormatBool(c.Settings.Overwrite), nil
	case "resolve_workers":
		return strconv.Itoa(c.Settings.ResolveWorkers), nil
	case "download_workers":
		return strconv.Itoa(c.Settings.DownloadWorkers), nil
	case "item_timeout":
		return c.Settings.ItemTimeout.String(), nil
	case "cache_ttl":
		return c.Settings.CacheTTL.String(), nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "log_level":
		return c.Settings.LogLevel, nil
	case "store.endpoint":
		return c.Store.Endpoint, nil
	case "store.region":
		return c.Store.Region, nil
	case "catalog.base_url":
		return c.Catalog.BaseURL, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// ToMap converts the settings section to a flat string map, keyed by the yaml
// tags. This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string)

	settingsValue := reflect.ValueOf(c.Settings)
	settingsType := settingsValue.Type()

	for i := 0; i < settingsValue.NumField(); i++ {
		field := settingsType.Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}
		yamlKey := strings.Split(yamlTag, ",")[0]

		fieldValue := settingsValue.Field(i)
		var strValue string
		switch v := fieldValue.Interface().(type) {
		case time.Duration:
			strValue = v.String()
		case bool:
			strValue = strconv.FormatBool(v)
		case int:
			strValue = strconv.Itoa(v)
		case string:
			strValue = v
		default:
			strValue = fmt.Sprintf("%v", v)
		}

		result[yamlKey] = strValue
	}

	return result
}
