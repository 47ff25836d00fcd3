package cache

import (
	"fmt"
	"time"

	"github.com/glorpus-work/eofetch/pkg/logger"
	"github.com/sirupsen/logrus"
)

// CacheOperation represents an operation that can be performed on the cache.
type CacheOperation struct {
	manager Manager
}

// NewCacheOperation creates a new cache operation instance.
func NewCacheOperation(manager Manager) *CacheOperation {
	return &CacheOperation{manager: manager}
}

// Clean empties the catalog result cache and reports what was removed.
func (op *CacheOperation) Clean() (string, error) {
	logger.Debug("Cleaning cache", logrus.Fields{"directory": op.manager.GetDirectory()})

	result, err := op.manager.Clean()
	if err != nil {
		return "", fmt.Errorf("failed to clean cache: %w", err)
	}

	if result.Freed == 0 {
		return "No files were removed from the cache.", nil
	}
	return fmt.Sprintf("Successfully cleaned cache. Removed %d files, freed %s of disk space.",
		result.Files, formatBytes(result.Freed)), nil
}

// GetInfo returns a human-readable description of the cache.
func (op *CacheOperation) GetInfo() (string, error) {
	info, err := op.manager.GetInfo()
	if err != nil {
		return "", fmt.Errorf("failed to get cache info: %w", err)
	}

	lastCleaned := "never"
	if !info.LastCleaned.IsZero() {
		lastCleaned = info.LastCleaned.Format(time.RFC1123)
	}

	return fmt.Sprintf(`Cache Information:
  Directory:      %s
  Catalog:        %s (%d files)
  Last Cleaned:   %s`,
		info.Directory,
		formatBytes(info.CatalogSize),
		info.CatalogFiles,
		lastCleaned,
	), nil
}

// GetDirectory returns the cache directory path.
func (op *CacheOperation) GetDirectory() string {
	return op.manager.GetDirectory()
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	units := []string{"K", "M", "G", "T", "P", "E"}
	if exp < len(units) {
		return fmt.Sprintf("%.1f %sB", float64(bytes)/float64(div), units[exp])
	}
	return fmt.Sprintf("%d B", bytes)
}
