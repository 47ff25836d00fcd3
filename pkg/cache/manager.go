// Package cache manages the on-disk cache of catalog search results.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glorpus-work/eofetch/pkg/errors"
	"github.com/glorpus-work/eofetch/pkg/fsutil"
)

// Common cache errors.
var (
	// ErrCacheClean is returned when there's an error cleaning the cache.
	ErrCacheClean = fmt.Errorf("failed to clean cache")

	// ErrCacheInfo is returned when there's an error getting cache information.
	ErrCacheInfo = fmt.Errorf("failed to get cache info")

	// ErrCacheDirectory is returned when there's an error with the cache directory.
	ErrCacheDirectory = fmt.Errorf("invalid cache directory")
)

// Manager defines the interface for cache management operations.
type Manager interface {
	Clean() (*CleanResult, error)
	GetInfo() (*Info, error)
	GetDirectory() string
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	Freed int64
	Files int
}

// Info represents cache information.
type Info struct {
	Directory    string
	CatalogSize  int64
	CatalogFiles int
	LastCleaned  time.Time
}

// DefaultManager implements the Manager interface over the base cache
// directory. Catalog search results live in its "catalog" subdirectory.
type DefaultManager struct {
	directory string
}

// NewManager creates a new cache manager for the given base directory.
func NewManager(directory string) (*DefaultManager, error) {
	if directory == "" {
		return nil, ErrCacheDirectory
	}
	if err := fsutil.EnsureDir(directory); err != nil {
		return nil, errors.Wrap(ErrCacheDirectory, err.Error())
	}
	return &DefaultManager{directory: directory}, nil
}

// Clean removes all cached catalog results and records the clean time.
func (cm *DefaultManager) Clean() (*CleanResult, error) {
	size, files, err := dirSizeAndFiles(cm.catalogDir())
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(ErrCacheClean, err.Error())
	}
	if err := os.RemoveAll(cm.catalogDir()); err != nil {
		return nil, errors.Wrap(ErrCacheClean, err.Error())
	}
	if err := os.WriteFile(cm.markerPath(), nil, fsutil.FileModeDefault); err != nil {
		return nil, errors.Wrap(ErrCacheClean, err.Error())
	}
	return &CleanResult{Freed: size, Files: files}, nil
}

// GetInfo returns information about the cache.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	size, files, err := dirSizeAndFiles(cm.catalogDir())
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(ErrCacheInfo, err.Error())
	}
	info := &Info{
		Directory:    cm.directory,
		CatalogSize:  size,
		CatalogFiles: files,
	}
	if stat, err := os.Stat(cm.markerPath()); err == nil {
		info.LastCleaned = stat.ModTime()
	}
	return info, nil
}

// GetDirectory returns the cache directory path.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

func (cm *DefaultManager) catalogDir() string {
	return filepath.Join(cm.directory, "catalog")
}

// markerPath is the file whose mtime records the last clean.
func (cm *DefaultManager) markerPath() string {
	return filepath.Join(cm.directory, ".last_cleaned")
}

// dirSizeAndFiles walks dir and totals regular file sizes and counts.
func dirSizeAndFiles(dir string) (int64, int, error) {
	var size int64
	var files int
	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
			files++
		}
		return nil
	})
	return size, files, err
}
