package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	pkgerrors "github.com/glorpus-work/eofetch/pkg/errors"
	"github.com/glorpus-work/eofetch/pkg/fsutil"
	"github.com/glorpus-work/eofetch/pkg/logger"
)

const cacheFilename = "records.json"

// cacheKey derives a stable, readable directory name for one query.
func cacheKey(q Query) string {
	parts := []string{
		q.Collection,
		q.BBox.String(),
		q.Start.UTC().Format("20060102T150405"),
		q.End.UTC().Format("20060102T150405"),
	}
	return strings.Join(parts, "+")
}

func (c *Client) cachePath(q Query) string {
	return filepath.Join(c.cacheDir, cacheKey(q), cacheFilename)
}

// loadCached returns a previously stored response for the query, if any.
// Entries older than the configured TTL are ignored; a zero TTL means
// entries never expire.
func (c *Client) loadCached(q Query) ([]Record, bool) {
	if c.cacheDir == "" {
		return nil, false
	}
	path := c.cachePath(q)
	if c.cacheTTL > 0 {
		info, err := os.Stat(path)
		if err != nil || time.Since(info.ModTime()) >= c.cacheTTL {
			return nil, false
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("ignoring corrupt catalog cache entry", logrus.Fields{
			"path":  c.cachePath(q),
			"error": err.Error(),
		})
		return nil, false
	}
	logger.Debug("catalog cache hit", logrus.Fields{"key": cacheKey(q)})
	return records, true
}

// storeCached persists the response for later runs of the same query.
func (c *Client) storeCached(q Query, records []Record) error {
	if c.cacheDir == "" {
		return nil
	}
	path := c.cachePath(q)
	if err := fsutil.EnsureFileDir(path); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCacheWrite, err.Error())
	}
	data, err := json.Marshal(records)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCacheWrite, err.Error())
	}
	if err := os.WriteFile(path, data, fsutil.FileModeDefault); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCacheWrite, err.Error())
	}
	return nil
}
