package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalogCache(t *testing.T, base string) {
	t.Helper()
	dir := filepath.Join(base, "catalog", "sentinel-2-l1c+11.5,46.0,12.0,46.5")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte(`[{"id":"x"}]`), 0o644))
}

func TestNewManager_EmptyDirectory(t *testing.T) {
	_, err := NewManager("")
	assert.ErrorIs(t, err, ErrCacheDirectory)
}

func TestManager_GetInfo(t *testing.T) {
	base := t.TempDir()
	seedCatalogCache(t, base)

	cm, err := NewManager(base)
	require.NoError(t, err)

	info, err := cm.GetInfo()
	require.NoError(t, err)
	assert.Equal(t, base, info.Directory)
	assert.Equal(t, 1, info.CatalogFiles)
	assert.Greater(t, info.CatalogSize, int64(0))
}

func TestManager_Clean(t *testing.T) {
	base := t.TempDir()
	seedCatalogCache(t, base)

	cm, err := NewManager(base)
	require.NoError(t, err)

	result, err := cm.Clean()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Files)
	assert.Greater(t, result.Freed, int64(0))

	_, err = os.Stat(filepath.Join(base, "catalog"))
	assert.True(t, os.IsNotExist(err))

	// Cleaning an already-empty cache is fine
	result, err = cm.Clean()
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Freed)
}

func TestManager_LastCleaned(t *testing.T) {
	base := t.TempDir()
	seedCatalogCache(t, base)

	cm, err := NewManager(base)
	require.NoError(t, err)

	info, err := cm.GetInfo()
	require.NoError(t, err)
	assert.True(t, info.LastCleaned.IsZero(), "no clean has happened yet")

	before := time.Now().Add(-time.Second)
	_, err = cm.Clean()
	require.NoError(t, err)

	info, err = cm.GetInfo()
	require.NoError(t, err)
	assert.True(t, info.LastCleaned.After(before))

	op := NewCacheOperation(cm)
	msg, err := op.GetInfo()
	require.NoError(t, err)
	assert.NotContains(t, msg, "never")
}

func TestCacheOperation_Messages(t *testing.T) {
	base := t.TempDir()
	seedCatalogCache(t, base)

	cm, err := NewManager(base)
	require.NoError(t, err)
	op := NewCacheOperation(cm)

	info, err := op.GetInfo()
	require.NoError(t, err)
	assert.Contains(t, info, base)
	assert.Contains(t, info, "1 files")

	msg, err := op.Clean()
	require.NoError(t, err)
	assert.Contains(t, msg, "Removed 1 files")

	msg, err = op.Clean()
	require.NoError(t, err)
	assert.Equal(t, "No files were removed from the cache.", msg)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(1536*1024))
}
