package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetValue("dest_root", "/data"))
	require.NoError(t, cfg.SetValue("overwrite", "true"))
	require.NoError(t, cfg.SetValue("download_workers", "8"))
	require.NoError(t, cfg.SetValue("item_timeout", "90s"))
	require.NoError(t, cfg.SetValue("store.endpoint", "s3.example.com"))

	assert.Equal(t, "/data", cfg.Settings.DestRoot)
	assert.True(t, cfg.Settings.Overwrite)
	assert.Equal(t, 8, cfg.Settings.DownloadWorkers)
	assert.Equal(t, 90*time.Second, cfg.Settings.ItemTimeout)
	assert.Equal(t, "s3.example.com", cfg.Store.Endpoint)
}

func TestSetValue_Invalid(t *testing.T) {
	cfg := DefaultConfig()

	assert.Error(t, cfg.SetValue("overwrite", "maybe"))
	assert.Error(t, cfg.SetValue("download_workers", "many"))
	assert.Error(t, cfg.SetValue("item_timeout", "soon"))
	assert.Error(t, cfg.SetValue("no_such_key", "x"))
}

func TestGetValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.DownloadWorkers = 6
	cfg.Settings.CacheTTL = time.Hour

	v, err := cfg.GetValue("download_workers")
	require.NoError(t, err)
	assert.Equal(t, "6", v)

	v, err = cfg.GetValue("cache_ttl")
	require.NoError(t, err)
	assert.Equal(t, "1h0m0s", v)

	_, err = cfg.GetValue("no_such_key")
	assert.Error(t, err)
}

func TestToMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.DestRoot = "/data"

	m := cfg.ToMap()
	assert.Equal(t, "/data", m["dest_root"])
	assert.Equal(t, "info", m["log_level"])
	assert.Equal(t, "4", m["download_workers"])
	assert.Equal(t, "24h0m0s", m["cache_ttl"])
}
