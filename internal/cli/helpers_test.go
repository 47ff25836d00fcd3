package cli

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/eofetch/pkg/config"
	"github.com/glorpus-work/eofetch/pkg/resolve"
	"github.com/glorpus-work/eofetch/pkg/safename"
)

func TestParseBBox(t *testing.T) {
	box, err := parseBBox("5.9,45.8, 10.5,47.8")
	require.NoError(t, err)
	assert.Equal(t, 5.9, box.MinLon)
	assert.Equal(t, 45.8, box.MinLat)
	assert.Equal(t, 10.5, box.MaxLon)
	assert.Equal(t, 47.8, box.MaxLat)

	_, err = parseBBox("5.9,45.8,10.5")
	assert.Error(t, err)
	_, err = parseBBox("a,b,c,d")
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	ts, err := parseTime("2024-08-15T10:00:31Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())

	ts, err = parseTime("2024-08-15")
	require.NoError(t, err)
	assert.Equal(t, time.August, ts.Month())

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestParseFamily(t *testing.T) {
	fam, err := parseFamily("L2A")
	require.NoError(t, err)
	assert.Equal(t, safename.FamilyL2A, fam)

	_, err = parseFamily("l3x")
	assert.Error(t, err)
}

func TestFetchOptions_FlagOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Settings.DestRoot = "/from/config"
	cfg.Settings.DownloadWorkers = 4
	cfg.Settings.ItemTimeout = time.Minute

	flags := fetchFlags{
		bands:    []string{"B02"},
		dest:     "/from/flag",
		workers:  8,
		timeout:  2 * time.Minute,
		failFast: true,
	}

	opts := fetchOptions(cfg, flags, safename.FamilyL1C)
	assert.Equal(t, "/from/flag", opts.DestRoot)
	assert.Equal(t, 8, opts.DownloadWorkers)
	assert.Equal(t, 2*time.Minute, opts.ItemTimeout)
	assert.Equal(t, resolve.FailFast, opts.Mode)
	assert.Equal(t, []string{"B02"}, opts.Bands)
}

func TestFetchOptions_ConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Settings.DestRoot = "/from/config"
	cfg.Settings.Overwrite = true

	opts := fetchOptions(cfg, fetchFlags{}, safename.FamilyL2A)
	assert.Equal(t, "/from/config", opts.DestRoot)
	assert.True(t, opts.Overwrite)
	assert.Equal(t, resolve.CollectAll, opts.Mode)
	assert.Equal(t, cfg.Settings.DownloadWorkers, opts.DownloadWorkers)
}

func TestConfigInitSetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	ConfigPath = &path
	defer func() { ConfigPath = nil }()

	require.NoError(t, runConfigInit(false))
	assert.Error(t, runConfigInit(false), "second init without --force should fail")
	require.NoError(t, runConfigInit(true))

	require.NoError(t, runConfigSet("download_workers", "2"))
	assert.Error(t, runConfigSet("download_workers", "0"), "invalid value should not validate")

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Settings.DownloadWorkers)
}
