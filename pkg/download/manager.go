// Package download transfers store objects to local files with idempotent
// skip-if-exists handling and a bounded parallel batch mode.
package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	pkgerrors "github.com/glorpus-work/eofetch/pkg/errors"
	"github.com/glorpus-work/eofetch/pkg/fsutil"
	"github.com/glorpus-work/eofetch/pkg/logger"
	"github.com/glorpus-work/eofetch/pkg/store"
)

// DefaultWorkers bounds concurrent transfers. The eodata provider documents a
// concurrent-connection quota of 4; exceeding it risks throttling.
// See https://documentation.dataspace.copernicus.eu/Quotas.html
const DefaultWorkers = 4

// Item is one object to transfer and the local path it lands at.
type Item struct {
	Locator   store.Locator
	LocalPath string
}

// Result reports the terminal status of one item of a batch. Err is set only
// for OutcomeFailed and OutcomeTimedOut.
type Result struct {
	Item    Item
	Outcome Outcome
	Err     error
}

// Options control transfer behavior.
type Options struct {
	Overwrite   bool
	Workers     int           // number of parallel transfers; if <=0, DefaultWorkers
	ItemTimeout time.Duration // per-item deadline; 0 disables it
}

// ItemsFromPairs zips positionally aligned locator and destination slices
// into items. The length check happens eagerly, before any transfer is
// dispatched.
func ItemsFromPairs(locators []store.Locator, destinations []string) ([]Item, error) {
	if len(locators) != len(destinations) {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrMismatchedLength,
			"%d locators, %d destinations", len(locators), len(destinations))
	}
	items := make([]Item, len(locators))
	for i := range locators {
		items[i] = Item{Locator: locators[i], LocalPath: destinations[i]}
	}
	return items, nil
}

// Manager downloads store objects to local files.
type Manager struct {
	getter store.Getter
}

// NewManager creates a download manager backed by the given store getter.
func NewManager(getter store.Getter) *Manager {
	return &Manager{getter: getter}
}

// Fetch transfers one object to its destination. The parent directory is
// created if needed. An existing destination is skipped unless Overwrite is
// set; with Overwrite the transfer happens and reports OutcomeOverwritten.
// The transfer is written to a temp file and atomically renamed into place,
// so a concurrent reader never observes a partial file.
func (m *Manager) Fetch(ctx context.Context, item Item, opts Options) (Outcome, error) {
	if item.LocalPath == "" {
		return OutcomeFailed, pkgerrors.Wrap(pkgerrors.ErrInvalidPath, "empty destination")
	}
	if err := fsutil.EnsureFileDir(item.LocalPath); err != nil {
		return OutcomeFailed, pkgerrors.Wrap(err, "could not create destination directory")
	}

	existed := fsutil.FileExists(item.LocalPath)
	if existed && !opts.Overwrite {
		return OutcomeSkipped, nil
	}

	if opts.ItemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ItemTimeout)
		defer cancel()
	}

	if err := m.transfer(ctx, item); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return OutcomeTimedOut, pkgerrors.Wrapf(err, "transfer of %s timed out", item.Locator.URI())
		}
		return OutcomeFailed, pkgerrors.Wrapf(err, "transfer of %s failed", item.Locator.URI())
	}

	if existed {
		return OutcomeOverwritten, nil
	}
	return OutcomeDownloaded, nil
}

func (m *Manager) transfer(ctx context.Context, item Item) error {
	tmp, err := os.CreateTemp(filepath.Dir(item.LocalPath), "dl-*.tmp")
	if err != nil {
		return pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if err := m.getter.Get(ctx, item.Locator, tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, pkgerrors.ErrDownloadFailed.Error())
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not close file")
	}
	if err := fsutil.Move(tmpPath, item.LocalPath); err != nil {
		_ = os.Remove(tmpPath)
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(item.LocalPath, fsutil.FileModeDefault); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}

// FetchAll transfers many items over a fixed-size worker pool. Every item's
// failure is caught and converted into its Result; one failing item never
// aborts the batch. The returned slice is positionally aligned with items
// and always has the same length.
func (m *Manager) FetchAll(ctx context.Context, items []Item, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(items))

	tasks := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				outcome, err := m.Fetch(ctx, items[i], opts)
				results[i] = Result{Item: items[i], Outcome: outcome, Err: err}
				if err != nil {
					logger.Error("download failed", logrus.Fields{
						"bucket":      items[i].Locator.Bucket,
						"key":         items[i].Locator.Prefix,
						"destination": items[i].LocalPath,
						"error":       err.Error(),
					})
				}
			}
		}()
	}
	for i := range items {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	s := Summarize(results)
	logger.Info("download batch finished", logrus.Fields{
		"ok":    s.OK(),
		"total": s.Total(),
	})
	return results
}
