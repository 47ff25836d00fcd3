// Package orchestrator ties catalog search, object resolution and parallel
// download together into one fetch pipeline.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/glorpus-work/eofetch/pkg/catalog"
	"github.com/glorpus-work/eofetch/pkg/download"
	"github.com/glorpus-work/eofetch/pkg/errors"
	"github.com/glorpus-work/eofetch/pkg/hook"
	"github.com/glorpus-work/eofetch/pkg/logger"
	"github.com/glorpus-work/eofetch/pkg/resolve"
	"github.com/glorpus-work/eofetch/pkg/safename"
)

// Orchestrator ties Catalog, Resolver and Download managers together for
// fetches.
type Orchestrator struct {
	Catalog  ProductSearcher
	Resolver ObjectResolver
	DL       Fetcher
	Unpack   Unpacker      // optional; required only for FetchOptions.Unpack
	HookExec hook.Executor // optional
	Hooks    Hooks         // Hooks for progress and event notifications
}

// New constructs a default Orchestrator from existing managers. Helper for wiring.
func New(cat ProductSearcher, res ObjectResolver, dl Fetcher, unpack Unpacker, hookExec hook.Executor, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		Catalog:  cat,
		Resolver: res,
		DL:       dl,
		Unpack:   unpack,
		HookExec: hookExec,
		Hooks:    hooks,
	}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// FetchProducts resolves the given product container URIs and downloads every
// resolved object. Per-root resolution failures surface as Report.RootErrors
// in collect-all mode; per-object download failures surface as failed Results.
func (o *Orchestrator) FetchProducts(ctx context.Context, rootURIs []string, opts FetchOptions) (*Report, error) {
	if o.Resolver == nil {
		return nil, fmt.Errorf("resolver is not configured")
	}

	runID := uuid.NewString()
	logger.Debug("Starting fetch run", logrus.Fields{"run_id": runID, "products": len(rootURIs)})

	emit(o.Hooks, Event{Phase: "resolving", ID: runID, Msg: fmt.Sprintf("resolving %d products", len(rootURIs))})
	planned, rootErrs, err := o.Resolver.ResolveAll(ctx, rootURIs,
		resolve.Options{Bands: opts.Bands, Family: opts.Family, DestRoot: opts.DestRoot},
		resolve.BatchOptions{Workers: opts.ResolveWorkers, Mode: opts.Mode})
	if err != nil {
		emit(o.Hooks, Event{Phase: "error", ID: runID, Msg: err.Error()})
		return nil, err
	}
	for _, re := range rootErrs {
		logger.Warn("Product resolution failed", logrus.Fields{"run_id": runID, "root": re.RootURI, "error": re.Err})
	}

	report := &Report{RunID: runID, Planned: planned, RootErrors: rootErrs}

	// Dry run: just emit the planned transfers and return
	if opts.DryRun {
		for _, obj := range planned {
			emit(o.Hooks, Event{Phase: "planning", ID: obj.Locator.URI(), Msg: obj.LocalPath})
		}
		emit(o.Hooks, Event{Phase: "done", ID: runID, Msg: "dry-run"})
		return report, nil
	}

	if o.DL == nil {
		return nil, fmt.Errorf("download manager is not configured")
	}

	items := make([]download.Item, 0, len(planned))
	for _, obj := range planned {
		items = append(items, download.Item{Locator: obj.Locator, LocalPath: obj.LocalPath})
	}

	emit(o.Hooks, Event{Phase: "downloading", ID: runID, Msg: fmt.Sprintf("transferring %d objects", len(items))})
	report.Results = o.DL.FetchAll(ctx, items, download.Options{
		Overwrite:   opts.Overwrite,
		Workers:     opts.DownloadWorkers,
		ItemTimeout: opts.ItemTimeout,
	})
	report.Summary = download.Summarize(report.Results)

	if opts.Unpack {
		if err := o.unpackArchives(ctx, report); err != nil {
			return report, err
		}
	}

	if err := o.runHooks(report); err != nil {
		return report, err
	}

	emit(o.Hooks, Event{Phase: "done", ID: runID})
	return report, nil
}

// SearchAndFetch searches the catalog over the given boxes and fetches the
// products it finds. With FetchOptions.LatestOnly only the highest processing
// baseline per tile and sensing time is fetched.
func (o *Orchestrator) SearchAndFetch(ctx context.Context, boxes []catalog.BBox, q catalog.Query, opts FetchOptions) (*Report, error) {
	if o.Catalog == nil {
		return nil, fmt.Errorf("catalog client is not configured")
	}

	emit(o.Hooks, Event{Phase: "searching", Msg: q.Collection})
	records, err := o.Catalog.SearchMany(ctx, boxes, q)
	if err != nil {
		emit(o.Hooks, Event{Phase: "error", Msg: err.Error()})
		return nil, err
	}
	if opts.LatestOnly {
		records = catalog.LatestBaseline(records)
	}

	roots := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.DataURI == "" {
			logger.Warn("Catalog record without data location", logrus.Fields{"id": rec.ID})
			continue
		}
		roots = append(roots, rec.DataURI)
	}
	if len(roots) == 0 {
		emit(o.Hooks, Event{Phase: "done", Msg: "no products found"})
		return &Report{RunID: uuid.NewString()}, nil
	}

	return o.FetchProducts(ctx, roots, opts)
}

// unpackArchives extracts every successfully downloaded zip archive next to
// itself. Extraction failures are isolated per archive.
func (o *Orchestrator) unpackArchives(ctx context.Context, report *Report) error {
	if o.Unpack == nil {
		return fmt.Errorf("unpacker is not configured")
	}
	for _, res := range report.Results {
		if !res.Outcome.OK() || !strings.EqualFold(filepath.Ext(res.Item.LocalPath), ".zip") {
			continue
		}
		destDir := strings.TrimSuffix(res.Item.LocalPath, filepath.Ext(res.Item.LocalPath))
		emit(o.Hooks, Event{Phase: "unpacking", ID: res.Item.LocalPath, Msg: destDir})
		if err := o.Unpack.ExtractAll(ctx, res.Item.LocalPath, destDir); err != nil {
			logger.Warn("Archive extraction failed", logrus.Fields{"archive": res.Item.LocalPath, "error": err})
			emit(o.Hooks, Event{Phase: "error", ID: res.Item.LocalPath, Msg: err.Error()})
		}
	}
	return nil
}

// runHooks executes the post-product script once per product directory and
// the post-batch script once for the whole run.
func (o *Orchestrator) runHooks(report *Report) error {
	if o.HookExec == nil {
		return nil
	}

	if o.HookExec.HasScript(hook.PostProduct) {
		for _, dir := range productDirs(report.Results) {
			hctx := productHookContext(dir, report.Results)
			emit(o.Hooks, Event{Phase: "hooks", ID: dir, Msg: string(hook.PostProduct)})
			if err := o.HookExec.Execute(hook.PostProduct, hctx); err != nil {
				return errors.Wrapf(err, "post-product hook for %s", dir)
			}
		}
	}

	if o.HookExec.HasScript(hook.PostBatch) {
		s := report.Summary
		hctx := hook.Context{
			Downloaded: s.Downloaded + s.Overwritten,
			Skipped:    s.Skipped,
			Failed:     s.Failed + s.TimedOut,
			Vars:       map[string]interface{}{"run_id": report.RunID},
		}
		emit(o.Hooks, Event{Phase: "hooks", ID: report.RunID, Msg: string(hook.PostBatch)})
		if err := o.HookExec.Execute(hook.PostBatch, hctx); err != nil {
			return errors.Wrap(err, "post-batch hook")
		}
	}

	return nil
}

// productDirs lists the distinct destination directories of a result set in
// first-seen order.
func productDirs(results []download.Result) []string {
	seen := make(map[string]struct{}, len(results))
	dirs := make([]string, 0, len(results))
	for _, res := range results {
		dir := filepath.Dir(res.Item.LocalPath)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

// productHookContext builds the script context for one product directory. The
// directory name carries the product identifier.
func productHookContext(dir string, results []download.Result) hook.Context {
	hctx := hook.Context{
		ProductID: filepath.Base(dir),
		DestDir:   dir,
	}
	if id, err := safename.ParseProductID(filepath.Base(dir)); err == nil {
		hctx.Tile = id.Tile
	}
	for _, res := range results {
		if filepath.Dir(res.Item.LocalPath) != dir {
			continue
		}
		switch {
		case res.Outcome == download.OutcomeSkipped:
			hctx.Skipped++
		case res.Outcome.OK():
			hctx.Downloaded++
		default:
			hctx.Failed++
		}
	}
	return hctx
}
