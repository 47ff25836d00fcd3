package resolve

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/glorpus-work/eofetch/pkg/logger"
	"github.com/sirupsen/logrus"
)

// FailureMode selects how a batch resolution treats a failing product.
type FailureMode int

const (
	// CollectAll isolates failures per product: the batch completes and
	// failing roots are reported alongside the successful results.
	CollectAll FailureMode = iota
	// FailFast aborts the whole batch on the first failing product.
	FailFast
)

// DefaultResolveWorkers bounds concurrent listing calls. Listing is cheap
// compared to transfers, so this sits well above the download worker count.
const DefaultResolveWorkers = 16

// BatchOptions control a multi-product resolution.
type BatchOptions struct {
	Workers int // number of parallel listings; if <=0, DefaultResolveWorkers
	Mode    FailureMode
}

// RootError reports the failure of one product's resolution in CollectAll
// mode.
type RootError struct {
	RootURI string
	Err     error
}

// ResolveAll fans Resolve out over many product container URIs using a
// bounded worker pool. Input URIs are deduplicated before dispatch, so a
// repeated root is resolved once. Results of distinct roots are concatenated
// in input order; ordering within one root's sub-list follows the store
// listing.
//
// In FailFast mode the first failing root aborts the batch and its error is
// returned. In CollectAll mode (the default) every root is attempted and
// failures come back as RootErrors next to the successful results.
func (r *Resolver) ResolveAll(ctx context.Context, rootURIs []string, opts Options, batch BatchOptions) ([]ResolvedObject, []RootError, error) {
	workers := batch.Workers
	if workers <= 0 {
		workers = DefaultResolveWorkers
	}

	unique := dedupe(rootURIs)

	if batch.Mode == FailFast {
		resolved, err := r.resolveFailFast(ctx, unique, opts, workers)
		return resolved, nil, err
	}
	resolved, rootErrs := r.resolveCollectAll(ctx, unique, opts, workers)
	return resolved, rootErrs, nil
}

func (r *Resolver) resolveFailFast(ctx context.Context, roots []string, opts Options, workers int) ([]ResolvedObject, error) {
	results := make([][]ResolvedObject, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, root := range roots {
		g.Go(func() error {
			resolved, err := r.Resolve(gctx, root, opts)
			if err != nil {
				return err
			}
			results[i] = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return flatten(results), nil
}

func (r *Resolver) resolveCollectAll(ctx context.Context, roots []string, opts Options, workers int) ([]ResolvedObject, []RootError) {
	results := make([][]ResolvedObject, len(roots))
	rootErrs := make([]*RootError, len(roots))

	tasks := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				resolved, err := r.Resolve(ctx, roots[i], opts)
				if err != nil {
					logger.Error("product resolution failed", logrus.Fields{
						"root":  roots[i],
						"error": err.Error(),
					})
					rootErrs[i] = &RootError{RootURI: roots[i], Err: err}
					continue
				}
				results[i] = resolved
			}
		}()
	}
	for i := range roots {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	var errs []RootError
	for _, re := range rootErrs {
		if re != nil {
			errs = append(errs, *re)
		}
	}
	return flatten(results), errs
}

// dedupe removes repeated URIs, preserving first-seen order.
func dedupe(uris []string) []string {
	seen := make(map[string]struct{}, len(uris))
	out := make([]string, 0, len(uris))
	for _, uri := range uris {
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}
		out = append(out, uri)
	}
	return out
}

func flatten(results [][]ResolvedObject) []ResolvedObject {
	var out []ResolvedObject
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}
