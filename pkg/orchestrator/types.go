//go:generate mockgen -destination=./mocks/orchestrator.go -package=mocks . ProductSearcher,ObjectResolver,Fetcher,Unpacker

package orchestrator

import (
	"context"
	"time"

	"github.com/glorpus-work/eofetch/pkg/catalog"
	"github.com/glorpus-work/eofetch/pkg/download"
	"github.com/glorpus-work/eofetch/pkg/resolve"
	"github.com/glorpus-work/eofetch/pkg/safename"
)

// ProductSearcher is the subset of the catalog client used by the orchestrator.
type ProductSearcher interface {
	SearchMany(ctx context.Context, boxes []catalog.BBox, q catalog.Query) ([]catalog.Record, error)
}

// ObjectResolver turns product container URIs into concrete object transfers.
type ObjectResolver interface {
	ResolveAll(ctx context.Context, rootURIs []string, opts resolve.Options, batch resolve.BatchOptions) ([]resolve.ResolvedObject, []resolve.RootError, error)
}

// Fetcher handles object downloading.
type Fetcher interface {
	FetchAll(ctx context.Context, items []download.Item, opts download.Options) []download.Result
}

// Unpacker extracts downloaded product archives.
type Unpacker interface {
	ExtractAll(ctx context.Context, archivePath, destDir string) error
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // searching|resolving|planning|downloading|unpacking|hooks|done|error
	ID    string // step ID, e.g. a product URI or local path
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// FetchOptions control orchestrator fetch execution.
type FetchOptions struct {
	Bands           []string
	Family          safename.Family
	DestRoot        string
	Overwrite       bool
	Unpack          bool
	DryRun          bool
	LatestOnly      bool // keep only the highest processing baseline per tile and sensing time
	ResolveWorkers  int
	DownloadWorkers int
	ItemTimeout     time.Duration
	Mode            resolve.FailureMode
}

// Report is the outcome of one orchestrated fetch run.
type Report struct {
	RunID      string
	Planned    []resolve.ResolvedObject
	RootErrors []resolve.RootError
	Results    []download.Result
	Summary    download.Summary
}
