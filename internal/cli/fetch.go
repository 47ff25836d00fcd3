package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/eofetch/pkg/archive"
	"github.com/glorpus-work/eofetch/pkg/config"
	"github.com/glorpus-work/eofetch/pkg/download"
	"github.com/glorpus-work/eofetch/pkg/hook"
	"github.com/glorpus-work/eofetch/pkg/orchestrator"
	"github.com/glorpus-work/eofetch/pkg/resolve"
	"github.com/glorpus-work/eofetch/pkg/safename"
	"github.com/glorpus-work/eofetch/pkg/store"
)

type fetchFlags struct {
	bands     []string
	level     string
	dest      string
	overwrite bool
	unpack    bool
	dryRun    bool
	failFast  bool
	workers   int
	timeout   time.Duration
}

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var flags fetchFlags

	cmd := &cobra.Command{
		Use:   "fetch [PRODUCT_URI...]",
		Short: "Download band files of products",
		Long: `Resolve one or more product container URIs against the object store and
download the requested band files plus the tile metadata. Repeated URIs are
resolved once. Files already present locally are skipped unless --overwrite
is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.bands, "band", "b", nil, "Band to fetch, repeatable (e.g. B02); default: all bands of the level")
	cmd.Flags().StringVarP(&flags.level, "level", "l", "l1c", "Processing level (l1c or l2a)")
	cmd.Flags().StringVarP(&flags.dest, "dest", "d", "", "Destination root directory (defaults to config)")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Replace files that already exist locally")
	cmd.Flags().BoolVar(&flags.unpack, "unpack", false, "Extract downloaded zip archives next to themselves")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Resolve and print transfers without downloading")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "Abort the whole batch on the first resolution failure")
	cmd.Flags().IntVar(&flags.workers, "concurrency", 0, "Number of parallel downloads (0=config default)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Per-file download deadline (0=config default)")

	return cmd
}

func runFetch(cmd *cobra.Command, rootURIs []string, flags fetchFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	family, err := parseFamily(flags.level)
	if err != nil {
		return err
	}

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	report, err := orch.FetchProducts(cmd.Context(), rootURIs, fetchOptions(cfg, flags, family))
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	printReport(report, flags.dryRun)
	if report.Summary.Failed > 0 || report.Summary.TimedOut > 0 || len(report.RootErrors) > 0 {
		return fmt.Errorf("fetch finished with failures")
	}
	return nil
}

// buildOrchestrator wires the store, resolver, download and hook managers
// from the configuration.
func buildOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	client, err := store.NewClient(cfg.StoreCredentials())
	if err != nil {
		return nil, fmt.Errorf("failed to create store client: %w", err)
	}

	hookExec := hook.NewTengoExecutor()
	if dir := cfg.GetHookDir(); dir != "" {
		if err := hookExec.LoadDir(dir); err != nil {
			return nil, fmt.Errorf("failed to load hook scripts: %w", err)
		}
	}

	hooks := orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		if e.ID != "" {
			fmt.Printf("%s: %s (%s)\n", e.Phase, e.Msg, e.ID)
		} else {
			fmt.Printf("%s: %s\n", e.Phase, e.Msg)
		}
	}}

	return orchestrator.New(
		catalogClient(cfg),
		resolve.New(client),
		download.NewManager(client),
		archive.NewUnpacker(),
		hookExec,
		hooks,
	), nil
}

func fetchOptions(cfg *config.Config, flags fetchFlags, family safename.Family) orchestrator.FetchOptions {
	opts := orchestrator.FetchOptions{
		Bands:           flags.bands,
		Family:          family,
		DestRoot:        cfg.Settings.DestRoot,
		Overwrite:       flags.overwrite || cfg.Settings.Overwrite,
		Unpack:          flags.unpack,
		DryRun:          flags.dryRun,
		ResolveWorkers:  cfg.Settings.ResolveWorkers,
		DownloadWorkers: cfg.Settings.DownloadWorkers,
		ItemTimeout:     cfg.Settings.ItemTimeout,
	}
	if flags.dest != "" {
		opts.DestRoot = flags.dest
	}
	if flags.workers > 0 {
		opts.DownloadWorkers = flags.workers
	}
	if flags.timeout > 0 {
		opts.ItemTimeout = flags.timeout
	}
	if flags.failFast {
		opts.Mode = resolve.FailFast
	}
	return opts
}

func printReport(report *orchestrator.Report, dryRun bool) {
	for _, re := range report.RootErrors {
		fmt.Printf("failed to resolve %s: %v\n", re.RootURI, re.Err)
	}
	if dryRun {
		fmt.Printf("planned %d transfers\n", len(report.Planned))
		return
	}
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Printf("%s: %s (%v)\n", res.Outcome, res.Item.LocalPath, res.Err)
		}
	}
	s := report.Summary
	fmt.Printf("downloaded %d, overwritten %d, skipped %d, failed %d, timed out %d\n",
		s.Downloaded, s.Overwritten, s.Skipped, s.Failed, s.TimedOut)
}
