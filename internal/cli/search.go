package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/eofetch/pkg/catalog"
)

// DefaultSearchLimit is the default page size for catalog queries.
const DefaultSearchLimit = 100

type searchFlags struct {
	bboxes     []string
	level      string
	start      string
	end        string
	limit      int
	latestOnly bool
	fetch      bool
	fetchFlags fetchFlags
}

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog for products",
		Long: `Search the product catalog over one or more bounding boxes and a time
range. Repeated boxes are queried once. With --fetch the matching products
are downloaded right away.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.bboxes, "bbox", nil, "Bounding box minLon,minLat,maxLon,maxLat, repeatable")
	cmd.Flags().StringVarP(&flags.level, "level", "l", "l1c", "Processing level (l1c or l2a)")
	cmd.Flags().StringVar(&flags.start, "start", "", "Start of the sensing window (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.end, "end", "", "End of the sensing window (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().IntVar(&flags.limit, "limit", DefaultSearchLimit, "Page size hint for the catalog")
	cmd.Flags().BoolVar(&flags.latestOnly, "latest-only", false, "Keep only the highest processing baseline per acquisition")
	cmd.Flags().BoolVar(&flags.fetch, "fetch", false, "Download the matching products")
	cmd.Flags().StringSliceVarP(&flags.fetchFlags.bands, "band", "b", nil, "Band to fetch with --fetch, repeatable")
	cmd.Flags().StringVarP(&flags.fetchFlags.dest, "dest", "d", "", "Destination root directory with --fetch")
	cmd.Flags().BoolVar(&flags.fetchFlags.overwrite, "overwrite", false, "Replace files that already exist locally")
	cmd.Flags().BoolVar(&flags.fetchFlags.dryRun, "dry-run", false, "Resolve and print transfers without downloading")
	_ = cmd.MarkFlagRequired("bbox")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runSearch(cmd *cobra.Command, flags searchFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	family, err := parseFamily(flags.level)
	if err != nil {
		return err
	}

	boxes := make([]catalog.BBox, 0, len(flags.bboxes))
	for _, s := range flags.bboxes {
		box, err := parseBBox(s)
		if err != nil {
			return err
		}
		boxes = append(boxes, box)
	}

	start, err := parseTime(flags.start)
	if err != nil {
		return err
	}
	end, err := parseTime(flags.end)
	if err != nil {
		return err
	}

	query := catalog.Query{
		Collection: collectionForFamily(family),
		Start:      start,
		End:        end,
		Limit:      flags.limit,
	}

	if flags.fetch {
		orch, err := buildOrchestrator(cfg)
		if err != nil {
			return err
		}
		opts := fetchOptions(cfg, flags.fetchFlags, family)
		opts.LatestOnly = flags.latestOnly
		report, err := orch.SearchAndFetch(cmd.Context(), boxes, query, opts)
		if err != nil {
			return fmt.Errorf("search and fetch failed: %w", err)
		}
		printReport(report, flags.fetchFlags.dryRun)
		return nil
	}

	records, err := catalogClient(cfg).SearchMany(cmd.Context(), boxes, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if flags.latestOnly {
		records = catalog.LatestBaseline(records)
	}

	printRecords(records)
	return nil
}

func printRecords(records []catalog.Record) {
	if len(records) == 0 {
		fmt.Println("No products found")
		return
	}

	fmt.Printf("%-70s %-22s %s\n", "PRODUCT", "SENSED", "LOCATION")
	fmt.Println(strings.Repeat("-", 110))
	for _, rec := range records {
		sensed := ""
		if !rec.Timestamp.IsZero() {
			sensed = rec.Timestamp.UTC().Format(time.RFC3339)
		}
		fmt.Printf("%-70s %-22s %s\n", rec.ID, sensed, rec.DataURI)
	}
	fmt.Printf("\n%d products\n", len(records))
}
