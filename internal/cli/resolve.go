package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/eofetch/pkg/resolve"
	"github.com/glorpus-work/eofetch/pkg/store"
)

type resolveFlags struct {
	bands    []string
	level    string
	dest     string
	failFast bool
}

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:   "resolve [PRODUCT_URI...]",
		Short: "Resolve product URIs to object transfers",
		Long: `List the object store under one or more product container URIs and print
the object paths together with the local paths a fetch would download them
to. Nothing is downloaded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.bands, "band", "b", nil, "Band to resolve, repeatable (e.g. B02); default: all bands of the level")
	cmd.Flags().StringVarP(&flags.level, "level", "l", "l1c", "Processing level (l1c or l2a)")
	cmd.Flags().StringVarP(&flags.dest, "dest", "d", "", "Destination root directory (defaults to config)")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "Abort the whole batch on the first resolution failure")

	return cmd
}

func runResolve(cmd *cobra.Command, rootURIs []string, flags resolveFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	family, err := parseFamily(flags.level)
	if err != nil {
		return err
	}

	client, err := store.NewClient(cfg.StoreCredentials())
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	destRoot := cfg.Settings.DestRoot
	if flags.dest != "" {
		destRoot = flags.dest
	}

	mode := resolve.CollectAll
	if flags.failFast {
		mode = resolve.FailFast
	}

	resolver := resolve.New(client)
	objects, rootErrs, err := resolver.ResolveAll(cmd.Context(), rootURIs,
		resolve.Options{Bands: flags.bands, Family: family, DestRoot: destRoot},
		resolve.BatchOptions{Workers: cfg.Settings.ResolveWorkers, Mode: mode})
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}

	for _, obj := range objects {
		fmt.Printf("%s -> %s\n", obj.Locator.URI(), obj.LocalPath)
	}
	for _, re := range rootErrs {
		fmt.Printf("failed to resolve %s: %v\n", re.RootURI, re.Err)
	}
	if len(rootErrs) > 0 {
		return fmt.Errorf("resolution finished with failures")
	}
	return nil
}
