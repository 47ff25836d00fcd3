package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/eofetch/pkg/cache"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the catalog result cache",
		Long:  "Inspect and clean the on-disk cache of catalog search results",
	}

	cmd.AddCommand(
		newCacheInfoCmd(),
		newCacheCleanCmd(),
	)

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		RunE:  runCacheInfo,
	}
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove cached catalog results",
		RunE:  runCacheClean,
	}
}

func cacheOperation() (*cache.CacheOperation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	manager, err := cache.NewManager(cfg.GetCacheDir())
	if err != nil {
		return nil, fmt.Errorf("failed to create cache manager: %w", err)
	}
	return cache.NewCacheOperation(manager), nil
}

func runCacheInfo(*cobra.Command, []string) error {
	op, err := cacheOperation()
	if err != nil {
		return err
	}
	info, err := op.GetInfo()
	if err != nil {
		return err
	}
	fmt.Println(info)
	return nil
}

func runCacheClean(*cobra.Command, []string) error {
	op, err := cacheOperation()
	if err != nil {
		return err
	}
	msg, err := op.Clean()
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
