package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ember/internal/driver"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [path]",
		Short: "Remove the ember token cache",
		Long:  "Remove cached token streams. The cache location comes from ember.toml found above path, or the user cache directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	baseDir := "."
	if len(args) > 0 && args[0] != "" {
		baseDir = args[0]
	}
	cfg, err := loadConfig(cmd, baseDir)
	if err != nil {
		return err
	}
	cache, err := driver.OpenTokenCache(cfg.manifest.CacheDir())
	if err != nil {
		return fmt.Errorf("failed to open token cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", cache.Dir(), err)
	}
	if !cfg.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "removed token cache in %s\n", cache.Dir())
	}
	return nil
}
