package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.em",
		Short: "Tokenize an ember source file",
		Long:  `Tokenize breaks down an ember source file into its constituent tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the token cache")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := loadConfig(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), filePath, cfg.driverOptions(stderr))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if cfg.timings {
		defer printTimings(stderr, result.File.Path, result.Timing)
	}

	if result.Err != nil {
		if cfg.format == "json" {
			if err := diagfmt.JSON(stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		} else if cfg.quiet {
			fmt.Fprintln(stderr, diagfmt.Describe(result.File, result.Err))
		} else {
			diagfmt.Pretty(stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:     cfg.color,
				Context:   2,
				ShowNotes: true,
			})
		}
		return &exitError{code: 1}
	}

	// Предупреждения (например, о кэше) не мешают выводу токенов
	if result.Bag.HasWarnings() && !cfg.quiet {
		diagfmt.Pretty(stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: cfg.color})
	}

	switch cfg.format {
	case "json":
		return diagfmt.FormatTokensJSON(stdout, result.Tokens, result.File)
	default:
		return diagfmt.FormatTokensPretty(stdout, result.Tokens, result.File)
	}
}
