package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"ember/internal/diagfmt"
	"ember/internal/driver"
	"ember/internal/project"
	"ember/internal/source"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [path...]",
		Short: "Tokenize every ember file under the given paths",
		Long:  `Check tokenizes all ember source files in parallel and reports every file that fails`,
		RunE:  runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	cmd.Flags().String("ui", string(uiModeAuto), "progress UI (auto|on|off)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the token cache")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := loadConfig(cmd, paths[0])
	if err != nil {
		return err
	}
	jobs := cfg.manifest.Lex.Jobs
	if cmd.Flags().Changed("jobs") {
		if jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	files, err := collectFiles(paths, cfg.manifest.Lex.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !cfg.quiet {
			fmt.Fprintln(stdout, "no ember files found")
		}
		return nil
	}

	baseDir := checkBaseDir(cfg.manifest)
	opts := cfg.driverOptions(stderr)

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	if !cfg.quiet && shouldUseTUI(mode, stdout) {
		fileSet, results, err = runCheckWithUI(cmd.Context(), stdout, "ember check", baseDir, files, jobs, opts)
	} else {
		fileSet, results, err = driver.TokenizeFiles(cmd.Context(), baseDir, files, jobs, opts)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
		if r.Bag.Len() > 0 && (r.Failed() || !cfg.quiet) {
			r.Bag.Sort()
			diagfmt.Pretty(stderr, r.Bag, fileSet, diagfmt.PrettyOpts{
				Color:     cfg.color,
				Context:   1,
				PathMode:  diagfmt.PathModeRelative,
				ShowNotes: true,
			})
		}
		if cfg.timings && r.Result != nil {
			printTimings(stderr, r.Result.File.FormatPath("relative", baseDir), r.Result.Timing)
		}
	}

	if !cfg.quiet {
		fmt.Fprintf(stdout, "checked %d files: %d ok, %d failed\n", len(results), len(results)-failed, failed)
	}
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// collectFiles lists matching files under every path, sorted and without
// duplicates.
func collectFiles(paths, exts []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		list, err := driver.ListFiles(p, exts)
		if err != nil {
			return nil, err
		}
		files = append(files, list...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

func checkBaseDir(m *project.Manifest) string {
	if m.Root != "" {
		return m.Root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
