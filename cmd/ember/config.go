package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ember/internal/driver"
	"ember/internal/project"
)

// cliConfig is the manifest with command-line overrides applied.
type cliConfig struct {
	manifest       *project.Manifest
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	format         string
	noCache        bool
}

// loadConfig discovers ember.toml starting at start and applies flags that
// were set explicitly. Flags override the manifest, the manifest overrides
// built-in defaults.
func loadConfig(cmd *cobra.Command, start string) (*cliConfig, error) {
	m, _, err := project.Discover(start)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	cfg := &cliConfig{manifest: m, maxDiagnostics: m.Lex.MaxDiagnostics, format: m.Output.Format}

	colorMode := m.Output.Color
	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if cfg.color, err = resolveColor(colorMode, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	if cfg.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if cfg.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if flags.Changed("max-diagnostics") {
		if cfg.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.format = strings.ToLower(f.Value.String())
	}
	switch cfg.format {
	case "pretty", "json":
	default:
		return nil, fmt.Errorf("unknown format: %s", cfg.format)
	}
	if f := flags.Lookup("no-cache"); f != nil {
		cfg.noCache = f.Value.String() == "true"
	}
	if !m.Cache.Enabled {
		cfg.noCache = true
	}
	return cfg, nil
}

func resolveColor(mode string, out io.Writer) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return writerIsTerminal(out) && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

// openCache returns nil when caching is disabled or the directory is unusable;
// the latter is reported as a warning.
func (c *cliConfig) openCache(stderr io.Writer) *driver.TokenCache {
	if c.noCache {
		return nil
	}
	cache, err := driver.OpenTokenCache(c.manifest.CacheDir())
	if err != nil {
		if !c.quiet {
			fmt.Fprintf(stderr, "warning: token cache disabled: %v\n", err)
		}
		return nil
	}
	return cache
}

func (c *cliConfig) driverOptions(stderr io.Writer) driver.Options {
	return driver.Options{
		MaxDiagnostics: c.maxDiagnostics,
		Cache:          c.openCache(stderr),
		Timings:        c.timings,
	}
}
