package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ember/internal/version"
)

type versionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

type versionOptions struct {
	format   string
	showHash bool
	showDate bool
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show ember build information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().Bool("hash", false, "include git commit hash")
	cmd.Flags().Bool("date", false, "include build timestamp")
	cmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	format, _ := flags.GetString("format")
	full, _ := flags.GetBool("full")
	hash, _ := flags.GetBool("hash")
	date, _ := flags.GetBool("date")
	opts := versionOptions{
		format:   strings.ToLower(format),
		showHash: hash || full,
		showDate: date || full,
	}

	switch opts.format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	info := collectVersionInfo()
	if opts.format == "json" {
		return renderVersionJSON(cmd.OutOrStdout(), info, opts)
	}

	colorMode, _ := flags.GetString("color")
	useColor, err := resolveColor(colorMode, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	color.NoColor = !useColor
	renderVersionPretty(cmd.OutOrStdout(), info, opts)
	return nil
}

func collectVersionInfo() versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	return versionInfo{
		Version:   v,
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
	}
}

func renderVersionPretty(out io.Writer, info versionInfo, opts versionOptions) {
	fmt.Fprintf(out, "ember %s\n", version.Pretty())
	if opts.showHash {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	}
}

func renderVersionJSON(out io.Writer, info versionInfo, opts versionOptions) error {
	payload := versionPayload{
		Tool:    "ember",
		Version: info.Version,
	}
	if opts.showHash {
		payload.GitCommit = valueOrUnknown(info.GitCommit)
	}
	if opts.showDate {
		payload.BuildDate = valueOrUnknown(info.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
