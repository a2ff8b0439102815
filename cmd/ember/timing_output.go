package main

import (
	"fmt"
	"io"
	"strings"

	"ember/internal/observ"
)

// printTimings writes one line per file: "label: load 0.1 ms, lex 0.4 ms (3 tokens), total 0.5 ms".
func printTimings(out io.Writer, label string, report observ.Report) {
	if out == nil || len(report.Phases) == 0 {
		return
	}
	parts := make([]string, 0, len(report.Phases)+1)
	for _, p := range report.Phases {
		part := fmt.Sprintf("%s %.1f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			part += " (" + p.Note + ")"
		}
		parts = append(parts, part)
	}
	parts = append(parts, fmt.Sprintf("total %.1f ms", report.TotalMS))
	fmt.Fprintf(out, "%s: %s\n", label, strings.Join(parts, ", "))
}
