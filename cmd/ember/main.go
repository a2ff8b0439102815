package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ember/internal/version"
)

// exitError carries a process exit code for failures whose diagnostics were
// already printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// newRootCmd builds a fresh command tree. The returned func closes the
// tracer opened by PersistentPreRunE and must run after Execute, even on error.
func newRootCmd() (*cobra.Command, func()) {
	var traceCleanup func()
	rootCmd := &cobra.Command{
		Use:           "ember",
		Short:         "Ember lexer toolchain",
		Long:          `Ember tokenizes and checks Ember source files`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			traceCleanup = cleanup
			return nil
		},
	}
	// PersistentPostRun не вызывается при ошибке, поэтому трейсер закрывает вызывающий
	closeTrace := func() {
		if traceCleanup != nil {
			traceCleanup()
			traceCleanup = nil
		}
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "text", "trace format (text|ndjson)")
	return rootCmd, closeTrace
}

// main builds the command tree and executes it. Diagnostics failures exit
// with their own status; any other error is printed and exits with 1.
func main() {
	rootCmd, closeTrace := newRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	closeTrace()
	if err == nil {
		return
	}
	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
