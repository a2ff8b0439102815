// Package diag defines the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer and by file loading.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not perform any formatting beyond the one-line short form,
// IO or CLI integration. Rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue. An empty span marks
//     a position rather than a range (end of input).
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Producers use a Reporter. ReportError/ReportWarning return a ReportBuilder
// that can carry notes before Emit. BagReporter aggregates diagnostics into a
// Bag, which supports sorting and deduplication.
package diag
