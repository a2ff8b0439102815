package diag

import (
	"ember/internal/source"
)

// Note is a secondary message attached to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
