package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // span start
	KindSpanEnd                   // span end
	KindPoint                     // instant event
	KindError                     // failure, emitted at every level but off
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower values are coarser.
type Scope uint8

const (
	ScopeCommand Scope = iota + 1 // one CLI invocation
	ScopePass                     // load, lex, cache lookup
	ScopeFile                     // per-file work inside a batch
	ScopeDebug                    // token-level chatter
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeCommand:
		return "command"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	Name     string // e.g. "tokenize", "lex", "file:src/main.em"
	Detail   string
	Elapsed  time.Duration // only on KindSpanEnd
	Extra    map[string]string
}
