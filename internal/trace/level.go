package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only failures
	LevelPhase               // command and pass boundaries
	LevelDetail              // per-file events
	LevelDebug               // everything
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelPhase:
		return "phase"
	case LevelDetail:
		return "detail"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "phase":
		return LevelPhase, nil
	case "detail":
		return LevelDetail, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
	}
}

// ShouldEmit reports whether an event of the given scope and kind passes the level.
func (l Level) ShouldEmit(scope Scope, kind Kind) bool {
	switch l {
	case LevelOff:
		return false
	case LevelError:
		return kind == KindError
	case LevelPhase:
		return kind == KindError || scope <= ScopePass
	case LevelDetail:
		return kind == KindError || scope <= ScopeFile
	case LevelDebug:
		return true
	}
	return false
}
