// Package trace is ember's leveled event log.
//
// Events are grouped by scope (command, file, pass) and filtered by level.
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", parent)
//	defer span.End("")
//
// Enable from the CLI with:
//
//	ember tokenize --trace=- --trace-level=detail main.em
package trace
