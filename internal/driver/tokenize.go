package driver

import (
	"context"
	"errors"
	"fmt"

	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/observ"
	"ember/internal/source"
	"ember/internal/token"
	"ember/internal/trace"
)

// Options tune a tokenization run. The tracer comes from the context.
type Options struct {
	MaxDiagnostics int
	Cache          *TokenCache  // nil disables caching
	Sink           ProgressSink // nil drops progress events
	Timings        bool         // fill TokenizeResult.Timing
}

// TokenizeResult holds the outcome for one file.
// Err is the tokenization failure (a *lexer.Error); load failures are
// returned from Tokenize directly.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Err     error
	Cached  bool
	Timing  observ.Report
}

// Tokenize loads path and tokenizes it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	timer := observ.NewTimer()

	idx := timer.Begin("load")
	emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	fileID, err := fs.Load(path)
	timer.End(idx, "")
	if err != nil {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		return nil, err
	}

	res := tokenizeFile(ctx, fs, fs.Get(fileID), opts, timer)
	if opts.Timings {
		res.Timing = timer.Report()
	}
	return res, nil
}

// tokenizeFile runs the cache lookup and the lexer for an already loaded file.
func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options, timer *observ.Timer) *TokenizeResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "tokenize", trace.CurrentSpan(ctx))
	span.WithExtra("path", file.Path)

	res := &TokenizeResult{
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	emit(opts.Sink, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})

	if opts.Cache != nil {
		idx := timer.Begin("cache")
		payload, ok, err := opts.Cache.Get(file.Hash)
		switch {
		case err != nil:
			timer.End(idx, "error")
			reportCacheFailure(res.Bag, file, "read", err)
		case ok:
			timer.End(idx, "hit")
			res.Cached = true
			res.Tokens, res.Err = payload.Result()
		default:
			timer.End(idx, "miss")
		}
	}

	if !res.Cached {
		idx := timer.Begin("lex")
		res.Tokens, res.Err = lexer.Tokenize(file, lexer.Options{
			Reporter: diag.BagReporter{Bag: res.Bag},
			Tracer:   tracer,
			Parent:   span.ID(),
		})
		timer.End(idx, fmt.Sprintf("%d tokens", len(res.Tokens)))

		if err := opts.Cache.Put(file.Hash, res.Tokens, res.Err); err != nil {
			reportCacheFailure(res.Bag, file, "write", err)
		}
	}

	// кэш хранит только ошибку; диагностика строится заново
	var le *lexer.Error
	if res.Cached && errors.As(res.Err, &le) {
		res.Bag.Add(lexer.Diagnose(file, le))
	}

	status := StatusDone
	if res.Err != nil {
		status = StatusError
		if res.Cached {
			trace.Error(tracer, trace.ScopeFile, "tokenize", res.Err, span.ID())
		}
	}
	elapsed := span.WithExtra("cached", fmt.Sprint(res.Cached)).End(fmt.Sprintf("%d tokens", len(res.Tokens)))
	emit(opts.Sink, Event{File: file.Path, Stage: StageLex, Status: status, Err: res.Err, Elapsed: elapsed})
	return res
}

func reportCacheFailure(bag *diag.Bag, file *source.File, op string, err error) {
	diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.IOCacheFailure,
		source.Span{File: file.ID},
		fmt.Sprintf("token cache %s failed: %v", op, err)).Emit()
}
