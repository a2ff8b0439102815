package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"ember/internal/diag"
	"ember/internal/observ"
	"ember/internal/source"
	"ember/internal/trace"
)

// DefaultExtensions are the source file extensions picked up by ListFiles.
var DefaultExtensions = []string{".em"}

// FileResult содержит результат токенизации одного файла из пакета.
type FileResult struct {
	Path   string          // путь, как он был передан
	Result *TokenizeResult // nil, если файл не загрузился
	Bag    *diag.Bag       // диагностики файла, включая ошибку загрузки
}

// Failed reports whether the file could not be loaded or tokenized.
func (r FileResult) Failed() bool {
	return r.Result == nil || r.Result.Err != nil
}

// ListFiles returns the sorted list of files under root with one of exts.
// A root that is a regular file is returned as is, whatever its extension.
func ListFiles(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// TokenizeFiles токенизирует файлы параллельно, не более jobs одновременно.
// Results keep the order of files. A cancelled ctx stops queued files and is
// returned as the error.
func TokenizeFiles(ctx context.Context, baseDir string, files []string, jobs int, opts Options) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSetWithBase(baseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "tokenize-files", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	// Предзагрузка: FileSet не потокобезопасен на запись
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	timers := make([]*observ.Timer, len(files))
	for i, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		timer := observ.NewTimer()
		idx := timer.Begin("load")
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
		timer.End(idx, "")
		if loadErrors[i] != nil {
			// пустая заглушка, чтобы диагностика указывала на этот путь
			fileIDs[i] = fileSet.AddVirtual(path, nil)
		}
		timers[i] = timer
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr := loadErrors[i]; loadErr != nil {
				bag := diag.NewBag(opts.MaxDiagnostics)
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFailed,
					source.Span{File: fileIDs[i]}, "failed to load file: "+loadErr.Error()).Emit()
				results[i] = FileResult{Path: path, Bag: bag}
				emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}

			timer := timers[i]
			res := tokenizeFile(gctx, fileSet, fileSet.Get(fileIDs[i]), opts, timer)
			if opts.Timings {
				res.Timing = timer.Report()
			}
			results[i] = FileResult{Path: path, Result: res, Bag: res.Bag}
			return nil
		})
	}

	err := g.Wait()
	span.End("")
	return fileSet, results, err
}

// TokenizeDir токенизирует все файлы с расширениями exts под dir.
func TokenizeDir(ctx context.Context, dir string, exts []string, jobs int, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}
	base := dir
	if len(files) == 1 && files[0] == dir {
		base = filepath.Dir(dir)
	}
	return TokenizeFiles(ctx, base, files, jobs, opts)
}
