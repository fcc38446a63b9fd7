package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cablecheck/internal/board"
	"cablecheck/internal/classify"
	"cablecheck/internal/observ"
)

// FilesOptions configures a batch analysis run.
type FilesOptions struct {
	Jobs          int
	EnableTimings bool
}

// FileResult captures the analysis of one observation file. Err is set when
// the file failed to load or translate; the other fields are then zero.
type FileResult struct {
	Path   string
	Err    error
	Result classify.Result
	Timer  *observ.Timer
}

// AnalyzeFiles analyzes the provided observation files or directories
// (recursively collecting .toml files). Files run concurrently up to
// opts.Jobs workers (GOMAXPROCS when zero), and results keep the argument
// order regardless of completion order. Per-file failures are captured in
// the result slice; only context cancellation aborts the batch.
func AnalyzeFiles(ctx context.Context, paths []string, profile *board.Profile, opts FilesOptions) ([]FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectObservationFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("analyze: no observation files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				res, err := AnalyzeFile(path, profile, AnalyzeOptions{EnableTimings: opts.EnableTimings})
				if err != nil {
					results[i] = FileResult{Path: path, Err: err}
					return nil
				}
				results[i] = FileResult{Path: path, Result: res.Result, Timer: res.Timer}
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// collectObservationFiles expands the argument list: explicit files pass
// through as given, directories contribute their .toml files in lexical
// walk order. Duplicates collapse to the first occurrence.
func collectObservationFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == ".toml" {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		addFile(p)
	}

	return files, nil
}
