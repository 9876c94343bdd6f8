package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/swanandpatil9195/culit/internal/pipeline"
)

// ExpandDirOptions configures a directory-wide expansion run.
type ExpandDirOptions struct {
	ExpandOptions
	// Ext selects input files by extension, ".rs" by default.
	Ext string
	// OutDir mirrors the input tree under a new root. Empty writes each
	// output next to its source with an added ".out" suffix.
	OutDir string
	// Jobs bounds parallelism; <=0 means GOMAXPROCS.
	Jobs int
}

func (o ExpandDirOptions) ext() string {
	if o.Ext == "" {
		return ".rs"
	}
	return o.Ext
}

// ExpandDirResult is the outcome for one file of a directory run.
type ExpandDirResult struct {
	Path    string // path relative to the run's root directory
	OutPath string
	Result  *ExpandResult
	Err     error
}

// ListFiles returns the sorted paths of all candidate files under dir.
func ListFiles(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandDir expands every candidate file under dir in parallel and writes
// the rewritten sources. Per-file failures land in the corresponding result;
// only context cancellation aborts the run.
func ExpandDir(ctx context.Context, dir string, opts ExpandDirOptions) ([]ExpandDirResult, error) {
	files, err := ListFiles(dir, opts.ext())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	emit := func(ev pipeline.Event) {
		if opts.Progress != nil {
			opts.Progress.OnEvent(ev)
		}
	}
	for _, path := range files {
		emit(pipeline.Event{File: path, Stage: pipeline.StageLex, Status: pipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ExpandDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			rel := relativeTo(dir, path)
			res := expandOne(path, rel, opts)
			res.Path = rel
			results[i] = res

			switch {
			case res.Err != nil, res.Result != nil && res.Result.Bag.HasErrors():
				emit(pipeline.Event{File: path, Stage: pipeline.StageWrite, Status: pipeline.StatusError, Err: res.Err})
			default:
				emit(pipeline.Event{File: path, Stage: pipeline.StageWrite, Status: pipeline.StatusDone})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// expandOne expands a single file and writes its output.
func expandOne(path, rel string, opts ExpandDirOptions) ExpandDirResult {
	res, err := Expand(path, opts.ExpandOptions)
	if err != nil {
		return ExpandDirResult{Err: err}
	}

	outPath := outputPath(path, rel, opts)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return ExpandDirResult{Result: res, OutPath: outPath, Err: err}
	}
	if err := os.WriteFile(outPath, []byte(res.Output), 0o644); err != nil {
		return ExpandDirResult{Result: res, OutPath: outPath, Err: err}
	}
	return ExpandDirResult{Result: res, OutPath: outPath}
}

func outputPath(path, rel string, opts ExpandDirOptions) string {
	if opts.OutDir == "" {
		return path + ".out"
	}
	return filepath.Join(opts.OutDir, rel)
}

func relativeTo(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}
