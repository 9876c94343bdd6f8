package driver

import (
	"time"

	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/format"
	"github.com/swanandpatil9195/culit/internal/lexer"
	"github.com/swanandpatil9195/culit/internal/parser"
	"github.com/swanandpatil9195/culit/internal/pipeline"
	"github.com/swanandpatil9195/culit/internal/rewrite"
	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

// ExpandOptions configures one expansion run.
type ExpandOptions struct {
	// CStrings enables expansion of custom-suffixed c-string literals.
	CStrings bool
	// AttrScoped limits the rewrite to items annotated with the attribute;
	// when false the whole file is treated as the annotated body.
	AttrScoped bool
	// AttrName is the attribute identifier to look for. Empty means "culit".
	AttrName string
	// MaxDiagnostics caps the diagnostic bag.
	MaxDiagnostics int
	// Progress receives per-stage events. May be nil.
	Progress pipeline.ProgressSink
}

func (o ExpandOptions) attrName() string {
	if o.AttrName == "" {
		return "culit"
	}
	return o.AttrName
}

func (o ExpandOptions) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// ExpandResult is the outcome of expanding one file.
type ExpandResult struct {
	FileSet *source.FileSet
	File    *source.File
	Trees   []token.Tree
	Output  string
	Bag     *diag.Bag
	Timings pipeline.Timings
}

// Expand loads a file from disk and rewrites its custom-suffixed literals.
func Expand(path string, opts ExpandOptions) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return expandFile(fs, fs.Get(fileID), opts)
}

// ExpandSource rewrites in-memory source registered under the given name.
func ExpandSource(name string, src []byte, opts ExpandOptions) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return expandFile(fs, fs.Get(fileID), opts)
}

func expandFile(fs *source.FileSet, file *source.File, opts ExpandOptions) (*ExpandResult, error) {
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := &diag.BagReporter{Bag: bag}
	res := &ExpandResult{FileSet: fs, File: file, Bag: bag}

	emit := func(stage pipeline.Stage, status pipeline.Status) {
		if opts.Progress != nil {
			opts.Progress.OnEvent(pipeline.Event{
				File:   file.Path,
				Stage:  stage,
				Status: status,
			})
		}
	}

	emit(pipeline.StageLex, pipeline.StatusWorking)
	lexStart := time.Now()
	tokens := lexer.New(file, lexer.Options{Reporter: reporter}).Tokens()
	res.Timings.Set(pipeline.StageLex, time.Since(lexStart))

	emit(pipeline.StageParse, pipeline.StatusWorking)
	parseStart := time.Now()
	trees := parser.Nest(tokens, parser.Options{Reporter: reporter})
	res.Timings.Set(pipeline.StageParse, time.Since(parseStart))

	emit(pipeline.StageExpand, pipeline.StatusWorking)
	expandStart := time.Now()
	rw := rewrite.New(rewrite.Options{CStrings: opts.CStrings, Reporter: reporter})

	var out []token.Tree
	var err error
	if opts.AttrScoped {
		out, err = expandAttributed(rw, trees, opts.attrName())
	} else {
		out, err = rw.Rewrite(trees)
	}
	res.Timings.Set(pipeline.StageExpand, time.Since(expandStart))
	if err != nil {
		emit(pipeline.StageExpand, pipeline.StatusError)
		return nil, err
	}

	res.Trees = out
	res.Output = format.Print(out)

	if bag.HasErrors() {
		emit(pipeline.StageExpand, pipeline.StatusError)
	} else {
		emit(pipeline.StageExpand, pipeline.StatusDone)
	}
	return res, nil
}
