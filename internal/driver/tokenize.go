// Package driver wires the lexer, parser, and rewriter into the operations
// the CLI exposes: tokenize, expand one file, expand a directory.
package driver

import (
	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/lexer"
	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

// TokenizeResult bundles the token stream with everything needed to render
// its diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file and runs the lexer over it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.Tokens(),
		Bag:     bag,
	}, nil
}
