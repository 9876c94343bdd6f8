// Package diag defines the diagnostic model shared by the lexer, the parser
// and the expansion engine: stable codes, severities, span-attributed
// diagnostics, the Bag accumulator and the Reporter contract.
//
// Diagnostics collected here are the CLI-facing mirror of the
// compile_error! sequences the rewriter embeds into its output stream; the
// engine stays usable as a pure token transformation while the toolchain
// still gets renderable, sorted, deduplicated errors.
package diag
