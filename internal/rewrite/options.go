package rewrite

import (
	"github.com/swanandpatil9195/culit/internal/diag"
)

// Options configures an expansion pass.
type Options struct {
	// CStrings gates c-string literal expansion. The flag comes from the
	// environment (manifest or CLI), never from a build-time conditional.
	CStrings bool
	// Reporter receives a mirror of every embedded compile_error sequence
	// so the toolchain can render diagnostics. May be nil.
	Reporter diag.Reporter
}
