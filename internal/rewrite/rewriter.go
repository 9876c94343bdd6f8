// Package rewrite implements the literal expansion pass: a depth-first walk
// over token trees that replaces every literal carrying a custom suffix
// with a call into the handler namespace
//
//	crate::custom_literal::<subtype>::<suffix>!(<components>)
//
// and every policy violation with an embedded ::core::compile_error!
// sequence at the literal's span. Everything else passes through untouched,
// in order, with its original spans and trivia.
package rewrite

import (
	"fmt"

	"github.com/swanandpatil9195/culit/internal/diag"
	"github.com/swanandpatil9195/culit/internal/literal"
	"github.com/swanandpatil9195/culit/internal/source"
	"github.com/swanandpatil9195/culit/internal/token"
)

const reservedSuffixMessage = " is not currently used by the host language, " +
	"but it likely will be in the future; " +
	"to avoid breakage and keep the host's compatibility guarantees, this suffix is forbidden"

const cStringMessage = "custom c-string literal suffixes require the c_strings capability"

const overflowMessage = "integer literal exceeds the 128-bit unsigned decomposition range"

const usageMessage = "the culit attribute does not take any arguments"

// Rewriter drives one or more expansion passes. It carries no state across
// invocations: each Expand is a pure token-stream to token-stream function.
type Rewriter struct {
	opts Options
}

func New(opts Options) *Rewriter {
	return &Rewriter{opts: opts}
}

// Expand applies the pass to one annotated unit. args is the attribute
// argument stream; any non-empty argument stream is a usage error, reported
// once and replacing the whole body (no literal is processed).
func (rw *Rewriter) Expand(args, body []token.Tree) ([]token.Tree, error) {
	if tree, ok := firstSignificant(args); ok {
		sp := tree.Span()
		rw.report(diag.ExpUsage, sp, usageMessage)
		return compileError(sp, nil, usageMessage), nil
	}
	return rw.Rewrite(body)
}

// Rewrite is the tree walker: depth-first, groups preserved with the same
// delimiter and recursively transformed contents, non-literal leaves
// untouched. The returned error is only ever an internal defect (literal
// text the classifier cannot parse); per-literal policy failures are
// embedded as diagnostics and do not stop the walk.
func (rw *Rewriter) Rewrite(stream []token.Tree) ([]token.Tree, error) {
	out := make([]token.Tree, 0, len(stream))
	for _, tree := range stream {
		switch t := tree.(type) {
		case token.Leaf:
			if !t.Tok.IsLiteral() {
				out = append(out, t)
				continue
			}
			repl, err := rw.rewriteLiteral(t.Tok)
			if err != nil {
				return nil, err
			}
			out = append(out, repl...)
		case *token.Group:
			items, err := rw.Rewrite(t.Items)
			if err != nil {
				return nil, err
			}
			out = append(out, &token.Group{
				Delim: t.Delim,
				Open:  t.Open,
				Close: t.Close,
				Items: items,
			})
		default:
			out = append(out, tree)
		}
	}
	return out, nil
}

// rewriteLiteral routes one literal: pass-through, reserved-suffix
// diagnostic, capability diagnostic, or decompose-and-synthesize.
func (rw *Rewriter) rewriteLiteral(tok token.Token) ([]token.Tree, error) {
	lit, err := literal.Parse(tok.Text)
	if err != nil {
		// The lexer validated this text; a parse failure here is a bug in
		// the classifier or the lexer, never a user error.
		return nil, fmt.Errorf("internal: classifying literal %q at %s: %w", tok.Text, tok.Span, err)
	}

	if lit.Suffix == "" || literal.NativeSuffix(lit.Kind, lit.Suffix) {
		return []token.Tree{token.Leaf{Tok: tok}}, nil
	}

	if literal.ReservedSuffix(lit.Kind, lit.Suffix) {
		msg := "suffix `" + lit.Suffix + "`" + reservedSuffixMessage
		rw.report(diag.ExpReservedSuffix, tok.Span, msg)
		return compileError(tok.Span, tok.Leading, msg), nil
	}

	if lit.Kind == literal.CStr && !rw.opts.CStrings {
		rw.report(diag.ExpCStringUnsupported, tok.Span, cStringMessage)
		return compileError(tok.Span, tok.Leading, cStringMessage), nil
	}

	component, err := rw.decompose(lit, tok.Span)
	if err != nil {
		return nil, err
	}
	if component == nil {
		// Decomposition already embedded a diagnostic (overflow).
		return compileError(tok.Span, tok.Leading, overflowMessage), nil
	}
	return synthesizeCall(lit, tok.Span, tok.Leading, *component), nil
}

// decompose produces the single canonical component for the literal, or
// (nil, nil) when the failure was reported as a per-literal diagnostic.
func (rw *Rewriter) decompose(lit literal.Literal, sp source.Span) (*token.Token, error) {
	mk := func(kind token.Kind, text string) *token.Token {
		return &token.Token{Kind: kind, Span: sp, Text: text}
	}

	switch lit.Kind {
	case literal.Int:
		value, err := lit.IntValue()
		if err == literal.ErrOverflow {
			rw.report(diag.ExpIntOverflow, sp, overflowMessage)
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("internal: decomposing %q: %w", lit.Text, err)
		}
		return mk(token.IntLit, value), nil

	case literal.Float:
		text, err := lit.FloatText()
		if err != nil {
			return nil, fmt.Errorf("internal: decomposing %q: %w", lit.Text, err)
		}
		return mk(token.FloatLit, text), nil

	case literal.Str:
		value, err := lit.StringValue()
		if err != nil {
			return nil, fmt.Errorf("internal: decomposing %q: %w", lit.Text, err)
		}
		return mk(token.StringLit, literal.QuoteText(value)), nil

	case literal.Char:
		value, err := lit.CharValue()
		if err != nil {
			return nil, fmt.Errorf("internal: decomposing %q: %w", lit.Text, err)
		}
		return mk(token.CharLit, literal.QuoteChar(value)), nil

	case literal.ByteChar:
		value, err := lit.ByteValue()
		if err != nil {
			return nil, fmt.Errorf("internal: decomposing %q: %w", lit.Text, err)
		}
		return mk(token.IntLit, fmt.Sprintf("%d", value)), nil

	case literal.ByteStr:
		value, err := lit.ByteStringValue()
		if err != nil {
			return nil, fmt.Errorf("internal: decomposing %q: %w", lit.Text, err)
		}
		return mk(token.ByteStringLit, literal.QuoteBytes(value)), nil

	case literal.CStr:
		value, err := lit.CStringValue()
		if err != nil {
			return nil, fmt.Errorf("internal: decomposing %q: %w", lit.Text, err)
		}
		return mk(token.CStringLit, literal.QuoteCBytes(value)), nil
	}
	return nil, fmt.Errorf("internal: unhandled literal kind %d", lit.Kind)
}

func (rw *Rewriter) report(code diag.Code, sp source.Span, msg string) {
	if rw.opts.Reporter != nil {
		rw.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// firstSignificant returns the first tree that is not an EOF leaf.
func firstSignificant(stream []token.Tree) (token.Tree, bool) {
	for _, tree := range stream {
		if leaf, ok := tree.(token.Leaf); ok && leaf.Tok.Kind == token.EOF {
			continue
		}
		return tree, true
	}
	return nil, false
}
