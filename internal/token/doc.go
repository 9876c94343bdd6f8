// Package token defines the lexical token model shared by the lexer, the
// parser and the rewriting engine: flat tokens with spans and leading
// trivia, plus the nested token-tree form used during expansion.
package token
