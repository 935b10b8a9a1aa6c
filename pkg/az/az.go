// Package az is the public entry point for tokenizing and parsing az
// source: a thin facade over internal/lexer and internal/parser, in the
// same role the teacher's pkg/dwscript facade plays over its own
// internal lexer/parser pair.
package az

import (
	"github.com/az-lang/az-go/internal/lexer"
	"github.com/az-lang/az-go/internal/parser"
	"github.com/az-lang/az-go/pkg/ast"
	"github.com/az-lang/az-go/pkg/token"
)

// Tokenize lexes source into a flat token list, including every filler
// token (comments, newlines, whitespace). It fails fast on the first
// LexicalError.
func Tokenize(source string) ([]token.Token, error) {
	return lexer.Tokenize(source)
}

// Parse builds a Script from a token list as produced by Tokenize. It
// fails fast on the first ParsingError.
func Parse(tokens []token.Token) (*ast.Script, error) {
	return parser.FromTokens(tokens)
}

// ParseSource is Tokenize followed by Parse, the common case of going
// straight from source text to a Script.
func ParseSource(source string) (*ast.Script, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Re-exported CST and lexical-primitive types, so callers of this
// package never need to import pkg/ast or pkg/token directly for the
// common surface.
type (
	Script     = ast.Script
	Statement  = ast.Statement
	Expression = ast.Expression
	Token      = token.Token
	Kind       = token.Kind
)
