package parser

import (
	"github.com/az-lang/az-go/pkg/ast"
	"github.com/az-lang/az-go/pkg/token"
)

// cursor walks an already-tokenized input, transparently collecting and
// redistributing filler tokens onto the next structural token, in the
// style of the teacher's TokenCursor — but it advances an index in place
// over a fully materialized slice rather than a lazily-buffered lexer, since az's
// grammar contract (Script.from_tokens) takes a complete token list.
type cursor struct {
	tokens []token.Token
	index  int
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens}
}

// peekStructural returns the next non-filler token without consuming
// anything, including the fillers ahead of it.
func (c *cursor) peekStructural() (token.Token, bool) {
	for i := c.index; i < len(c.tokens); i++ {
		if !c.tokens[i].Content.Kind.IsFiller() {
			return c.tokens[i], true
		}
	}
	return token.Token{}, false
}

// nextStructural consumes and returns the next non-filler token, along
// with every filler token that preceded it (in source order). ok is
// false if no structural token remains; any trailing fillers are left
// unconsumed for drainTrailingFillers.
func (c *cursor) nextStructural() (token.Token, []ast.Filler, bool) {
	var collected []ast.Filler
	for c.index < len(c.tokens) {
		t := c.tokens[c.index]
		if t.Content.Kind.IsFiller() {
			collected = append(collected, ast.FillerFromToken(t))
			c.index++
			continue
		}
		c.index++
		return t, collected, true
	}
	c.index -= len(collected) // leave unconsumed fillers in place
	return token.Token{}, nil, false
}

// hasStructuralRemaining reports whether any non-filler token remains.
func (c *cursor) hasStructuralRemaining() bool {
	_, ok := c.peekStructural()
	return ok
}

// drainTrailingFillers consumes every remaining token (which, once
// hasStructuralRemaining is false, can only be fillers) and returns them.
func (c *cursor) drainTrailingFillers() []ast.Filler {
	var result []ast.Filler
	for c.index < len(c.tokens) {
		result = append(result, ast.FillerFromToken(c.tokens[c.index]))
		c.index++
	}
	return result
}
