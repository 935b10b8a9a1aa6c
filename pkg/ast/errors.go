package ast

import (
	"fmt"

	"github.com/az-lang/az-go/pkg/token"
)

// ParsingError is implemented by every error the parser can raise. Like
// token.LexicalError, it is a closed set of comparable value types rather
// than a single message-carrying struct, so each failure mode is
// reproducible from its fields alone.
type ParsingError interface {
	error
	parsingError()
}

// OutOfTokens is raised when the token list is exhausted at a point where
// an expression (or some other required construct) was expected.
type OutOfTokens struct{}

func (OutOfTokens) parsingError()  {}
func (OutOfTokens) Error() string { return "ran out of tokens while parsing an expression" }

// UnexpectedToken is raised when a structural token appears where no
// grammar rule accepts it.
type UnexpectedToken struct {
	Token token.Token
}

func (e UnexpectedToken) parsingError() {}
func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Token)
}

// UnexpectedExpression is raised when a syntactically valid expression
// appears in a position that requires a more specific shape (for example,
// an annotation target that is not an Identifier).
type UnexpectedExpression struct {
	Expression Expression
}

func (e UnexpectedExpression) parsingError() {}
func (e UnexpectedExpression) Error() string {
	return fmt.Sprintf("unexpected expression %T", e.Expression)
}

// MissingSemicolon is raised when a top-level expression statement is not
// followed by a SEMICOLON.
type MissingSemicolon struct {
	Token token.Token
}

func (e MissingSemicolon) parsingError() {}
func (e MissingSemicolon) Error() string {
	return fmt.Sprintf("missing semicolon before %s", e.Token)
}

// MismatchedOpenBrace is raised when a "{" is never matched by a closing
// "}" before the token list is exhausted.
type MismatchedOpenBrace struct {
	Position token.SubstringPosition
}

func (e MismatchedOpenBrace) parsingError() {}
func (e MismatchedOpenBrace) Error() string {
	return fmt.Sprintf("'{' at %s has no matching '}'", e.Position)
}

// MismatchedOpenParenthesis is raised when a "(" is never matched by a
// closing ")" before the token list is exhausted.
type MismatchedOpenParenthesis struct {
	Position token.SubstringPosition
}

func (e MismatchedOpenParenthesis) parsingError() {}
func (e MismatchedOpenParenthesis) Error() string {
	return fmt.Sprintf("'(' at %s has no matching ')'", e.Position)
}
