package ast

import "github.com/az-lang/az-go/pkg/token"

// Statement is implemented by every statement-shaped CST node. az has a
// single statement shape: an expression terminated by a semicolon.
type Statement interface {
	Node
	statementNode()
}

// ExpressionStatement is "expression;".
type ExpressionStatement struct {
	Expression        Expression
	SemicolonPosition token.SubstringPosition
	SemicolonFillers  []Filler
}

func (*ExpressionStatement) node()          {}
func (*ExpressionStatement) statementNode() {}
