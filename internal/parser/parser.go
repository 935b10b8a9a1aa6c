// Package parser implements the Pratt (operator-precedence) parser that
// turns a flat token list into an az concrete syntax tree, redistributing
// every filler token onto the structural token that follows it so the
// tree can be losslessly re-tokenized.
package parser

import (
	"github.com/az-lang/az-go/pkg/ast"
	"github.com/az-lang/az-go/pkg/token"
)

type parser struct {
	cursor *cursor
}

// FromTokens parses a complete token list (as produced by the lexer) into
// a Script. It is fail-fast: the first ParsingError encountered aborts
// parsing and is returned, with a nil Script.
func FromTokens(tokens []token.Token) (*ast.Script, error) {
	p := &parser{cursor: newCursor(tokens)}

	var statements []ast.Statement
	for p.cursor.hasStructuralRemaining() {
		expr, err := p.parseExpression(ast.PrecedenceMin)
		if err != nil {
			return nil, err
		}

		next, ok := p.cursor.peekStructural()
		if !ok {
			return nil, ast.OutOfTokens{}
		}
		if next.Content.Kind != token.SEMICOLON {
			return nil, ast.MissingSemicolon{Token: next}
		}
		semiTok, semiFillers, _ := p.cursor.nextStructural()

		statements = append(statements, &ast.ExpressionStatement{
			Expression:        expr,
			SemicolonPosition: semiTok.Position,
			SemicolonFillers:  semiFillers,
		})
	}

	return &ast.Script{Statements: statements, Fillers: p.cursor.drainTrailingFillers()}, nil
}

// infixBinding describes how a structural token, when encountered after a
// complete expression, continues that expression as an infix/postfix
// operator.
type infixBinding struct {
	precedence    ast.Precedence
	rightOperandMin func(ast.Precedence) ast.Precedence
}

var leftAssociative = func(p ast.Precedence) ast.Precedence { return p + 1 }
var rightAssociative = func(p ast.Precedence) ast.Precedence { return p }

var infixBindings = map[token.Kind]infixBinding{
	token.PLUS:                     {ast.PrecedenceAdditive, leftAssociative},
	token.MINUS:                    {ast.PrecedenceAdditive, leftAssociative},
	token.ASTERISK:                 {ast.PrecedenceMultiplicative, leftAssociative},
	token.SLASH:                    {ast.PrecedenceMultiplicative, leftAssociative},
	token.EQUAL_TO:                 {ast.PrecedenceEquality, leftAssociative},
	token.NOT_EQUAL_TO:             {ast.PrecedenceEquality, leftAssociative},
	token.LOWER_THAN:               {ast.PrecedenceComparison, leftAssociative},
	token.LOWER_THAN_OR_EQUAL_TO:   {ast.PrecedenceComparison, leftAssociative},
	token.GREATER_THAN:             {ast.PrecedenceComparison, leftAssociative},
	token.GREATER_THAN_OR_EQUAL_TO: {ast.PrecedenceComparison, leftAssociative},
	token.ASSIGNMENT:               {ast.PrecedenceAssignment, rightAssociative},
	token.COLON:                    {ast.PrecedenceAnnotation, rightAssociative},
	token.DOT:                      {ast.PrecedenceCallMember, leftAssociative},
	token.OPEN_PARENTHESIS:         {ast.PrecedenceCallMember, leftAssociative},
}

var arithmeticOperators = map[token.Kind]ast.BinaryArithmeticOperator{
	token.PLUS:     ast.BinaryAddition,
	token.MINUS:    ast.BinarySubtraction,
	token.ASTERISK: ast.BinaryMultiplication,
	token.SLASH:    ast.BinaryDivision,
}

var comparisonOperators = map[token.Kind]ast.BinaryComparisonOperator{
	token.EQUAL_TO:                 ast.BinaryEqualTo,
	token.NOT_EQUAL_TO:             ast.BinaryNotEqualTo,
	token.LOWER_THAN:               ast.BinaryLowerThan,
	token.LOWER_THAN_OR_EQUAL_TO:   ast.BinaryLowerThanOrEqualTo,
	token.GREATER_THAN:             ast.BinaryGreaterThan,
	token.GREATER_THAN_OR_EQUAL_TO: ast.BinaryGreaterThanOrEqualTo,
}

// parseExpression is the Pratt loop: parse one atom, then keep extending
// it with infix operators whose precedence is at least minPrecedence.
func (p *parser) parseExpression(minPrecedence ast.Precedence) (ast.Expression, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		next, ok := p.cursor.peekStructural()
		if !ok {
			break
		}
		binding, isInfix := infixBindings[next.Content.Kind]
		if !isInfix || binding.precedence < minPrecedence {
			break
		}
		left, err = p.parseInfix(left, next, binding)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *parser) parseInfix(left ast.Expression, opTok token.Token, binding infixBinding) (ast.Expression, error) {
	opTok, opFillers, _ := p.cursor.nextStructural()

	switch opTok.Content.Kind {
	case token.PLUS, token.MINUS, token.ASTERISK, token.SLASH:
		right, err := p.parseExpression(binding.rightOperandMin(binding.precedence))
		if err != nil {
			return nil, err
		}
		return &ast.BinaryArithmeticOperation{
			Left: left, Right: right, Operator: arithmeticOperators[opTok.Content.Kind],
			OperatorPosition: opTok.Position, OperatorFillers: opFillers,
		}, nil

	case token.EQUAL_TO, token.NOT_EQUAL_TO, token.LOWER_THAN, token.LOWER_THAN_OR_EQUAL_TO, token.GREATER_THAN, token.GREATER_THAN_OR_EQUAL_TO:
		right, err := p.parseExpression(binding.rightOperandMin(binding.precedence))
		if err != nil {
			return nil, err
		}
		return &ast.BinaryComparison{
			Left: left, Right: right, Operator: comparisonOperators[opTok.Content.Kind],
			OperatorPosition: opTok.Position, OperatorFillers: opFillers,
		}, nil

	case token.ASSIGNMENT:
		value, err := p.parseExpression(binding.rightOperandMin(binding.precedence))
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: left, Value: value, OperatorPosition: opTok.Position, OperatorFillers: opFillers}, nil

	case token.COLON:
		ident, ok := left.(*ast.Identifier)
		if !ok {
			return nil, ast.UnexpectedExpression{Expression: left}
		}
		annotation, err := p.parseExpression(binding.rightOperandMin(binding.precedence))
		if err != nil {
			return nil, err
		}
		return &ast.AnnotatedIdentifier{Identifier: ident, Annotation: annotation, OperatorPosition: opTok.Position, OperatorFillers: opFillers}, nil

	case token.DOT:
		return p.parseMemberAccess(left, opTok, opFillers)

	case token.OPEN_PARENTHESIS:
		return p.parseCall(left, opTok, opFillers)

	default:
		return nil, ast.UnexpectedToken{Token: opTok}
	}
}
