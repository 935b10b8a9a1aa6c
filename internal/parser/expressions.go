package parser

import (
	"strings"

	"github.com/az-lang/az-go/pkg/ast"
	"github.com/az-lang/az-go/pkg/token"
)

// parseAtom parses a single prefix/primary expression: everything that can
// start an expression on its own, before any infix operator is considered.
func (p *parser) parseAtom() (ast.Expression, error) {
	tok, ok := p.cursor.peekStructural()
	if !ok {
		return nil, ast.OutOfTokens{}
	}

	switch {
	case tok.Content.Kind == token.IDENTIFIER && tok.Content.String == "if":
		return p.parseConditional()

	case tok.Content.Kind == token.IDENTIFIER && tok.Content.String == "Function":
		return p.parseFunctionDefinition()

	case tok.Content.Kind == token.IDENTIFIER:
		identTok, identFillers, _ := p.cursor.nextStructural()
		return &ast.Identifier{String: identTok.Content.String, Position: identTok.Position, Fillers: identFillers}, nil

	case tok.Content.Kind.IsNumericSuffix():
		litTok, litFillers, _ := p.cursor.nextStructural()
		value, suffix := splitNumericLiteral(litTok.Content.String)
		return &ast.NumericLiteral{Value: value, Suffix: suffix, Type: litTok.Content.Kind, Position: litTok.Position, Fillers: litFillers}, nil

	case tok.Content.Kind == token.MINUS:
		minusTok, minusFillers, _ := p.cursor.nextStructural()
		operand, err := p.parseExpression(ast.PrecedenceUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryArithmeticOperation{
			Operand: operand, Operator: ast.UnaryNegation,
			OperatorPosition: minusTok.Position, OperatorFillers: minusFillers,
		}, nil

	case tok.Content.Kind == token.OPEN_PARENTHESIS:
		return p.parseParenthesized()

	case tok.Content.Kind == token.OPEN_BRACE:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return block, nil

	default:
		return nil, ast.UnexpectedToken{Token: tok}
	}
}

// parseBlock parses "{ statement* expression? }". The cursor must be
// positioned with an OPEN_BRACE as its next structural token.
func (p *parser) parseBlock() (*ast.Block, error) {
	openTok, openFillers, _ := p.cursor.nextStructural()

	var statements []ast.Statement
	var trailing ast.Expression

	for {
		next, ok := p.cursor.peekStructural()
		if !ok {
			return nil, ast.MismatchedOpenBrace{Position: openTok.Position}
		}
		if next.Content.Kind == token.CLOSE_BRACE {
			break
		}

		expr, err := p.parseExpression(ast.PrecedenceMin)
		if err != nil {
			return nil, err
		}

		after, ok := p.cursor.peekStructural()
		if !ok {
			return nil, ast.MismatchedOpenBrace{Position: openTok.Position}
		}
		switch after.Content.Kind {
		case token.SEMICOLON:
			semiTok, semiFillers, _ := p.cursor.nextStructural()
			statements = append(statements, &ast.ExpressionStatement{
				Expression: expr, SemicolonPosition: semiTok.Position, SemicolonFillers: semiFillers,
			})
		case token.CLOSE_BRACE:
			trailing = expr
		default:
			return nil, ast.MissingSemicolon{Token: after}
		}
		if trailing != nil {
			break
		}
	}

	closeTok, closeFillers, _ := p.cursor.nextStructural()
	return &ast.Block{
		Statements: statements, Expression: trailing,
		OpenBracePosition: openTok.Position, CloseBracePosition: closeTok.Position,
		OpenBraceFillers: openFillers, CloseBraceFillers: closeFillers,
	}, nil
}

// parseConditional parses "if antecedent consequent [else alternative]".
// The cursor's next structural token must be the "if" identifier.
func (p *parser) parseConditional() (ast.Expression, error) {
	openerTok, openerFillers, _ := p.cursor.nextStructural()

	antecedent, err := p.parseExpression(ast.PrecedenceMin)
	if err != nil {
		return nil, err
	}

	next, ok := p.cursor.peekStructural()
	if !ok {
		return nil, ast.OutOfTokens{}
	}
	if next.Content.Kind != token.OPEN_BRACE {
		return nil, ast.UnexpectedToken{Token: next}
	}
	consequent, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	cond := &ast.Conditional{
		Antecedent: antecedent, Consequent: consequent,
		OpenerPosition: openerTok.Position, OpenerFillers: openerFillers,
	}

	next, ok = p.cursor.peekStructural()
	if !ok || next.Content.Kind != token.IDENTIFIER || next.Content.String != "else" {
		return cond, nil
	}

	elseTok, elseFillers, _ := p.cursor.nextStructural()
	elsePos := elseTok.Position
	cond.AlternativeOpenerPosition = &elsePos
	cond.AlternativeOpenerFillers = elseFillers

	altNext, ok := p.cursor.peekStructural()
	if !ok {
		return nil, ast.OutOfTokens{}
	}
	switch {
	case altNext.Content.Kind == token.IDENTIFIER && altNext.Content.String == "if":
		alt, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		cond.Alternative = alt
	case altNext.Content.Kind == token.OPEN_BRACE:
		alt, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		cond.Alternative = alt
	default:
		return nil, ast.UnexpectedToken{Token: altNext}
	}

	return cond, nil
}

// parseFunctionDefinition parses "Function (parameters...) -> returnType body".
// The cursor's next structural token must be the "Function" identifier.
func (p *parser) parseFunctionDefinition() (ast.Expression, error) {
	openerTok, openerFillers, _ := p.cursor.nextStructural()

	openParenTok, openParenFillers, ok := p.cursor.nextStructural()
	if !ok {
		return nil, ast.OutOfTokens{}
	}
	if openParenTok.Content.Kind != token.OPEN_PARENTHESIS {
		return nil, ast.UnexpectedToken{Token: openParenTok}
	}

	var params []*ast.AnnotatedIdentifier
	var commaPositions []token.SubstringPosition
	var commaFillers [][]ast.Filler

	next, ok := p.cursor.peekStructural()
	if !ok {
		return nil, ast.MismatchedOpenParenthesis{Position: openParenTok.Position}
	}
	if next.Content.Kind != token.CLOSE_PARENTHESIS {
		for {
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)

			after, ok := p.cursor.peekStructural()
			if !ok {
				return nil, ast.MismatchedOpenParenthesis{Position: openParenTok.Position}
			}
			if after.Content.Kind != token.COMMA {
				break
			}
			commaTok, commaFill, _ := p.cursor.nextStructural()
			commaPositions = append(commaPositions, commaTok.Position)
			commaFillers = append(commaFillers, commaFill)

			after, ok = p.cursor.peekStructural()
			if !ok {
				return nil, ast.MismatchedOpenParenthesis{Position: openParenTok.Position}
			}
			if after.Content.Kind == token.CLOSE_PARENTHESIS {
				break
			}
		}
	}

	closeParenTok, closeParenFillers, ok := p.cursor.nextStructural()
	if !ok || closeParenTok.Content.Kind != token.CLOSE_PARENTHESIS {
		return nil, ast.MismatchedOpenParenthesis{Position: openParenTok.Position}
	}

	arrowTok, arrowFillers, ok := p.cursor.nextStructural()
	if !ok {
		return nil, ast.OutOfTokens{}
	}
	if arrowTok.Content.Kind != token.ARROW {
		return nil, ast.UnexpectedToken{Token: arrowTok}
	}

	returnType, err := p.parseExpression(ast.PrecedenceMin)
	if err != nil {
		return nil, err
	}

	next, ok = p.cursor.peekStructural()
	if !ok {
		return nil, ast.OutOfTokens{}
	}
	if next.Content.Kind != token.OPEN_BRACE {
		return nil, ast.UnexpectedToken{Token: next}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefinition{
		Parameters: params, ReturnType: returnType, Body: body,
		OpenerPosition: openerTok.Position, OpenParenthesisPosition: openParenTok.Position,
		CommasPositions: commaPositions, CloseParenthesisPosition: closeParenTok.Position,
		ArrowPosition: arrowTok.Position,
		OpenerFillers: openerFillers, OpenParenthesisFillers: openParenFillers,
		CommasFillers: commaFillers, CloseParenthesisFillers: closeParenFillers,
		ArrowFillers: arrowFillers,
	}, nil
}

// parseParameter parses a single "name : Type" function parameter by
// reusing the general expression grammar's COLON handling (see parseInfix),
// then requiring the result to be an AnnotatedIdentifier.
func (p *parser) parseParameter() (*ast.AnnotatedIdentifier, error) {
	expr, err := p.parseExpression(ast.PrecedenceMin)
	if err != nil {
		return nil, err
	}
	annotated, ok := expr.(*ast.AnnotatedIdentifier)
	if !ok {
		return nil, ast.UnexpectedExpression{Expression: expr}
	}
	return annotated, nil
}

// parseParenthesized disambiguates "(expr)" (a Grouping) from
// "()"/"(e,)"/"(e, e, ...)" (a Tuple) once the OPEN_PARENTHESIS is seen
// without a preceding callable.
func (p *parser) parseParenthesized() (ast.Expression, error) {
	openTok, openFillers, _ := p.cursor.nextStructural()

	next, ok := p.cursor.peekStructural()
	if !ok {
		return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
	}
	if next.Content.Kind == token.CLOSE_PARENTHESIS {
		closeTok, closeFillers, _ := p.cursor.nextStructural()
		return &ast.Tuple{
			OpenParenthesisPosition: openTok.Position, CloseParenthesisPosition: closeTok.Position,
			OpenParenthesisFillers: openFillers, CloseParenthesisFillers: closeFillers,
		}, nil
	}

	first, err := p.parseExpression(ast.PrecedenceMin)
	if err != nil {
		return nil, err
	}

	next, ok = p.cursor.peekStructural()
	if !ok {
		return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
	}
	if next.Content.Kind == token.CLOSE_PARENTHESIS {
		closeTok, closeFillers, _ := p.cursor.nextStructural()
		return &ast.Grouping{
			Expression: first,
			OpenParenthesisPosition: openTok.Position, CloseParenthesisPosition: closeTok.Position,
			OpenParenthesisFillers: openFillers, CloseParenthesisFillers: closeFillers,
		}, nil
	}
	if next.Content.Kind != token.COMMA {
		return nil, ast.UnexpectedToken{Token: next}
	}

	elements := []ast.Expression{first}
	var commaPositions []token.SubstringPosition
	var commaFillers [][]ast.Filler

	for {
		commaTok, commaFill, _ := p.cursor.nextStructural()
		commaPositions = append(commaPositions, commaTok.Position)
		commaFillers = append(commaFillers, commaFill)

		next, ok = p.cursor.peekStructural()
		if !ok {
			return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
		}
		if next.Content.Kind == token.CLOSE_PARENTHESIS {
			break
		}

		elem, err := p.parseExpression(ast.PrecedenceMin)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)

		next, ok = p.cursor.peekStructural()
		if !ok {
			return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
		}
		if next.Content.Kind == token.CLOSE_PARENTHESIS {
			break
		}
		if next.Content.Kind != token.COMMA {
			return nil, ast.UnexpectedToken{Token: next}
		}
	}

	closeTok, closeFillers, _ := p.cursor.nextStructural()
	return &ast.Tuple{
		Elements: elements,
		OpenParenthesisPosition: openTok.Position, CommasPositions: commaPositions,
		CloseParenthesisPosition: closeTok.Position,
		OpenParenthesisFillers: openFillers, CommasFillers: commaFillers,
		CloseParenthesisFillers: closeFillers,
	}, nil
}

// parseCall parses the argument list of "callable(arguments...)". openTok and
// openFillers are the already-consumed OPEN_PARENTHESIS.
func (p *parser) parseCall(callable ast.Expression, openTok token.Token, openFillers []ast.Filler) (ast.Expression, error) {
	var args []ast.Expression
	var commaPositions []token.SubstringPosition
	var commaFillers [][]ast.Filler

	next, ok := p.cursor.peekStructural()
	if !ok {
		return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
	}
	if next.Content.Kind != token.CLOSE_PARENTHESIS {
		for {
			arg, err := p.parseExpression(ast.PrecedenceMin)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			after, ok := p.cursor.peekStructural()
			if !ok {
				return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
			}
			if after.Content.Kind != token.COMMA {
				break
			}
			commaTok, commaFill, _ := p.cursor.nextStructural()
			commaPositions = append(commaPositions, commaTok.Position)
			commaFillers = append(commaFillers, commaFill)

			after, ok = p.cursor.peekStructural()
			if !ok {
				return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
			}
			if after.Content.Kind == token.CLOSE_PARENTHESIS {
				break
			}
		}
	}

	closeTok, closeFillers, ok := p.cursor.nextStructural()
	if !ok || closeTok.Content.Kind != token.CLOSE_PARENTHESIS {
		return nil, ast.MismatchedOpenParenthesis{Position: openTok.Position}
	}

	return &ast.Call{
		Callable: callable, Arguments: args,
		OpenParenthesisPosition: openTok.Position, CommasPositions: commaPositions,
		CloseParenthesisPosition: closeTok.Position,
		OpenParenthesisFillers: openFillers, CommasFillers: commaFillers,
		CloseParenthesisFillers: closeFillers,
	}, nil
}

// parseMemberAccess parses the ".member" suffix of "object.member". dotTok
// and dotFillers are the already-consumed DOT.
func (p *parser) parseMemberAccess(object ast.Expression, dotTok token.Token, dotFillers []ast.Filler) (ast.Expression, error) {
	memberTok, memberFillers, ok := p.cursor.nextStructural()
	if !ok {
		return nil, ast.OutOfTokens{}
	}
	if memberTok.Content.Kind != token.IDENTIFIER {
		return nil, ast.UnexpectedToken{Token: memberTok}
	}
	member := &ast.Identifier{String: memberTok.Content.String, Position: memberTok.Position, Fillers: memberFillers}
	return &ast.MemberAccess{Object: object, Member: member, OperatorPosition: dotTok.Position, OperatorFillers: dotFillers}, nil
}

// splitNumericLiteral separates a numeric literal token's full text into
// its value and its "_"-delimited type suffix. The token's own
// Content.String carries the literal's complete source span (value and
// suffix together) so it matches Position; digits never contain '_', so
// the first one marks the separator.
func splitNumericLiteral(text string) (value, suffix string) {
	idx := strings.IndexByte(text, '_')
	if idx < 0 {
		return text, ""
	}
	return text[:idx], text[idx+1:]
}
