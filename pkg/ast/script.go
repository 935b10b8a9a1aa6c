package ast

import "github.com/az-lang/az-go/pkg/token"

// Script is the root CST node: a sequence of statements followed by any
// trivia that trails the last one (there is nothing left to attach
// trailing fillers to, so the Script itself owns them).
type Script struct {
	Statements []Statement
	Fillers    []Filler
}

func (*Script) node() {}

// Tokenize reconstructs the exact token sequence the Script was built
// from: for every anchor token in source order, its attached fillers
// followed by the token itself. Tokenize(tokens) round-trips iff the
// Script was produced from `tokens` by the parser (or by hand in a way
// that respects the same filler-attachment convention), per the
// lexer/parser round-trip invariant.
func (s *Script) Tokenize() []token.Token {
	var out []token.Token
	for _, stmt := range s.Statements {
		emitStatement(&out, stmt)
	}
	for _, f := range s.Fillers {
		emit(&out, nil, f.Token())
	}
	return out
}

func emit(out *[]token.Token, fillers []Filler, tok token.Token) {
	for _, f := range fillers {
		*out = append(*out, f.Token())
	}
	*out = append(*out, tok)
}

func emitPunct(out *[]token.Token, fillers []Filler, kind token.Kind, pos token.SubstringPosition) {
	emit(out, fillers, token.NewToken(kind, pos))
}

func emitStatement(out *[]token.Token, stmt Statement) {
	switch s := stmt.(type) {
	case *ExpressionStatement:
		emitExpression(out, s.Expression)
		emitPunct(out, s.SemicolonFillers, token.SEMICOLON, s.SemicolonPosition)
	default:
		panic("ast: unknown Statement type in Tokenize")
	}
}

func emitExpression(out *[]token.Token, expr Expression) {
	switch e := expr.(type) {
	case *AnnotatedIdentifier:
		emitExpression(out, e.Identifier)
		emitPunct(out, e.OperatorFillers, token.COLON, e.OperatorPosition)
		emitExpression(out, e.Annotation)

	case *Assignment:
		emitExpression(out, e.Target)
		emitPunct(out, e.OperatorFillers, token.ASSIGNMENT, e.OperatorPosition)
		emitExpression(out, e.Value)

	case *BinaryArithmeticOperation:
		emitExpression(out, e.Left)
		emitPunct(out, e.OperatorFillers, operatorTokenKind(e.Operator), e.OperatorPosition)
		emitExpression(out, e.Right)

	case *BinaryComparison:
		emitExpression(out, e.Left)
		emitPunct(out, e.OperatorFillers, operatorTokenKind(e.Operator), e.OperatorPosition)
		emitExpression(out, e.Right)

	case *Block:
		emitPunct(out, e.OpenBraceFillers, token.OPEN_BRACE, e.OpenBracePosition)
		for _, stmt := range e.Statements {
			emitStatement(out, stmt)
		}
		if e.Expression != nil {
			emitExpression(out, e.Expression)
		}
		emitPunct(out, e.CloseBraceFillers, token.CLOSE_BRACE, e.CloseBracePosition)

	case *Call:
		emitExpression(out, e.Callable)
		emitPunct(out, e.OpenParenthesisFillers, token.OPEN_PARENTHESIS, e.OpenParenthesisPosition)
		emitCommaList(out, len(e.Arguments), e.CommasPositions, e.CommasFillers, func(i int) { emitExpression(out, e.Arguments[i]) })
		emitPunct(out, e.CloseParenthesisFillers, token.CLOSE_PARENTHESIS, e.CloseParenthesisPosition)

	case *Conditional:
		emitPunct(out, e.OpenerFillers, token.IDENTIFIER, e.OpenerPosition)
		setLast(out, "if")
		emitExpression(out, e.Antecedent)
		emitExpression(out, e.Consequent)
		if e.Alternative != nil {
			emitPunct(out, e.AlternativeOpenerFillers, token.IDENTIFIER, *e.AlternativeOpenerPosition)
			setLast(out, "else")
			emitExpression(out, e.Alternative)
		}

	case *FunctionDefinition:
		emitPunct(out, e.OpenerFillers, token.IDENTIFIER, e.OpenerPosition)
		setLast(out, "Function")
		emitPunct(out, e.OpenParenthesisFillers, token.OPEN_PARENTHESIS, e.OpenParenthesisPosition)
		emitCommaList(out, len(e.Parameters), e.CommasPositions, e.CommasFillers, func(i int) { emitExpression(out, e.Parameters[i]) })
		emitPunct(out, e.CloseParenthesisFillers, token.CLOSE_PARENTHESIS, e.CloseParenthesisPosition)
		emitPunct(out, e.ArrowFillers, token.ARROW, e.ArrowPosition)
		emitExpression(out, e.ReturnType)
		emitExpression(out, e.Body)

	case *Grouping:
		emitPunct(out, e.OpenParenthesisFillers, token.OPEN_PARENTHESIS, e.OpenParenthesisPosition)
		emitExpression(out, e.Expression)
		emitPunct(out, e.CloseParenthesisFillers, token.CLOSE_PARENTHESIS, e.CloseParenthesisPosition)

	case *Identifier:
		emit(out, e.Fillers, token.Token{Content: token.TokenContent{Kind: token.IDENTIFIER, String: e.String}, Position: e.Position})

	case *MemberAccess:
		emitExpression(out, e.Object)
		emitPunct(out, e.OperatorFillers, token.DOT, e.OperatorPosition)
		emitExpression(out, e.Member)

	case *NumericLiteral:
		emit(out, e.Fillers, token.Token{Content: token.TokenContent{Kind: e.Type, String: e.Value + "_" + e.Suffix}, Position: e.Position})

	case *Tuple:
		emitPunct(out, e.OpenParenthesisFillers, token.OPEN_PARENTHESIS, e.OpenParenthesisPosition)
		emitCommaList(out, len(e.Elements), e.CommasPositions, e.CommasFillers, func(i int) { emitExpression(out, e.Elements[i]) })
		emitPunct(out, e.CloseParenthesisFillers, token.CLOSE_PARENTHESIS, e.CloseParenthesisPosition)

	case *UnaryArithmeticOperation:
		emitPunct(out, e.OperatorFillers, operatorTokenKind(e.Operator), e.OperatorPosition)
		emitExpression(out, e.Operand)

	default:
		panic("ast: unknown Expression type in Tokenize")
	}
}

// emitCommaList emits n elements interleaved with their commas: elem(0),
// comma(0), elem(1), comma(1), ..., elem(n-1), with a trailing comma
// present iff len(positions) == n.
func emitCommaList(out *[]token.Token, n int, positions []token.SubstringPosition, fillers [][]Filler, emitElement func(i int)) {
	for i := 0; i < n; i++ {
		emitElement(i)
		if i < len(positions) {
			emitPunct(out, fillers[i], token.COMMA, positions[i])
		}
	}
}

// setLast overwrites the string content of the token just appended to
// out; used for the Conditional/FunctionDefinition keyword anchors, whose
// TokenKind (IDENTIFIER) is fixed but whose text ("if"/"else"/"Function")
// is not, unlike punctuation which NewToken already spells correctly.
func setLast(out *[]token.Token, text string) {
	last := &(*out)[len(*out)-1]
	last.Content.String = text
}

func operatorTokenKind(op Operator) token.Kind {
	return op.tokenKind()
}
