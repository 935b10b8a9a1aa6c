// Package ast defines the concrete syntax tree for az: a lossless,
// round-trippable node set where every structural token's surrounding
// trivia (comments, newlines, whitespace) is retained as Filler slices
// attached to the node that owns the anchoring token.
package ast

import "github.com/az-lang/az-go/pkg/token"

// Node is implemented by every CST node.
type Node interface {
	node()
}

// Expression is implemented by every expression-shaped CST node.
type Expression interface {
	Node
	expressionNode()
}

// AnnotatedIdentifier is "identifier : annotation", e.g. a typed function
// parameter.
type AnnotatedIdentifier struct {
	Identifier       *Identifier
	Annotation       Expression
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (*AnnotatedIdentifier) node()           {}
func (*AnnotatedIdentifier) expressionNode() {}

// Assignment is "target = value".
type Assignment struct {
	Target           Expression
	Value            Expression
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (*Assignment) node()           {}
func (*Assignment) expressionNode() {}

// BinaryArithmeticOperation is "left <op> right" for +, -, *, /.
type BinaryArithmeticOperation struct {
	Left             Expression
	Right            Expression
	Operator         BinaryArithmeticOperator
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (*BinaryArithmeticOperation) node()           {}
func (*BinaryArithmeticOperation) expressionNode() {}

// BinaryComparison is "left <op> right" for ==, !=, <, <=, >, >=.
type BinaryComparison struct {
	Left             Expression
	Right            Expression
	Operator         BinaryComparisonOperator
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (*BinaryComparison) node()           {}
func (*BinaryComparison) expressionNode() {}

// Block is "{ statement* [trailing-expression] }". Expression is nil
// when the block has no trailing (value-producing) expression.
type Block struct {
	Statements         []Statement
	Expression         Expression
	OpenBracePosition  token.SubstringPosition
	CloseBracePosition token.SubstringPosition
	OpenBraceFillers   []Filler
	CloseBraceFillers  []Filler
}

func (*Block) node()           {}
func (*Block) expressionNode() {}

// Call is "callable(arguments...)".
type Call struct {
	Callable                  Expression
	Arguments                 []Expression
	OpenParenthesisPosition   token.SubstringPosition
	CommasPositions           []token.SubstringPosition
	CloseParenthesisPosition  token.SubstringPosition
	OpenParenthesisFillers    []Filler
	CommasFillers             [][]Filler
	CloseParenthesisFillers   []Filler
}

func (*Call) node()           {}
func (*Call) expressionNode() {}

// Conditional is "if antecedent consequent [else alternative]".
// Alternative is nil, or an Expression holding a *Block (final else) or
// a *Conditional (else-if chain); AlternativeOpenerPosition/Fillers are
// only meaningful when Alternative is non-nil.
type Conditional struct {
	Antecedent                Expression
	Consequent                *Block
	Alternative               Expression
	OpenerPosition             token.SubstringPosition
	AlternativeOpenerPosition *token.SubstringPosition
	OpenerFillers              []Filler
	AlternativeOpenerFillers   []Filler
}

func (*Conditional) node()           {}
func (*Conditional) expressionNode() {}

// FunctionDefinition is "Function (parameters...) -> returnType body".
type FunctionDefinition struct {
	Parameters                []*AnnotatedIdentifier
	ReturnType                Expression
	Body                      *Block
	OpenerPosition             token.SubstringPosition
	OpenParenthesisPosition   token.SubstringPosition
	CommasPositions            []token.SubstringPosition
	CloseParenthesisPosition  token.SubstringPosition
	ArrowPosition              token.SubstringPosition
	OpenerFillers              []Filler
	OpenParenthesisFillers    []Filler
	CommasFillers              [][]Filler
	CloseParenthesisFillers   []Filler
	ArrowFillers               []Filler
}

func (*FunctionDefinition) node()           {}
func (*FunctionDefinition) expressionNode() {}

// Grouping is "(expression)", a parenthesized expression with no comma.
type Grouping struct {
	Expression                Expression
	OpenParenthesisPosition   token.SubstringPosition
	CloseParenthesisPosition  token.SubstringPosition
	OpenParenthesisFillers    []Filler
	CloseParenthesisFillers   []Filler
}

func (*Grouping) node()           {}
func (*Grouping) expressionNode() {}

// Identifier is a bare name.
type Identifier struct {
	String   string
	Position token.SubstringPosition
	Fillers  []Filler
}

func (*Identifier) node()           {}
func (*Identifier) expressionNode() {}

// MemberAccess is "object.member".
type MemberAccess struct {
	Object           Expression
	Member           *Identifier
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (*MemberAccess) node()           {}
func (*MemberAccess) expressionNode() {}

// NumericLiteral is a numeric value plus its mandatory type suffix. Type
// is the token.Kind the suffix resolved to (one of I8..F64); see
// SPEC_FULL.md's Open Question resolutions for why this reuses
// token.Kind rather than a parallel enum. Suffix is the suffix text as
// written ("I64" or "ISize", for example) rather than Type's folded
// form, since token.NumericSuffixes maps more than one spelling onto the
// same Kind and the original spelling must survive Script.Tokenize.
type NumericLiteral struct {
	Value    string
	Suffix   string
	Type     token.Kind
	Position token.SubstringPosition
	Fillers  []Filler
}

func (*NumericLiteral) node()           {}
func (*NumericLiteral) expressionNode() {}

// Tuple is "(element, element, ...)" — zero elements (the empty tuple
// "()"), one element with a trailing comma ("(e,)"), or two or more
// comma-separated expressions. A single element without a trailing comma
// is a Grouping, not a Tuple.
type Tuple struct {
	Elements                  []Expression
	OpenParenthesisPosition   token.SubstringPosition
	CommasPositions            []token.SubstringPosition
	CloseParenthesisPosition  token.SubstringPosition
	OpenParenthesisFillers    []Filler
	CommasFillers              [][]Filler
	CloseParenthesisFillers   []Filler
}

func (*Tuple) node()           {}
func (*Tuple) expressionNode() {}

// UnaryArithmeticOperation is "<op>operand", currently just unary
// negation.
type UnaryArithmeticOperation struct {
	Operand          Expression
	Operator         UnaryArithmeticOperator
	OperatorPosition token.SubstringPosition
	OperatorFillers  []Filler
}

func (*UnaryArithmeticOperation) node()           {}
func (*UnaryArithmeticOperation) expressionNode() {}
