package ast

import "github.com/az-lang/az-go/pkg/token"

// Precedence orders the binding strength of operators from loosest (Min)
// to tightest. Associativity then breaks ties between operators that
// share a precedence tier.
type Precedence int

const (
	PrecedenceMin Precedence = iota
	PrecedenceAssignment
	PrecedenceAnnotation
	PrecedenceEquality
	PrecedenceComparison
	PrecedenceAdditive
	PrecedenceMultiplicative
	PrecedenceUnary
	PrecedenceCallMember
)

// Associativity determines, for a chain of same-precedence operators,
// which side the operand closest to the operator binds to.
type Associativity int

const (
	LeftToRight Associativity = iota
	RightToLeft
)

// Operator is implemented by every operator tag: a stateless marker type
// whose precedence is fixed at compile time.
type Operator interface {
	Precedence() Precedence
	tokenKind() token.Kind
}

// BinaryOperator is an Operator that also has an associativity, as
// required by every binary (infix) operator.
type BinaryOperator interface {
	Operator
	Associativity() Associativity
}

// BinaryArithmeticOperator is satisfied by the four arithmetic infix
// operator tags (+, -, *, /).
type BinaryArithmeticOperator interface {
	BinaryOperator
	binaryArithmeticOperator()
}

// BinaryComparisonOperator is satisfied by the six comparison infix
// operator tags (==, !=, <, <=, >, >=).
type BinaryComparisonOperator interface {
	BinaryOperator
	binaryComparisonOperator()
}

type binaryOperatorBase struct {
	prec  Precedence
	assoc Associativity
	kind  token.Kind
}

func (b binaryOperatorBase) Precedence() Precedence        { return b.prec }
func (b binaryOperatorBase) Associativity() Associativity   { return b.assoc }
func (b binaryOperatorBase) tokenKind() token.Kind          { return b.kind }

type binaryAdditionOperator struct{ binaryOperatorBase }
type binarySubtractionOperator struct{ binaryOperatorBase }
type binaryMultiplicationOperator struct{ binaryOperatorBase }
type binaryDivisionOperator struct{ binaryOperatorBase }

func (binaryAdditionOperator) binaryArithmeticOperator()       {}
func (binarySubtractionOperator) binaryArithmeticOperator()    {}
func (binaryMultiplicationOperator) binaryArithmeticOperator() {}
func (binaryDivisionOperator) binaryArithmeticOperator()       {}

// BinaryAddition, BinarySubtraction, BinaryMultiplication, and
// BinaryDivision are the singleton arithmetic operator tags.
var (
	BinaryAddition       BinaryArithmeticOperator = binaryAdditionOperator{binaryOperatorBase{PrecedenceAdditive, LeftToRight, token.PLUS}}
	BinarySubtraction    BinaryArithmeticOperator = binarySubtractionOperator{binaryOperatorBase{PrecedenceAdditive, LeftToRight, token.MINUS}}
	BinaryMultiplication BinaryArithmeticOperator = binaryMultiplicationOperator{binaryOperatorBase{PrecedenceMultiplicative, LeftToRight, token.ASTERISK}}
	BinaryDivision       BinaryArithmeticOperator = binaryDivisionOperator{binaryOperatorBase{PrecedenceMultiplicative, LeftToRight, token.SLASH}}
)

type binaryEqualToOperator struct{ binaryOperatorBase }
type binaryNotEqualToOperator struct{ binaryOperatorBase }
type binaryLowerThanOperator struct{ binaryOperatorBase }
type binaryLowerThanOrEqualToOperator struct{ binaryOperatorBase }
type binaryGreaterThanOperator struct{ binaryOperatorBase }
type binaryGreaterThanOrEqualToOperator struct{ binaryOperatorBase }

func (binaryEqualToOperator) binaryComparisonOperator()             {}
func (binaryNotEqualToOperator) binaryComparisonOperator()          {}
func (binaryLowerThanOperator) binaryComparisonOperator()           {}
func (binaryLowerThanOrEqualToOperator) binaryComparisonOperator()  {}
func (binaryGreaterThanOperator) binaryComparisonOperator()         {}
func (binaryGreaterThanOrEqualToOperator) binaryComparisonOperator() {}

// BinaryEqualTo, BinaryNotEqualTo, BinaryLowerThan, BinaryLowerThanOrEqualTo,
// BinaryGreaterThan, and BinaryGreaterThanOrEqualTo are the singleton
// comparison operator tags.
var (
	BinaryEqualTo             BinaryComparisonOperator = binaryEqualToOperator{binaryOperatorBase{PrecedenceEquality, LeftToRight, token.EQUAL_TO}}
	BinaryNotEqualTo          BinaryComparisonOperator = binaryNotEqualToOperator{binaryOperatorBase{PrecedenceEquality, LeftToRight, token.NOT_EQUAL_TO}}
	BinaryLowerThan           BinaryComparisonOperator = binaryLowerThanOperator{binaryOperatorBase{PrecedenceComparison, LeftToRight, token.LOWER_THAN}}
	BinaryLowerThanOrEqualTo  BinaryComparisonOperator = binaryLowerThanOrEqualToOperator{binaryOperatorBase{PrecedenceComparison, LeftToRight, token.LOWER_THAN_OR_EQUAL_TO}}
	BinaryGreaterThan         BinaryComparisonOperator = binaryGreaterThanOperator{binaryOperatorBase{PrecedenceComparison, LeftToRight, token.GREATER_THAN}}
	BinaryGreaterThanOrEqualTo BinaryComparisonOperator = binaryGreaterThanOrEqualToOperator{binaryOperatorBase{PrecedenceComparison, LeftToRight, token.GREATER_THAN_OR_EQUAL_TO}}
)

type binaryAnnotationOperator struct{ binaryOperatorBase }
type binaryAssignmentOperator struct{ binaryOperatorBase }
type callOperator struct{ binaryOperatorBase }
type memberAccessOperator struct{ binaryOperatorBase }

// BinaryAnnotationOperator is the singleton tag for the ":" operator
// (e.g. a parameter's "name: Type" annotation).
var BinaryAnnotationOperator BinaryOperator = binaryAnnotationOperator{binaryOperatorBase{PrecedenceAnnotation, RightToLeft, token.COLON}}

// BinaryAssignmentOperator is the singleton tag for the "=" operator.
var BinaryAssignmentOperator BinaryOperator = binaryAssignmentOperator{binaryOperatorBase{PrecedenceAssignment, RightToLeft, token.ASSIGNMENT}}

// CallOperator is the singleton tag for function-call application "(...)".
var CallOperator BinaryOperator = callOperator{binaryOperatorBase{PrecedenceCallMember, LeftToRight, token.OPEN_PARENTHESIS}}

// MemberAccessOperator is the singleton tag for the "." operator.
var MemberAccessOperator BinaryOperator = memberAccessOperator{binaryOperatorBase{PrecedenceCallMember, LeftToRight, token.DOT}}

// UnaryArithmeticOperator is satisfied by the unary arithmetic operator
// tags (currently just unary negation).
type UnaryArithmeticOperator interface {
	Operator
	unaryArithmeticOperator()
}

type unaryNegationOperator struct{ prec Precedence }

func (u unaryNegationOperator) Precedence() Precedence { return u.prec }
func (u unaryNegationOperator) tokenKind() token.Kind  { return token.MINUS }
func (unaryNegationOperator) unaryArithmeticOperator() {}

// UnaryNegation is the singleton tag for unary "-".
var UnaryNegation UnaryArithmeticOperator = unaryNegationOperator{PrecedenceUnary}
