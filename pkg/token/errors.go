package token

import "fmt"

// LexicalError is implemented by every error the lexer can raise. It is a
// closed set (see the concrete types below), mirroring the teacher's
// LexerError but split into one comparable, field-complete struct per
// failure mode instead of a single Message+Pos pair.
type LexicalError interface {
	error
	lexicalError()
}

// UnexpectedCharacter is raised when a character cannot begin any token
// and is not a continuation of one in progress.
type UnexpectedCharacter struct {
	Character string
	Position  SubstringPosition
	String    string
}

func (*UnexpectedCharacter) lexicalError() {}
func (e *UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Character, e.Position)
}

// CommentBlockIncomplete is raised when a block comment's opening "/*" is
// never matched by a closing "*/" before the input ends.
type CommentBlockIncomplete struct {
	Position SubstringPosition
	Strings  []string
}

func (*CommentBlockIncomplete) lexicalError() {}
func (e *CommentBlockIncomplete) Error() string {
	return fmt.Sprintf("unterminated block comment starting at %s", e.Position)
}

// IdentifierIncomplete is raised for an identifier that cannot be
// completed. The grammar in this implementation treats EOF mid-identifier
// as a successful token, so this variant exists for API completeness
// (every LexicalError the taxonomy names is constructible) but is not
// currently reachable from Tokenize.
type IdentifierIncomplete struct {
	Position SubstringPosition
	String   string
}

func (*IdentifierIncomplete) lexicalError() {}
func (e *IdentifierIncomplete) Error() string {
	return fmt.Sprintf("incomplete identifier %q at %s", e.String, e.Position)
}

// IdentifierUnexpectedCharacter is raised when a character that cannot
// terminate or continue an identifier appears immediately after one.
type IdentifierUnexpectedCharacter struct {
	Character string
	Expected  string
	Position  SubstringPosition
	String    string
}

func (*IdentifierUnexpectedCharacter) lexicalError() {}
func (e *IdentifierUnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q after identifier %q at %s (expected %s)", e.Character, e.String, e.Position, e.Expected)
}

// NumericLiteralValueIncomplete is raised when the input ends while a
// numeric literal's value is being scanned, before its mandatory type
// suffix.
type NumericLiteralValueIncomplete struct {
	Kind     NumericLiteralValueKind
	Position SubstringPosition
	String   string
}

func (*NumericLiteralValueIncomplete) lexicalError() {}
func (e *NumericLiteralValueIncomplete) Error() string {
	return fmt.Sprintf("incomplete numeric literal value %q at %s", e.String, e.Position)
}

// NumericLiteralValueUnexpectedCharacter is raised when a character that
// cannot continue a numeric literal's value, and is not the mandatory "_"
// separator, appears while scanning the value.
type NumericLiteralValueUnexpectedCharacter struct {
	Character string
	Expected  string
	Kind      NumericLiteralValueKind
	Position  SubstringPosition
	String    string
}

func (*NumericLiteralValueUnexpectedCharacter) lexicalError() {}
func (e *NumericLiteralValueUnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q in numeric literal value %q at %s (expected %s)", e.Character, e.String, e.Position, e.Expected)
}

// NumericLiteralTypeSuffixIncomplete is raised when the input ends
// immediately after the "_" that introduces a numeric literal's type
// suffix, before any suffix character is read.
type NumericLiteralTypeSuffixIncomplete struct {
	Position  SubstringPosition
	String    string
	Value     string
	ValueKind NumericLiteralValueKind
}

func (*NumericLiteralTypeSuffixIncomplete) lexicalError() {}
func (e *NumericLiteralTypeSuffixIncomplete) Error() string {
	return fmt.Sprintf("incomplete type suffix for numeric literal %q at %s", e.Value, e.Position)
}

// NumericLiteralTypeSuffixUnexpectedCharacter is raised when the "_" that
// should introduce a type suffix is immediately followed by a character
// that cannot begin one.
type NumericLiteralTypeSuffixUnexpectedCharacter struct {
	Character string
	Expected  string
	Position  SubstringPosition
	String    string
	Value     string
	ValueKind NumericLiteralValueKind
}

func (*NumericLiteralTypeSuffixUnexpectedCharacter) lexicalError() {}
func (e *NumericLiteralTypeSuffixUnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q in type suffix of numeric literal %q at %s (expected %s)", e.Character, e.Value, e.Position, e.Expected)
}

// NumericLiteralTypeSuffixUnknown is raised when the text following the
// "_" separator was fully scanned but does not match any of the known
// type suffixes.
type NumericLiteralTypeSuffixUnknown struct {
	Position   SubstringPosition
	String     string
	TypeSuffix string
	Value      string
	ValueKind  NumericLiteralValueKind
}

func (*NumericLiteralTypeSuffixUnknown) lexicalError() {}
func (e *NumericLiteralTypeSuffixUnknown) Error() string {
	return fmt.Sprintf("unknown type suffix %q for numeric literal %q at %s", e.TypeSuffix, e.Value, e.Position)
}

// NumericLiteralValueTypeSuffixConflict is raised when a known type
// suffix is attached to a value whose shape (integer vs. floating-point)
// does not match that suffix's value kind.
type NumericLiteralValueTypeSuffixConflict struct {
	Position   SubstringPosition
	String     string
	TypeSuffix string
	Value      string
	ValueKind  NumericLiteralValueKind
}

func (*NumericLiteralValueTypeSuffixConflict) lexicalError() {}
func (e *NumericLiteralValueTypeSuffixConflict) Error() string {
	return fmt.Sprintf("type suffix %q conflicts with %s value %q at %s", e.TypeSuffix, e.ValueKind, e.Value, e.Position)
}
