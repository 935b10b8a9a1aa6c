package token

import "fmt"

// Kind is the closed set of token kinds the lexer can produce. Filler
// kinds (comments, newlines, whitespace) are grouped at the end of the
// enumeration so IsFiller can be a single range check, in the spirit of
// the teacher lexer's TokenType grouping.
type Kind int

const (
	ARROW Kind = iota
	ASSIGNMENT
	ASTERISK
	CLOSE_BRACE
	CLOSE_PARENTHESIS
	COLON
	COMMA
	DOT
	EQUAL_TO
	GREATER_THAN
	GREATER_THAN_OR_EQUAL_TO
	LOWER_THAN
	LOWER_THAN_OR_EQUAL_TO
	MINUS
	NOT_EQUAL_TO
	OPEN_BRACE
	OPEN_PARENTHESIS
	PLUS
	SEMICOLON
	SLASH
	IDENTIFIER

	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64

	COMMENT_BLOCK
	COMMENT_LINE
	NEWLINE
	WHITESPACE
)

var kindNames = [...]string{
	ARROW:                    "ARROW",
	ASSIGNMENT:                "ASSIGNMENT",
	ASTERISK:                  "ASTERISK",
	CLOSE_BRACE:               "CLOSE_BRACE",
	CLOSE_PARENTHESIS:         "CLOSE_PARENTHESIS",
	COLON:                     "COLON",
	COMMA:                     "COMMA",
	DOT:                       "DOT",
	EQUAL_TO:                  "EQUAL_TO",
	GREATER_THAN:              "GREATER_THAN",
	GREATER_THAN_OR_EQUAL_TO:  "GREATER_THAN_OR_EQUAL_TO",
	LOWER_THAN:                "LOWER_THAN",
	LOWER_THAN_OR_EQUAL_TO:    "LOWER_THAN_OR_EQUAL_TO",
	MINUS:                     "MINUS",
	NOT_EQUAL_TO:              "NOT_EQUAL_TO",
	OPEN_BRACE:                "OPEN_BRACE",
	OPEN_PARENTHESIS:          "OPEN_PARENTHESIS",
	PLUS:                      "PLUS",
	SEMICOLON:                 "SEMICOLON",
	SLASH:                     "SLASH",
	IDENTIFIER:                "IDENTIFIER",
	I8:                        "I8",
	I16:                       "I16",
	I32:                       "I32",
	I64:                       "I64",
	U8:                        "U8",
	U16:                       "U16",
	U32:                       "U32",
	U64:                       "U64",
	F32:                       "F32",
	F64:                       "F64",
	COMMENT_BLOCK:             "COMMENT_BLOCK",
	COMMENT_LINE:              "COMMENT_LINE",
	NEWLINE:                   "NEWLINE",
	WHITESPACE:                "WHITESPACE",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsFiller reports whether k is trivia (comment, newline, or whitespace)
// rather than a structural token.
func (k Kind) IsFiller() bool {
	return k >= COMMENT_BLOCK && k <= WHITESPACE
}

// IsNumericSuffix reports whether k is one of the ten numeric type-suffix
// kinds (I8..F64).
func (k Kind) IsNumericSuffix() bool {
	return k >= I8 && k <= F64
}

// spellings holds the fixed source text for every token kind whose text
// never varies (everything except IDENTIFIER, the numeric kinds, and the
// filler kinds, whose text is the literal substring that was scanned).
var spellings = map[Kind]string{
	ARROW:                    "->",
	ASSIGNMENT:                "=",
	ASTERISK:                  "*",
	CLOSE_BRACE:               "}",
	CLOSE_PARENTHESIS:         ")",
	COLON:                     ":",
	COMMA:                     ",",
	DOT:                       ".",
	EQUAL_TO:                  "==",
	GREATER_THAN:              ">",
	GREATER_THAN_OR_EQUAL_TO:  ">=",
	LOWER_THAN:                "<",
	LOWER_THAN_OR_EQUAL_TO:    "<=",
	MINUS:                     "-",
	NOT_EQUAL_TO:              "!=",
	OPEN_BRACE:                "{",
	OPEN_PARENTHESIS:          "(",
	PLUS:                      "+",
	SEMICOLON:                 ";",
	SLASH:                     "/",
}

// Spelling returns the fixed source text for a punctuation kind. It
// reports ok=false for kinds whose text varies (IDENTIFIER, numeric
// literals, fillers).
func Spelling(k Kind) (string, bool) {
	s, ok := spellings[k]
	return s, ok
}

// NumericLiteralValueKind distinguishes integer from floating-point
// numeric literal values, independent of the type suffix attached to them.
type NumericLiteralValueKind int

const (
	INTEGER NumericLiteralValueKind = iota
	FLOATING_POINT
)

func (k NumericLiteralValueKind) String() string {
	if k == INTEGER {
		return "INTEGER"
	}
	return "FLOATING_POINT"
}

// NumericSuffixes maps the suffix text following the mandatory "_" to its
// token kind; the lexer uses it to classify a literal (NumericSuffixValueKind
// gives the value kind). "ISize" and "USize" share I64 and U64 with "I64"
// and "U64", so a kind alone does not determine the suffix text.
var NumericSuffixes = map[string]Kind{
	"I8": I8, "I16": I16, "I32": I32, "I64": I64, "ISize": I64,
	"U8": U8, "U16": U16, "U32": U32, "U64": U64, "USize": U64,
	"F32": F32, "F64": F64,
}

// NumericSuffixValueKind reports whether a numeric suffix kind denotes an
// integer or a floating-point type.
func NumericSuffixValueKind(k Kind) NumericLiteralValueKind {
	if k == F32 || k == F64 {
		return FLOATING_POINT
	}
	return INTEGER
}

// TokenContent is the kind/text pair carried by a Token, independent of
// its position.
type TokenContent struct {
	Kind   Kind
	String string
}

// Token is a single lexeme: its content plus the source span it occupies.
type Token struct {
	Content  TokenContent
	Position SubstringPosition
}

// NewToken builds a Token whose content string is the kind's fixed
// spelling, for punctuation kinds that have one. Identifier, numeric, and
// filler tokens carry their own literal text and should be constructed
// directly.
func NewToken(kind Kind, position SubstringPosition) Token {
	text, _ := Spelling(kind)
	return Token{Content: TokenContent{Kind: kind, String: text}, Position: position}
}

func (t Token) String() string {
	const maxLiteral = 20
	lit := t.Content.String
	if len(lit) > maxLiteral {
		lit = lit[:maxLiteral] + "..."
	}
	return fmt.Sprintf("%s(%q) at %s", t.Content.Kind, lit, t.Position)
}
