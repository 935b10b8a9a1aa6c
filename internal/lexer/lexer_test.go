package lexer

import (
	"testing"

	"github.com/az-lang/az-go/pkg/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Content.Kind
	}
	return out
}

func TestTokenizePunctuation(t *testing.T) {
	cases := map[string]token.Kind{
		"(": token.OPEN_PARENTHESIS, ")": token.CLOSE_PARENTHESIS,
		"{": token.OPEN_BRACE, "}": token.CLOSE_BRACE,
		",": token.COMMA, ";": token.SEMICOLON,
		"+": token.PLUS, "-": token.MINUS, "*": token.ASTERISK, "/": token.SLASH,
		":": token.COLON, ".": token.DOT,
		"=": token.ASSIGNMENT, "==": token.EQUAL_TO, "!=": token.NOT_EQUAL_TO,
		"<": token.LOWER_THAN, "<=": token.LOWER_THAN_OR_EQUAL_TO,
		">": token.GREATER_THAN, ">=": token.GREATER_THAN_OR_EQUAL_TO,
		"->": token.ARROW,
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			tokens, err := Tokenize(src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 1 {
				t.Fatalf("expected 1 token, got %d", len(tokens))
			}
			if tokens[0].Content.Kind != want {
				t.Fatalf("got %s, want %s", tokens[0].Content.Kind, want)
			}
		})
	}
}

func TestTokenizeBangWithoutEqualsIsError(t *testing.T) {
	_, err := Tokenize("!")
	if err == nil {
		t.Fatalf("expected an error for bare '!'")
	}
	if _, ok := err.(*token.UnexpectedCharacter); !ok {
		t.Fatalf("expected *token.UnexpectedCharacter, got %T", err)
	}
}

func TestTokenizeIdentifier(t *testing.T) {
	tokens, err := Tokenize("foo_bar2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Content.Kind != token.IDENTIFIER || tokens[0].Content.String != "foo_bar2" {
		t.Fatalf("got %+v", tokens)
	}
}

func TestTokenizeIdentifierAtEOFSucceeds(t *testing.T) {
	tokens, err := Tokenize("abc")
	if err != nil {
		t.Fatalf("expected EOF-terminated identifier to succeed, got %v", err)
	}
	if len(tokens) != 1 || tokens[0].Content.String != "abc" {
		t.Fatalf("got %+v", tokens)
	}
}

func TestTokenizeLineComment(t *testing.T) {
	tokens, err := Tokenize("// hello\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := kinds(tokens); len(got) != 2 || got[0] != token.COMMENT_LINE || got[1] != token.NEWLINE {
		t.Fatalf("got kinds %v", got)
	}
	if tokens[0].Content.String != "// hello" {
		t.Fatalf("got comment text %q", tokens[0].Content.String)
	}
}

func TestTokenizeBlockComment(t *testing.T) {
	tokens, err := Tokenize("/* a\nb */")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Content.Kind != token.COMMENT_BLOCK {
		t.Fatalf("got %+v", tokens)
	}
	if tokens[0].Content.String != "/* a\nb */" {
		t.Fatalf("got text %q", tokens[0].Content.String)
	}
}

func TestTokenizeUnterminatedBlockComment(t *testing.T) {
	_, err := Tokenize("/* never closed")
	if err == nil {
		t.Fatalf("expected error for unterminated block comment")
	}
	if _, ok := err.(*token.CommentBlockIncomplete); !ok {
		t.Fatalf("expected *token.CommentBlockIncomplete, got %T", err)
	}
}

func TestTokenizeWhitespaceRun(t *testing.T) {
	tokens, err := Tokenize("    ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Content.Kind != token.WHITESPACE {
		t.Fatalf("got %+v", tokens)
	}
}

func TestTokenizeIntegerLiteral(t *testing.T) {
	tokens, err := Tokenize("42_I32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Content.Kind != token.I32 {
		t.Fatalf("got kind %s", tokens[0].Content.Kind)
	}
	if tokens[0].Content.String != "42_I32" {
		t.Fatalf("got value %q", tokens[0].Content.String)
	}
}

func TestTokenizeFloatingPointLiteral(t *testing.T) {
	tokens, err := Tokenize("3.14_F64")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Content.Kind != token.F64 || tokens[0].Content.String != "3.14_F64" {
		t.Fatalf("got %+v", tokens[0])
	}
}

func TestTokenizeLeadingDotLiteral(t *testing.T) {
	tokens, err := Tokenize(".5_F32")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Content.Kind != token.F32 || tokens[0].Content.String != ".5_F32" {
		t.Fatalf("got %+v", tokens[0])
	}
}

func TestTokenizeExponent(t *testing.T) {
	tokens, err := Tokenize("1e10_F64")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Content.String != "1e10_F64" {
		t.Fatalf("got value %q", tokens[0].Content.String)
	}
}

func TestTokenizeNumericLiteralValueIncomplete(t *testing.T) {
	_, err := Tokenize("1")
	if err == nil {
		t.Fatalf("expected error for numeric literal with no type suffix")
	}
	if _, ok := err.(*token.NumericLiteralValueIncomplete); !ok {
		t.Fatalf("expected *token.NumericLiteralValueIncomplete, got %T", err)
	}
}

func TestTokenizeNumericLiteralValueUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("1x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*token.NumericLiteralValueUnexpectedCharacter); !ok {
		t.Fatalf("expected *token.NumericLiteralValueUnexpectedCharacter, got %T", err)
	}
}

func TestTokenizeNumericLiteralTypeSuffixUnknown(t *testing.T) {
	_, err := Tokenize("1_Q8")
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*token.NumericLiteralTypeSuffixUnknown); !ok {
		t.Fatalf("expected *token.NumericLiteralTypeSuffixUnknown, got %T", err)
	}
}

func TestTokenizeNumericLiteralValueTypeSuffixConflict(t *testing.T) {
	_, err := Tokenize("1.5_I32")
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*token.NumericLiteralValueTypeSuffixConflict); !ok {
		t.Fatalf("expected *token.NumericLiteralValueTypeSuffixConflict, got %T", err)
	}
}

func TestTokenizeNumericLiteralTypeSuffixIncomplete(t *testing.T) {
	_, err := Tokenize("1_")
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*token.NumericLiteralTypeSuffixIncomplete); !ok {
		t.Fatalf("expected *token.NumericLiteralTypeSuffixIncomplete, got %T", err)
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("@")
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := err.(*token.UnexpectedCharacter); !ok {
		t.Fatalf("expected *token.UnexpectedCharacter, got %T", err)
	}
}

// TestTokenizeRoundTrip verifies the lexer/parser round-trip invariant for
// the lexer alone: concatenating every token's text reproduces the source.
func TestTokenizeRoundTrip(t *testing.T) {
	sources := []string{
		"x = 1_I32;",
		"f(a, b,) ;\n",
		"// comment\nx : i32 = 1_I32;",
		"/* block */if x { 1_I32; } else { 2_I32; };",
		"Function(a: i32,) -> i32 { a; };",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			tokens, err := Tokenize(src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var rebuilt string
			for _, tok := range tokens {
				rebuilt += tok.Content.String
			}
			if rebuilt != src {
				t.Fatalf("round-trip mismatch:\n  got:  %q\n  want: %q", rebuilt, src)
			}
		})
	}
}

func TestTokenizeStripsLeadingBOM(t *testing.T) {
	tokens, err := Tokenize("\xef\xbb\xbfx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Content.String != "x" {
		t.Fatalf("got %+v", tokens)
	}
}
