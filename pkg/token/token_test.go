package token

import "testing"

func TestKindIsFiller(t *testing.T) {
	fillers := []Kind{COMMENT_BLOCK, COMMENT_LINE, NEWLINE, WHITESPACE}
	for _, k := range fillers {
		if !k.IsFiller() {
			t.Errorf("%s: expected IsFiller() == true", k)
		}
	}
	structural := []Kind{IDENTIFIER, PLUS, OPEN_PARENTHESIS, I32}
	for _, k := range structural {
		if k.IsFiller() {
			t.Errorf("%s: expected IsFiller() == false", k)
		}
	}
}

func TestKindIsNumericSuffix(t *testing.T) {
	for _, k := range []Kind{I8, I16, I32, I64, U8, U16, U32, U64, F32, F64} {
		if !k.IsNumericSuffix() {
			t.Errorf("%s: expected IsNumericSuffix() == true", k)
		}
	}
	if IDENTIFIER.IsNumericSuffix() {
		t.Errorf("IDENTIFIER: expected IsNumericSuffix() == false")
	}
}

func TestNumericSuffixesFoldIsizeUsize(t *testing.T) {
	if NumericSuffixes["ISize"] != I64 {
		t.Errorf("ISize: expected I64, got %s", NumericSuffixes["ISize"])
	}
	if NumericSuffixes["USize"] != U64 {
		t.Errorf("USize: expected U64, got %s", NumericSuffixes["USize"])
	}
}

func TestNumericSuffixValueKind(t *testing.T) {
	cases := map[Kind]NumericLiteralValueKind{
		I32: INTEGER,
		U64: INTEGER,
		F32: FLOATING_POINT,
		F64: FLOATING_POINT,
	}
	for k, want := range cases {
		if got := NumericSuffixValueKind(k); got != want {
			t.Errorf("NumericSuffixValueKind(%s) = %s, want %s", k, got, want)
		}
	}
}

func TestNewTokenUsesFixedSpelling(t *testing.T) {
	tok := NewToken(ARROW, SubstringPosition{})
	if tok.Content.String != "->" {
		t.Errorf("expected %q, got %q", "->", tok.Content.String)
	}
}

func TestSpellingMissingForVariableText(t *testing.T) {
	for _, k := range []Kind{IDENTIFIER, I32, COMMENT_LINE} {
		if _, ok := Spelling(k); ok {
			t.Errorf("%s: expected no fixed spelling", k)
		}
	}
}

func TestTokenStringTruncatesLongLiteral(t *testing.T) {
	tok := Token{Content: TokenContent{Kind: IDENTIFIER, String: "abcdefghijklmnopqrstuvwxyz"}}
	s := tok.String()
	if len(s) == 0 {
		t.Fatalf("expected non-empty String()")
	}
	want := `IDENTIFIER("abcdefghijklmnopqrst...") at 0:0-0:0`
	if s != want {
		t.Fatalf("String() = %q, want %q", s, want)
	}
}
