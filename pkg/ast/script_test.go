package ast

import (
	"testing"

	"github.com/az-lang/az-go/pkg/token"
)

func TestScriptTokenizeSimpleAssignment(t *testing.T) {
	// x = 1_I32;
	script := &Script{
		Statements: []Statement{
			&ExpressionStatement{
				Expression: &Assignment{
					Target: &Identifier{String: "x", Fillers: nil},
					Value:  &NumericLiteral{Value: "1", Suffix: "I32", Type: token.I32, Fillers: []Filler{{Content: FillerContent{Kind: FillerWhitespace, String: " "}}}},
					OperatorFillers: []Filler{{Content: FillerContent{Kind: FillerWhitespace, String: " "}}},
				},
			},
		},
	}

	got := texts(script.Tokenize())
	want := []string{"x", " ", "=", " ", "1_I32", ";"}
	assertEqualStrings(t, got, want)
}

func TestScriptTokenizeTrailingFillers(t *testing.T) {
	script := &Script{
		Statements: []Statement{
			&ExpressionStatement{Expression: &Identifier{String: "x"}},
		},
		Fillers: []Filler{{Content: FillerContent{Kind: FillerNewline, String: "\n"}}},
	}
	got := texts(script.Tokenize())
	want := []string{"x", ";", "\n"}
	assertEqualStrings(t, got, want)
}

func TestScriptTokenizeCallWithTrailingComma(t *testing.T) {
	// f(a, b,);
	script := &Script{
		Statements: []Statement{
			&ExpressionStatement{
				Expression: &Call{
					Callable:  &Identifier{String: "f"},
					Arguments: []Expression{&Identifier{String: "a"}, &Identifier{String: "b"}},
					CommasPositions: []token.SubstringPosition{{}, {}},
					CommasFillers:   [][]Filler{nil, nil},
				},
			},
		},
	}
	got := texts(script.Tokenize())
	want := []string{"f", "(", "a", ",", "b", ",", ")", ";"}
	assertEqualStrings(t, got, want)
}

func TestScriptTokenizeConditionalWithElse(t *testing.T) {
	elsePos := token.SubstringPosition{}
	script := &Script{
		Statements: []Statement{
			&ExpressionStatement{
				Expression: &Conditional{
					Antecedent: &Identifier{String: "x"},
					Consequent: &Block{Expression: &NumericLiteral{Value: "1", Suffix: "I32", Type: token.I32}},
					Alternative: &Block{Expression: &NumericLiteral{Value: "2", Suffix: "I32", Type: token.I32}},
					AlternativeOpenerPosition: &elsePos,
				},
			},
		},
	}
	got := texts(script.Tokenize())
	want := []string{"if", "x", "{", "1_I32", "}", "else", "{", "2_I32", "}", ";"}
	assertEqualStrings(t, got, want)
}

func texts(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Content.String
	}
	return out
}

func assertEqualStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
