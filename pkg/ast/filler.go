package ast

import "github.com/az-lang/az-go/pkg/token"

// FillerKind classifies a piece of trivia: the four token kinds that
// carry no grammatical meaning but must still round-trip exactly.
type FillerKind int

const (
	FillerCommentBlock FillerKind = iota
	FillerCommentLine
	FillerNewline
	FillerWhitespace
)

func (k FillerKind) String() string {
	switch k {
	case FillerCommentBlock:
		return "COMMENT_BLOCK"
	case FillerCommentLine:
		return "COMMENT_LINE"
	case FillerNewline:
		return "NEWLINE"
	case FillerWhitespace:
		return "WHITESPACE"
	default:
		return "UNKNOWN"
	}
}

var fillerKindToTokenKind = map[FillerKind]token.Kind{
	FillerCommentBlock: token.COMMENT_BLOCK,
	FillerCommentLine:  token.COMMENT_LINE,
	FillerNewline:       token.NEWLINE,
	FillerWhitespace:    token.WHITESPACE,
}

var tokenKindToFillerKind = map[token.Kind]FillerKind{
	token.COMMENT_BLOCK: FillerCommentBlock,
	token.COMMENT_LINE:  FillerCommentLine,
	token.NEWLINE:       FillerNewline,
	token.WHITESPACE:    FillerWhitespace,
}

// FillerContent is the kind/text pair carried by a Filler.
type FillerContent struct {
	Kind   FillerKind
	String string
}

// Filler is a single piece of trivia (a comment, a newline, or a run of
// whitespace) attached to the structural token that follows it.
type Filler struct {
	Content  FillerContent
	Position token.SubstringPosition
}

// FillerFromToken converts a filler-kind token.Token into a Filler. It
// panics if tok is not a filler kind; callers are expected to have
// already checked token.Kind.IsFiller.
func FillerFromToken(tok token.Token) Filler {
	kind, ok := tokenKindToFillerKind[tok.Content.Kind]
	if !ok {
		panic("ast: FillerFromToken called with a non-filler token kind")
	}
	return Filler{
		Content:  FillerContent{Kind: kind, String: tok.Content.String},
		Position: tok.Position,
	}
}

// Token converts a Filler back into its original token.Token.
func (f Filler) Token() token.Token {
	return token.Token{
		Content:  token.TokenContent{Kind: fillerKindToTokenKind[f.Content.Kind], String: f.Content.String},
		Position: f.Position,
	}
}
