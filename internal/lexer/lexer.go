// Package lexer scans az source text into a flat list of positioned
// tokens, preserving every byte as either a structural token or a filler
// token (comment, newline, run of spaces). Apart from a leading byte order
// mark, which New strips, it never discards input. It never recovers from
// an error: the first malformed construct aborts the
// scan, matching the parser's own fail-fast contract.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-lang/az-go/pkg/token"
)

// scanPos is the lexer's running position: an absolute byte offset into
// the input, plus the per-line byte/utf8 counters SubstringPosition needs.
type scanPos struct {
	abs        int
	line       int
	byteInLine token.ByteIndex
	utf8InLine token.Utf8Index
}

// Lexer scans a single source string into tokens.
type Lexer struct {
	input string
	cur   scanPos
}

// New creates a Lexer over source. A leading UTF-8 BOM, if present, is
// stripped before scanning begins.
func New(source string) *Lexer {
	return &Lexer{input: stripBOM(source)}
}

func stripBOM(s string) string {
	const bom = "\xef\xbb\xbf"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}

// Tokenize scans source in full and returns every token (structural and
// filler) in source order, or the first LexicalError encountered.
func Tokenize(source string) ([]token.Token, error) {
	l := New(source)
	var tokens []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, *tok)
	}
}

func (l *Lexer) mark() scanPos { return l.cur }

func (l *Lexer) span(start scanPos) token.SubstringPosition {
	return token.SubstringPosition{
		StartLine:      start.line,
		StartCharacter: token.CharacterPosition{Byte: start.byteInLine, Utf8: start.utf8InLine},
		EndLine:        l.cur.line,
		EndCharacter:   token.CharacterPosition{Byte: l.cur.byteInLine, Utf8: l.cur.utf8InLine},
	}
}

func (l *Lexer) text(start scanPos) string { return l.input[start.abs:l.cur.abs] }

func (l *Lexer) atEOF() bool { return l.cur.abs >= len(l.input) }

// peek returns the rune at the current position without consuming it. It
// returns 0 at EOF.
func (l *Lexer) peek() rune {
	if l.atEOF() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.cur.abs:])
	return r
}

// peekAt returns the rune `ahead` runes past the current position,
// without consuming anything. It returns 0 past EOF.
func (l *Lexer) peekAt(ahead int) rune {
	pos := l.cur.abs
	var r rune
	var size int
	for i := 0; i <= ahead; i++ {
		if pos >= len(l.input) {
			return 0
		}
		r, size = utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	return r
}

// advance consumes and returns the current rune, updating position
// bookkeeping. It must not be called at EOF.
func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.cur.abs:])
	l.cur.abs += size
	if r == '\n' {
		l.cur.line++
		l.cur.byteInLine = 0
		l.cur.utf8InLine = 0
	} else {
		l.cur.byteInLine += token.ByteIndex(size)
		l.cur.utf8InLine++
	}
	return r
}

func isAsciiLetter(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAsciiDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAsciiAlnum(r rune) bool { return isAsciiLetter(r) || isAsciiDigit(r) }

func isSpaceSeparator(r rune) bool { return unicode.Is(unicode.Zs, r) }

// next scans and returns the next token, or (nil, nil) at a clean EOF.
func (l *Lexer) next() (*token.Token, error) {
	if l.atEOF() {
		return nil, nil
	}
	start := l.mark()
	r := l.peek()

	switch {
	case r == '(':
		l.advance()
		return l.punct(token.OPEN_PARENTHESIS, start), nil
	case r == ')':
		l.advance()
		return l.punct(token.CLOSE_PARENTHESIS, start), nil
	case r == '{':
		l.advance()
		return l.punct(token.OPEN_BRACE, start), nil
	case r == '}':
		l.advance()
		return l.punct(token.CLOSE_BRACE, start), nil
	case r == ',':
		l.advance()
		return l.punct(token.COMMA, start), nil
	case r == ';':
		l.advance()
		return l.punct(token.SEMICOLON, start), nil
	case r == '+':
		l.advance()
		return l.punct(token.PLUS, start), nil
	case r == '*':
		l.advance()
		return l.punct(token.ASTERISK, start), nil
	case r == '-':
		l.advance()
		if l.peek() == '>' {
			l.advance()
			return l.punct(token.ARROW, start), nil
		}
		return l.punct(token.MINUS, start), nil
	case r == '/':
		return l.readSlash(start)
	case r == ':':
		l.advance()
		return l.punct(token.COLON, start), nil
	case r == '=':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.punct(token.EQUAL_TO, start), nil
		}
		return l.punct(token.ASSIGNMENT, start), nil
	case r == '!':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.punct(token.NOT_EQUAL_TO, start), nil
		}
		ch := l.peek()
		return nil, &token.UnexpectedCharacter{Character: string(ch), Position: l.span(l.mark()), String: "!"}
	case r == '<':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.punct(token.LOWER_THAN_OR_EQUAL_TO, start), nil
		}
		return l.punct(token.LOWER_THAN, start), nil
	case r == '>':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return l.punct(token.GREATER_THAN_OR_EQUAL_TO, start), nil
		}
		return l.punct(token.GREATER_THAN, start), nil
	case r == '\n':
		l.advance()
		return &token.Token{Content: token.TokenContent{Kind: token.NEWLINE, String: "\n"}, Position: l.span(start)}, nil
	case isSpaceSeparator(r):
		return l.readWhitespace(start), nil
	case r == '.' && isAsciiDigit(l.peekAt(1)):
		return l.readNumericLiteral(start)
	case r == '.':
		l.advance()
		return l.punct(token.DOT, start), nil
	case isAsciiDigit(r):
		return l.readNumericLiteral(start)
	case isAsciiLetter(r):
		return l.readIdentifier(start)
	default:
		l.advance()
		return nil, &token.UnexpectedCharacter{Character: string(r), Position: l.span(start), String: string(r)}
	}
}

func (l *Lexer) punct(kind token.Kind, start scanPos) *token.Token {
	tok := token.NewToken(kind, l.span(start))
	return &tok
}

func (l *Lexer) readWhitespace(start scanPos) *token.Token {
	for isSpaceSeparator(l.peek()) {
		l.advance()
	}
	return &token.Token{Content: token.TokenContent{Kind: token.WHITESPACE, String: l.text(start)}, Position: l.span(start)}
}

func (l *Lexer) readSlash(start scanPos) (*token.Token, error) {
	l.advance() // '/'
	switch l.peek() {
	case '/':
		return l.readLineComment(start), nil
	case '*':
		return l.readBlockComment(start)
	default:
		return l.punct(token.SLASH, start), nil
	}
}

func (l *Lexer) readLineComment(start scanPos) *token.Token {
	l.advance() // second '/'
	for !l.atEOF() && l.peek() != '\n' {
		l.advance()
	}
	return &token.Token{Content: token.TokenContent{Kind: token.COMMENT_LINE, String: l.text(start)}, Position: l.span(start)}
}

func (l *Lexer) readBlockComment(start scanPos) (*token.Token, error) {
	l.advance() // '*'
	textStart := l.mark()
	for {
		if l.atEOF() {
			return nil, &token.CommentBlockIncomplete{Position: l.span(start), Strings: []string{l.text(textStart)}}
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			return &token.Token{Content: token.TokenContent{Kind: token.COMMENT_BLOCK, String: l.text(start)}, Position: l.span(start)}, nil
		}
		l.advance()
	}
}

func (l *Lexer) readIdentifier(start scanPos) (*token.Token, error) {
	for isAsciiAlnum(l.peek()) {
		l.advance()
	}
	if r := l.peek(); !l.atEOF() && !isSpaceSeparator(r) && !strings.ContainsRune("(){},;+*-/:=!<>.\n", r) {
		return nil, &token.IdentifierUnexpectedCharacter{
			Character: string(r), Expected: "identifier character or the start of another token",
			Position: l.span(start), String: l.text(start),
		}
	}
	return &token.Token{Content: token.TokenContent{Kind: token.IDENTIFIER, String: l.text(start)}, Position: l.span(start)}, nil
}
