package lexer

import "github.com/az-lang/az-go/pkg/token"

// readNumericLiteral scans a numeric literal value followed by its
// mandatory "_<Suffix>" type tag. Entry conditions (checked by next):
// the current rune is an ASCII digit, or a '.' immediately followed by
// one.
func (l *Lexer) readNumericLiteral(start scanPos) (*token.Token, error) {
	valueKind := token.INTEGER

	if l.peek() == '.' {
		l.advance() // leading '.'
		valueKind = token.FLOATING_POINT
		l.readDigits()
	} else {
		l.readDigits()
		if l.peek() == '.' && isAsciiDigit(l.peekAt(1)) {
			l.advance()
			valueKind = token.FLOATING_POINT
			l.readDigits()
		}
	}

	if ahead, ok := l.exponentLength(); ok {
		valueKind = token.FLOATING_POINT
		for i := 0; i < ahead; i++ {
			l.advance()
		}
	}

	value := l.text(start)

	switch {
	case l.atEOF():
		return nil, &token.NumericLiteralValueIncomplete{Kind: valueKind, Position: l.span(start), String: value}
	case l.peek() != '_':
		ch := l.peek()
		return nil, &token.NumericLiteralValueUnexpectedCharacter{
			Character: string(ch), Expected: "_", Kind: valueKind,
			Position: l.span(start), String: value,
		}
	}

	l.advance() // '_'
	suffixStart := l.cur
	for isAsciiAlnum(l.peek()) {
		l.advance()
	}
	suffixText := l.input[suffixStart.abs:l.cur.abs]

	if suffixText == "" {
		if l.atEOF() {
			return nil, &token.NumericLiteralTypeSuffixIncomplete{Position: l.span(start), String: value, Value: value, ValueKind: valueKind}
		}
		ch := l.peek()
		return nil, &token.NumericLiteralTypeSuffixUnexpectedCharacter{
			Character: string(ch), Expected: "type suffix", Position: l.span(start),
			String: value, Value: value, ValueKind: valueKind,
		}
	}

	kind, known := token.NumericSuffixes[suffixText]
	if !known {
		return nil, &token.NumericLiteralTypeSuffixUnknown{
			Position: l.span(start), String: value, TypeSuffix: suffixText, Value: value, ValueKind: valueKind,
		}
	}
	if token.NumericSuffixValueKind(kind) != valueKind {
		return nil, &token.NumericLiteralValueTypeSuffixConflict{
			Position: l.span(start), String: value, TypeSuffix: suffixText, Value: value, ValueKind: valueKind,
		}
	}

	return &token.Token{Content: token.TokenContent{Kind: kind, String: l.text(start)}, Position: l.span(start)}, nil
}

func (l *Lexer) readDigits() {
	for isAsciiDigit(l.peek()) {
		l.advance()
	}
}

// exponentLength reports the number of runes an 'e'/'E' exponent would
// consume (the marker, an optional sign, and one-or-more digits) without
// consuming anything, so the caller can decide whether to commit. ok is
// false if the current position is not the start of a valid exponent.
func (l *Lexer) exponentLength() (int, bool) {
	if l.peek() != 'e' && l.peek() != 'E' {
		return 0, false
	}
	ahead := 1
	next := l.peekAt(ahead)
	if next == '+' || next == '-' {
		ahead++
		next = l.peekAt(ahead)
	}
	if !isAsciiDigit(next) {
		return 0, false
	}
	for isAsciiDigit(l.peekAt(ahead)) {
		ahead++
	}
	return ahead, true
}
