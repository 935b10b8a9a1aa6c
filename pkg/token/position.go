package token

import (
	"fmt"
	"math"
)

// ByteIndex counts UTF-8 code units from the start of a line. It is a
// distinct type from Utf8Index so the two index spaces can never be mixed
// by accident at a call site.
type ByteIndex uint

// MaxByteIndex is the largest representable ByteIndex.
const MaxByteIndex = ByteIndex(math.MaxUint)

// Add returns b+other, or an error if the sum would overflow.
func (b ByteIndex) Add(other ByteIndex) (ByteIndex, error) {
	sum := b + other
	if sum < b {
		return 0, &IndexOverflowError{Op: "ByteIndex.Add", A: uint64(b), B: uint64(other)}
	}
	return sum, nil
}

// Sub returns b-other, or an error if other is greater than b.
func (b ByteIndex) Sub(other ByteIndex) (ByteIndex, error) {
	if other > b {
		return 0, &IndexUnderflowError{Op: "ByteIndex.Sub", A: uint64(b), B: uint64(other)}
	}
	return b - other, nil
}

func (b ByteIndex) String() string { return fmt.Sprintf("%d", uint(b)) }

// Utf8Index counts Unicode scalar values (runes) from the start of a line.
type Utf8Index uint

// MaxUtf8Index is the largest representable Utf8Index.
const MaxUtf8Index = Utf8Index(math.MaxUint)

// Add returns u+other, or an error if the sum would overflow.
func (u Utf8Index) Add(other Utf8Index) (Utf8Index, error) {
	sum := u + other
	if sum < u {
		return 0, &IndexOverflowError{Op: "Utf8Index.Add", A: uint64(u), B: uint64(other)}
	}
	return sum, nil
}

// Sub returns u-other, or an error if other is greater than u.
func (u Utf8Index) Sub(other Utf8Index) (Utf8Index, error) {
	if other > u {
		return 0, &IndexUnderflowError{Op: "Utf8Index.Sub", A: uint64(u), B: uint64(other)}
	}
	return u - other, nil
}

func (u Utf8Index) String() string { return fmt.Sprintf("%d", uint(u)) }

// IndexOverflowError reports a ByteIndex/Utf8Index addition that would wrap around.
type IndexOverflowError struct {
	Op   string
	A, B uint64
}

func (e *IndexOverflowError) Error() string {
	return fmt.Sprintf("%s: %d + %d overflows", e.Op, e.A, e.B)
}

// IndexUnderflowError reports a ByteIndex/Utf8Index subtraction that would go negative.
type IndexUnderflowError struct {
	Op   string
	A, B uint64
}

func (e *IndexUnderflowError) Error() string {
	return fmt.Sprintf("%s: %d - %d underflows", e.Op, e.A, e.B)
}

// CharacterPosition is a single offset expressed in both index spaces at once.
type CharacterPosition struct {
	Byte ByteIndex
	Utf8 Utf8Index
}

func (c CharacterPosition) String() string {
	return fmt.Sprintf("byte=%d,utf8=%d", uint(c.Byte), uint(c.Utf8))
}

// SubstringPosition names a span of source text. Lines are zero-based;
// StartCharacter/EndCharacter are relative to their own line, and the span
// is half-open in the character dimension ([StartCharacter, EndCharacter)).
// A span that crosses one or more newlines has EndLine > StartLine, with
// EndCharacter measured from the start of the line it ends on.
type SubstringPosition struct {
	StartLine      int
	StartCharacter CharacterPosition
	EndLine        int
	EndCharacter   CharacterPosition
}

func (p SubstringPosition) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", p.StartLine, uint(p.StartCharacter.Utf8), p.EndLine, uint(p.EndCharacter.Utf8))
}
