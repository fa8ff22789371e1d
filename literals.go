package fortparse

import (
	"math"

	"github.com/soypat/fortparse/message"
)

// CharUnit is one decoded character of a character literal.
type CharUnit struct {
	Ch byte
	// Escaped is set when Ch was produced by a backslash escape.
	// An escaped quote never terminates a literal.
	Escaped bool
}

// CharLiteralChar recognizes one character of a character literal body,
// decoding backslash escapes when the session enables them.
var CharLiteralChar Parser[CharUnit] = func(s *State) (CharUnit, bool) {
	at := s.Pos()
	ch, ok := s.NextChar()
	if !ok {
		return CharUnit{}, false
	}
	if ch == '\n' {
		s.Say(at, message.UnclosedCharConstant)
		return CharUnit{}, false
	}
	if ch != '\\' || !s.BackslashEscapes() {
		return CharUnit{Ch: ch}, true
	}
	if ch, ok = s.NextChar(); !ok {
		return CharUnit{}, false
	}
	switch ch {
	case 'a':
		return CharUnit{Ch: '\a', Escaped: true}, true
	case 'b':
		return CharUnit{Ch: '\b', Escaped: true}, true
	case 'f':
		return CharUnit{Ch: '\f', Escaped: true}, true
	case 'n':
		return CharUnit{Ch: '\n', Escaped: true}, true
	case 'r':
		return CharUnit{Ch: '\r', Escaped: true}, true
	case 't':
		return CharUnit{Ch: '\t', Escaped: true}, true
	case 'v':
		return CharUnit{Ch: '\v', Escaped: true}, true
	case '"', '\'', '\\':
		return CharUnit{Ch: ch, Escaped: true}, true
	case '\n':
		s.Say(at, message.UnclosedCharConstant)
		return CharUnit{}, false
	}
	switch {
	case IsOctalDigit(ch):
		ch -= '0'
		more := 2
		if ch > 3 {
			more = 1 // Keep the value within a byte.
		}
		for ; more > 0; more-- {
			next, ok := s.Peek()
			if !ok || !IsOctalDigit(next) {
				break
			}
			s.NextChar()
			ch = 8*ch + next - '0'
		}
	case ch == 'x' || ch == 'X':
		ch = 0
		for range 2 {
			next, ok := s.Peek()
			if !ok || !IsHexDigit(next) {
				break
			}
			s.NextChar()
			ch = 16*ch + hexDigitValue(next)
		}
	default:
		s.Say(at, message.BadEscapedChar)
	}
	return CharUnit{Ch: ch, Escaped: true}, true
}

// CharLiteral recognizes the body of a character literal whose opening
// quote was already consumed, through the closing quote. A doubled quote
// stands for one embedded quote. The closing quote is not part of the result.
func CharLiteral(quote byte) Parser[string] {
	return func(s *State) (string, bool) {
		var buf []byte
		for {
			start := s.Snapshot()
			unit, ok := CharLiteralChar(s)
			if !ok {
				s.Restore(start)
				return "", false
			}
			if unit.Ch == quote && !unit.Escaped {
				if next, ok := s.Peek(); !ok || next != quote {
					return string(buf), true
				}
				s.NextChar()
			}
			buf = append(buf, unit.Ch)
		}
	}
}

// QuotedCharLiteral recognizes a character literal delimited by
// apostrophes or quotation marks, after skipping leading blanks.
var QuotedCharLiteral Parser[string] = func(s *State) (string, bool) {
	Spaces(s)
	quote, ok := s.NextChar()
	if !ok || (quote != '\'' && quote != '"') {
		return "", false
	}
	return CharLiteral(quote)(s)
}

// bozShift returns the bits per digit of a BOZ base letter, or 0.
func bozShift(ch byte) uint {
	switch ToLower(ch) {
	case 'b':
		return 1
	case 'o':
		return 3
	case 'z', 'x':
		return 4
	}
	return 0
}

// BOZLiteral recognizes binary, octal and hexadecimal literal constants
// such as B'1010', O"17" and Z'FF', yielding their magnitude.
// As extensions outside strict conformance, X is accepted as a hexadecimal
// marker and the base letter may follow the closing quote instead, as in '1F'X.
// Digits that do not fit 64 bits are diagnosed and the low 64 bits are returned.
var BOZLiteral Parser[uint64] = func(s *State) (uint64, bool) {
	Spaces(s)
	ch, ok := s.NextChar()
	if !ok {
		return 0, false
	}
	if ToLower(ch) == 'x' && s.StrictConformance() {
		return 0, false
	}
	shift := bozShift(ch)
	if shift != 0 {
		if ch, ok = s.NextChar(); !ok {
			return 0, false
		}
	}
	quote := ch
	if quote != '\'' && quote != '"' {
		return 0, false
	}

	at := s.Pos()
	for {
		if ch, ok = s.NextChar(); !ok {
			return 0, false
		} else if ch == quote {
			break
		} else if !IsHexDigit(ch) {
			return 0, false
		}
	}
	digits := s.input[at : s.Pos()-1]

	if shift == 0 {
		if s.StrictConformance() {
			return 0, false
		}
		// Base letter as suffix.
		if ch, ok = s.NextChar(); !ok {
			return 0, false
		}
		if shift = bozShift(ch); shift == 0 {
			return 0, false
		}
	}

	if len(digits) == 0 {
		s.Say(at, message.NoDigitBOZ)
		return 0, false
	}
	var value uint64
	excessive := false
	for _, d := range digits {
		digit := uint64(hexDigitValue(d))
		if digit>>shift > 0 {
			s.Say(at, message.BadDigitBOZ)
			return 0, false
		}
		was := value
		value <<= shift
		if !excessive && value>>shift != was {
			excessive = true
			s.Say(at, message.ExcessiveDigitsBOZ)
		}
		value |= digit
	}
	return value, true
}

// DigitString recognizes an unsigned decimal digit string without blanks.
// Values that overflow 64 bits are diagnosed and returned wrapped.
var DigitString Parser[uint64] = func(s *State) (uint64, bool) {
	at := s.Pos()
	first, ok := Digit(s)
	if !ok {
		s.Restore(at)
		return 0, false
	}
	value := uint64(first - '0')
	overflow := false
	for {
		ch, ok := s.Peek()
		if !ok || !IsDecimalDigit(ch) {
			break
		}
		s.NextChar()
		if value > math.MaxUint64/10 {
			overflow = true
		}
		value *= 10
		digit := uint64(ch - '0')
		if value > math.MaxUint64-digit {
			overflow = true
		}
		value += digit
	}
	if overflow {
		s.Say(at, message.DecimalOverflow)
	}
	return value, true
}

// HollerithLiteral recognizes the legacy count prefixed literal nHccc...
// whose n characters are taken verbatim.
var HollerithLiteral Parser[[]byte] = func(s *State) ([]byte, bool) {
	Spaces(s)
	at := s.Pos()
	count, ok := DigitString(s)
	if !ok || count < 1 {
		return nil, false
	}
	h, ok := Letter(s)
	if !ok || h != 'h' {
		return nil, false
	}
	content := make([]byte, 0, min(count, uint64(len(s.Remaining()))))
	for j := count; j > 0; j-- {
		ch, ok := s.NextChar()
		if !ok || !IsPrintable(ch) {
			s.Say(at, message.BadHollerith)
			return nil, false
		}
		content = append(content, ch)
	}
	return content, true
}
