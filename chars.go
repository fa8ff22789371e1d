package fortparse

import "github.com/soypat/fortparse/message"

// IsDecimalDigit reports whether ch is one of 0 through 9.
func IsDecimalDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// IsOctalDigit reports whether ch is one of 0 through 7.
func IsOctalDigit(ch byte) bool { return '0' <= ch && ch <= '7' }

// IsHexDigit reports whether ch is a hexadecimal digit of either case.
func IsHexDigit(ch byte) bool {
	return IsDecimalDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

// IsLetter reports whether ch is an ASCII letter.
func IsLetter(ch byte) bool { return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' }

// IsPrintable reports whether ch is a printable ASCII character, space included.
func IsPrintable(ch byte) bool { return ch >= 32 && ch <= 126 }

// ToLower folds an ASCII letter to lowercase and returns other characters unchanged.
func ToLower(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}

func isBlank(ch byte) bool { return ch == ' ' || ch == '\t' }

// hexDigitValue expects ch to satisfy [IsHexDigit].
func hexDigitValue(ch byte) byte {
	if IsDecimalDigit(ch) {
		return ch - '0'
	}
	return ToLower(ch) - 'a' + 10
}

// NextChar consumes any one character.
var NextChar Parser[byte] = func(s *State) (byte, bool) {
	return s.NextChar()
}

// charGuard consumes one character and succeeds if it satisfies pred.
// On failure msg is posted at the character's position.
func charGuard(pred func(byte) bool, msg message.ID) Parser[byte] {
	return func(s *State) (byte, bool) {
		at := s.Pos()
		ch, ok := s.NextChar()
		if ok && pred(ch) {
			return ch, true
		}
		s.Say(at, msg)
		return 0, false
	}
}

// Digit recognizes a decimal digit.
var Digit = charGuard(IsDecimalDigit, message.ExpectedDigit)

// Letter recognizes a letter and yields it folded to lowercase.
var Letter = Map(charGuard(IsLetter, message.ExpectedLetter), ToLower)

// CharMatch recognizes exactly the character good.
func CharMatch(good byte) Parser[byte] {
	return func(s *State) (byte, bool) {
		at := s.Pos()
		ch, ok := s.NextChar()
		if ok && ch == good {
			return ch, true
		}
		s.SayExpected(at, string(good))
		return 0, false
	}
}

// Space recognizes a single space or tab.
var Space Parser[Success] = func(s *State) (Success, bool) {
	ch, ok := s.NextChar()
	return Success{}, ok && isBlank(ch)
}

// Spaces skips any amount of spaces and tabs. It never fails.
var Spaces = SkipMany(Space)

// Name recognizes a Fortran name: a letter followed by letters, digits and
// underscores. Surrounding blanks are skipped and letters are folded to lowercase.
var Name Parser[string] = func(s *State) (string, bool) {
	Spaces(s)
	first, ok := Letter(s)
	if !ok {
		return "", false
	}
	buf := []byte{first}
	for {
		ch, ok := s.Peek()
		if !ok || !(IsLetter(ch) || IsDecimalDigit(ch) || ch == '_') {
			break
		}
		s.NextChar()
		buf = append(buf, ToLower(ch))
	}
	Spaces(s)
	return string(buf), true
}
